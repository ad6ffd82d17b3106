package driver

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/hestia-ai/hestia/pkg/schema"
)

// Neo4jStore implements GraphStore for Neo4j databases.
type Neo4jStore struct {
	client   neo4j.DriverWithContext
	database string
	logger   *slog.Logger
}

// NewNeo4jStore creates a new Neo4j graph store handle.
func NewNeo4jStore(uri, username, password, database string, logger *slog.Logger) (*Neo4jStore, error) {
	client, err := neo4j.NewDriverWithContext(uri, neo4j.BasicAuth(username, password, ""))
	if err != nil {
		return nil, fmt.Errorf("failed to create neo4j driver: %w", err)
	}

	if database == "" {
		database = "neo4j"
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Neo4jStore{
		client:   client,
		database: database,
		logger:   logger,
	}, nil
}

// VectorIndexExists reports whether an index with the given name exists.
func (n *Neo4jStore) VectorIndexExists(ctx context.Context, name string) (bool, error) {
	session := n.client.NewSession(ctx, neo4j.SessionConfig{DatabaseName: n.database})
	defer session.Close(ctx)

	result, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, "SHOW INDEXES YIELD name RETURN name", nil)
		if err != nil {
			return nil, err
		}
		records, err := res.Collect(ctx)
		if err != nil {
			return nil, err
		}
		for _, record := range records {
			if value, found := record.Get("name"); found {
				if indexName, ok := AsString(value); ok && indexName == name {
					return true, nil
				}
			}
		}
		return false, nil
	})
	if err != nil {
		return false, fmt.Errorf("%w: listing indexes: %v", ErrGraphQueryFailure, err)
	}

	exists, _ := result.(bool)
	return exists, nil
}

// CreateVectorIndex creates the vector index described by spec. Index names
// and labels come from the static schema registry, never from user input, so
// building the DDL statement with Sprintf is safe here.
func (n *Neo4jStore) CreateVectorIndex(ctx context.Context, spec schema.IndexSpec) error {
	session := n.client.NewSession(ctx, neo4j.SessionConfig{DatabaseName: n.database})
	defer session.Close(ctx)

	query := fmt.Sprintf(
		"CREATE VECTOR INDEX `%s` IF NOT EXISTS FOR (a:`%s`) ON (a.`%s`) "+
			"OPTIONS {indexConfig: {`vector.dimensions`: $dimensions, `vector.similarity_function`: $similarity}}",
		spec.Name, spec.Label, spec.Property,
	)

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, query, map[string]any{
			"dimensions": spec.Dimensions,
			"similarity": spec.Similarity,
		})
		if err != nil {
			return nil, err
		}
		return nil, res.Err()
	})
	if err != nil {
		return fmt.Errorf("%w: creating index %s: %v", ErrIndexUnavailable, spec.Name, err)
	}

	n.logger.Info("created vector index",
		"index", spec.Name,
		"label", spec.Label,
		"dimensions", spec.Dimensions,
		"similarity", spec.Similarity)
	return nil
}

// Retrieve executes a traversal spec inside a read transaction and returns
// the raw records keyed by the spec's RETURN aliases.
func (n *Neo4jStore) Retrieve(ctx context.Context, spec TraversalSpec) ([]map[string]any, error) {
	session := n.client.NewSession(ctx, neo4j.SessionConfig{DatabaseName: n.database})
	defer session.Close(ctx)

	result, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, spec.Query, spec.Params)
		if err != nil {
			return nil, err
		}
		records, err := res.Collect(ctx)
		if err != nil {
			return nil, err
		}

		rows := make([]map[string]any, 0, len(records))
		for _, record := range records {
			row := make(map[string]any, len(record.Keys))
			for i, key := range record.Keys {
				row[key] = record.Values[i]
			}
			rows = append(rows, row)
		}
		return rows, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGraphQueryFailure, err)
	}

	rows := result.([]map[string]any)
	n.logger.Debug("traversal complete", "records", len(rows))
	return rows, nil
}

// Close releases the driver's connection pool.
func (n *Neo4jStore) Close(ctx context.Context) error {
	return n.client.Close(ctx)
}

var _ GraphStore = (*Neo4jStore)(nil)
