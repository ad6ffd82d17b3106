package driver

import (
	"context"
	"errors"

	"github.com/hestia-ai/hestia/pkg/schema"
)

var (
	// ErrGraphQueryFailure indicates a traversal or lookup against the graph
	// store failed. Transient network-class failure: callers may retry the
	// whole request, the driver itself does not loop.
	ErrGraphQueryFailure = errors.New("graph query failed")

	// ErrIndexUnavailable indicates the vector index is missing and could
	// not be created. Not retried.
	ErrIndexUnavailable = errors.New("vector index unavailable")
)

// TraversalSpec is a fully parameterized retrieval statement produced by the
// search package's query builder. Query references parameters by name only;
// every runtime value, including the query embedding, travels in Params.
type TraversalSpec struct {
	Query  string
	Params map[string]any
}

// GraphStore is the read-only surface of the graph database the retrieval
// pipeline depends on.
type GraphStore interface {
	// VectorIndexExists reports whether a vector index with the given name
	// exists in the store.
	VectorIndexExists(ctx context.Context, name string) (bool, error)

	// CreateVectorIndex creates the vector index described by spec. It is a
	// no-op when the index already exists.
	CreateVectorIndex(ctx context.Context, spec schema.IndexSpec) error

	// Retrieve executes a traversal spec and returns one raw record per
	// advice candidate, keyed by the spec's RETURN aliases. An empty slice
	// is a valid outcome.
	Retrieve(ctx context.Context, spec TraversalSpec) ([]map[string]any, error)

	// Close releases the underlying connection pool.
	Close(ctx context.Context) error
}
