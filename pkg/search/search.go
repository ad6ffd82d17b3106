package search

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/hestia-ai/hestia/pkg/driver"
	"github.com/hestia-ai/hestia/pkg/embedder"
	"github.com/hestia-ai/hestia/pkg/schema"
	"github.com/hestia-ai/hestia/pkg/types"
)

const (
	// DefaultLimit is a suggested result cap for callers that expose a
	// limit knob. The retriever itself never applies a default: callers own
	// that decision explicitly.
	DefaultLimit = 5

	// actionableBoost is added when the advice has actionable advice attached.
	actionableBoost = 0.2
	// scenarioBoost is added when the advice has scenario notes attached.
	scenarioBoost = 0.1
)

// Options control a single retrieval.
type Options struct {
	// Limit caps the number of returned results. Must be positive.
	Limit int
	// Filters are the optional post-expansion constraints.
	Filters Filters
}

// Retriever executes the candidate-generation, expansion, scoring, filter,
// order, limit sequence against the graph store. It is safe for concurrent
// use; all state is read-only after construction.
type Retriever struct {
	store    driver.GraphStore
	embedder embedder.Client
	builder  *QueryBuilder
	index    schema.IndexSpec
	logger   *slog.Logger
}

// NewRetriever creates a retriever over the given store and embedder.
func NewRetriever(store driver.GraphStore, embedderClient embedder.Client, index schema.IndexSpec, logger *slog.Logger) *Retriever {
	if logger == nil {
		logger = slog.Default()
	}
	return &Retriever{
		store:    store,
		embedder: embedderClient,
		builder:  NewQueryBuilder(index),
		index:    index,
		logger:   logger,
	}
}

// Retrieve runs one retrieval. The returned slice is ordered by composite
// score descending, ties broken by the store's return order, and holds at
// most opts.Limit results. An empty slice is a valid outcome, not an error.
func (r *Retriever) Retrieve(ctx context.Context, query string, opts Options) ([]*types.RetrievalResult, error) {
	spec, err := r.builder.Build(opts.Limit)
	if err != nil {
		return nil, err
	}

	if err := r.ensureIndex(ctx); err != nil {
		return nil, err
	}

	vector, err := r.embedder.EmbedSingle(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embedding query: %w", err)
	}
	spec.Params[ParamEmbedding] = vector

	records, err := r.store.Retrieve(ctx, *spec)
	if err != nil {
		return nil, fmt.Errorf("traversal: %w", err)
	}

	results := make([]*types.RetrievalResult, 0, len(records))
	for _, record := range records {
		result := Normalize(record)
		result.Score = compositeScore(result)
		if !opts.Filters.Match(result) {
			continue
		}
		results = append(results, result)
	}

	// Boosts can reorder candidates relative to the base-score order the
	// store returned. Stable sort keeps ties deterministic: equal scores
	// stay in store return order.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > opts.Limit {
		results = results[:opts.Limit]
	}

	r.logger.Info("retrieval complete",
		"query_len", len(query),
		"candidates", len(records),
		"results", len(results))
	return results, nil
}

// ensureIndex verifies the vector index exists, creating it when missing.
// Creation is explicit and logged; a store that cannot create the index
// surfaces driver.ErrIndexUnavailable.
func (r *Retriever) ensureIndex(ctx context.Context) error {
	exists, err := r.store.VectorIndexExists(ctx, r.index.Name)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	r.logger.Warn("vector index missing, creating", "index", r.index.Name)
	return r.store.CreateVectorIndex(ctx, r.index)
}

// compositeScore applies the additive boosts to a normalized result's base
// similarity score. Boosts are independent and additive, never multiplicative,
// and the composite is left unclamped.
func compositeScore(result *types.RetrievalResult) float64 {
	score := result.Score
	if result.HasActionableAdvice() {
		score += actionableBoost
	}
	if result.HasScenarioNotes() {
		score += scenarioBoost
	}
	return score
}
