package search

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hestia-ai/hestia/pkg/driver"
	"github.com/hestia-ai/hestia/pkg/schema"
)

// ErrInvalidArgument indicates bad caller input, such as a non-positive
// limit. Fails fast, never retried.
var ErrInvalidArgument = errors.New("invalid argument")

// ParamEmbedding is the traversal parameter carrying the query embedding.
// The query builder declares it; the retriever fills it after embedding.
const ParamEmbedding = "embedding"

// QueryBuilder constructs the parameterized retrieval traversal from the
// schema registry. Construction is pure: no I/O, no mutation.
type QueryBuilder struct {
	index schema.IndexSpec
}

// NewQueryBuilder creates a query builder targeting the given vector index.
func NewQueryBuilder(index schema.IndexSpec) *QueryBuilder {
	return &QueryBuilder{index: index}
}

// Build constructs the traversal spec for one retrieval. topK bounds the
// vector candidates; the caller owns the default. The generated statement
// returns candidates ordered by base similarity; boosts, filtering and the
// final truncation happen in the retriever after normalization.
func (qb *QueryBuilder) Build(topK int) (*driver.TraversalSpec, error) {
	if topK <= 0 {
		return nil, fmt.Errorf("%w: limit must be a positive integer, got %d", ErrInvalidArgument, topK)
	}

	var b strings.Builder
	b.WriteString("CALL db.index.vector.queryNodes($index_name, $top_k, $" + ParamEmbedding + ")\n")
	b.WriteString("YIELD node AS a, score\n")
	b.WriteString("WHERE a.content IS NOT NULL OR a.name IS NOT NULL\n")

	defs := schema.Definitions()
	for _, def := range defs {
		fmt.Fprintf(&b, "OPTIONAL MATCH (a)-[:%s]->(%s:%s)\n", def.Relationship, alias(def), def.Label)
	}

	b.WriteString("WITH a, score")
	for _, def := range defs {
		fmt.Fprintf(&b, ", collect(DISTINCT %s) AS %s_set", alias(def), alias(def))
	}
	b.WriteString("\n")

	b.WriteString("RETURN\n")
	b.WriteString("  a.id AS id,\n")
	b.WriteString("  CASE WHEN a.content IS NOT NULL THEN a.content ELSE a.name END AS text,\n")
	for _, def := range defs {
		fmt.Fprintf(&b, "  [x IN %s_set | %s] AS %s,\n", alias(def), displayExpr(def), def.ResultField)
	}
	b.WriteString("  score AS score\n")
	b.WriteString("ORDER BY score DESC")

	return &driver.TraversalSpec{
		Query: b.String(),
		Params: map[string]any{
			"index_name": qb.index.Name,
			"top_k":      topK,
		},
	}, nil
}

// alias derives the per-kind variable name used inside the traversal.
func alias(def schema.Definition) string {
	return strings.ToLower(def.Label)
}

// displayExpr renders the display-name projection for one kind, falling back
// to the secondary property when the registry defines one.
func displayExpr(def schema.Definition) string {
	if def.FallbackProperty == "" {
		return fmt.Sprintf("x.%s", def.DisplayProperty)
	}
	return fmt.Sprintf("CASE WHEN x.%s IS NOT NULL THEN x.%s ELSE x.%s END",
		def.DisplayProperty, def.DisplayProperty, def.FallbackProperty)
}
