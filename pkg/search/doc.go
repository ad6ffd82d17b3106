// Package search implements graph-grounded retrieval of parenting advice.
//
// A retrieval runs as one sequential pipeline: embed the query, resolve
// candidate Advice nodes through the vector index, expand each candidate's
// neighborhood across the fixed schema, compute the composite relevance
// score, apply post-expansion filters, and order and truncate the survivors.
//
// # Scoring
//
// The composite score is the vector similarity score plus two independent
// additive boosts: +0.2 when the advice carries actionable advice, +0.1
// when it carries scenario notes. The composite is deliberately not
// normalized; ordering uses the raw value and only display layers cap it.
//
// # Filters
//
// Filters are post-expansion predicates evaluated in process against the
// expanded neighborhood, never at vector-search time and never spliced into
// the traversal query. An absent filter means no constraint. The age filter
// honors the "Any" sentinel: advice recommended for any age is never
// excluded on age grounds.
package search
