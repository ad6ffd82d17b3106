// Package hestia provides graph-grounded retrieval and answer synthesis
// for parenting guidance. It retrieves expert advice from a Neo4j knowledge
// graph using vector similarity, expands each hit across the advice schema,
// and synthesizes a warm, grounded response with a language model.
//
// The root package is a facade over the pipeline packages:
//
//   - pkg/driver: graph store access
//   - pkg/embedder: query embedding
//   - pkg/search: candidate generation, expansion, scoring and filtering
//   - pkg/format: context and console rendering
//   - pkg/synthesis: prompt rendering and LLM calls
//
// Construct a Client with NewClient and use Retrieve for raw results,
// Answer for a synthesized reply to a direct question, or AnswerPost for
// a reply to a community forum post.
package hestia
