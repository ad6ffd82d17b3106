// Package embedder provides text embedding clients for vector
// representations of caregiver queries.
//
// The Client interface supports batch embedding; EmbedSingle is the
// convenience path the retrieval pipeline uses for a single query string.
// The OpenAI implementation targets text-embedding-ada-002, the model the
// ingestion pipeline used to embed Advice nodes, so query vectors land in
// the same 1536-dimensional space as the index.
package embedder
