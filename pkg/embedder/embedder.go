package embedder

import (
	"context"
	"errors"
)

// ErrEmbeddingFailure indicates the embedding service could not produce a
// vector. Transient network-class failure: the caller may retry the whole
// request.
var ErrEmbeddingFailure = errors.New("embedding failed")

// Client defines the interface for text embedding operations.
type Client interface {
	// Embed generates embeddings for the given texts, one vector per input.
	Embed(ctx context.Context, texts []string) ([][]float32, error)

	// EmbedSingle generates an embedding for a single text.
	EmbedSingle(ctx context.Context, text string) ([]float32, error)

	// Dimensions returns the dimensionality of produced vectors.
	Dimensions() int

	// Close cleans up any resources.
	Close() error
}

// Config holds configuration for embedding clients.
type Config struct {
	Model      string `json:"model"`
	APIKey     string `json:"api_key"`
	BaseURL    string `json:"base_url,omitempty"`
	Dimensions int    `json:"dimensions"`
}
