package hestia

import (
	"context"
	"errors"
	"log/slog"

	"github.com/hestia-ai/hestia/pkg/driver"
	"github.com/hestia-ai/hestia/pkg/embedder"
	"github.com/hestia-ai/hestia/pkg/nlp"
	"github.com/hestia-ai/hestia/pkg/prompts"
	"github.com/hestia-ai/hestia/pkg/schema"
	"github.com/hestia-ai/hestia/pkg/search"
	"github.com/hestia-ai/hestia/pkg/synthesis"
	"github.com/hestia-ai/hestia/pkg/types"
)

// Hestia is the main interface for the parenting advice assistant.
type Hestia interface {
	// Retrieve returns the ranked advice entries relevant to query without
	// calling the language model.
	Retrieve(ctx context.Context, query string, opts *RetrieveOptions) ([]*types.RetrievalResult, error)

	// Answer retrieves relevant advice and synthesizes a reply to a direct
	// question.
	Answer(ctx context.Context, query string, opts *RetrieveOptions) (string, error)

	// AnswerPost retrieves relevant advice and synthesizes a public reply
	// to a community forum post.
	AnswerPost(ctx context.Context, title, content string, opts *RetrieveOptions) (string, error)

	// Close closes all connections and cleans up resources.
	Close(ctx context.Context) error
}

// RetrieveOptions control a single retrieval. A nil options value means the
// client's default limit with no filters.
type RetrieveOptions struct {
	// Limit caps the number of results. Zero means the client default.
	Limit int
	// Filters restrict results to matching schema attributes.
	Filters search.Filters
}

// Config holds client-level settings. Zero values fall back to the
// standard advice index and a limit of five results.
type Config struct {
	Index        schema.IndexSpec
	DefaultLimit int
	Prompts      *prompts.Store
}

// Client is the main implementation of the Hestia interface.
type Client struct {
	store       driver.GraphStore
	nlp         nlp.Client
	embedder    embedder.Client
	retriever   *search.Retriever
	synthesizer *synthesis.Synthesizer
	config      *Config
	logger      *slog.Logger
}

var _ Hestia = (*Client)(nil)

// NewClient creates a new Hestia client from already-constructed
// dependencies. The store, LLM client and embedder are required.
func NewClient(store driver.GraphStore, nlpClient nlp.Client, embedderClient embedder.Client, cfg *Config, logger *slog.Logger) (*Client, error) {
	if store == nil {
		return nil, errors.New("graph store is required")
	}
	if nlpClient == nil {
		return nil, errors.New("nlp client is required")
	}
	if embedderClient == nil {
		return nil, errors.New("embedder client is required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	if cfg == nil {
		cfg = &Config{}
	}
	if cfg.Index.Name == "" {
		cfg.Index = schema.DefaultIndexSpec()
	}
	if cfg.DefaultLimit <= 0 {
		cfg.DefaultLimit = search.DefaultLimit
	}
	if cfg.Prompts == nil {
		cfg.Prompts = prompts.NewStore(logger)
	}

	return &Client{
		store:       store,
		nlp:         nlpClient,
		embedder:    embedderClient,
		retriever:   search.NewRetriever(store, embedderClient, cfg.Index, logger),
		synthesizer: synthesis.NewSynthesizer(nlpClient, cfg.Prompts, logger),
		config:      cfg,
		logger:      logger,
	}, nil
}

// Close closes all connections and cleans up resources.
func (c *Client) Close(ctx context.Context) error {
	var errs []error
	if err := c.store.Close(ctx); err != nil {
		errs = append(errs, err)
	}
	if err := c.nlp.Close(); err != nil {
		errs = append(errs, err)
	}
	if err := c.embedder.Close(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func (c *Client) searchOptions(opts *RetrieveOptions) search.Options {
	resolved := search.Options{Limit: c.config.DefaultLimit}
	if opts != nil {
		if opts.Limit > 0 {
			resolved.Limit = opts.Limit
		}
		resolved.Filters = opts.Filters
	}
	return resolved
}
