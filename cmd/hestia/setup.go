package hestia

import (
	"fmt"
	"log/slog"
	"os"

	hestiaclient "github.com/hestia-ai/hestia"
	"github.com/hestia-ai/hestia/pkg/config"
	"github.com/hestia-ai/hestia/pkg/driver"
	"github.com/hestia-ai/hestia/pkg/embedder"
	"github.com/hestia-ai/hestia/pkg/logger"
	"github.com/hestia-ai/hestia/pkg/nlp"
	"github.com/hestia-ai/hestia/pkg/prompts"
	"github.com/hestia-ai/hestia/pkg/schema"
	"github.com/hestia-ai/hestia/pkg/telemetry"
)

// buildLogger creates the process logger, wrapping it with the parquet
// error-record handler when a telemetry path is configured.
func buildLogger(cfg *config.Config) (*slog.Logger, *telemetry.ParquetHandler) {
	log := logger.New(cfg.Log.Level, cfg.Log.Format)

	if cfg.Telemetry.ParquetPath == "" {
		return log, nil
	}

	parquetHandler, err := telemetry.NewParquetHandler(log.Handler(), cfg.Telemetry.ParquetPath)
	if err != nil {
		log.Warn("failed to initialize error tracking", "error", err)
		return log, nil
	}
	return slog.New(parquetHandler), parquetHandler
}

// buildAssistant wires the full pipeline from configuration: graph store,
// embedder, chat client with retry and optional circuit breaking, prompt
// store and the facade client.
func buildAssistant(cfg *config.Config, log *slog.Logger) (*hestiaclient.Client, error) {
	if cfg.Database.URI == "" {
		return nil, fmt.Errorf("database URI is required")
	}
	if cfg.NLP.APIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is required")
	}

	store, err := driver.NewNeo4jStore(cfg.Database.URI, cfg.Database.Username, cfg.Database.Password, cfg.Database.Database, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create graph store: %w", err)
	}

	embedderClient := embedder.NewOpenAIClient(embedder.Config{
		Model:      cfg.Embedding.Model,
		APIKey:     cfg.Embedding.APIKey,
		BaseURL:    cfg.Embedding.BaseURL,
		Dimensions: cfg.Embedding.Dimensions,
	})

	var chatClient nlp.Client = nlp.NewOpenAIClient(nlp.Config{
		Model:       cfg.NLP.Model,
		Temperature: cfg.NLP.Temperature,
		MaxTokens:   cfg.NLP.MaxTokens,
		APIKey:      cfg.NLP.APIKey,
		BaseURL:     cfg.NLP.BaseURL,
	})
	chatClient = nlp.NewRetryClient(chatClient, nlp.DefaultRetryConfig(), log)
	if cfg.CircuitBreaker.Enabled {
		chatClient = nlp.NewCircuitBreakerClient(chatClient, nlp.CircuitBreakerConfig{
			Enabled:          cfg.CircuitBreaker.Enabled,
			MaxRequests:      cfg.CircuitBreaker.MaxRequests,
			Interval:         cfg.CircuitBreaker.Interval,
			Timeout:          cfg.CircuitBreaker.Timeout,
			ReadyToTripRatio: cfg.CircuitBreaker.ReadyToTripRatio,
		}, log, "nlp")
	}

	index := schema.DefaultIndexSpec()
	if cfg.Retrieval.IndexName != "" {
		index.Name = cfg.Retrieval.IndexName
	}
	if cfg.Embedding.Dimensions > 0 {
		index.Dimensions = cfg.Embedding.Dimensions
	}

	clientConfig := &hestiaclient.Config{
		Index:        index,
		DefaultLimit: cfg.Retrieval.Limit,
		Prompts:      prompts.Load(cfg.Prompts.Path, log),
	}

	client, err := hestiaclient.NewClient(store, chatClient, embedderClient, clientConfig, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}
	return client, nil
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		return nil, err
	}
	return cfg, nil
}
