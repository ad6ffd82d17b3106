package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	viper.Reset()
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("NEO4J_URI", "")
	t.Setenv("SERVER_PORT", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "bolt://localhost:7687", cfg.Database.URI)
	assert.Equal(t, "neo4j", cfg.Database.Database)
	assert.Equal(t, "gpt-4o", cfg.NLP.Model)
	assert.InDelta(t, 0.7, cfg.NLP.Temperature, 0.001)
	assert.Equal(t, 1000, cfg.NLP.MaxTokens)
	assert.Equal(t, "text-embedding-ada-002", cfg.Embedding.Model)
	assert.Equal(t, 1536, cfg.Embedding.Dimensions)
	assert.Equal(t, "advice_embedding", cfg.Retrieval.IndexName)
	assert.Equal(t, 5, cfg.Retrieval.Limit)
	assert.Equal(t, 8080, cfg.Server.Port)

	assert.False(t, cfg.CircuitBreaker.Enabled)
	assert.Equal(t, uint32(3), cfg.CircuitBreaker.MaxRequests)
	assert.Equal(t, 60, cfg.CircuitBreaker.Interval)
	assert.Equal(t, 30, cfg.CircuitBreaker.Timeout)
	assert.InDelta(t, 0.6, cfg.CircuitBreaker.ReadyToTripRatio, 0.001)
}

func TestLoadEnvOverrides(t *testing.T) {
	viper.Reset()
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("NEO4J_URI", "bolt://graph:7687")
	t.Setenv("NEO4J_USERNAME", "svc")
	t.Setenv("NEO4J_PASSWORD", "secret")
	t.Setenv("PROMPTS_PATH", "/etc/hestia/prompts.yaml")
	t.Setenv("SERVER_PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "sk-test", cfg.NLP.APIKey)
	assert.Equal(t, "sk-test", cfg.Embedding.APIKey)
	assert.Equal(t, "bolt://graph:7687", cfg.Database.URI)
	assert.Equal(t, "svc", cfg.Database.Username)
	assert.Equal(t, "secret", cfg.Database.Password)
	assert.Equal(t, "/etc/hestia/prompts.yaml", cfg.Prompts.Path)
}
