package telemetry

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hestia-ai/hestia/pkg/types"
)

func newTestHandler(t *testing.T) (*ParquetHandler, string) {
	t.Helper()
	dir := t.TempDir()
	next := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug})
	h, err := NewParquetHandler(next, dir)
	require.NoError(t, err)
	return h, dir
}

func TestHandleBuffersErrorRecords(t *testing.T) {
	h, dir := newTestHandler(t)
	logger := slog.New(h)

	ctx := context.WithValue(context.Background(), types.ContextKeyUserID, "u-1")
	ctx = context.WithValue(ctx, types.ContextKeyRequestSource, "server")

	logger.ErrorContext(ctx, "retrieval failed", "index", "advice_embedding")

	// Below the batch threshold nothing is written yet.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)

	require.NoError(t, h.Flush())

	entries, err = os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, ".parquet", filepath.Ext(entries[0].Name()))
}

func TestHandleIgnoresBelowError(t *testing.T) {
	h, dir := newTestHandler(t)
	logger := slog.New(h)

	logger.Info("normal operation")
	logger.Warn("something odd")
	require.NoError(t, h.Flush())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestFlushEmptyBufferIsNoop(t *testing.T) {
	h, _ := newTestHandler(t)
	assert.NoError(t, h.Flush())
}
