package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hestia-ai/hestia"
	"github.com/hestia-ai/hestia/pkg/config"
	"github.com/hestia-ai/hestia/pkg/types"
)

type stubAssistant struct {
	sawUserID string
	sawSource string
}

func (s *stubAssistant) Retrieve(context.Context, string, *hestia.RetrieveOptions) ([]*types.RetrievalResult, error) {
	return nil, nil
}

func (s *stubAssistant) Answer(ctx context.Context, _ string, _ *hestia.RetrieveOptions) (string, error) {
	if v, ok := ctx.Value(types.ContextKeyUserID).(string); ok {
		s.sawUserID = v
	}
	if v, ok := ctx.Value(types.ContextKeyRequestSource).(string); ok {
		s.sawSource = v
	}
	return "ok", nil
}

func (s *stubAssistant) AnswerPost(context.Context, string, string, *hestia.RetrieveOptions) (string, error) {
	return "ok", nil
}

func (s *stubAssistant) Close(context.Context) error { return nil }

func newTestServer(assistant hestia.Hestia) *Server {
	cfg := &config.Config{}
	cfg.Server.Host = "localhost"
	cfg.Server.Port = 0
	cfg.Server.Mode = "test"

	srv := New(cfg, assistant)
	srv.Setup()
	return srv
}

func TestHealthRoute(t *testing.T) {
	srv := newTestServer(&stubAssistant{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")
}

func TestContextMiddlewarePropagatesIdentity(t *testing.T) {
	assistant := &stubAssistant{}
	srv := newTestServer(assistant)

	body := strings.NewReader(`{"query":"bedtime"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", "u-42")
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "u-42", assistant.sawUserID)
	assert.Equal(t, "server", assistant.sawSource)
}

func TestCORSPreflight(t *testing.T) {
	srv := newTestServer(&stubAssistant{})

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/chat", nil)
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
