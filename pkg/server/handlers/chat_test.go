package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hestia-ai/hestia"
	"github.com/hestia-ai/hestia/pkg/types"
)

type mockAssistant struct {
	answer      string
	results     []*types.RetrievalResult
	err         error
	lastQuery   string
	lastTitle   string
	lastContent string
	lastOpts    *hestia.RetrieveOptions
}

func (m *mockAssistant) Retrieve(_ context.Context, query string, opts *hestia.RetrieveOptions) ([]*types.RetrievalResult, error) {
	m.lastQuery = query
	m.lastOpts = opts
	return m.results, m.err
}

func (m *mockAssistant) Answer(_ context.Context, query string, opts *hestia.RetrieveOptions) (string, error) {
	m.lastQuery = query
	m.lastOpts = opts
	return m.answer, m.err
}

func (m *mockAssistant) AnswerPost(_ context.Context, title, content string, opts *hestia.RetrieveOptions) (string, error) {
	m.lastTitle = title
	m.lastContent = content
	m.lastOpts = opts
	return m.answer, m.err
}

func (m *mockAssistant) Close(context.Context) error { return nil }

func newTestRouter(assistant hestia.Hestia) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewChatHandler(assistant, nil)
	router.POST("/api/v1/chat", handler.Chat)
	router.POST("/api/v1/auto-respond", handler.AutoRespond)
	router.POST("/api/v1/search", handler.Search)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestChat(t *testing.T) {
	assistant := &mockAssistant{answer: "try naming the feeling"}
	router := newTestRouter(assistant)

	w := postJSON(t, router, "/api/v1/chat", map[string]any{
		"query": "how do I handle tantrums",
		"limit": 3,
		"age":   "2-3 years",
	})

	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "try naming the feeling", resp["answer"])

	assert.Equal(t, "how do I handle tantrums", assistant.lastQuery)
	require.NotNil(t, assistant.lastOpts)
	assert.Equal(t, 3, assistant.lastOpts.Limit)
	assert.Equal(t, "2-3 years", assistant.lastOpts.Filters.Age)
}

func TestChatMissingQuery(t *testing.T) {
	router := newTestRouter(&mockAssistant{})

	w := postJSON(t, router, "/api/v1/chat", map[string]any{"limit": 3})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChatAnswerFailure(t *testing.T) {
	assistant := &mockAssistant{err: errors.New("graph unavailable")}
	router := newTestRouter(assistant)

	w := postJSON(t, router, "/api/v1/chat", map[string]any{"query": "anything"})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "answer_failed")
}

func TestAutoRespond(t *testing.T) {
	assistant := &mockAssistant{answer: "you are not alone in this"}
	router := newTestRouter(assistant)

	w := postJSON(t, router, "/api/v1/auto-respond", map[string]any{
		"postTitle":   "Bedtime battles",
		"postContent": "My toddler refuses to sleep.",
	})

	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "you are not alone in this", resp["response"])
	assert.Equal(t, "Bedtime battles", assistant.lastTitle)
	assert.Equal(t, "My toddler refuses to sleep.", assistant.lastContent)
}

func TestAutoRespondMissingFields(t *testing.T) {
	router := newTestRouter(&mockAssistant{})

	w := postJSON(t, router, "/api/v1/auto-respond", map[string]any{"postTitle": "only a title"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSearch(t *testing.T) {
	assistant := &mockAssistant{results: []*types.RetrievalResult{
		{
			ID:               "a1",
			Text:             "keep bedtime consistent",
			Score:            0.92,
			Topics:           []string{"Sleep"},
			ActionableAdvice: []string{"same time every night"},
		},
	}}
	router := newTestRouter(assistant)

	w := postJSON(t, router, "/api/v1/search", map[string]any{"query": "bedtime"})

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Results []map[string]any `json:"results"`
		Total   int              `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Total)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, "a1", resp.Results[0]["id"])
	assert.Equal(t, "keep bedtime consistent", resp.Results[0]["text"])
}

func TestSearchEmptyResults(t *testing.T) {
	router := newTestRouter(&mockAssistant{})

	w := postJSON(t, router, "/api/v1/search", map[string]any{"query": "nothing matches"})

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Results []map[string]any `json:"results"`
		Total   int              `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.Total)
	assert.NotNil(t, resp.Results)
}
