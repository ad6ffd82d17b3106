package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hestia-ai/hestia"
	"github.com/hestia-ai/hestia/pkg/search"
	"github.com/hestia-ai/hestia/pkg/server/dto"
)

// ChatHandler handles retrieval and synthesis requests
type ChatHandler struct {
	assistant hestia.Hestia
	logger    *slog.Logger
}

// NewChatHandler creates a new chat handler
func NewChatHandler(assistant hestia.Hestia, logger *slog.Logger) *ChatHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ChatHandler{assistant: assistant, logger: logger}
}

// Chat handles POST /api/v1/chat
func (h *ChatHandler) Chat(c *gin.Context) {
	var req dto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid_request", Message: err.Error()})
		return
	}

	opts := &hestia.RetrieveOptions{
		Limit: req.Limit,
		Filters: search.Filters{
			Age:             req.Age,
			GuidanceStyle:   req.GuidanceStyle,
			TemporalContext: req.TemporalContext,
			SourceType:      req.SourceType,
		},
	}

	answer, err := h.assistant.Answer(c.Request.Context(), req.Query, opts)
	if err != nil {
		h.logger.ErrorContext(c.Request.Context(), "chat request failed", "error", err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "answer_failed", Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.ChatResponse{Answer: answer})
}

// AutoRespond handles POST /api/v1/auto-respond
func (h *ChatHandler) AutoRespond(c *gin.Context) {
	var req dto.AutoRespondRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid_request", Message: err.Error()})
		return
	}

	var opts *hestia.RetrieveOptions
	if req.Limit > 0 {
		opts = &hestia.RetrieveOptions{Limit: req.Limit}
	}

	response, err := h.assistant.AnswerPost(c.Request.Context(), req.PostTitle, req.PostContent, opts)
	if err != nil {
		h.logger.ErrorContext(c.Request.Context(), "auto-respond request failed", "error", err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "auto_respond_failed", Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.AutoRespondResponse{Response: response})
}

// Search handles POST /api/v1/search
func (h *ChatHandler) Search(c *gin.Context) {
	var req dto.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid_request", Message: err.Error()})
		return
	}

	opts := &hestia.RetrieveOptions{
		Limit: req.Limit,
		Filters: search.Filters{
			Age:             req.Age,
			GuidanceStyle:   req.GuidanceStyle,
			TemporalContext: req.TemporalContext,
			SourceType:      req.SourceType,
		},
	}

	results, err := h.assistant.Retrieve(c.Request.Context(), req.Query, opts)
	if err != nil {
		h.logger.ErrorContext(c.Request.Context(), "search request failed", "error", err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "search_failed", Message: err.Error()})
		return
	}

	response := dto.SearchResponse{Results: make([]dto.SearchResult, 0, len(results)), Total: len(results)}
	for _, r := range results {
		response.Results = append(response.Results, dto.SearchResult{
			ID:               r.ID,
			Text:             r.Text,
			Score:            r.Score,
			Topics:           r.Topics,
			Subtopics:        r.Subtopics,
			AgeGroups:        r.AgeGroups,
			GuidanceStyles:   r.GuidanceStyles,
			TemporalContexts: r.TemporalContexts,
			ScenarioNotes:    r.ScenarioNotes,
			Authors:          r.Authors,
			Sources:          r.Sources,
			ActionableAdvice: r.ActionableAdvice,
		})
	}

	c.JSON(http.StatusOK, response)
}
