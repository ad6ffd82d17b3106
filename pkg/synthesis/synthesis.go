package synthesis

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hestia-ai/hestia/pkg/nlp"
	"github.com/hestia-ai/hestia/pkg/prompts"
	"github.com/hestia-ai/hestia/pkg/types"
)

// Synthesizer generates answers from a context block using an LLM client.
// The prompt lands entirely in the system message; the user message is
// intentionally empty.
type Synthesizer struct {
	client nlp.Client
	store  *prompts.Store
	logger *slog.Logger
}

// NewSynthesizer creates a synthesizer over the given client and prompt store.
func NewSynthesizer(client nlp.Client, store *prompts.Store, logger *slog.Logger) *Synthesizer {
	if store == nil {
		store = prompts.NewStore(logger)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Synthesizer{client: client, store: store, logger: logger}
}

// Synthesize produces an answer for the given context block. When post is
// non-nil the community template is rendered with the post's title and
// content. Without a post, a loaded community template that expects post
// fields gets the query as the post body under a generic title; otherwise
// the private template is used with the query directly.
func (s *Synthesizer) Synthesize(ctx context.Context, contextBlock, query string, post *types.Post) (string, error) {
	prompt := s.buildPrompt(contextBlock, query, post)

	messages := []types.Message{
		nlp.NewSystemMessage(prompt),
		nlp.NewUserMessage(""),
	}

	start := time.Now()
	response, err := s.client.Chat(ctx, messages)
	latency := time.Since(start)
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}

	s.logger.Info("synthesis complete",
		"latency_seconds", latency.Seconds(),
		"model", response.Model,
		"tokens_used", response.TokensUsed)
	return response.Content, nil
}

func (s *Synthesizer) buildPrompt(contextBlock, query string, post *types.Post) string {
	if post != nil {
		return prompts.Render(s.store.Community(), map[string]string{
			prompts.PlaceholderContext:     contextBlock,
			prompts.PlaceholderPostTitle:   post.Title,
			prompts.PlaceholderPostContent: post.Content,
		})
	}

	// Only a template actually loaded from the store may pull a bare query
	// into the post-shaped community framing; the built-in fallback routes
	// to the private variant.
	tpl := s.store.Community()
	if s.store.Loaded() && prompts.HasPostPlaceholders(tpl) {
		return prompts.Render(tpl, map[string]string{
			prompts.PlaceholderContext:     contextBlock,
			prompts.PlaceholderPostTitle:   "User Query",
			prompts.PlaceholderPostContent: query,
		})
	}

	return prompts.Render(s.store.Private(), map[string]string{
		prompts.PlaceholderContext:   contextBlock,
		prompts.PlaceholderUserQuery: query,
	})
}
