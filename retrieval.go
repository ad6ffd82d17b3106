package hestia

import (
	"context"
	"strings"

	"github.com/hestia-ai/hestia/pkg/format"
	"github.com/hestia-ai/hestia/pkg/types"
)

// Retrieve returns the ranked advice entries relevant to query.
func (c *Client) Retrieve(ctx context.Context, query string, opts *RetrieveOptions) ([]*types.RetrievalResult, error) {
	return c.retriever.Retrieve(ctx, query, c.searchOptions(opts))
}

// Answer retrieves relevant advice and synthesizes a reply to a direct
// question. An empty retrieval still produces an answer: the model is told
// no graph information was found and responds from the prompt's guidance
// alone.
func (c *Client) Answer(ctx context.Context, query string, opts *RetrieveOptions) (string, error) {
	results, err := c.Retrieve(ctx, query, opts)
	if err != nil {
		return "", err
	}
	return c.synthesizer.Synthesize(ctx, format.Context(results), query, nil)
}

// SynthesizeFrom generates an answer from already-retrieved results,
// avoiding a second retrieval when the caller has displayed them first.
func (c *Client) SynthesizeFrom(ctx context.Context, results []*types.RetrievalResult, query string) (string, error) {
	return c.synthesizer.Synthesize(ctx, format.Context(results), query, nil)
}

// AnswerPost retrieves relevant advice for a community forum post and
// synthesizes a public reply. The retrieval query combines the post's
// title and content.
func (c *Client) AnswerPost(ctx context.Context, title, content string, opts *RetrieveOptions) (string, error) {
	query := strings.TrimSpace(title + " " + content)
	results, err := c.Retrieve(ctx, query, opts)
	if err != nil {
		return "", err
	}
	post := &types.Post{Title: title, Content: content}
	return c.synthesizer.Synthesize(ctx, format.Context(results), query, post)
}
