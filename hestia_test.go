package hestia

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hestia-ai/hestia/pkg/driver"
	"github.com/hestia-ai/hestia/pkg/schema"
	"github.com/hestia-ai/hestia/pkg/types"
)

type stubStore struct {
	records   []map[string]any
	lastSpec  driver.TraversalSpec
	indexSeen string
}

func (s *stubStore) VectorIndexExists(_ context.Context, name string) (bool, error) {
	s.indexSeen = name
	return true, nil
}

func (s *stubStore) CreateVectorIndex(context.Context, schema.IndexSpec) error { return nil }

func (s *stubStore) Retrieve(_ context.Context, spec driver.TraversalSpec) ([]map[string]any, error) {
	s.lastSpec = spec
	return s.records, nil
}

func (s *stubStore) Close(context.Context) error { return nil }

type stubEmbedder struct{}

func (stubEmbedder) Embed(_ context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i := range out {
		out[i] = []float32{0.1, 0.2}
	}
	return out, nil
}

func (stubEmbedder) EmbedSingle(context.Context, string) ([]float32, error) {
	return []float32{0.1, 0.2}, nil
}

func (stubEmbedder) Dimensions() int { return 2 }
func (stubEmbedder) Close() error    { return nil }

type stubNLP struct {
	lastMessages []types.Message
}

func (s *stubNLP) Chat(_ context.Context, messages []types.Message) (*types.Response, error) {
	s.lastMessages = messages
	return &types.Response{Content: "synthesized answer"}, nil
}

func (s *stubNLP) Close() error { return nil }

func newTestClient(t *testing.T, store *stubStore) (*Client, *stubNLP) {
	t.Helper()
	chat := &stubNLP{}
	client, err := NewClient(store, chat, stubEmbedder{}, nil, nil)
	require.NoError(t, err)
	return client, chat
}

func adviceRecord(id, text string, score float64) map[string]any {
	return map[string]any{
		"id":    id,
		"text":  text,
		"score": score,
	}
}

func TestNewClientRequiresDependencies(t *testing.T) {
	_, err := NewClient(nil, &stubNLP{}, stubEmbedder{}, nil, nil)
	assert.Error(t, err)

	_, err = NewClient(&stubStore{}, nil, stubEmbedder{}, nil, nil)
	assert.Error(t, err)

	_, err = NewClient(&stubStore{}, &stubNLP{}, nil, nil, nil)
	assert.Error(t, err)
}

func TestNewClientAppliesDefaults(t *testing.T) {
	client, _ := newTestClient(t, &stubStore{})
	assert.Equal(t, schema.DefaultIndexSpec(), client.config.Index)
	assert.Equal(t, 5, client.config.DefaultLimit)
	assert.NotNil(t, client.config.Prompts)
}

func TestRetrieveUsesDefaultLimit(t *testing.T) {
	store := &stubStore{records: []map[string]any{
		adviceRecord("a1", "stay calm during tantrums", 0.9),
	}}
	client, _ := newTestClient(t, store)

	results, err := client.Retrieve(context.Background(), "tantrums", nil)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "a1", results[0].ID)
	assert.Equal(t, 5, store.lastSpec.Params["top_k"])
}

func TestAnswerSynthesizesFromRetrievedContext(t *testing.T) {
	store := &stubStore{records: []map[string]any{
		adviceRecord("a1", "name the feeling out loud", 0.8),
	}}
	client, chat := newTestClient(t, store)

	answer, err := client.Answer(context.Background(), "how to handle big feelings", nil)
	require.NoError(t, err)
	assert.Equal(t, "synthesized answer", answer)

	require.NotEmpty(t, chat.lastMessages)
	assert.Contains(t, chat.lastMessages[0].Content, "name the feeling out loud")
}

func TestAnswerWithNoResultsUsesSentinelContext(t *testing.T) {
	client, chat := newTestClient(t, &stubStore{})

	answer, err := client.Answer(context.Background(), "anything", nil)
	require.NoError(t, err)
	assert.Equal(t, "synthesized answer", answer)
	assert.Contains(t, chat.lastMessages[0].Content, "No relevant information found in the knowledge graph.")
}

func TestAnswerPostCombinesTitleAndContent(t *testing.T) {
	store := &stubStore{records: []map[string]any{
		adviceRecord("a1", "consistent bedtime routines help", 0.7),
	}}
	client, chat := newTestClient(t, store)

	answer, err := client.AnswerPost(context.Background(), "Bedtime battles", "My toddler refuses to sleep.", nil)
	require.NoError(t, err)
	assert.Equal(t, "synthesized answer", answer)

	system := chat.lastMessages[0].Content
	assert.Contains(t, system, "Title: Bedtime battles")
	assert.Contains(t, system, "Content: My toddler refuses to sleep.")
	assert.Contains(t, system, "consistent bedtime routines help")
}

func TestAnswerEndToEndTopTwoByScore(t *testing.T) {
	store := &stubStore{records: []map[string]any{
		adviceRecord("a1", "offer choices to defuse the standoff", 0.9),
		adviceRecord("a2", "kneel down and speak at eye level", 0.95),
		adviceRecord("a3", "unrelated advice about picky eating", 0.5),
	}}
	client, chat := newTestClient(t, store)

	_, err := client.Answer(context.Background(), "How do I handle tantrums?", &RetrieveOptions{Limit: 2})
	require.NoError(t, err)

	system := chat.lastMessages[0].Content
	assert.Contains(t, system, "Passage 1: kneel down and speak at eye level")
	assert.Contains(t, system, "Passage 2: offer choices to defuse the standoff")
	assert.NotContains(t, system, "picky eating")
}

func TestRetrieveOptionsOverrideLimit(t *testing.T) {
	store := &stubStore{}
	client, _ := newTestClient(t, store)

	_, err := client.Retrieve(context.Background(), "q", &RetrieveOptions{Limit: 3})
	require.NoError(t, err)
	assert.Equal(t, 3, store.lastSpec.Params["top_k"])
}
