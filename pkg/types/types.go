package types

// Role identifies the author of a chat message.
type Role string

// Message is a single turn in a chat exchange with a language model.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Response is the result of a chat completion request.
type Response struct {
	Content      string      `json:"content"`
	FinishReason string      `json:"finish_reason,omitempty"`
	Model        string      `json:"model,omitempty"`
	TokensUsed   *TokenUsage `json:"tokens_used,omitempty"`
}

// TokenUsage reports token consumption for a single completion.
type TokenUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// ContextKey is the type for context values propagated through the pipeline.
type ContextKey string

const (
	// ContextKeyUserID carries the id of the requesting user, when known.
	ContextKeyUserID ContextKey = "user_id"
	// ContextKeyRequestID carries the id assigned to the inbound request.
	ContextKeyRequestID ContextKey = "request_id"
	// ContextKeyRequestSource identifies where the request entered (cli, server).
	ContextKeyRequestSource ContextKey = "request_source"
)
