package dto

// ChatRequest is a direct question from a caregiver.
type ChatRequest struct {
	Query           string `json:"query" binding:"required"`
	Limit           int    `json:"limit,omitempty"`
	Age             string `json:"age,omitempty"`
	GuidanceStyle   string `json:"guidance_style,omitempty"`
	TemporalContext string `json:"temporal_context,omitempty"`
	SourceType      string `json:"source_type,omitempty"`
}

// ChatResponse carries the synthesized answer.
type ChatResponse struct {
	Answer string `json:"answer"`
}

// AutoRespondRequest is a community forum post needing a public reply.
type AutoRespondRequest struct {
	PostTitle   string `json:"postTitle" binding:"required"`
	PostContent string `json:"postContent" binding:"required"`
	Limit       int    `json:"limit,omitempty"`
}

// AutoRespondResponse carries the synthesized reply to a post.
type AutoRespondResponse struct {
	Response string `json:"response"`
}

// SearchRequest asks for raw retrieval results without synthesis.
type SearchRequest struct {
	Query           string `json:"query" binding:"required"`
	Limit           int    `json:"limit,omitempty"`
	Age             string `json:"age,omitempty"`
	GuidanceStyle   string `json:"guidance_style,omitempty"`
	TemporalContext string `json:"temporal_context,omitempty"`
	SourceType      string `json:"source_type,omitempty"`
}

// SearchResult is one advice entry in a search response.
type SearchResult struct {
	ID               string   `json:"id"`
	Text             string   `json:"text"`
	Score            float64  `json:"score"`
	Topics           []string `json:"topics,omitempty"`
	Subtopics        []string `json:"subtopics,omitempty"`
	AgeGroups        []string `json:"age_groups,omitempty"`
	GuidanceStyles   []string `json:"guidance_styles,omitempty"`
	TemporalContexts []string `json:"temporal_contexts,omitempty"`
	ScenarioNotes    []string `json:"scenario_notes,omitempty"`
	Authors          []string `json:"authors,omitempty"`
	Sources          []string `json:"sources,omitempty"`
	ActionableAdvice []string `json:"actionable_advice,omitempty"`
}

// SearchResponse carries raw retrieval results.
type SearchResponse struct {
	Results []SearchResult `json:"results"`
	Total   int            `json:"total"`
}
