package types

// RetrievalResult is one advice passage returned by a knowledge graph
// retrieval, together with the display names of every schema entity attached
// to it and its composite relevance score.
//
// Score is the vector similarity score plus the additive boosts computed by
// the search package. It is not normalized: boosts can push it past 1.0 and
// ordering relies on the raw value. Only presentation layers cap it.
type RetrievalResult struct {
	ID               string   `json:"id"`
	Text             string   `json:"text"`
	Topics           []string `json:"topics"`
	Subtopics        []string `json:"subtopics"`
	AgeGroups        []string `json:"age_groups"`
	GuidanceStyles   []string `json:"guidance_styles"`
	TemporalContexts []string `json:"temporal_contexts"`
	ScenarioNotes    []string `json:"scenario_notes"`
	Authors          []string `json:"authors"`
	Sources          []string `json:"sources"`
	ActionableAdvice []string `json:"actionable_advice"`
	Score            float64  `json:"score"`
}

// HasActionableAdvice reports whether at least one actionable advice entry is
// attached to the passage.
func (r *RetrievalResult) HasActionableAdvice() bool {
	return len(r.ActionableAdvice) > 0
}

// HasScenarioNotes reports whether at least one scenario note is attached to
// the passage.
func (r *RetrievalResult) HasScenarioNotes() bool {
	return len(r.ScenarioNotes) > 0
}

// Post is a community post submitted for an automatic reply. Both fields are
// required; a reply to a post uses the public community framing instead of
// the private one-on-one framing.
type Post struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}
