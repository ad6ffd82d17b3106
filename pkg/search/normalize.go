package search

import (
	"github.com/hestia-ai/hestia/pkg/driver"
	"github.com/hestia-ai/hestia/pkg/schema"
	"github.com/hestia-ai/hestia/pkg/types"
)

// UnknownID is the sentinel id assigned to records missing an id field.
const UnknownID = "Unknown"

// Normalize converts one raw traversal record into a RetrievalResult.
// Missing fields map to defaults: absent id becomes UnknownID, absent text
// the empty string, absent lists empty slices. The result's Score is the
// base similarity score only; the retriever adds boosts afterwards.
func Normalize(record map[string]any) *types.RetrievalResult {
	result := &types.RetrievalResult{
		ID:               UnknownID,
		Topics:           []string{},
		Subtopics:        []string{},
		AgeGroups:        []string{},
		GuidanceStyles:   []string{},
		TemporalContexts: []string{},
		ScenarioNotes:    []string{},
		Authors:          []string{},
		Sources:          []string{},
		ActionableAdvice: []string{},
	}

	if id, ok := driver.AsString(record["id"]); ok && id != "" {
		result.ID = id
	}
	if text, ok := driver.AsString(record["text"]); ok {
		result.Text = text
	}
	if score, ok := driver.AsFloat64(record["score"]); ok {
		result.Score = score
	}

	for _, def := range schema.Definitions() {
		names, ok := driver.AsStringList(record[def.ResultField])
		if !ok {
			continue
		}
		switch def.Kind {
		case schema.Topic:
			result.Topics = names
		case schema.SubTopic:
			result.Subtopics = names
		case schema.AgeGroup:
			result.AgeGroups = names
		case schema.GuidanceStyle:
			result.GuidanceStyles = names
		case schema.TemporalContext:
			result.TemporalContexts = names
		case schema.ScenarioNote:
			result.ScenarioNotes = names
		case schema.Author:
			result.Authors = names
		case schema.Source:
			result.Sources = names
		case schema.ActionableAdvice:
			result.ActionableAdvice = DedupePreservingOrder(names)
		}
	}

	return result
}

// DedupePreservingOrder removes duplicate entries while keeping the first
// occurrence of each in its original position. The order is user-visible in
// the formatted context, so this must stay a stable dedup, not sort-then-
// unique.
func DedupePreservingOrder(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	unique := make([]string, 0, len(values))
	for _, value := range values {
		if _, dup := seen[value]; dup {
			continue
		}
		seen[value] = struct{}{}
		unique = append(unique, value)
	}
	return unique
}
