package search

import (
	"strings"

	"github.com/hestia-ai/hestia/pkg/schema"
	"github.com/hestia-ai/hestia/pkg/types"
)

// Filters are the optional post-expansion constraints on a retrieval. A zero
// value means no constraint; empty filter strings are ignored.
type Filters struct {
	// Age keeps results where any attached age group display name contains
	// the filter string, or equals the "Any" sentinel.
	Age string
	// GuidanceStyle keeps results where any attached guidance style display
	// name contains the filter string.
	GuidanceStyle string
	// TemporalContext and SourceType are accepted for interface parity with
	// the request boundary but are not yet evaluated; the graph data does
	// not carry reliable values for them.
	TemporalContext string
	SourceType      string
}

// IsZero reports whether no evaluated filter is set.
func (f Filters) IsZero() bool {
	return f.Age == "" && f.GuidanceStyle == ""
}

// Match reports whether a normalized result passes every supplied filter.
func (f Filters) Match(result *types.RetrievalResult) bool {
	if f.Age != "" && !matchesAge(result.AgeGroups, f.Age) {
		return false
	}
	if f.GuidanceStyle != "" && !containsAny(result.GuidanceStyles, f.GuidanceStyle) {
		return false
	}
	return true
}

func matchesAge(ageGroups []string, filter string) bool {
	for _, age := range ageGroups {
		if age == schema.AgeGroupAny || strings.Contains(age, filter) {
			return true
		}
	}
	return false
}

func containsAny(names []string, filter string) bool {
	for _, name := range names {
		if strings.Contains(name, filter) {
			return true
		}
	}
	return false
}
