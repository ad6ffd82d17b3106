package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/hestia-ai/hestia/pkg/types"
)

const (
	// consoleContentLimit caps passage bodies in the console view.
	consoleContentLimit = 500
	// consoleNoteLimit caps scenario notes in the console view.
	consoleNoteLimit = 200

	contentTruncationMarker = "... [content truncated]"
	noteTruncationMarker    = "... [truncated]"
)

// Console writes a human-readable summary of retrieval results. This is the
// only path that truncates: passage bodies are cut at 500 characters and
// scenario notes at 200, each with an explicit marker. Relevance displays as
// a percentage capped at 100.
func Console(w io.Writer, results []*types.RetrievalResult) {
	divider := strings.Repeat("=", 40)
	fmt.Fprintf(w, "\n%s\n", divider)
	fmt.Fprintf(w, "Found %d relevant advice entries\n", len(results))
	fmt.Fprintf(w, "%s\n\n", divider)

	for i, result := range results {
		fmt.Fprintf(w, "Advice %d: (ID: %s) (Relevance: %d%%)\n\n", i+1, result.ID, relevancePercent(result.Score))

		if len(result.ActionableAdvice) > 0 {
			fmt.Fprintln(w, "Actionable Advice:")
			for _, advice := range result.ActionableAdvice {
				fmt.Fprintf(w, "  - %s\n", advice)
			}
			fmt.Fprintln(w)
		}

		fmt.Fprintf(w, "Content:\n%s\n\n", truncate(result.Text, consoleContentLimit, contentTruncationMarker))

		fmt.Fprintf(w, "Topics: %s\n", joinOr(result.Topics, "None"))
		fmt.Fprintf(w, "  Subtopics: %s\n", joinOr(result.Subtopics, "None"))
		fmt.Fprintf(w, "Age Groups: %s\n", joinOr(result.AgeGroups, "Any"))
		fmt.Fprintf(w, "Guidance Styles: %s\n", joinOr(result.GuidanceStyles, "None"))

		if len(result.ScenarioNotes) > 0 {
			fmt.Fprintln(w, "\nScenario Notes:")
			for _, note := range result.ScenarioNotes {
				fmt.Fprintf(w, "  - %s\n", truncate(note, consoleNoteLimit, noteTruncationMarker))
			}
		}

		if len(result.Authors) > 0 {
			fmt.Fprintf(w, "\nAuthors: %s\n", strings.Join(result.Authors, ", "))
		}

		fmt.Fprintf(w, "\n%s\n\n", strings.Repeat("-", 80))
	}
}

// relevancePercent converts a composite score to a display percentage. The
// composite is unbounded above; only this display value clamps at 100.
func relevancePercent(score float64) int {
	percent := int(score * 100)
	if percent > 100 {
		return 100
	}
	if percent < 0 {
		return 0
	}
	return percent
}

func truncate(s string, limit int, marker string) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit] + marker
}

func joinOr(values []string, fallback string) string {
	if len(values) == 0 {
		return fallback
	}
	return strings.Join(values, ", ")
}
