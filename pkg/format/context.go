// Package format renders retrieval results for two distinct consumers: the
// LLM context window and a human reading a terminal.
//
// The two paths have different truncation rules and must stay separate. The
// LLM context never truncates passage text; the console view cuts long
// passages and scenario notes for readability. Sharing limits between the
// paths would silently change what the model sees.
package format

import (
	"strconv"
	"strings"

	"github.com/hestia-ai/hestia/pkg/types"
)

// EmptyContext is the exact sentinel returned when a retrieval produced no
// results. "No results" is a valid answer, never a failure.
const EmptyContext = "No relevant information found in the knowledge graph."

// Context renders an ordered sequence of retrieval results into the
// prompt-ready context block. Results must already be in final score order;
// the 1-indexed passage numbering follows the input order exactly.
func Context(results []*types.RetrievalResult) string {
	if len(results) == 0 {
		return EmptyContext
	}

	passages := make([]string, 0, len(results))
	for i, result := range results {
		var b strings.Builder
		b.WriteString("Passage ")
		b.WriteString(strconv.Itoa(i + 1))
		b.WriteString(": ")
		b.WriteString(result.Text)
		b.WriteString("\n\n")

		if len(result.ActionableAdvice) > 0 {
			b.WriteString("Actionable Advice: ")
			b.WriteString(strings.Join(result.ActionableAdvice, ", "))
			b.WriteString("\n\n")
		}

		if len(result.Topics) > 0 {
			b.WriteString("Topics: ")
			b.WriteString(strings.Join(result.Topics, ", "))
			b.WriteString("\n")
		}
		if len(result.Subtopics) > 0 {
			b.WriteString("Subtopics: ")
			b.WriteString(strings.Join(result.Subtopics, ", "))
			b.WriteString("\n")
		}
		if len(result.AgeGroups) > 0 {
			b.WriteString("Age Groups: ")
			b.WriteString(strings.Join(result.AgeGroups, ", "))
			b.WriteString("\n")
		}

		passages = append(passages, b.String())
	}

	return strings.Join(passages, "\n\n")
}
