// Package analytics derives classifications, durations, and aggregate
// summaries from a sequence of decision records. Every function is
// pure: it never mutates its input and returns newly allocated views.
package analytics

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/davidahmann/declog/pkg/types"
)

// Keyword rules, checked in this fixed order; first match wins.
var (
	dataAnalysisKeywords = []string{"trend", "analysis", "logs"}
	feedbackKeywords     = []string{"survey", "comment", "complaint"}
)

// ClassifyInputType classifies free-text evidence into a coarse input
// type by case-insensitive substring match. Text with no keyword hits
// (including the empty string) is Observation.
func ClassifyInputType(inputsUsed string) types.InputType {
	folded := cases.Fold().String(inputsUsed)

	if containsAny(folded, dataAnalysisKeywords) {
		return types.DataAnalysis
	}
	if containsAny(folded, feedbackKeywords) {
		return types.Feedback
	}
	return types.Observation
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
