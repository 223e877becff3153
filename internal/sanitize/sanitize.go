// Package sanitize post-processes upstream model output. The persona
// prompt already forbids markdown and score disclosure, but the model is
// not trusted to follow instructions; these passes guarantee the contract.
package sanitize

import (
	"regexp"
	"strings"
)

// ScoreDecline replaces the whole reply whenever a score pattern leaks
// through. Full replacement, never partial redaction: any match is a
// policy violation and only a pre-approved sentence may go out.
const ScoreDecline = "I prefer not to share my exact grades here. Ask me about my projects, research, or skills instead."

var (
	markdownReplacer = strings.NewReplacer(
		"**", "",
		"__", "",
		"*", "",
		"`", "",
	)

	// Score words, or a single digit optionally with up to two decimals
	// over ten ("9.31/10", "8/10").
	scorePattern = regexp.MustCompile(`(?i)\b(?:cgpa|gpa|(?:cumulative )?grade point average)\b|\b\d(?:\.\d{1,2})?/10\b`)
)

// Normalize strips lightweight markdown emphasis delimiters and trims
// surrounding whitespace. Idempotent.
func Normalize(s string) string {
	return strings.TrimSpace(markdownReplacer.Replace(s))
}

// ContainsScore reports whether the text leaks an academic score.
func ContainsScore(s string) bool {
	return scorePattern.MatchString(s)
}

// Clean runs the full pipeline: normalize first, then scrub. A reply
// mentioning a score in any form is discarded entirely.
func Clean(s string) string {
	out := Normalize(s)
	if ContainsScore(out) {
		return ScoreDecline
	}
	return out
}
