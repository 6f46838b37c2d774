package clause

import (
	"regexp"
	"strings"
)

var (
	// reBlankRuns collapses runs of 3+ newlines down to a single paragraph
	// break.
	reBlankRuns = regexp.MustCompile(`\n{3,}`)

	// reSpaceRuns collapses runs of 2+ spaces.  Tabs have already been
	// converted to spaces by the time this runs.
	reSpaceRuns = regexp.MustCompile(` {2,}`)
)

// Normalize canonicalises raw contract text before segmentation: tabs become
// spaces, every carriage return becomes a newline (so a CRLF pair yields a
// paragraph break), newline runs collapse to at most one blank line, space
// runs collapse to a single space, and leading/trailing whitespace is
// trimmed.  Normalize is idempotent.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	text = strings.ReplaceAll(text, "\t", " ")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = reBlankRuns.ReplaceAllString(text, "\n\n")
	text = reSpaceRuns.ReplaceAllString(text, " ")

	return strings.TrimSpace(text)
}
