// Package markup provides pure text transforms over the canonical markdown
// dialect the generator produces. Normalize repairs the syntax errors the
// generator is known to make; StripSyntax flattens a body down to plain text
// for paste targets that cannot render markup.
package markup

import (
	"regexp"
	"strings"
)

var (
	boldBothSpaces = regexp.MustCompile(`\*\*\s+(.*?)\s+\*\*`)
	boldLeadSpace  = regexp.MustCompile(`\*\*\s+(.*?)\*\*`)
	boldTrailSpace = regexp.MustCompile(`\*\*(.*?)\s+\*\*`)
	blankLineRuns  = regexp.MustCompile(`\n{3,}`)
	indentedHeader = regexp.MustCompile(`(?m)^[ \t]+#+`)

	boldMarkers     = regexp.MustCompile(`\*\*(.*?)\*\*`)
	italicMarkers   = regexp.MustCompile(`\*(.*?)\*`)
	headerMarkers   = regexp.MustCompile(`(?m)^#+\s`)
	linkMarkers     = regexp.MustCompile(`\[(.*?)\]\(.*?\)`)
	quoteMarkers    = regexp.MustCompile(`>\s?`)
	checkboxMarkers = regexp.MustCompile(`- \[( |x)\]`)
	bulletMarkers   = regexp.MustCompile(`(?m)^-\s`)
)

// Normalize repairs malformed emphasis and whitespace in a generated body:
// bold markers with stray interior spaces are tightened, empty bold markers
// are removed, runs of three or more newlines collapse to a single blank
// line, and indented header markers are pulled back to column zero.
//
// Normalize is idempotent; callers may apply it more than once.
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	text = boldBothSpaces.ReplaceAllString(text, "**$1**")
	text = boldLeadSpace.ReplaceAllString(text, "**$1**")
	text = boldTrailSpace.ReplaceAllString(text, "**$1**")
	text = strings.ReplaceAll(text, "****", "")
	text = blankLineRuns.ReplaceAllString(text, "\n\n")
	text = indentedHeader.ReplaceAllStringFunc(text, strings.TrimSpace)
	return text
}

// StripSyntax removes all markup syntax while keeping the visible text:
// emphasis markers and inline code ticks are dropped, header and blockquote
// markers are removed, links keep their text and lose their URL, and
// checkbox or dash bullets become a literal bullet glyph so list structure
// stays readable in plain text.
func StripSyntax(text string) string {
	if text == "" {
		return ""
	}
	text = boldMarkers.ReplaceAllString(text, "$1")
	text = italicMarkers.ReplaceAllString(text, "$1")
	text = headerMarkers.ReplaceAllString(text, "")
	text = linkMarkers.ReplaceAllString(text, "$1")
	text = quoteMarkers.ReplaceAllString(text, "")
	text = strings.ReplaceAll(text, "`", "")
	text = checkboxMarkers.ReplaceAllString(text, "•")
	text = bulletMarkers.ReplaceAllString(text, "• ")
	return text
}
