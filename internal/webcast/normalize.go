package webcast

import (
	"regexp"
	"strings"
)

// The merge key must be a pure function of the display name alone: the
// embedded time annotation changes run to run, so everything volatile is
// stripped before comparison.
var (
	glyphRe        = regexp.MustCompile(`[🟢🔴❌]`)
	statusPrefixRe = regexp.MustCompile(`^(live|ended|no stream)\s*-\s*`)
	parenRe        = regexp.MustCompile(`\(.*?\)`)
	bracketRe      = regexp.MustCompile(`\[.*?\]`)
	nonAlnumRe     = regexp.MustCompile(`[^a-z0-9\s]`)
	spaceRe        = regexp.MustCompile(`\s+`)
)

// MergeKey normalizes a display name into the identity used to match the
// same logical event across runs: status glyphs and prefixes removed,
// parenthesized and bracketed annotations removed, punctuation flattened,
// whitespace collapsed, lower-cased.
func MergeKey(name string) string {
	s := strings.ToLower(name)
	s = glyphRe.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)
	s = statusPrefixRe.ReplaceAllString(s, "")
	s = parenRe.ReplaceAllString(s, "")
	s = bracketRe.ReplaceAllString(s, "")
	s = nonAlnumRe.ReplaceAllString(s, " ")
	s = spaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
