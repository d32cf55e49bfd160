package menu

import (
	"regexp"
	"strings"
)

var (
	nbspReplacer = strings.NewReplacer("\u00a0", " ")
	spaceRun     = regexp.MustCompile(`\s{2,}`)

	// Header labels on the source pages are decorated like "-- Griddle --"
	// or "Soups:"; one decoration character is stripped from each end.
	leadingDecoration  = regexp.MustCompile(`^\s*[-\x{2013}:]\s*`)
	trailingDecoration = regexp.MustCompile(`\s*[-\x{2013}:]\s*$`)
)

// CollapseWhitespace replaces non-breaking spaces with ordinary spaces,
// collapses internal whitespace runs, and trims the result.
func CollapseWhitespace(s string) string {
	s = nbspReplacer.Replace(s)
	return strings.TrimSpace(spaceRun.ReplaceAllString(s, " "))
}

// NormalizeText applies the full label normalization: non-breaking spaces
// become spaces, a single leading and/or trailing hyphen, en-dash, or colon
// (plus surrounding whitespace) is stripped, whitespace runs collapse to
// one space, and the result is trimmed.
func NormalizeText(s string) string {
	s = nbspReplacer.Replace(s)
	s = leadingDecoration.ReplaceAllString(s, "")
	s = trailingDecoration.ReplaceAllString(s, "")
	return strings.TrimSpace(spaceRun.ReplaceAllString(s, " "))
}

// NormalizeHeader normalizes a section header label, falling back to
// Uncategorized when nothing usable remains.
func NormalizeHeader(s string) string {
	out := NormalizeText(s)
	if out == "" {
		return Uncategorized
	}
	return out
}
