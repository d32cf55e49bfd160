package menu

import (
	"fmt"
	"strings"
	"time"
)

// canonicalDateLayout is the form every date is normalized to.
const canonicalDateLayout = "01/02/2006"

// dateLayouts are the accepted input forms, tried in order. Four-digit-year
// layouts come first so "10/28/2025" never half-matches a two-digit-year
// layout. Unpadded variants tolerate single-digit months and days.
var dateLayouts = []string{
	"01/02/2006", "1/2/2006",
	"2006-01-02", "2006-1-2",
	"01-02-2006", "1-2-2006",
	"2006/01/02", "2006/1/2",
	"01/02/06", "1/2/06",
	"01-02-06", "1-2-06",
}

// NormalizeDate parses a date string in any accepted format and re-emits it
// as MM/DD/YYYY. An empty or unrecognized input is an error; a malformed
// explicit date request indicates caller misuse, not an environmental flake.
func NormalizeDate(s string) (string, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return "", fmt.Errorf("empty date")
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t.Format(canonicalDateLayout), nil
		}
	}
	return "", fmt.Errorf("unrecognized date format: %q", s)
}

// Today returns the current date in canonical MM/DD/YYYY form.
func Today() string {
	return time.Now().Format(canonicalDateLayout)
}
