package menu

import (
	"regexp"
	"strings"
)

// priceRE matches a dollar amount like "$7", "$ 7.5", or "$7.00".
var priceRE = regexp.MustCompile(`\$\s*\d+(?:\.\d{1,2})?`)

// FindPrice returns the first dollar amount in text, verbatim including the
// dollar sign, or "" if none is present.
func FindPrice(text string) string {
	return priceRE.FindString(text)
}

// SplitPrice detects an inline dollar amount in an item's display text and
// separates it from the name. Only the first match is considered; item
// names carry at most one inline price. The price is returned verbatim and
// any dash or colon left dangling by the removal is stripped from the name.
func SplitPrice(text string) (name, price string) {
	loc := priceRE.FindStringIndex(text)
	if loc == nil {
		return strings.TrimSpace(text), ""
	}
	price = text[loc[0]:loc[1]]
	name = strings.TrimSpace(spaceRun.ReplaceAllString(text[:loc[0]]+text[loc[1]:], " "))
	name = strings.TrimSpace(trailingDecoration.ReplaceAllString(name, ""))
	return name, price
}
