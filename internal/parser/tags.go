package parser

import (
	"path"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// legendPathMarker identifies icon assets that belong to the menu legend.
const legendPathMarker = "LegendImages"

// iconCodes maps a legend icon filename to its dietary/allergen code.
// nuts.gif covers peanuts only; tree nuts have their own icon.
var iconCodes = map[string]string{
	"vegan.gif":     "VG",
	"veggie.gif":    "V",
	"gluten.gif":    "GF",
	"eggs.gif":      "EGG",
	"soy.gif":       "SOY",
	"milk.gif":      "DAIRY",
	"wheat.gif":     "WHEAT",
	"alcohol.gif":   "ALC",
	"pork.gif":      "PORK",
	"shellfish.gif": "SHELLFISH",
	"sesame.gif":    "SESAME",
	"beef.gif":      "BEEF",
	"fish.gif":      "FISH",
	"halal.gif":     "HALAL",
	"nuts.gif":      "PEANUT",
	"treenut.gif":   "TREENUT",
}

// extractTags collects dietary codes from the legend icons inside row,
// preserving first-seen order and dropping duplicates. Filenames without a
// mapping are ignored so new legend icons do not break the build. A nil
// row yields no tags.
func extractTags(row *goquery.Selection) []string {
	tags := make([]string, 0, 4)
	if row == nil {
		return tags
	}

	seen := make(map[string]bool)
	row.Find("img").Each(func(_ int, img *goquery.Selection) {
		src, _ := img.Attr("src")
		src = strings.TrimSpace(src)
		if !strings.Contains(src, legendPathMarker) {
			return
		}
		code, ok := iconCodes[path.Base(src)]
		if !ok || seen[code] {
			return
		}
		seen[code] = true
		tags = append(tags, code)
	})

	return tags
}
