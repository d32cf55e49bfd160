package parser

import (
	"github.com/PuerkitoBio/goquery"

	"github.com/ucsc-menus/menu-sync/internal/menu"
)

// extractPrice returns the first dollar amount carried by row, preferring
// dedicated price-block elements and falling back to the row's full text.
// A nil row or a row without any amount yields "".
func extractPrice(row *goquery.Selection) string {
	if row == nil {
		return ""
	}

	price := ""
	row.Find("div." + priceBlockClass).EachWithBreak(func(_ int, block *goquery.Selection) bool {
		price = menu.FindPrice(block.Text())
		return price == ""
	})
	if price != "" {
		return price
	}

	return menu.FindPrice(row.Text())
}
