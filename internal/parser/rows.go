package parser

import "github.com/PuerkitoBio/goquery"

// itemRow returns the immediate enclosing table row of an item node, or
// nil when the node sits outside any row. Allergen icons are always
// sibling-local, so no wider search is needed.
func itemRow(sel *goquery.Selection) *goquery.Selection {
	row := sel.Closest("tr")
	if row.Length() == 0 {
		return nil
	}
	return row
}

// priceRow walks outward from the item's immediate row and returns the
// first enclosing row that carries a price block; price markup can live on
// an outer wrapping row spanning the whole line. When no ancestor carries
// one, the immediate row is returned so price extraction comes up empty
// instead of failing. Returns nil only when the item has no row at all.
func priceRow(sel *goquery.Selection) *goquery.Selection {
	immediate := itemRow(sel)
	if immediate == nil {
		return nil
	}

	for row := immediate; row.Length() > 0; row = row.Parent().Closest("tr") {
		if row.Find("div." + priceBlockClass).Length() > 0 {
			return row
		}
	}
	return immediate
}
