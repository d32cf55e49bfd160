package parser

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/ucsc-menus/menu-sync/internal/logger"
	"github.com/ucsc-menus/menu-sync/internal/menu"
)

// CSS classes used by the source pages.
const (
	sectionClass    = "shortmenumeals"
	subsectionClass = "shortmenucats"
	itemClass       = "shortmenurecipes"
	priceBlockClass = "shortmenuprices"
	noticeClass     = "shortmenuinstructs"
)

// noDataMarker is the notice text a venue page shows when it has no
// service for the requested date.
const noDataMarker = "no data available"

// Registry resolves a cleaned item name to its durable id and cached
// average rating.
type Registry interface {
	GetOrCreate(ctx context.Context, name string) (id *int64, avgRating float64)
}

// BuildVenueMenu walks one venue page in document order and assembles the
// section → subsection → items mapping. A page carrying the "no data
// available" notice, or one without any recognized nodes, yields an empty
// menu; neither case is an error.
func BuildVenueMenu(ctx context.Context, doc *goquery.Document, reg Registry) menu.VenueMenu {
	vm := make(menu.VenueMenu)
	if hasNoDataMarker(doc) {
		return vm
	}

	var currentSection, currentSubsection string

	selector := "div." + sectionClass + ", div." + subsectionClass + ", div." + itemClass
	doc.Find(selector).Each(func(_ int, sel *goquery.Selection) {
		switch {
		case sel.HasClass(sectionClass):
			currentSection = menu.NormalizeHeader(sel.Text())
			currentSubsection = ""
			vm.EnsureSection(currentSection)

		case sel.HasClass(subsectionClass):
			if currentSection == "" {
				currentSection = menu.Uncategorized
				vm.EnsureSection(currentSection)
			}
			sub := menu.NormalizeText(sel.Text())
			if sub == "" {
				sub = currentSection
			}
			currentSubsection = sub
			vm.EnsureSubsection(currentSection, currentSubsection)

		default:
			if currentSection == "" {
				currentSection = menu.Uncategorized
			}
			if currentSubsection == "" {
				currentSubsection = currentSection
			}
			vm.Append(currentSection, currentSubsection, buildItem(ctx, sel, reg))
			logger.IncrCounter("items.built")
		}
	})

	return vm
}

// buildItem assembles one menu item from its recipe node: split an inline
// price out of the display text, collect allergen icons from the immediate
// row, fall back to the nearest price-block row for the price, and resolve
// the registry id.
func buildItem(ctx context.Context, sel *goquery.Selection, reg Registry) menu.Item {
	name, inlinePrice := menu.SplitPrice(menu.CollapseWhitespace(sel.Text()))

	tags := extractTags(itemRow(sel))

	// An inline price wins over whatever the enclosing price block says.
	price := inlinePrice
	if price == "" {
		price = extractPrice(priceRow(sel))
	}
	var pricePtr *string
	if price != "" {
		p := price
		pricePtr = &p
	}

	id, rating := reg.GetOrCreate(ctx, name)

	return menu.Item{
		ID:          id,
		Name:        name,
		AvgRating:   rating,
		DietaryTags: tags,
		Price:       pricePtr,
	}
}

// hasNoDataMarker reports whether the page carries the no-service notice,
// either in its dedicated notice element or anywhere in the page text.
func hasNoDataMarker(doc *goquery.Document) bool {
	found := false
	doc.Find("div." + noticeClass).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		found = strings.Contains(strings.ToLower(sel.Text()), noDataMarker)
		return !found
	})
	if found {
		return true
	}
	return strings.Contains(strings.ToLower(doc.Text()), noDataMarker)
}
