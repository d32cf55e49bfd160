package menu

import "testing"

func strPtr(s string) *string { return &s }

func intPtr(i int64) *int64 { return &i }

func sampleResult() DateResult {
	return DateResult{
		ScrapeDate: "10/28/2025",
		Halls: map[string]VenueMenu{
			"Cowell & Stevenson Dining Hall": {
				"Breakfast": {
					"Breakfast": []Item{
						{ID: intPtr(7), Name: "Harissa Potatoes", DietaryTags: []string{"GF", "VG"}},
						{Name: "Crunch Wrap", AvgRating: 4.2, DietaryTags: []string{}, Price: strPtr("$7.00")},
					},
				},
			},
		},
	}
}

func TestDateResultEqual(t *testing.T) {
	a := sampleResult()
	b := sampleResult()
	if !a.Equal(b) {
		t.Fatal("identical results should compare equal")
	}

	b = sampleResult()
	b.ScrapeDate = "10/29/2025"
	if a.Equal(b) {
		t.Error("differing scrape dates should not compare equal")
	}

	b = sampleResult()
	b.Halls["Cowell & Stevenson Dining Hall"]["Breakfast"]["Breakfast"][1].Price = strPtr("$7.50")
	if a.Equal(b) {
		t.Error("differing prices should not compare equal")
	}

	b = sampleResult()
	items := b.Halls["Cowell & Stevenson Dining Hall"]["Breakfast"]["Breakfast"]
	items[0], items[1] = items[1], items[0]
	if a.Equal(b) {
		t.Error("item order within a list is significant")
	}

	b = sampleResult()
	b.Halls["Porter & Kresge Dining Hall"] = VenueMenu{}
	if a.Equal(b) {
		t.Error("extra venue should not compare equal")
	}
}

func TestVenueMenuEqualNilVsEmpty(t *testing.T) {
	var nilMenu VenueMenu
	if !nilMenu.Equal(VenueMenu{}) {
		t.Error("nil and empty venue menus should compare equal")
	}

	withEmptySection := VenueMenu{"Breakfast": map[string][]Item{}}
	if nilMenu.Equal(withEmptySection) {
		t.Error("an empty menu should differ from one with a declared section")
	}
}

func TestItemEqualTags(t *testing.T) {
	a := Item{Name: "Udon", DietaryTags: []string{"VG", "V"}}
	b := Item{Name: "Udon", DietaryTags: []string{"V", "VG"}}
	if a.Equal(b) {
		t.Error("tag order is significant")
	}

	c := Item{Name: "Udon"}
	d := Item{Name: "Udon", DietaryTags: []string{}}
	if !c.Equal(d) {
		t.Error("nil and empty tag lists should compare equal")
	}
}
