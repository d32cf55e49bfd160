package menu

// Uncategorized is the fallback section for items and subsections that
// appear before any recognizable header.
const Uncategorized = "Uncategorized"

// Item is one dish as it appeared in a venue's markup. Duplicate names
// within a single venue produce duplicate entries; items are never merged
// during a build pass.
type Item struct {
	ID          *int64   `json:"id"`
	Name        string   `json:"name"`
	AvgRating   float64  `json:"avg_rating"`
	DietaryTags []string `json:"dietary_restrictions"`
	Price       *string  `json:"price"`
}

// VenueMenu maps section -> subsection -> items in document order.
// An empty map is the valid representation of a closed venue.
type VenueMenu map[string]map[string][]Item

// EnsureSection creates an empty subsection map for name if absent.
func (m VenueMenu) EnsureSection(name string) {
	if _, ok := m[name]; !ok {
		m[name] = make(map[string][]Item)
	}
}

// EnsureSubsection creates an empty item list under (section, subsection)
// if absent, creating the section as needed.
func (m VenueMenu) EnsureSubsection(section, subsection string) {
	m.EnsureSection(section)
	if _, ok := m[section][subsection]; !ok {
		m[section][subsection] = make([]Item, 0)
	}
}

// Append adds an item to the end of the (section, subsection) list.
func (m VenueMenu) Append(section, subsection string, item Item) {
	m.EnsureSubsection(section, subsection)
	m[section][subsection] = append(m[section][subsection], item)
}

// DateResult is the unit of synchronization: every tracked venue's menu
// for a single scrape date (MM/DD/YYYY).
type DateResult struct {
	ScrapeDate string               `json:"scrape_date"`
	Halls      map[string]VenueMenu `json:"halls"`
}

// NewDateResult creates an empty result for date.
func NewDateResult(date string) DateResult {
	return DateResult{
		ScrapeDate: date,
		Halls:      make(map[string]VenueMenu),
	}
}
