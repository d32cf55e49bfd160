package menu

// Equal reports whether two results carry the same menu content. Map keys
// compare order-independently; item lists compare in order. A nil map and
// an empty map are the same menu.
func (r DateResult) Equal(other DateResult) bool {
	if r.ScrapeDate != other.ScrapeDate {
		return false
	}
	if len(r.Halls) != len(other.Halls) {
		return false
	}
	for venue, vm := range r.Halls {
		ovm, ok := other.Halls[venue]
		if !ok || !vm.Equal(ovm) {
			return false
		}
	}
	return true
}

// Equal reports whether two venue menus have the same sections,
// subsections, and item lists.
func (m VenueMenu) Equal(other VenueMenu) bool {
	if len(m) != len(other) {
		return false
	}
	for section, subs := range m {
		osubs, ok := other[section]
		if !ok || len(subs) != len(osubs) {
			return false
		}
		for sub, items := range subs {
			oitems, ok := osubs[sub]
			if !ok || len(items) != len(oitems) {
				return false
			}
			for i := range items {
				if !items[i].Equal(oitems[i]) {
					return false
				}
			}
		}
	}
	return true
}

// Equal reports whether two items are field-for-field identical, treating
// nil and empty tag lists as the same.
func (it Item) Equal(other Item) bool {
	if it.Name != other.Name || it.AvgRating != other.AvgRating {
		return false
	}
	if (it.ID == nil) != (other.ID == nil) {
		return false
	}
	if it.ID != nil && *it.ID != *other.ID {
		return false
	}
	if (it.Price == nil) != (other.Price == nil) {
		return false
	}
	if it.Price != nil && *it.Price != *other.Price {
		return false
	}
	if len(it.DietaryTags) != len(other.DietaryTags) {
		return false
	}
	for i := range it.DietaryTags {
		if it.DietaryTags[i] != other.DietaryTags[i] {
			return false
		}
	}
	return true
}
