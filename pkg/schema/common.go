package schema

// commonOptions lists the option identifiers present on every entity that
// this system never fills or enumerates, regardless of ignore lists. They are
// managed by downstream tooling and are orthogonal to per-entity enumeration.
var commonOptions = map[string]struct{}{
	"accessibility":         {},
	"death_link":            {},
	"exclude_locations":     {},
	"item_links":            {},
	"local_items":           {},
	"non_local_items":       {},
	"priority_locations":    {},
	"progression_balancing": {},
	"start_hints":           {},
	"start_inventory":       {},
	"start_location_hints":  {},
}

// IsCommon reports whether the option identifier belongs to the fixed common
// set shared by all entities.
func IsCommon(name string) bool {
	_, ok := commonOptions[name]
	return ok
}
