package preferences

// Subcategories the setup wizard refuses to advance past while empty. A user
// whose merged document fills all of these skips setup and lands on the
// dashboard.
var requiredSubcategories = map[string]string{
	CategoryFood:    "cuisines",
	CategoryMovies:  "genres",
	CategoryNews:    "categories",
	CategoryYouTube: "categories",
	CategoryDeals:   "categories",
	CategoryJobs:    "categories",
}

// IsComplete reports whether every wizard-gated subcategory holds at least one
// selection. It operates on the merged document, so callers never have to
// null-chain through partially stored shapes.
func IsComplete(doc Document) bool {
	merged := Merge(doc)

	for category, sub := range requiredSubcategories {
		if len(merged[category][sub]) == 0 {
			return false
		}
	}

	return true
}
