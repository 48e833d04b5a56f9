package preferences

// Tab universes shown on the category pages. The selector intersects these
// with the user's selected ids; order here is display order.
var tabUniverse = map[string][]string{
	"news":   {"general", "technology", "business", "health", "science", "sports", "entertainment"},
	"videos": {"trending", "technology", "education", "entertainment", "music", "gaming", "sports", "travel", "fitness"},
	"reddit": {"technology", "programming", "science", "world", "gaming", "movies", "music", "sports"},
	"jobs":   {"technology", "marketing", "finance", "healthcare", "education", "design", "sales", "engineering"},
	"deals":  {"electronics", "fashion", "home", "books", "sports", "beauty", "automotive", "toys"},
}

var defaultTab = map[string]string{
	"news":   "general",
	"videos": "trending",
	"reddit": "technology",
	"jobs":   "technology",
	"deals":  "electronics",
}

// JobCategoryLabels maps internal job category ids to display labels. The
// wire value sent to the backend is always the id.
var JobCategoryLabels = map[string]string{
	"technology":  "Technology",
	"marketing":   "Marketing",
	"finance":     "Finance",
	"healthcare":  "Healthcare",
	"education":   "Education",
	"design":      "Design",
	"sales":       "Sales",
	"engineering": "Engineering",
}

// Tabs selects the tabs a category page offers: the intersection of the fixed
// universe with the user's selected ids, in universe order. An empty
// intersection falls back to exactly one default tab, never zero.
func Tabs(page string, selected []string) []string {
	universe, ok := tabUniverse[page]
	if !ok {
		return nil
	}

	chosen := make(map[string]bool, len(selected))
	for _, id := range selected {
		chosen[id] = true
	}

	var tabs []string
	for _, id := range universe {
		if chosen[id] {
			tabs = append(tabs, id)
		}
	}

	if len(tabs) == 0 {
		return []string{defaultTab[page]}
	}

	return tabs
}

// DefaultTab returns the fallback tab for a category page.
func DefaultTab(page string) string {
	return defaultTab[page]
}
