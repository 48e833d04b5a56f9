package preferences

// Document is a full per-user preference document: category -> subcategory ->
// selected option ids. Option order is insertion order; membership is what
// matters.
type Document map[string]Category

// Category maps subcategory names to selected option ids.
type Category map[string][]string

// Canonical schema: every category and subcategory a document must contain
// after merging with defaults.
var schema = map[string][]string{
	CategoryFood:    {"cuisines", "dietary"},
	CategoryMovies:  {"genres", "languages"},
	CategoryNews:    {"categories"},
	CategoryYouTube: {"categories"},
	CategoryDeals:   {"categories"},
	CategoryJobs:    {"categories"},
}

const (
	CategoryFood    = "food"
	CategoryMovies  = "movies"
	CategoryNews    = "news"
	CategoryYouTube = "youtube"
	CategoryDeals   = "deals"
	CategoryJobs    = "jobs"
)

// Option universes per category/subcategory. The UI only emits these ids; the
// store accepts and preserves anything.
var options = map[string]map[string][]string{
	CategoryFood: {
		"cuisines": {"italian", "chinese", "indian", "mexican", "japanese", "american", "thai", "mediterranean"},
		"dietary":  {"vegetarian", "vegan", "gluten-free", "keto", "halal", "kosher"},
	},
	CategoryMovies: {
		"genres":    {"action", "comedy", "drama", "horror", "romance", "sci-fi", "thriller", "documentary"},
		"languages": {"english", "spanish", "french", "hindi", "korean", "japanese"},
	},
	CategoryNews: {
		"categories": {"technology", "business", "sports", "entertainment", "health", "science", "politics", "world"},
	},
	CategoryYouTube: {
		"categories": {"gaming", "music", "education", "comedy", "tech", "cooking", "fitness", "travel"},
	},
	CategoryDeals: {
		"categories": {"electronics", "fashion", "home", "books", "sports", "beauty", "automotive", "toys"},
	},
	CategoryJobs: {
		"categories": {"technology", "marketing", "finance", "healthcare", "education", "design", "sales", "engineering"},
	},
}

// Defaults returns a zero-value document: every canonical category present,
// every subcategory an empty (non-nil) slice.
func Defaults() Document {
	doc := make(Document, len(schema))

	for category, subcategories := range schema {
		cat := make(Category, len(subcategories))
		for _, sub := range subcategories {
			cat[sub] = []string{}
		}
		doc[category] = cat
	}

	return doc
}

// Options returns the fixed option-id universe for a subcategory, or nil when
// the pair is not part of the canonical schema.
func Options(category, subcategory string) []string {
	subs, ok := options[category]
	if !ok {
		return nil
	}

	universe := subs[subcategory]
	out := make([]string, len(universe))
	copy(out, universe)
	return out
}

// Categories lists the canonical category names.
func Categories() []string {
	names := make([]string, 0, len(schema))
	for category := range schema {
		names = append(names, category)
	}
	return names
}
