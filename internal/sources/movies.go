package sources

import (
	"fmt"
	"time"

	"github.com/onehub-dev/onehub/internal/types"
)

// MovieRecommendations builds picks from the user's first and last preferred
// genres in their first preferred language.
func MovieRecommendations(genres, languages []string) []types.MovieItem {
	if len(genres) == 0 {
		genres = []string{"action", "comedy"}
	}
	if len(languages) == 0 {
		languages = []string{"english"}
	}

	now := time.Now()
	first := genres[0]
	last := genres[len(genres)-1]

	return []types.MovieItem{
		{
			ID:          fmt.Sprintf("movie_%d", now.Unix()),
			Title:       fmt.Sprintf("Latest %s Blockbuster", titleCase(first)),
			Description: fmt.Sprintf("Exciting %s movie perfect for your taste", first),
			Genre:       first,
			Rating:      8.2,
			Year:        2024,
			Duration:    "2h 15m",
			Language:    languages[0],
			PosterURL:   "https://via.placeholder.com/300x450",
			TrailerURL:  "https://youtube.com/watch?v=example",
		},
		{
			ID:          fmt.Sprintf("movie_%d_2", now.Unix()),
			Title:       fmt.Sprintf("Trending %s Hit", titleCase(last)),
			Description: fmt.Sprintf("Popular %s film everyone's talking about", last),
			Genre:       last,
			Rating:      7.8,
			Year:        2024,
			Duration:    "1h 45m",
			Language:    languages[0],
			PosterURL:   "https://via.placeholder.com/300x450",
			TrailerURL:  "https://youtube.com/watch?v=example2",
		},
	}
}
