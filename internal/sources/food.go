package sources

import (
	"fmt"
	"time"

	"github.com/onehub-dev/onehub/internal/types"
)

// FoodRecommendations builds dish suggestions from the user's first and last
// preferred cuisines.
func FoodRecommendations(cuisines, dietary []string) []types.FoodItem {
	if len(cuisines) == 0 {
		cuisines = []string{"italian", "chinese"}
	}
	if dietary == nil {
		dietary = []string{}
	}

	now := time.Now()
	first := cuisines[0]
	last := cuisines[len(cuisines)-1]

	return []types.FoodItem{
		{
			ID:          fmt.Sprintf("food_%d", now.Unix()),
			Name:        fmt.Sprintf("Recommended %s Dish", titleCase(first)),
			Description: fmt.Sprintf("Delicious %s cuisine tailored to your preferences", first),
			Cuisine:     first,
			Rating:      4.5,
			Price:       "$15-25",
			ImageURL:    "https://via.placeholder.com/300x200",
			Restaurant:  "Local Restaurant",
			DietaryInfo: dietary,
		},
		{
			ID:          fmt.Sprintf("food_%d_2", now.Unix()),
			Name:        fmt.Sprintf("Popular %s Special", titleCase(last)),
			Description: fmt.Sprintf("Trending %s dish in your area", last),
			Cuisine:     last,
			Rating:      4.2,
			Price:       "$12-20",
			ImageURL:    "https://via.placeholder.com/300x200",
			Restaurant:  "Favorite Spot",
			DietaryInfo: dietary,
		},
	}
}
