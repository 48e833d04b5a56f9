package sources

import (
	"fmt"
	"time"

	"github.com/onehub-dev/onehub/internal/types"
)

func Deals(category string) []types.Deal {
	now := time.Now()

	return []types.Deal{
		{
			ID:            fmt.Sprintf("deal_%d", now.Unix()),
			Title:         fmt.Sprintf("Amazing %s Deal", titleCase(category)),
			Description:   fmt.Sprintf("Great discount on %s items", category),
			URL:           "https://example.com/deals/1",
			Platform:      "Amazon",
			Category:      category,
			Price:         79.99,
			OriginalPrice: 129.99,
			Discount:      38.46,
			ImageURL:      "https://via.placeholder.com/300x200",
			ValidUntil:    now.AddDate(0, 0, 7).Format(time.RFC3339),
		},
		{
			ID:            fmt.Sprintf("deal_%d_2", now.Unix()),
			Title:         fmt.Sprintf("%s Special Offer", titleCase(category)),
			Description:   fmt.Sprintf("Limited time offer on %s", category),
			URL:           "https://example.com/deals/2",
			Platform:      "Flipkart",
			Category:      category,
			Price:         299.99,
			OriginalPrice: 399.99,
			Discount:      25.0,
			ImageURL:      "https://via.placeholder.com/300x200",
			ValidUntil:    now.AddDate(0, 0, 5).Format(time.RFC3339),
		},
	}
}
