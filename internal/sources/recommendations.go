package sources

import (
	"fmt"
	"time"

	"github.com/onehub-dev/onehub/internal/types"
)

func Recommendations() []types.Recommendation {
	now := time.Now()

	return []types.Recommendation{
		{
			ID:          fmt.Sprintf("rec_%d", now.Unix()),
			Type:        "news",
			Title:       "AI Breakthrough in Healthcare",
			Description: "Latest AI developments",
			URL:         "/api/news",
			Category:    "technology",
			Score:       0.95,
		},
		{
			ID:          fmt.Sprintf("rec_%d_2", now.Unix()),
			Type:        "job",
			Title:       "Senior Developer Position",
			Description: "Great opportunity in tech",
			URL:         "/api/jobs",
			Category:    "technology",
			Score:       0.88,
		},
	}
}
