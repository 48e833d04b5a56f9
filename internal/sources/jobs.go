package sources

import (
	"fmt"
	"time"

	"github.com/onehub-dev/onehub/internal/types"
)

// Job listings are served from curated static data until a listings provider
// is wired in. TODO: back this with the Adzuna API once credentials are
// provisioned.

func JobListings(category string) []types.JobListing {
	now := time.Now()

	return []types.JobListing{
		{
			ID:          fmt.Sprintf("job_%d", now.Unix()),
			Title:       fmt.Sprintf("Senior %s Engineer", titleCase(category)),
			Company:     "Tech Corp Inc.",
			Location:    "San Francisco, CA",
			Type:        "Full-time",
			Salary:      "$120,000 - $180,000",
			Description: fmt.Sprintf("We are looking for a talented %s professional to join our team.", category),
			URL:         "https://example.com/jobs/1",
			Category:    category,
			PostedAt:    now.Add(-24 * time.Hour).Format(time.RFC3339),
			IsStatic:    true,
		},
		{
			ID:          fmt.Sprintf("job_%d_2", now.Unix()),
			Title:       fmt.Sprintf("%s Specialist", titleCase(category)),
			Company:     "Innovation Labs",
			Location:    "Remote",
			Type:        "Contract",
			Salary:      "$80 - $120/hour",
			Description: fmt.Sprintf("Remote %s position with flexible hours.", category),
			URL:         "https://example.com/jobs/2",
			Category:    category,
			PostedAt:    now.Add(-12 * time.Hour).Format(time.RFC3339),
			IsStatic:    true,
		},
	}
}

func TrendingJobs() []types.JobListing {
	now := time.Now()

	return []types.JobListing{
		{
			ID:          fmt.Sprintf("trending_job_%d", now.Unix()),
			Title:       "AI/ML Engineer",
			Company:     "AI Startup Co.",
			Location:    "Remote",
			Salary:      "$100,000 - $150,000",
			Description: "Join our AI team to build cutting-edge machine learning solutions.",
			URL:         "https://example.com/jobs/ai",
			Category:    "ai",
			PostedAt:    now.Add(-12 * time.Hour).Format(time.RFC3339),
		},
		{
			ID:          fmt.Sprintf("trending_job_%d_2", now.Unix()),
			Title:       "Cloud Solutions Architect",
			Company:     "CloudTech Solutions",
			Location:    "New York, NY",
			Salary:      "$130,000 - $200,000",
			Description: "Design and implement cloud infrastructure solutions.",
			URL:         "https://example.com/jobs/cloud",
			Category:    "cloud",
			PostedAt:    now.Add(-6 * time.Hour).Format(time.RFC3339),
		},
	}
}

func SearchJobs(query string) []types.JobListing {
	now := time.Now()

	return []types.JobListing{
		{
			ID:          fmt.Sprintf("search_job_%d", now.Unix()),
			Title:       fmt.Sprintf("Jobs matching: %s", query),
			Company:     "Various Companies",
			Location:    "Multiple Locations",
			Salary:      "Competitive",
			Description: fmt.Sprintf("Job opportunities related to %s", query),
			URL:         "#",
			Category:    "search",
			PostedAt:    now.Format(time.RFC3339),
		},
	}
}
