package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/onehub-dev/onehub/internal/aggregator"
	"github.com/onehub-dev/onehub/internal/sources"
	"github.com/onehub-dev/onehub/internal/utils"
)

// GetDashboard fans out the dashboard slots concurrently and joins them with
// partial-failure tolerance: a failed slot is null in the response, the rest
// arrive intact, and last_refresh is stamped once after full fan-in.
func GetDashboard(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	doc, err := loadPreferenceDocument(currentUser.ID)
	if err != nil {
		doc = nil
	}

	cuisines := defaultCuisines
	var dietary []string
	if foodPrefs, ok := doc["food"]; ok {
		if ids := foodPrefs["cuisines"]; len(ids) > 0 {
			cuisines = ids
		}
		dietary = foodPrefs["dietary"]
	}

	tasks := []aggregator.Task{
		{
			Name: "jobs",
			Fetch: func(ctx context.Context) (interface{}, error) {
				return sources.TrendingJobs(), nil
			},
		},
		{
			Name: "recommendations",
			Fetch: func(ctx context.Context) (interface{}, error) {
				return sources.Recommendations(), nil
			},
		},
		{
			Name: "weather",
			Fetch: func(ctx context.Context) (interface{}, error) {
				return Weather.Report(ctx, DefaultCity)
			},
		},
		{
			Name: "crypto",
			Fetch: func(ctx context.Context) (interface{}, error) {
				return Crypto.Snapshot(ctx)
			},
		},
		{
			Name: "recipes",
			Fetch: func(ctx context.Context) (interface{}, error) {
				return Meals.ByCuisines(ctx, cuisines, dietary)
			},
		},
	}

	report := aggregator.Run(ctx.Request.Context(), tasks)

	response := gin.H{"last_refresh": report.LastRefresh.Format(time.RFC3339)}
	for name, payload := range report.Payloads() {
		response[name] = payload
	}

	ctx.JSON(http.StatusOK, response)
}
