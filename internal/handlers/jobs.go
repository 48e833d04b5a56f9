package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/onehub-dev/onehub/internal/sources"
)

func GetJobs(ctx *gin.Context) {
	category := ctx.DefaultQuery("category", "technology")

	jobs := sources.JobListings(category)

	ctx.JSON(http.StatusOK, gin.H{
		"category": category,
		"count":    len(jobs),
		"jobs":     jobs,
		"message":  "Add ADZUNA_APP_ID and ADZUNA_APP_KEY for real job data",
	})
}

func GetTrendingJobs(ctx *gin.Context) {
	jobs := sources.TrendingJobs()

	ctx.JSON(http.StatusOK, gin.H{
		"count": len(jobs),
		"jobs":  jobs,
	})
}

func SearchJobs(ctx *gin.Context) {
	query := ctx.Query("q")
	if query == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Query parameter 'q' is required"})
		return
	}

	jobs := sources.SearchJobs(query)

	ctx.JSON(http.StatusOK, gin.H{
		"query": query,
		"count": len(jobs),
		"jobs":  jobs,
	})
}
