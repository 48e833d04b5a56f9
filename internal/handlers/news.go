package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/onehub-dev/onehub/internal/sources"
	"github.com/onehub-dev/onehub/internal/utils"
)

var trendingNewsDefaults = []string{"technology", "business", "entertainment", "sports"}

// GetNews fans over the user's preferred news categories. Upstream failures
// degrade to a single fallback article instead of an error status.
func GetNews(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	categories := preferredIDs(currentUser.ID, "news", "categories", []string{"general"})

	articles, err := News.Headlines(ctx.Request.Context(), categories)
	if err != nil {
		if err == sources.ErrNotConfigured {
			mock := sources.MockHeadlines(categories[0])
			ctx.JSON(http.StatusOK, gin.H{
				"category":         categories[0],
				"count":            len(mock),
				"articles":         mock,
				"message":          "Add NEWS_API_KEY to get real data",
				"user_preferences": categories,
				"is_mock":          true,
			})
			return
		}

		logrus.Warnf("News fetch failed for user %d: %v", currentUser.ID, err)
		fallback := sources.ErrorFallbackArticle(categories[0], err)
		ctx.JSON(http.StatusOK, gin.H{
			"category": categories[0],
			"count":    1,
			"articles": []interface{}{fallback},
			"error":    err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"category":         categories,
		"count":            len(articles),
		"articles":         articles,
		"user_preferences": categories,
		"is_mock":          false,
		"timestamp":        time.Now().Format(time.RFC3339),
	})
}

// GetTrendingNews samples the user's first four preferred categories; each
// failed category contributes a mock article.
func GetTrendingNews(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	categories := preferredIDs(currentUser.ID, "news", "categories", trendingNewsDefaults)
	if len(categories) > 4 {
		categories = categories[:4]
	}

	articles := News.Trending(ctx.Request.Context(), categories)

	ctx.JSON(http.StatusOK, gin.H{
		"count":    len(articles),
		"articles": articles,
	})
}

func SearchNews(ctx *gin.Context) {
	query := ctx.Query("q")
	if query == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Query parameter 'q' is required"})
		return
	}

	articles, err := News.Search(ctx.Request.Context(), query)
	if err != nil {
		logrus.Warnf("News search failed for %q: %v", query, err)
		articles = sources.MockSearchResults(query)
	}

	ctx.JSON(http.StatusOK, gin.H{
		"query":    query,
		"count":    len(articles),
		"articles": articles,
	})
}
