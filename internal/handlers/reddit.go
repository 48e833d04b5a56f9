package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/onehub-dev/onehub/internal/sources"
)

func GetRedditPosts(ctx *gin.Context) {
	subreddit := ctx.DefaultQuery("subreddit", "technology")

	posts, err := Reddit.Posts(ctx.Request.Context(), subreddit)
	if err != nil {
		if err == sources.ErrNotConfigured {
			mock := sources.MockPosts(subreddit)
			ctx.JSON(http.StatusOK, gin.H{
				"subreddit": subreddit,
				"count":     len(mock),
				"posts":     mock,
				"message":   "Add REDDIT_CLIENT_ID and REDDIT_SECRET to get real data",
			})
			return
		}

		logrus.Warnf("Reddit fetch failed for r/%s: %v", subreddit, err)
		fallback := sources.ErrorFallbackPost(subreddit, err)
		ctx.JSON(http.StatusOK, gin.H{
			"subreddit": subreddit,
			"count":     1,
			"posts":     []interface{}{fallback},
			"error":     err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"subreddit": subreddit,
		"count":     len(posts),
		"posts":     posts,
		"source":    "Reddit API",
	})
}

func GetTrendingReddit(ctx *gin.Context) {
	posts := Reddit.Trending(ctx.Request.Context())

	ctx.JSON(http.StatusOK, gin.H{
		"count": len(posts),
		"posts": posts,
	})
}
