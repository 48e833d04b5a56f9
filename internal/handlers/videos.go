package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/onehub-dev/onehub/internal/sources"
)

func GetVideos(ctx *gin.Context) {
	category := ctx.DefaultQuery("category", "technology")

	videos, err := YouTube.Search(ctx.Request.Context(), category)
	if err != nil {
		if err == sources.ErrNotConfigured {
			mock := sources.MockVideos(category)
			ctx.JSON(http.StatusOK, gin.H{
				"category": category,
				"count":    len(mock),
				"videos":   mock,
				"message":  "Add YOUTUBE_API_KEY to get real data",
			})
			return
		}

		logrus.Warnf("Video fetch failed for %s: %v", category, err)
		fallback := sources.ErrorFallbackVideo(category, err)
		ctx.JSON(http.StatusOK, gin.H{
			"category": category,
			"count":    1,
			"videos":   []interface{}{fallback},
			"error":    err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"category": category,
		"count":    len(videos),
		"videos":   videos,
		"source":   "YouTube API",
	})
}
