package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/onehub-dev/onehub/internal/preferences"
	"github.com/onehub-dev/onehub/internal/sources"
	"github.com/onehub-dev/onehub/internal/utils"
)

// GetFood builds dish recommendations from the user's stored food
// preferences.
func GetFood(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	doc, err := loadPreferenceDocument(currentUser.ID)
	if err != nil {
		logrus.Warnf("Failed to load preferences for user %d: %v", currentUser.ID, err)
		doc = preferences.Document{}
	}

	foodPrefs := doc["food"]
	items := sources.FoodRecommendations(foodPrefs["cuisines"], foodPrefs["dietary"])

	ctx.JSON(http.StatusOK, gin.H{
		"preferences":     foodPrefs,
		"count":           len(items),
		"recommendations": items,
	})
}

// GetMovies builds picks from the user's stored movie preferences.
func GetMovies(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	doc, err := loadPreferenceDocument(currentUser.ID)
	if err != nil {
		logrus.Warnf("Failed to load preferences for user %d: %v", currentUser.ID, err)
		doc = preferences.Document{}
	}

	moviePrefs := doc["movies"]
	items := sources.MovieRecommendations(moviePrefs["genres"], moviePrefs["languages"])

	ctx.JSON(http.StatusOK, gin.H{
		"preferences":     moviePrefs,
		"count":           len(items),
		"recommendations": items,
	})
}

func GetRecommendations(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	items := sources.Recommendations()

	ctx.JSON(http.StatusOK, gin.H{
		"user_id":         currentUser.ID,
		"count":           len(items),
		"recommendations": items,
	})
}
