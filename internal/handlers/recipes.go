package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/onehub-dev/onehub/db"
	"github.com/onehub-dev/onehub/internal/models"
	"github.com/onehub-dev/onehub/internal/sources"
	"github.com/onehub-dev/onehub/internal/types"
	"github.com/onehub-dev/onehub/internal/utils"
)

var defaultCuisines = []string{"italian", "american"}

// GetRecipes resolves recipes from the user's preferred cuisines, or from a
// free-text query when one is given. An empty search result is a first-class
// no_results state, not an error.
func GetRecipes(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	doc, err := loadPreferenceDocument(currentUser.ID)
	if err != nil {
		logrus.Warnf("Failed to load preferences for user %d: %v", currentUser.ID, err)
	}

	cuisines := defaultCuisines
	var dietary []string
	if foodPrefs, ok := doc["food"]; ok {
		if ids := foodPrefs["cuisines"]; len(ids) > 0 {
			cuisines = ids
		}
		dietary = foodPrefs["dietary"]
	}
	if dietary == nil {
		dietary = []string{}
	}

	query := strings.TrimSpace(ctx.Query("query"))
	userPreferences := gin.H{"cuisines": cuisines, "dietary": dietary}

	var recipes []types.Recipe

	if query == "" {
		recipes, err = Meals.ByCuisines(ctx.Request.Context(), cuisines, dietary)
	} else {
		recipes, err = Meals.Search(ctx.Request.Context(), query, dietary)
		if errors.Is(err, sources.ErrNoRecipes) {
			ctx.JSON(http.StatusOK, gin.H{
				"recipes":          []interface{}{},
				"query":            query,
				"user_preferences": userPreferences,
				"count":            0,
				"is_mock":          false,
				"no_results":       true,
				"message":          fmt.Sprintf("No recipes found for '%s'. Try searching for something else!", query),
			})
			return
		}
	}

	if err != nil || len(recipes) == 0 {
		if err != nil {
			logrus.Warnf("Recipe fetch failed for user %d: %v", currentUser.ID, err)
		}

		mock := sources.MockRecipes(query, dietary)
		ctx.JSON(http.StatusOK, gin.H{
			"recipes":          mock,
			"query":            query,
			"user_preferences": userPreferences,
			"count":            len(mock),
			"is_mock":          true,
		})
		return
	}

	if len(recipes) > 8 {
		recipes = recipes[:8]
	}

	ctx.JSON(http.StatusOK, gin.H{
		"recipes":          recipes,
		"query":            query,
		"user_preferences": userPreferences,
		"count":            len(recipes),
		"is_mock":          false,
	})
}

type RecipeRequestPayload struct {
	RecipeName         string   `json:"recipe_name"`
	Cuisine            string   `json:"cuisine"`
	DietaryPreferences []string `json:"dietary_preferences"`
	Description        string   `json:"description"`
}

// SubmitRecipeRequest persists a structured request for a recipe the catalog
// doesn't cover yet.
func SubmitRecipeRequest(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var payload RecipeRequestPayload
	if err := ctx.BindJSON(&payload); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	payload.RecipeName = strings.TrimSpace(payload.RecipeName)
	payload.Cuisine = strings.TrimSpace(payload.Cuisine)

	if payload.RecipeName == "" || payload.Cuisine == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Recipe name and cuisine are required"})
		return
	}

	if payload.DietaryPreferences == nil {
		payload.DietaryPreferences = []string{}
	}

	dietaryJSON, err := json.Marshal(payload.DietaryPreferences)
	if err != nil {
		logrus.Errorf("Failed to marshal dietary preferences: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	request := models.RecipeRequest{
		RequestID:          uuid.NewString(),
		UserID:             currentUser.ID,
		RecipeName:         payload.RecipeName,
		Cuisine:            payload.Cuisine,
		DietaryPreferences: dietaryJSON,
		Description:        strings.TrimSpace(payload.Description),
	}

	if err := db.DB.Create(&request).Error; err != nil {
		logrus.Errorf("Failed to save recipe request: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit recipe request"})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"message":    "Recipe request submitted successfully!",
		"request_id": request.RequestID,
	})
}
