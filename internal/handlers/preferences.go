package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/onehub-dev/onehub/db"
	"github.com/onehub-dev/onehub/internal/models"
	"github.com/onehub-dev/onehub/internal/preferences"
	"github.com/onehub-dev/onehub/internal/utils"
)

// loadPreferenceDocument assembles the per-category rows into a single
// document. Option ids are stored verbatim, including ones no longer in the
// canonical schema.
func loadPreferenceDocument(userID uint) (preferences.Document, error) {
	var rows []models.UserPreference
	if err := db.DB.Where("user_id = ?", userID).Find(&rows).Error; err != nil {
		return nil, err
	}

	doc := preferences.Document{}
	for _, row := range rows {
		var category preferences.Category
		if err := json.Unmarshal(row.Preferences, &category); err != nil {
			return nil, fmt.Errorf("corrupt preferences for category %s: %w", row.Category, err)
		}
		doc[row.Category] = category
	}

	return doc, nil
}

func GetPreferences(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	doc, err := loadPreferenceDocument(currentUser.ID)
	if err != nil {
		logrus.Errorf("Failed to load preferences for user %d: %v", currentUser.ID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"preferences": doc})
}

// SavePreferences replaces the user's whole preference document in one
// transaction. Concurrent saves are last-write-wins.
func SavePreferences(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var doc preferences.Document
	if err := ctx.BindJSON(&doc); err != nil {
		logrus.Warnf("Failed to bind preferences: %v", err)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid preferences payload"})
		return
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		// Hard delete: a soft-deleted row would trip the (user_id, category)
		// unique index on re-insert.
		if err := tx.Unscoped().Where("user_id = ?", currentUser.ID).Delete(&models.UserPreference{}).Error; err != nil {
			return err
		}

		for category, prefs := range doc {
			body, err := json.Marshal(prefs)
			if err != nil {
				return err
			}

			row := models.UserPreference{
				UserID:      currentUser.ID,
				Category:    category,
				Preferences: body,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}

		return nil
	})

	if err != nil {
		logrus.Errorf("Failed to save preferences for user %d: %v", currentUser.ID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Preferences saved successfully"})
}

// UpdatePreferenceCategory upserts a single category row, leaving the other
// categories untouched.
func UpdatePreferenceCategory(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	category := ctx.Param("category")

	var prefs preferences.Category
	if err := ctx.BindJSON(&prefs); err != nil {
		logrus.Warnf("Failed to bind preferences: %v", err)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid preferences payload"})
		return
	}

	body, err := json.Marshal(prefs)
	if err != nil {
		logrus.Errorf("Failed to marshal preferences: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var row models.UserPreference
	err = db.DB.Where("user_id = ? AND category = ?", currentUser.ID, category).First(&row).Error

	switch {
	case err == nil:
		row.Preferences = body
		err = db.DB.Save(&row).Error
	case errors.Is(err, gorm.ErrRecordNotFound):
		row = models.UserPreference{
			UserID:      currentUser.ID,
			Category:    category,
			Preferences: body,
		}
		err = db.DB.Create(&row).Error
	}

	if err != nil {
		logrus.Errorf("Failed to update %s preferences for user %d: %v", category, currentUser.ID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("%s preferences updated successfully", category)})
}

// preferredIDs reads one subcategory from the user's stored preferences,
// falling back to the given defaults when the slot is empty or missing.
func preferredIDs(userID uint, category, subcategory string, fallback []string) []string {
	doc, err := loadPreferenceDocument(userID)
	if err != nil {
		logrus.Warnf("Failed to load preferences for user %d: %v", userID, err)
		return fallback
	}

	if prefs, ok := doc[category]; ok {
		if ids := prefs[subcategory]; len(ids) > 0 {
			return ids
		}
	}

	return fallback
}
