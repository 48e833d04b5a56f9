package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// RecipeRequest is the structured "request a recipe" record a user submits
// when a search comes back empty.
type RecipeRequest struct {
	gorm.Model

	RequestID          string `gorm:"uniqueIndex;not null"`
	UserID             uint   `gorm:"not null;index"`
	RecipeName         string `gorm:"not null"`
	Cuisine            string `gorm:"not null"`
	DietaryPreferences datatypes.JSON
	Description        string

	// Relationships
	User User `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}
