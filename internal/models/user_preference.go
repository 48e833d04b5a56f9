package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// UserPreference holds one category of a user's preference document, e.g.
// category "food" with payload {"cuisines": ["italian"], "dietary": []}.
// Saving a full document replaces all of a user's rows in one transaction.
type UserPreference struct {
	gorm.Model

	UserID      uint           `gorm:"not null;uniqueIndex:idx_user_category"`
	Category    string         `gorm:"not null;uniqueIndex:idx_user_category"`
	Preferences datatypes.JSON `gorm:"type:jsonb"`

	// Relationships
	User User `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}
