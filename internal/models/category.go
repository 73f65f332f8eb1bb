package models

import "time"

// Category groups a user's games (e.g. "RPG", "Shooter").
// Names are unique per user among non-deleted rows; the check lives in the
// service layer so a soft-deleted row does not block reuse.
type Category struct {
	ID          uint    `gorm:"primaryKey"`
	Name        string  `gorm:"size:255;not null"`
	Description *string `gorm:"size:1024"`
	UserID      uint    `gorm:"not null;index"`
	IsDeleted   bool    `gorm:"not null;default:false;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Games []Game `gorm:"foreignKey:CategoryID"`
}
