package models

import "time"

// Platform is a system a user owns games on (e.g. "PC", "Switch").
// Titles follow the same per-user uniqueness rule as category names.
type Platform struct {
	ID              uint    `gorm:"primaryKey"`
	Title           string  `gorm:"size:255;not null"`
	Company         *string `gorm:"size:255"`
	AcquisitionYear *int
	ImageURL        *string `gorm:"size:512"`
	UserID          uint    `gorm:"not null;index"`
	IsDeleted       bool    `gorm:"not null;default:false;index"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Games []Game `gorm:"foreignKey:PlatformID"`
}
