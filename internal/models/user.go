package models

import "time"

// User represents an account that owns collections of games, categories and platforms.
// The email is stored lowercased so lookups stay case-insensitive.
type User struct {
	ID        uint   `gorm:"primaryKey"`
	FullName  string `gorm:"size:255;not null"`
	Email     string `gorm:"size:255;uniqueIndex;not null"`
	Password  string `gorm:"size:255;not null"`
	IsDeleted bool   `gorm:"not null;default:false;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
