package models

import "time"

type GameStatus string

const (
	StatusPlaying   GameStatus = "Playing"
	StatusDone      GameStatus = "Done"
	StatusAbandoned GameStatus = "Abandoned"
)

// ValidGameStatus reports whether s is one of the three known statuses.
func ValidGameStatus(s GameStatus) bool {
	return s == StatusPlaying || s == StatusDone || s == StatusAbandoned
}

// Game is a single entry in a user's collection. FinishDate is only ever set
// when the status is Done or Abandoned; the service layer clears it for Playing.
type Game struct {
	ID              uint    `gorm:"primaryKey"`
	Title           string  `gorm:"size:255;not null"`
	Description     *string `gorm:"size:2048"`
	ImageURL        *string `gorm:"size:512"`
	AcquisitionDate time.Time
	FinishDate      *time.Time
	Status          GameStatus `gorm:"size:20;not null"`
	IsFavorite      bool       `gorm:"not null;default:false"`
	UserID          uint       `gorm:"not null;index"`
	CategoryID      uint       `gorm:"not null;index"`
	PlatformID      *uint      `gorm:"index"`
	IsDeleted       bool       `gorm:"not null;default:false;index"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Category Category  `gorm:"foreignKey:CategoryID"`
	Platform *Platform `gorm:"foreignKey:PlatformID"`
}
