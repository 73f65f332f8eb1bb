package service

import (
	"gameshelf/backend/internal/models"

	"gorm.io/gorm"
)

type DashboardService struct {
	db *gorm.DB
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{db: db}
}

// DashboardStats summarizes a user's collection.
type DashboardStats struct {
	TotalGames      int64 `json:"totalGames"`
	TotalCategories int64 `json:"totalCategories"`
	TotalPlatforms  int64 `json:"totalPlatforms"`
	TotalFavorites  int64 `json:"totalFavorites"`
}

// Stats counts the user's non-deleted games, categories, platforms and favorites.
func (s *DashboardService) Stats(userID uint) (*DashboardStats, error) {
	var stats DashboardStats

	err := s.db.Model(&models.Game{}).
		Where("user_id = ? AND is_deleted = ?", userID, false).
		Count(&stats.TotalGames).Error
	if err != nil {
		return nil, err
	}

	err = s.db.Model(&models.Category{}).
		Where("user_id = ? AND is_deleted = ?", userID, false).
		Count(&stats.TotalCategories).Error
	if err != nil {
		return nil, err
	}

	err = s.db.Model(&models.Platform{}).
		Where("user_id = ? AND is_deleted = ?", userID, false).
		Count(&stats.TotalPlatforms).Error
	if err != nil {
		return nil, err
	}

	err = s.db.Model(&models.Game{}).
		Where("user_id = ? AND is_deleted = ? AND is_favorite = ?", userID, false, true).
		Count(&stats.TotalFavorites).Error
	if err != nil {
		return nil, err
	}

	return &stats, nil
}

// GamesByStatus returns a status -> count map over the user's non-deleted games.
func (s *DashboardService) GamesByStatus(userID uint) (map[models.GameStatus]int64, error) {
	type row struct {
		Status models.GameStatus
		Total  int64
	}
	var rows []row
	err := s.db.Model(&models.Game{}).
		Select("status, COUNT(*) AS total").
		Where("user_id = ? AND is_deleted = ?", userID, false).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	result := make(map[models.GameStatus]int64, len(rows))
	for _, r := range rows {
		result[r.Status] = r.Total
	}
	return result, nil
}

// RecentGames returns the most recently added games, newest first.
func (s *DashboardService) RecentGames(userID uint, limit int) ([]models.Game, error) {
	if limit < 1 {
		limit = 5
	}

	var games []models.Game
	err := s.db.Preload("Category").Preload("Platform").
		Where("user_id = ? AND is_deleted = ?", userID, false).
		Order("created_at DESC").
		Limit(limit).
		Find(&games).Error
	if err != nil {
		return nil, err
	}
	return games, nil
}
