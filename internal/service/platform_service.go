package service

import (
	"errors"
	"strings"
	"time"

	"gameshelf/backend/internal/models"

	"gorm.io/gorm"
)

type PlatformService struct {
	db *gorm.DB
}

func NewPlatformService(db *gorm.DB) *PlatformService {
	return &PlatformService{db: db}
}

type CreatePlatformInput struct {
	Title           string
	Company         *string
	AcquisitionYear *int
	ImageURL        *string
}

type UpdatePlatformInput struct {
	Title           *string
	Company         *string
	AcquisitionYear *int
	ImageURL        *string
}

// PlatformWithCount pairs a platform with the number of non-deleted games on it.
type PlatformWithCount struct {
	models.Platform
	GamesCount int64
}

// Create inserts a new platform for the user after the per-user case-insensitive
// title check against their non-deleted platforms.
func (s *PlatformService) Create(userID uint, in CreatePlatformInput) (*models.Platform, error) {
	taken, err := s.titleTaken(userID, in.Title, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, duplicateNameError("A platform with this title already exists.")
	}

	platform := models.Platform{
		Title:           in.Title,
		Company:         in.Company,
		AcquisitionYear: in.AcquisitionYear,
		ImageURL:        in.ImageURL,
		UserID:          userID,
	}
	if err := s.db.Create(&platform).Error; err != nil {
		return nil, err
	}
	return &platform, nil
}

// ListPaginated returns the user's platforms newest first.
func (s *PlatformService) ListPaginated(userID uint, pp PageParams) (*Paginated[PlatformWithCount], error) {
	var totalItems int64
	base := s.db.Model(&models.Platform{}).Where("user_id = ? AND is_deleted = ?", userID, false)
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, err
	}

	var platforms []models.Platform
	err := s.db.Where("user_id = ? AND is_deleted = ?", userID, false).
		Order("created_at DESC").
		Offset(pp.Skip).Limit(pp.Take).
		Find(&platforms).Error
	if err != nil {
		return nil, err
	}

	withCounts, err := s.attachGameCounts(userID, platforms)
	if err != nil {
		return nil, err
	}
	return newPaginated(withCounts, totalItems, pp), nil
}

// ListAll returns every non-deleted platform of the user, title ascending.
func (s *PlatformService) ListAll(userID uint) ([]PlatformWithCount, error) {
	var platforms []models.Platform
	err := s.db.Where("user_id = ? AND is_deleted = ?", userID, false).
		Order("title ASC").
		Find(&platforms).Error
	if err != nil {
		return nil, err
	}
	return s.attachGameCounts(userID, platforms)
}

func (s *PlatformService) GetByID(userID, platformID uint) (*PlatformWithCount, error) {
	platform, err := s.fetchOwned(userID, platformID)
	if err != nil {
		return nil, err
	}

	withCounts, err := s.attachGameCounts(userID, []models.Platform{*platform})
	if err != nil {
		return nil, err
	}
	return &withCounts[0], nil
}

// Update applies only the supplied fields; omitted fields keep their stored value.
func (s *PlatformService) Update(userID, platformID uint, in UpdatePlatformInput) (*models.Platform, error) {
	platform, err := s.fetchOwned(userID, platformID)
	if err != nil {
		return nil, err
	}

	if in.Title != nil && *in.Title != platform.Title {
		taken, err := s.titleTaken(userID, *in.Title, platformID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, duplicateNameError("A platform with this title already exists.")
		}
	}

	updates := map[string]interface{}{
		// Touched even when nothing else changed.
		"updated_at": time.Now(),
	}
	if in.Title != nil {
		updates["title"] = *in.Title
	}
	if in.Company != nil {
		updates["company"] = *in.Company
	}
	if in.AcquisitionYear != nil {
		updates["acquisition_year"] = *in.AcquisitionYear
	}
	if in.ImageURL != nil {
		updates["image_url"] = *in.ImageURL
	}
	if err := s.db.Model(platform).Updates(updates).Error; err != nil {
		return nil, err
	}
	return platform, nil
}

// Delete soft-deletes the platform unless non-deleted games still reference it.
func (s *PlatformService) Delete(userID, platformID uint) error {
	platform, err := s.fetchOwned(userID, platformID)
	if err != nil {
		return err
	}

	var gameCount int64
	err = s.db.Model(&models.Game{}).
		Where("platform_id = ? AND is_deleted = ?", platformID, false).
		Count(&gameCount).Error
	if err != nil {
		return err
	}
	if gameCount > 0 {
		return conflictError("Cannot delete platform that has games associated with it.")
	}

	return s.db.Model(platform).Update("is_deleted", true).Error
}

func (s *PlatformService) fetchOwned(userID, platformID uint) (*models.Platform, error) {
	var platform models.Platform
	err := s.db.Where("id = ? AND user_id = ? AND is_deleted = ?", platformID, userID, false).
		First(&platform).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFoundError("Platform not found.")
	}
	if err != nil {
		return nil, err
	}
	return &platform, nil
}

func (s *PlatformService) titleTaken(userID uint, title string, excludeID uint) (bool, error) {
	query := s.db.Model(&models.Platform{}).
		Where("user_id = ? AND is_deleted = ?", userID, false)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var titles []string
	if err := query.Pluck("title", &titles).Error; err != nil {
		return false, err
	}

	for _, existing := range titles {
		if strings.EqualFold(existing, title) {
			return true, nil
		}
	}
	return false, nil
}

func (s *PlatformService) attachGameCounts(userID uint, platforms []models.Platform) ([]PlatformWithCount, error) {
	counts := make(map[uint]int64)
	if len(platforms) > 0 {
		type row struct {
			PlatformID uint
			Total      int64
		}
		var rows []row
		err := s.db.Model(&models.Game{}).
			Select("platform_id, COUNT(*) AS total").
			Where("user_id = ? AND is_deleted = ? AND platform_id IS NOT NULL", userID, false).
			Group("platform_id").
			Scan(&rows).Error
		if err != nil {
			return nil, err
		}
		for _, r := range rows {
			counts[r.PlatformID] = r.Total
		}
	}

	result := make([]PlatformWithCount, len(platforms))
	for i, platform := range platforms {
		result[i] = PlatformWithCount{Platform: platform, GamesCount: counts[platform.ID]}
	}
	return result, nil
}
