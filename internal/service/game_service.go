package service

import (
	"errors"
	"strings"
	"time"

	"gameshelf/backend/internal/models"

	"gorm.io/gorm"
)

type GameService struct {
	db *gorm.DB
}

func NewGameService(db *gorm.DB) *GameService {
	return &GameService{db: db}
}

type CreateGameInput struct {
	Title           string
	Description     *string
	ImageURL        *string
	AcquisitionDate time.Time
	FinishDate      *time.Time
	Status          models.GameStatus
	CategoryID      uint
	PlatformID      *uint
	IsFavorite      bool
}

// UpdateGameInput carries only the fields present in the request; nil pointers
// keep the stored value. PlatformID is tri-state so an explicit null detaches
// the platform while an absent field leaves it alone.
type UpdateGameInput struct {
	Title           *string
	Description     *string
	ImageURL        *string
	AcquisitionDate *time.Time
	FinishDate      *time.Time
	Status          *models.GameStatus
	CategoryID      *uint
	PlatformID      OptionalUint
	IsFavorite      *bool
}

// OptionalUint distinguishes "field absent" (Set false) from "field null"
// (Set true, Value nil) and "field set" (Set true, Value non-nil).
type OptionalUint struct {
	Set   bool
	Value *uint
}

type GameFilters struct {
	Search     string
	CategoryID *uint
	PlatformID *uint
	Status     *models.GameStatus
	IsFavorite *bool
}

// Create validates ownership of the referenced category/platform, the per-user
// title uniqueness and the status/date policy, then persists the game.
func (s *GameService) Create(userID uint, in CreateGameInput) (*models.Game, error) {
	taken, err := s.titleTaken(userID, in.Title, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, duplicateNameError("A game with this title already exists.")
	}

	if err := s.checkCategoryOwned(userID, in.CategoryID); err != nil {
		return nil, err
	}
	if in.PlatformID != nil {
		if err := s.checkPlatformOwned(userID, *in.PlatformID); err != nil {
			return nil, err
		}
	}

	finishDate, err := resolveFinishDate(in.Status, in.AcquisitionDate, in.FinishDate, nil)
	if err != nil {
		return nil, err
	}

	game := models.Game{
		Title:           in.Title,
		Description:     in.Description,
		ImageURL:        in.ImageURL,
		AcquisitionDate: in.AcquisitionDate,
		FinishDate:      finishDate,
		Status:          in.Status,
		IsFavorite:      in.IsFavorite,
		UserID:          userID,
		CategoryID:      in.CategoryID,
		PlatformID:      in.PlatformID,
	}
	if err := s.db.Create(&game).Error; err != nil {
		return nil, err
	}
	return s.reload(game.ID)
}

// ListPaginated returns the user's games newest first, optionally filtered.
// The text search matches title or description case-insensitively and runs in
// application code so its semantics do not depend on the SQL dialect.
func (s *GameService) ListPaginated(userID uint, filters GameFilters, pp PageParams) (*Paginated[models.Game], error) {
	query := s.db.Model(&models.Game{}).Where("user_id = ? AND is_deleted = ?", userID, false)

	if filters.Search != "" {
		matchingIDs, err := s.searchIDs(userID, filters.Search)
		if err != nil {
			return nil, err
		}
		if len(matchingIDs) == 0 {
			return newPaginated([]models.Game{}, 0, pp), nil
		}
		query = query.Where("id IN ?", matchingIDs)
	}
	if filters.CategoryID != nil {
		query = query.Where("category_id = ?", *filters.CategoryID)
	}
	if filters.PlatformID != nil {
		query = query.Where("platform_id = ?", *filters.PlatformID)
	}
	if filters.Status != nil {
		query = query.Where("status = ?", *filters.Status)
	}
	if filters.IsFavorite != nil {
		query = query.Where("is_favorite = ?", *filters.IsFavorite)
	}

	var totalItems int64
	if err := query.Count(&totalItems).Error; err != nil {
		return nil, err
	}

	var games []models.Game
	err := query.Preload("Category").Preload("Platform").
		Order("created_at DESC").
		Offset(pp.Skip).Limit(pp.Take).
		Find(&games).Error
	if err != nil {
		return nil, err
	}
	return newPaginated(games, totalItems, pp), nil
}

func (s *GameService) GetByID(userID, gameID uint) (*models.Game, error) {
	var game models.Game
	err := s.db.Preload("Category").Preload("Platform").
		Where("id = ? AND user_id = ? AND is_deleted = ?", gameID, userID, false).
		First(&game).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFoundError("Game not found or access denied.")
	}
	if err != nil {
		return nil, err
	}
	return &game, nil
}

// Update merges the supplied fields over the stored row, re-validates
// references and uniqueness for the fields that changed, and re-applies the
// status/date policy against the effective (merged) values.
func (s *GameService) Update(userID, gameID uint, in UpdateGameInput) (*models.Game, error) {
	game, err := s.fetchOwned(userID, gameID)
	if err != nil {
		return nil, err
	}

	if in.CategoryID != nil {
		if err := s.checkCategoryOwned(userID, *in.CategoryID); err != nil {
			return nil, err
		}
	}
	if in.PlatformID.Set && in.PlatformID.Value != nil {
		if err := s.checkPlatformOwned(userID, *in.PlatformID.Value); err != nil {
			return nil, err
		}
	}

	if in.Title != nil && *in.Title != game.Title {
		taken, err := s.titleTaken(userID, *in.Title, gameID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, duplicateNameError("A game with this title already exists.")
		}
	}

	effectiveStatus := game.Status
	if in.Status != nil {
		effectiveStatus = *in.Status
	}
	effectiveAcquisition := game.AcquisitionDate
	if in.AcquisitionDate != nil {
		effectiveAcquisition = *in.AcquisitionDate
	}

	finishDate, err := resolveFinishDate(effectiveStatus, effectiveAcquisition, in.FinishDate, game.FinishDate)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		// Always written: the policy may clear a stored finish date.
		"finish_date": finishDate,
	}
	if in.Title != nil {
		updates["title"] = *in.Title
	}
	if in.Description != nil {
		updates["description"] = *in.Description
	}
	if in.ImageURL != nil {
		updates["image_url"] = *in.ImageURL
	}
	if in.AcquisitionDate != nil {
		updates["acquisition_date"] = *in.AcquisitionDate
	}
	if in.Status != nil {
		updates["status"] = *in.Status
	}
	if in.CategoryID != nil {
		updates["category_id"] = *in.CategoryID
	}
	if in.PlatformID.Set {
		updates["platform_id"] = in.PlatformID.Value
	}
	if in.IsFavorite != nil {
		updates["is_favorite"] = *in.IsFavorite
	}

	if err := s.db.Model(game).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.reload(gameID)
}

// Delete soft-deletes the game. Games are never a delete-conflict target.
func (s *GameService) Delete(userID, gameID uint) error {
	game, err := s.fetchOwned(userID, gameID)
	if err != nil {
		return err
	}
	return s.db.Model(game).Update("is_deleted", true).Error
}

// resolveFinishDate applies the status/date policy. Playing silently discards
// any finish date; Done/Abandoned require one resolvable from the payload or
// the stored row, and it must not precede the acquisition date.
func resolveFinishDate(status models.GameStatus, acquisition time.Time, supplied, stored *time.Time) (*time.Time, error) {
	if status == models.StatusPlaying {
		return nil, nil
	}

	finish := supplied
	if finish == nil {
		finish = stored
	}
	if finish == nil {
		return nil, validationError("Finish date is required for Done or Abandoned status.")
	}
	if finish.Before(acquisition) {
		return nil, validationError("Finish date cannot be earlier than acquisition date.")
	}
	return finish, nil
}

func (s *GameService) fetchOwned(userID, gameID uint) (*models.Game, error) {
	var game models.Game
	err := s.db.Where("id = ? AND user_id = ? AND is_deleted = ?", gameID, userID, false).
		First(&game).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFoundError("Game not found or access denied.")
	}
	if err != nil {
		return nil, err
	}
	return &game, nil
}

// checkCategoryOwned rejects dangling and cross-user references with the same
// error, so a foreign id leaks nothing about other users' rows.
func (s *GameService) checkCategoryOwned(userID, categoryID uint) error {
	var count int64
	err := s.db.Model(&models.Category{}).
		Where("id = ? AND user_id = ? AND is_deleted = ?", categoryID, userID, false).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count == 0 {
		return notFoundError("Category not found or access denied.")
	}
	return nil
}

func (s *GameService) checkPlatformOwned(userID, platformID uint) error {
	var count int64
	err := s.db.Model(&models.Platform{}).
		Where("id = ? AND user_id = ? AND is_deleted = ?", platformID, userID, false).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count == 0 {
		return notFoundError("Platform not found or access denied.")
	}
	return nil
}

func (s *GameService) titleTaken(userID uint, title string, excludeID uint) (bool, error) {
	query := s.db.Model(&models.Game{}).
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

func (s *GameService) searchIDs(userID uint, search string) ([]uint, error) {
	var rows []models.Game
	err := s.db.Select("id", "title", "description").
		Where("user_id = ? AND is_deleted = ?", userID, false).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(search)
	var ids []uint
	for _, g := range rows {
		if strings.Contains(strings.ToLower(g.Title), needle) {
			ids = append(ids, g.ID)
			continue
		}
		if g.Description != nil && strings.Contains(strings.ToLower(*g.Description), needle) {
			ids = append(ids, g.ID)
		}
	}
	return ids, nil
}

func (s *GameService) reload(gameID uint) (*models.Game, error) {
	var game models.Game
	err := s.db.Preload("Category").Preload("Platform").First(&game, gameID).Error
	if err != nil {
		return nil, err
	}
	return &game, nil
}
