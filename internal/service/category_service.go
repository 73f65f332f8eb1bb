package service

import (
	"errors"
	"strings"
	"time"

	"gameshelf/backend/internal/models"

	"gorm.io/gorm"
)

type CategoryService struct {
	db *gorm.DB
}

func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{db: db}
}

type CreateCategoryInput struct {
	Name        string
	Description *string
}

type UpdateCategoryInput struct {
	Name        *string
	Description *string
}

// CategoryWithCount pairs a category with the number of non-deleted games in it.
type CategoryWithCount struct {
	models.Category
	GamesCount int64
}

// Create inserts a new category for the user after checking that no other
// non-deleted category of theirs carries the same name (case-insensitively).
func (s *CategoryService) Create(userID uint, in CreateCategoryInput) (*models.Category, error) {
	taken, err := s.nameTaken(userID, in.Name, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, duplicateNameError("A category with this name already exists.")
	}

	category := models.Category{
		Name:        in.Name,
		Description: in.Description,
		UserID:      userID,
	}
	if err := s.db.Create(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// ListPaginated returns the user's categories newest first.
func (s *CategoryService) ListPaginated(userID uint, pp PageParams) (*Paginated[CategoryWithCount], error) {
	var totalItems int64
	base := s.db.Model(&models.Category{}).Where("user_id = ? AND is_deleted = ?", userID, false)
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, err
	}

	var categories []models.Category
	err := s.db.Where("user_id = ? AND is_deleted = ?", userID, false).
		Order("created_at DESC").
		Offset(pp.Skip).Limit(pp.Take).
		Find(&categories).Error
	if err != nil {
		return nil, err
	}

	withCounts, err := s.attachGameCounts(userID, categories)
	if err != nil {
		return nil, err
	}
	return newPaginated(withCounts, totalItems, pp), nil
}

// ListAll returns every non-deleted category of the user, name ascending.
// Used by the game form, which needs the full set rather than a page.
func (s *CategoryService) ListAll(userID uint) ([]CategoryWithCount, error) {
	var categories []models.Category
	err := s.db.Where("user_id = ? AND is_deleted = ?", userID, false).
		Order("name ASC").
		Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return s.attachGameCounts(userID, categories)
}

func (s *CategoryService) GetByID(userID, categoryID uint) (*CategoryWithCount, error) {
	category, err := s.fetchOwned(userID, categoryID)
	if err != nil {
		return nil, err
	}

	withCounts, err := s.attachGameCounts(userID, []models.Category{*category})
	if err != nil {
		return nil, err
	}
	return &withCounts[0], nil
}

// Update applies only the supplied fields; omitted fields keep their stored value.
func (s *CategoryService) Update(userID, categoryID uint, in UpdateCategoryInput) (*models.Category, error) {
	category, err := s.fetchOwned(userID, categoryID)
	if err != nil {
		return nil, err
	}

	if in.Name != nil && *in.Name != category.Name {
		taken, err := s.nameTaken(userID, *in.Name, categoryID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, duplicateNameError("A category with this name already exists.")
		}
	}

	updates := map[string]interface{}{
		// Touched even when nothing else changed.
		"updated_at": time.Now(),
	}
	if in.Name != nil {
		updates["name"] = *in.Name
	}
	if in.Description != nil {
		updates["description"] = *in.Description
	}
	if err := s.db.Model(category).Updates(updates).Error; err != nil {
		return nil, err
	}
	return category, nil
}

// Delete soft-deletes the category unless non-deleted games still reference it.
func (s *CategoryService) Delete(userID, categoryID uint) error {
	category, err := s.fetchOwned(userID, categoryID)
	if err != nil {
		return err
	}

	var gameCount int64
	err = s.db.Model(&models.Game{}).
		Where("category_id = ? AND is_deleted = ?", categoryID, false).
		Count(&gameCount).Error
	if err != nil {
		return err
	}
	if gameCount > 0 {
		return conflictError("Cannot delete category that has games associated with it.")
	}

	return s.db.Model(category).Update("is_deleted", true).Error
}

func (s *CategoryService) fetchOwned(userID, categoryID uint) (*models.Category, error) {
	var category models.Category
	err := s.db.Where("id = ? AND user_id = ? AND is_deleted = ?", categoryID, userID, false).
		First(&category).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFoundError("Category not found.")
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// nameTaken compares the candidate against the user's non-deleted categories in
// memory, mirroring the read-then-write uniqueness check the storage layer does
// not enforce. excludeID skips the row being updated.
func (s *CategoryService) nameTaken(userID uint, name string, excludeID uint) (bool, error) {
	query := s.db.Model(&models.Category{}).
		Where("user_id = ? AND is_deleted = ?", userID, false)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var names []string
	if err := query.Pluck("name", &names).Error; err != nil {
		return false, err
	}

	for _, existing := range names {
		if strings.EqualFold(existing, name) {
			return true, nil
		}
	}
	return false, nil
}

func (s *CategoryService) attachGameCounts(userID uint, categories []models.Category) ([]CategoryWithCount, error) {
	counts := make(map[uint]int64)
	if len(categories) > 0 {
		type row struct {
			CategoryID uint
			Total      int64
		}
		var rows []row
		err := s.db.Model(&models.Game{}).
			Select("category_id, COUNT(*) AS total").
			Where("user_id = ? AND is_deleted = ?", userID, false).
			Group("category_id").
			Scan(&rows).Error
		if err != nil {
			return nil, err
		}
		for _, r := range rows {
			counts[r.CategoryID] = r.Total
		}
	}

	result := make([]CategoryWithCount, len(categories))
	for i, category := range categories {
		result[i] = CategoryWithCount{Category: category, GamesCount: counts[category.ID]}
	}
	return result, nil
}
