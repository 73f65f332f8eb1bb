package handler

import (
	"time"

	"gameshelf/backend/internal/models"
	"gameshelf/backend/internal/service"
)

const dateLayout = "2006-01-02"

// parseDate accepts the date-only form the frontend sends as well as full
// RFC 3339 timestamps.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// region --- Response DTOs ---

// UserResponse is a user profile without credentials or internal flags.
type UserResponse struct {
	ID        uint      `json:"id" example:"1"`
	FullName  string    `json:"fullName" example:"Jane Doe"`
	Email     string    `json:"email" example:"jane@example.com"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func newUserResponse(user models.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		FullName:  user.FullName,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

type CategoryResponse struct {
	ID          uint      `json:"id" example:"1"`
	Name        string    `json:"name" example:"RPG"`
	Description *string   `json:"description"`
	GamesCount  int64     `json:"gamesCount"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func newCategoryResponse(category models.Category, gamesCount int64) CategoryResponse {
	return CategoryResponse{
		ID:          category.ID,
		Name:        category.Name,
		Description: category.Description,
		GamesCount:  gamesCount,
		CreatedAt:   category.CreatedAt,
		UpdatedAt:   category.UpdatedAt,
	}
}

func newCategoryResponses(categories []service.CategoryWithCount) []CategoryResponse {
	responses := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		responses[i] = newCategoryResponse(c.Category, c.GamesCount)
	}
	return responses
}

type PlatformResponse struct {
	ID              uint      `json:"id" example:"1"`
	Title           string    `json:"title" example:"PC"`
	Company         *string   `json:"company"`
	AcquisitionYear *int      `json:"acquisitionYear"`
	ImageURL        *string   `json:"imageUrl"`
	GamesCount      int64     `json:"gamesCount"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func newPlatformResponse(platform models.Platform, gamesCount int64) PlatformResponse {
	return PlatformResponse{
		ID:              platform.ID,
		Title:           platform.Title,
		Company:         platform.Company,
		AcquisitionYear: platform.AcquisitionYear,
		ImageURL:        platform.ImageURL,
		GamesCount:      gamesCount,
		CreatedAt:       platform.CreatedAt,
		UpdatedAt:       platform.UpdatedAt,
	}
}

func newPlatformResponses(platforms []service.PlatformWithCount) []PlatformResponse {
	responses := make([]PlatformResponse, len(platforms))
	for i, p := range platforms {
		responses[i] = newPlatformResponse(p.Platform, p.GamesCount)
	}
	return responses
}

// CategoryRef is the category summary embedded in game responses.
type CategoryRef struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// PlatformRef is the platform summary embedded in game responses.
type PlatformRef struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
}

type GameResponse struct {
	ID              uint              `json:"id" example:"1"`
	Title           string            `json:"title" example:"Elden Ring"`
	Description     *string           `json:"description"`
	ImageURL        *string           `json:"imageUrl"`
	AcquisitionDate time.Time         `json:"acquisitionDate"`
	FinishDate      *time.Time        `json:"finishDate"`
	Status          models.GameStatus `json:"status" example:"Playing"`
	IsFavorite      bool              `json:"isFavorite"`
	Category        CategoryRef       `json:"category"`
	Platform        *PlatformRef      `json:"platform"`
	CreatedAt       time.Time         `json:"createdAt"`
	UpdatedAt       time.Time         `json:"updatedAt"`
}

func newGameResponse(game models.Game) GameResponse {
	response := GameResponse{
		ID:              game.ID,
		Title:           game.Title,
		Description:     game.Description,
		ImageURL:        game.ImageURL,
		AcquisitionDate: game.AcquisitionDate,
		FinishDate:      game.FinishDate,
		Status:          game.Status,
		IsFavorite:      game.IsFavorite,
		Category:        CategoryRef{ID: game.Category.ID, Name: game.Category.Name},
		CreatedAt:       game.CreatedAt,
		UpdatedAt:       game.UpdatedAt,
	}
	if game.Platform != nil {
		response.Platform = &PlatformRef{ID: game.Platform.ID, Title: game.Platform.Title}
	}
	return response
}

func newGameResponses(games []models.Game) []GameResponse {
	responses := make([]GameResponse, len(games))
	for i, g := range games {
		responses[i] = newGameResponse(g)
	}
	return responses
}

// RecentGameResponse is the trimmed game shape the dashboard shows.
type RecentGameResponse struct {
	ID         uint              `json:"id"`
	Title      string            `json:"title"`
	Status     models.GameStatus `json:"status"`
	IsFavorite bool              `json:"isFavorite"`
	Category   CategoryRef       `json:"category"`
	Platform   *PlatformRef      `json:"platform"`
	CreatedAt  time.Time         `json:"createdAt"`
}

func newRecentGameResponses(games []models.Game) []RecentGameResponse {
	responses := make([]RecentGameResponse, len(games))
	for i, g := range games {
		responses[i] = RecentGameResponse{
			ID:         g.ID,
			Title:      g.Title,
			Status:     g.Status,
			IsFavorite: g.IsFavorite,
			Category:   CategoryRef{ID: g.Category.ID, Name: g.Category.Name},
			CreatedAt:  g.CreatedAt,
		}
		if g.Platform != nil {
			responses[i].Platform = &PlatformRef{ID: g.Platform.ID, Title: g.Platform.Title}
		}
	}
	return responses
}

// ErrorResponse documents the failure envelope for swagger.
type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Message string `json:"message" example:"An error message"`
}

// endregion
