package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"gameshelf/backend/internal/database"
	"gameshelf/backend/internal/models"
	"gameshelf/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// region --- Request DTOs ---

// GameCreateRequest is the payload for creating a game. Dates arrive as
// YYYY-MM-DD or RFC 3339 strings.
type GameCreateRequest struct {
	Title           string  `json:"title" example:"Elden Ring"`
	Description     *string `json:"description"`
	ImageURL        *string `json:"imageUrl"`
	AcquisitionDate string  `json:"acquisitionDate" example:"2024-02-25"`
	FinishDate      *string `json:"finishDate"`
	Status          string  `json:"status" example:"Playing"`
	CategoryID      uint    `json:"categoryId" example:"1"`
	PlatformID      *uint   `json:"platformId"`
	IsFavorite      *bool   `json:"isFavorite"`
}

// GameUpdateRequest carries only the fields the client wants to change.
// PlatformID is raw JSON so an explicit null (detach) is distinguishable from
// an absent field.
type GameUpdateRequest struct {
	Title           *string         `json:"title"`
	Description     *string         `json:"description"`
	ImageURL        *string         `json:"imageUrl"`
	AcquisitionDate *string         `json:"acquisitionDate"`
	FinishDate      *string         `json:"finishDate"`
	Status          *string         `json:"status"`
	CategoryID      *uint           `json:"categoryId"`
	PlatformID      json.RawMessage `json:"platformId"`
	IsFavorite      *bool           `json:"isFavorite"`
}

// endregion

// region --- Structural validation ---

// parseBoundedDate parses a date field and rejects values in the future.
// The relative ordering against the acquisition date is the service's job.
func parseBoundedDate(value, invalidMsg, futureMsg string) (time.Time, string, bool) {
	t, err := parseDate(value)
	if err != nil {
		return time.Time{}, invalidMsg, false
	}
	if t.After(time.Now()) {
		return time.Time{}, futureMsg, false
	}
	return t, "", true
}

func (r *GameCreateRequest) validate() (service.CreateGameInput, string, bool) {
	var in service.CreateGameInput

	r.Title = strings.TrimSpace(r.Title)
	if len(r.Title) < 3 {
		return in, "Game title is required and must be at least 3 characters long.", false
	}
	if r.CategoryID == 0 {
		return in, "Category ID is required and must be a number.", false
	}
	if !models.ValidGameStatus(models.GameStatus(r.Status)) {
		return in, "Status is required and must be Playing, Done, or Abandoned.", false
	}
	if r.AcquisitionDate == "" {
		return in, "Acquisition date is required.", false
	}

	acquisition, msg, ok := parseBoundedDate(r.AcquisitionDate,
		"Invalid acquisition date.", "Acquisition date cannot be in the future.")
	if !ok {
		return in, msg, false
	}

	var finish *time.Time
	if r.FinishDate != nil && *r.FinishDate != "" {
		t, msg, ok := parseBoundedDate(*r.FinishDate,
			"Invalid finish date.", "Finish date cannot be in the future.")
		if !ok {
			return in, msg, false
		}
		finish = &t
	}

	in = service.CreateGameInput{
		Title:           r.Title,
		Description:     r.Description,
		ImageURL:        r.ImageURL,
		AcquisitionDate: acquisition,
		FinishDate:      finish,
		Status:          models.GameStatus(r.Status),
		CategoryID:      r.CategoryID,
		PlatformID:      r.PlatformID,
	}
	if r.IsFavorite != nil {
		in.IsFavorite = *r.IsFavorite
	}
	return in, "", true
}

func (r *GameUpdateRequest) validate() (service.UpdateGameInput, string, bool) {
	var in service.UpdateGameInput

	if r.Title != nil {
		trimmed := strings.TrimSpace(*r.Title)
		if len(trimmed) < 3 {
			return in, "Game title is required and must be at least 3 characters long.", false
		}
		in.Title = &trimmed
	}
	if r.Status != nil {
		status := models.GameStatus(*r.Status)
		if !models.ValidGameStatus(status) {
			return in, "Status is required and must be Playing, Done, or Abandoned.", false
		}
		in.Status = &status
	}
	if r.AcquisitionDate != nil && *r.AcquisitionDate != "" {
		t, msg, ok := parseBoundedDate(*r.AcquisitionDate,
			"Invalid acquisition date.", "Acquisition date cannot be in the future.")
		if !ok {
			return in, msg, false
		}
		in.AcquisitionDate = &t
	}
	if r.FinishDate != nil && *r.FinishDate != "" {
		t, msg, ok := parseBoundedDate(*r.FinishDate,
			"Invalid finish date.", "Finish date cannot be in the future.")
		if !ok {
			return in, msg, false
		}
		in.FinishDate = &t
	}
	if len(r.PlatformID) > 0 {
		if string(r.PlatformID) == "null" {
			in.PlatformID = service.OptionalUint{Set: true}
		} else {
			id, err := strconv.ParseUint(strings.TrimSpace(string(r.PlatformID)), 10, 32)
			if err != nil {
				return in, "Platform ID must be a number or null.", false
			}
			value := uint(id)
			in.PlatformID = service.OptionalUint{Set: true, Value: &value}
		}
	}

	in.Description = r.Description
	in.ImageURL = r.ImageURL
	in.CategoryID = r.CategoryID
	in.IsFavorite = r.IsFavorite
	return in, "", true
}

// endregion

// region --- Handlers ---

// CreateGame godoc
// @Summary      Add a game to the collection
// @Tags         games
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body GameCreateRequest true "Game Info"
// @Success      201  {object}  Response{data=GameResponse}
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Referenced category or platform not found"
// @Router       /games [post]
func CreateGame(c *gin.Context) {
	var req GameCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	in, msg, ok := req.validate()
	if !ok {
		respondError(c, http.StatusBadRequest, msg)
		return
	}

	game, err := service.NewGameService(database.DB).Create(currentUserID(c), in)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondData(c, http.StatusCreated, "Game created successfully", newGameResponse(*game))
}

// GetGames godoc
// @Summary      List games
// @Description  Returns the user's games, newest first, with optional filters.
// @Tags         games
// @Produce      json
// @Security     BearerAuth
// @Param        search     query string false "Match against title or description"
// @Param        categoryId query int    false "Filter by category"
// @Param        platformId query int    false "Filter by platform"
// @Param        status     query string false "Filter by status" Enums(Playing, Done, Abandoned)
// @Param        isFavorite query bool   false "Filter favorites"
// @Param        page       query int    false "Page number" default(1)
// @Param        limit      query int    false "Items per page" default(10)
// @Success      200  {object}  Response{data=[]GameResponse}
// @Failure      401  {object}  ErrorResponse
// @Router       /games [get]
func GetGames(c *gin.Context) {
	filters := service.GameFilters{Search: c.Query("search")}
	if v, err := strconv.ParseUint(c.Query("categoryId"), 10, 32); err == nil {
		id := uint(v)
		filters.CategoryID = &id
	}
	if v, err := strconv.ParseUint(c.Query("platformId"), 10, 32); err == nil {
		id := uint(v)
		filters.PlatformID = &id
	}
	if status := models.GameStatus(c.Query("status")); models.ValidGameStatus(status) {
		filters.Status = &status
	}
	if v, err := strconv.ParseBool(c.Query("isFavorite")); err == nil {
		filters.IsFavorite = &v
	}

	result, err := service.NewGameService(database.DB).ListPaginated(currentUserID(c), filters, pageParams(c, 10))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondList(c, "Games retrieved successfully", newGameResponses(result.Items), newPagination(result))
}

// GetGameByID godoc
// @Summary      Get a game
// @Tags         games
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Game ID"
// @Success      200  {object}  Response{data=GameResponse}
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /games/{id} [get]
func GetGameByID(c *gin.Context) {
	id, ok := idParam(c, "Invalid game ID")
	if !ok {
		return
	}

	game, err := service.NewGameService(database.DB).GetByID(currentUserID(c), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondData(c, http.StatusOK, "Game retrieved successfully", newGameResponse(*game))
}

// UpdateGame godoc
// @Summary      Update a game
// @Description  Applies only the supplied fields; an explicit null platformId detaches the platform.
// @Tags         games
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Game ID"
// @Param        input body GameUpdateRequest true "Changed fields"
// @Success      200  {object}  Response{data=GameResponse}
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /games/{id} [put]
func UpdateGame(c *gin.Context) {
	id, ok := idParam(c, "Invalid game ID")
	if !ok {
		return
	}

	var req GameUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	in, msg, ok := req.validate()
	if !ok {
		respondError(c, http.StatusBadRequest, msg)
		return
	}

	game, err := service.NewGameService(database.DB).Update(currentUserID(c), id, in)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondData(c, http.StatusOK, "Game updated successfully", newGameResponse(*game))
}

// DeleteGame godoc
// @Summary      Delete a game
// @Tags         games
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Game ID"
// @Success      200  {object}  Response
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /games/{id} [delete]
func DeleteGame(c *gin.Context) {
	id, ok := idParam(c, "Invalid game ID")
	if !ok {
		return
	}

	if err := service.NewGameService(database.DB).Delete(currentUserID(c), id); err != nil {
		respondServiceError(c, err)
		return
	}

	respondMessage(c, http.StatusOK, "Game deleted successfully")
}

// endregion
