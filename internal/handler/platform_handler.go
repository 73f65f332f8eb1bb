package handler

import (
	"net/http"
	"strings"

	"gameshelf/backend/internal/database"
	"gameshelf/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// PlatformRequest is the payload for creating or updating a platform.
type PlatformRequest struct {
	Title           string  `json:"title" example:"PC"`
	Company         *string `json:"company"`
	AcquisitionYear *int    `json:"acquisitionYear"`
	ImageURL        *string `json:"imageUrl"`
}

// validate trims the payload. Platform titles only need to be non-empty;
// real platform names ("PC", "PS5") are often shorter than category names.
func (r *PlatformRequest) validate() (string, bool) {
	r.Title = strings.TrimSpace(r.Title)
	if r.Title == "" {
		return "Platform title is required.", false
	}
	if r.Company != nil {
		trimmed := strings.TrimSpace(*r.Company)
		r.Company = &trimmed
	}
	return "", true
}

// CreatePlatform godoc
// @Summary      Create a platform
// @Tags         platforms
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body PlatformRequest true "Platform Info"
// @Success      201  {object}  Response{data=PlatformResponse}
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /platforms [post]
func CreatePlatform(c *gin.Context) {
	var req PlatformRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if msg, ok := req.validate(); !ok {
		respondError(c, http.StatusBadRequest, msg)
		return
	}

	platform, err := service.NewPlatformService(database.DB).Create(currentUserID(c), service.CreatePlatformInput{
		Title:           req.Title,
		Company:         req.Company,
		AcquisitionYear: req.AcquisitionYear,
		ImageURL:        req.ImageURL,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondData(c, http.StatusCreated, "Platform created successfully", newPlatformResponse(*platform, 0))
}

// GetPlatforms godoc
// @Summary      List platforms
// @Description  Returns the user's platforms, newest first, with game counts.
// @Tags         platforms
// @Produce      json
// @Security     BearerAuth
// @Param        page  query int false "Page number" default(1)
// @Param        limit query int false "Items per page" default(10)
// @Success      200  {object}  Response{data=[]PlatformResponse}
// @Failure      401  {object}  ErrorResponse
// @Router       /platforms [get]
func GetPlatforms(c *gin.Context) {
	result, err := service.NewPlatformService(database.DB).ListPaginated(currentUserID(c), pageParams(c, 10))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondList(c, "Platforms retrieved successfully", newPlatformResponses(result.Items), newPagination(result))
}

// GetAllPlatforms godoc
// @Summary      List all platforms without pagination
// @Tags         platforms
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  Response{data=[]PlatformResponse}
// @Failure      401  {object}  ErrorResponse
// @Router       /platforms/all [get]
func GetAllPlatforms(c *gin.Context) {
	platforms, err := service.NewPlatformService(database.DB).ListAll(currentUserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondData(c, http.StatusOK, "All platforms retrieved successfully", newPlatformResponses(platforms))
}

// GetPlatformByID godoc
// @Summary      Get a platform
// @Tags         platforms
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Platform ID"
// @Success      200  {object}  Response{data=PlatformResponse}
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /platforms/{id} [get]
func GetPlatformByID(c *gin.Context) {
	id, ok := idParam(c, "Invalid platform ID")
	if !ok {
		return
	}

	platform, err := service.NewPlatformService(database.DB).GetByID(currentUserID(c), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondData(c, http.StatusOK, "Platform retrieved successfully", newPlatformResponse(platform.Platform, platform.GamesCount))
}

// UpdatePlatform godoc
// @Summary      Update a platform
// @Tags         platforms
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Platform ID"
// @Param        input body PlatformRequest true "New Platform Info"
// @Success      200  {object}  Response{data=PlatformResponse}
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /platforms/{id} [put]
func UpdatePlatform(c *gin.Context) {
	id, ok := idParam(c, "Invalid platform ID")
	if !ok {
		return
	}

	var req PlatformRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if msg, ok := req.validate(); !ok {
		respondError(c, http.StatusBadRequest, msg)
		return
	}

	platform, err := service.NewPlatformService(database.DB).Update(currentUserID(c), id, service.UpdatePlatformInput{
		Title:           &req.Title,
		Company:         req.Company,
		AcquisitionYear: req.AcquisitionYear,
		ImageURL:        req.ImageURL,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondData(c, http.StatusOK, "Platform updated successfully", newPlatformResponse(*platform, 0))
}

// DeletePlatform godoc
// @Summary      Delete a platform
// @Description  Soft-deletes the platform unless games still reference it.
// @Tags         platforms
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Platform ID"
// @Success      200  {object}  Response
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse "Games still reference this platform"
// @Router       /platforms/{id} [delete]
func DeletePlatform(c *gin.Context) {
	id, ok := idParam(c, "Invalid platform ID")
	if !ok {
		return
	}

	if err := service.NewPlatformService(database.DB).Delete(currentUserID(c), id); err != nil {
		respondServiceError(c, err)
		return
	}

	respondMessage(c, http.StatusOK, "Platform deleted successfully")
}
