package handler

import (
	"net/http"
	"strings"

	"gameshelf/backend/internal/database"
	"gameshelf/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CategoryRequest is the payload for creating or updating a category.
type CategoryRequest struct {
	Name        string  `json:"name" example:"RPG"`
	Description *string `json:"description"`
}

// validate trims and applies the structural checks shared by create and update.
func (r *CategoryRequest) validate() (string, bool) {
	r.Name = strings.TrimSpace(r.Name)
	if len(r.Name) < 3 {
		return "Category name is required and must be at least 3 characters long.", false
	}
	if r.Description != nil {
		trimmed := strings.TrimSpace(*r.Description)
		r.Description = &trimmed
	}
	return "", true
}

// CreateCategory godoc
// @Summary      Create a category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body CategoryRequest true "Category Info"
// @Success      201  {object}  Response{data=CategoryResponse}
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /categories [post]
func CreateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if msg, ok := req.validate(); !ok {
		respondError(c, http.StatusBadRequest, msg)
		return
	}

	category, err := service.NewCategoryService(database.DB).Create(currentUserID(c), service.CreateCategoryInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondData(c, http.StatusCreated, "Category created successfully", newCategoryResponse(*category, 0))
}

// GetCategories godoc
// @Summary      List categories
// @Description  Returns the user's categories, newest first, with game counts.
// @Tags         categories
// @Produce      json
// @Security     BearerAuth
// @Param        page  query int false "Page number" default(1)
// @Param        limit query int false "Items per page" default(15)
// @Success      200  {object}  Response{data=[]CategoryResponse}
// @Failure      401  {object}  ErrorResponse
// @Router       /categories [get]
func GetCategories(c *gin.Context) {
	result, err := service.NewCategoryService(database.DB).ListPaginated(currentUserID(c), pageParams(c, 15))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondList(c, "Categories retrieved successfully", newCategoryResponses(result.Items), newPagination(result))
}

// GetAllCategories godoc
// @Summary      List all categories without pagination
// @Tags         categories
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  Response{data=[]CategoryResponse}
// @Failure      401  {object}  ErrorResponse
// @Router       /categories/all [get]
func GetAllCategories(c *gin.Context) {
	categories, err := service.NewCategoryService(database.DB).ListAll(currentUserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondData(c, http.StatusOK, "All categories retrieved successfully", newCategoryResponses(categories))
}

// GetCategoryByID godoc
// @Summary      Get a category
// @Tags         categories
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Category ID"
// @Success      200  {object}  Response{data=CategoryResponse}
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /categories/{id} [get]
func GetCategoryByID(c *gin.Context) {
	id, ok := idParam(c, "Invalid category ID")
	if !ok {
		return
	}

	category, err := service.NewCategoryService(database.DB).GetByID(currentUserID(c), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondData(c, http.StatusOK, "Category retrieved successfully", newCategoryResponse(category.Category, category.GamesCount))
}

// UpdateCategory godoc
// @Summary      Update a category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Category ID"
// @Param        input body CategoryRequest true "New Category Info"
// @Success      200  {object}  Response{data=CategoryResponse}
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /categories/{id} [put]
func UpdateCategory(c *gin.Context) {
	id, ok := idParam(c, "Invalid category ID")
	if !ok {
		return
	}

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if msg, ok := req.validate(); !ok {
		respondError(c, http.StatusBadRequest, msg)
		return
	}

	category, err := service.NewCategoryService(database.DB).Update(currentUserID(c), id, service.UpdateCategoryInput{
		Name:        &req.Name,
		Description: req.Description,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondData(c, http.StatusOK, "Category updated successfully", newCategoryResponse(*category, 0))
}

// DeleteCategory godoc
// @Summary      Delete a category
// @Description  Soft-deletes the category unless games still reference it.
// @Tags         categories
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Category ID"
// @Success      200  {object}  Response
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse "Games still reference this category"
// @Router       /categories/{id} [delete]
func DeleteCategory(c *gin.Context) {
	id, ok := idParam(c, "Invalid category ID")
	if !ok {
		return
	}

	if err := service.NewCategoryService(database.DB).Delete(currentUserID(c), id); err != nil {
		respondServiceError(c, err)
		return
	}

	respondMessage(c, http.StatusOK, "Category deleted successfully")
}
