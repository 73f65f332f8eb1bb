package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCategoryValidation(t *testing.T) {
	router := setupRouter(t)
	token := registerAndLogin(t, router, "u@example.com")

	w := doJSON(t, router, http.MethodPost, "/api/v1/categories", token, `{"name":"  ab  "}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Category name is required and must be at least 3 characters long.", decodeEnvelope(t, w).Message)
}

func TestCreateCategoryDuplicate(t *testing.T) {
	router := setupRouter(t)
	token := registerAndLogin(t, router, "u@example.com")
	createCategory(t, router, token, "RPG")

	w := doJSON(t, router, http.MethodPost, "/api/v1/categories", token, `{"name":"rpg"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "A category with this name already exists.", decodeEnvelope(t, w).Message)
}

func TestGetCategoryInvalidID(t *testing.T) {
	router := setupRouter(t)
	token := registerAndLogin(t, router, "u@example.com")

	w := doJSON(t, router, http.MethodGet, "/api/v1/categories/abc", token, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid category ID", decodeEnvelope(t, w).Message)
}

func TestGetCategoryNotFound(t *testing.T) {
	router := setupRouter(t)
	token := registerAndLogin(t, router, "u@example.com")

	w := doJSON(t, router, http.MethodGet, "/api/v1/categories/9999", token, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Category not found.", decodeEnvelope(t, w).Message)
}

func TestCategoriesAreUserScoped(t *testing.T) {
	router := setupRouter(t)
	ownerToken := registerAndLogin(t, router, "owner@example.com")
	otherToken := registerAndLogin(t, router, "other@example.com")

	categoryID := createCategory(t, router, ownerToken, "RPG")

	// Invisible to the other user, as 404 rather than 403.
	w := doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/v1/categories/%d", categoryID), otherToken, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/v1/categories", otherToken, "")
	require.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w)
	var items []CategoryResponse
	require.NoError(t, json.Unmarshal(env.Data, &items))
	assert.Empty(t, items)
}

func TestCategoryListPagination(t *testing.T) {
	router := setupRouter(t)
	token := registerAndLogin(t, router, "u@example.com")
	for _, name := range []string{"RPG", "Shooter", "Strategy"} {
		createCategory(t, router, token, name)
	}

	w := doJSON(t, router, http.MethodGet, "/api/v1/categories?page=1&limit=2", token, "")
	require.Equal(t, http.StatusOK, w.Code)

	env := decodeEnvelope(t, w)
	assert.Equal(t, "Categories retrieved successfully", env.Message)
	require.NotNil(t, env.Pagination)
	assert.Equal(t, int64(3), env.Pagination.TotalItems)
	assert.Equal(t, 2, env.Pagination.TotalPages)
	assert.True(t, env.Pagination.HasNext)
	assert.False(t, env.Pagination.HasPrev)

	var items []CategoryResponse
	require.NoError(t, json.Unmarshal(env.Data, &items))
	assert.Len(t, items, 2)
}

func TestDeleteCategoryConflict(t *testing.T) {
	router := setupRouter(t)
	token := registerAndLogin(t, router, "u@example.com")
	categoryID := createCategory(t, router, token, "RPG")

	w := doJSON(t, router, http.MethodPost, "/api/v1/games", token,
		fmt.Sprintf(`{"title":"Elden Ring","acquisitionDate":"2024-02-25","status":"Playing","categoryId":%d}`, categoryID))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/api/v1/categories/%d", categoryID), token, "")
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "Cannot delete category that has games associated with it.", decodeEnvelope(t, w).Message)
}

func TestUpdateCategory(t *testing.T) {
	router := setupRouter(t)
	token := registerAndLogin(t, router, "u@example.com")
	categoryID := createCategory(t, router, token, "RPG")

	w := doJSON(t, router, http.MethodPut, fmt.Sprintf("/api/v1/categories/%d", categoryID), token,
		`{"name":"CRPG","description":"Computer role-playing games"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	env := decodeEnvelope(t, w)
	assert.Equal(t, "Category updated successfully", env.Message)

	var updated CategoryResponse
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.Equal(t, "CRPG", updated.Name)
	require.NotNil(t, updated.Description)
	assert.Equal(t, "Computer role-playing games", *updated.Description)
}
