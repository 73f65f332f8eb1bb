package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGameCollectionFlow walks the happy path a fresh user takes: sign up, log
// in, set up a category and platform, add a game, read it back from the list.
func TestGameCollectionFlow(t *testing.T) {
	router := setupRouter(t)

	token := registerAndLogin(t, router, "jane@example.com")
	categoryID := createCategory(t, router, token, "RPG")
	platformID := createPlatform(t, router, token, "PC")

	yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")
	w := doJSON(t, router, http.MethodPost, "/api/v1/games", token,
		fmt.Sprintf(`{"title":"Elden Ring","acquisitionDate":"%s","status":"Playing","categoryId":%d,"platformId":%d}`,
			yesterday, categoryID, platformID))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "Game created successfully", decodeEnvelope(t, w).Message)

	w = doJSON(t, router, http.MethodGet, "/api/v1/games", token, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	env := decodeEnvelope(t, w)
	assert.True(t, env.Success)
	assert.Equal(t, "Games retrieved successfully", env.Message)
	require.NotNil(t, env.Pagination)
	assert.Equal(t, int64(1), env.Pagination.TotalItems)

	var games []GameResponse
	require.NoError(t, json.Unmarshal(env.Data, &games))
	require.Len(t, games, 1)
	assert.Equal(t, "Elden Ring", games[0].Title)
	assert.Nil(t, games[0].FinishDate)
	assert.Equal(t, "RPG", games[0].Category.Name)
	require.NotNil(t, games[0].Platform)
	assert.Equal(t, "PC", games[0].Platform.Title)
}

func TestCreateGameStructuralValidation(t *testing.T) {
	router := setupRouter(t)
	token := registerAndLogin(t, router, "u@example.com")
	categoryID := createCategory(t, router, token, "RPG")

	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	cases := []struct {
		name    string
		body    string
		message string
	}{
		{
			"short title",
			fmt.Sprintf(`{"title":"ab","acquisitionDate":"2024-01-01","status":"Playing","categoryId":%d}`, categoryID),
			"Game title is required and must be at least 3 characters long.",
		},
		{
			"missing category",
			`{"title":"Elden Ring","acquisitionDate":"2024-01-01","status":"Playing"}`,
			"Category ID is required and must be a number.",
		},
		{
			"unknown status",
			fmt.Sprintf(`{"title":"Elden Ring","acquisitionDate":"2024-01-01","status":"Paused","categoryId":%d}`, categoryID),
			"Status is required and must be Playing, Done, or Abandoned.",
		},
		{
			"missing acquisition date",
			fmt.Sprintf(`{"title":"Elden Ring","status":"Playing","categoryId":%d}`, categoryID),
			"Acquisition date is required.",
		},
		{
			"unparseable acquisition date",
			fmt.Sprintf(`{"title":"Elden Ring","acquisitionDate":"25/02/2024","status":"Playing","categoryId":%d}`, categoryID),
			"Invalid acquisition date.",
		},
		{
			"future acquisition date",
			fmt.Sprintf(`{"title":"Elden Ring","acquisitionDate":"%s","status":"Playing","categoryId":%d}`, tomorrow, categoryID),
			"Acquisition date cannot be in the future.",
		},
		{
			"future finish date",
			fmt.Sprintf(`{"title":"Elden Ring","acquisitionDate":"2024-01-01","finishDate":"%s","status":"Done","categoryId":%d}`, tomorrow, categoryID),
			"Finish date cannot be in the future.",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doJSON(t, router, http.MethodPost, "/api/v1/games", token, tc.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tc.message, decodeEnvelope(t, w).Message)
		})
	}
}

func TestCreateGameDoneNeedsFinishDate(t *testing.T) {
	router := setupRouter(t)
	token := registerAndLogin(t, router, "u@example.com")
	categoryID := createCategory(t, router, token, "RPG")

	w := doJSON(t, router, http.MethodPost, "/api/v1/games", token,
		fmt.Sprintf(`{"title":"Hades","acquisitionDate":"2024-01-01","status":"Done","categoryId":%d}`, categoryID))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Finish date is required for Done or Abandoned status.", decodeEnvelope(t, w).Message)
}

func TestCreateGameForeignCategory(t *testing.T) {
	router := setupRouter(t)
	ownerToken := registerAndLogin(t, router, "owner@example.com")
	otherToken := registerAndLogin(t, router, "other@example.com")
	categoryID := createCategory(t, router, ownerToken, "RPG")

	w := doJSON(t, router, http.MethodPost, "/api/v1/games", otherToken,
		fmt.Sprintf(`{"title":"Elden Ring","acquisitionDate":"2024-01-01","status":"Playing","categoryId":%d}`, categoryID))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Category not found or access denied.", decodeEnvelope(t, w).Message)
}

func TestUpdateGamePlatformDetach(t *testing.T) {
	router := setupRouter(t)
	token := registerAndLogin(t, router, "u@example.com")
	categoryID := createCategory(t, router, token, "RPG")
	platformID := createPlatform(t, router, token, "PC")

	w := doJSON(t, router, http.MethodPost, "/api/v1/games", token,
		fmt.Sprintf(`{"title":"Elden Ring","acquisitionDate":"2024-01-01","status":"Playing","categoryId":%d,"platformId":%d}`, categoryID, platformID))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created GameResponse
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &created))
	require.NotNil(t, created.Platform)

	// An update that does not mention platformId keeps it.
	w = doJSON(t, router, http.MethodPut, fmt.Sprintf("/api/v1/games/%d", created.ID), token, `{"isFavorite":true}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var updated GameResponse
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &updated))
	assert.NotNil(t, updated.Platform)
	assert.True(t, updated.IsFavorite)

	// An explicit null detaches it.
	w = doJSON(t, router, http.MethodPut, fmt.Sprintf("/api/v1/games/%d", created.ID), token, `{"platformId":null}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &updated))
	assert.Nil(t, updated.Platform)
}

func TestUpdateGamePlatformMustBeNumberOrNull(t *testing.T) {
	router := setupRouter(t)
	token := registerAndLogin(t, router, "u@example.com")
	categoryID := createCategory(t, router, token, "RPG")

	w := doJSON(t, router, http.MethodPost, "/api/v1/games", token,
		fmt.Sprintf(`{"title":"Elden Ring","acquisitionDate":"2024-01-01","status":"Playing","categoryId":%d}`, categoryID))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created GameResponse
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &created))

	w = doJSON(t, router, http.MethodPut, fmt.Sprintf("/api/v1/games/%d", created.ID), token, `{"platformId":"abc"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Platform ID must be a number or null.", decodeEnvelope(t, w).Message)
}

func TestDeleteGameThenGone(t *testing.T) {
	router := setupRouter(t)
	token := registerAndLogin(t, router, "u@example.com")
	categoryID := createCategory(t, router, token, "RPG")

	w := doJSON(t, router, http.MethodPost, "/api/v1/games", token,
		fmt.Sprintf(`{"title":"Elden Ring","acquisitionDate":"2024-01-01","status":"Playing","categoryId":%d}`, categoryID))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created GameResponse
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &created))

	w = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/api/v1/games/%d", created.ID), token, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Game deleted successfully", decodeEnvelope(t, w).Message)

	w = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/v1/games/%d", created.ID), token, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Game not found or access denied.", decodeEnvelope(t, w).Message)
}

func TestGameListSearchFilter(t *testing.T) {
	router := setupRouter(t)
	token := registerAndLogin(t, router, "u@example.com")
	categoryID := createCategory(t, router, token, "RPG")

	for _, title := range []string{"Elden Ring", "Baldur's Gate 3", "Hades"} {
		payload, err := json.Marshal(map[string]interface{}{
			"title":           title,
			"acquisitionDate": "2024-01-01",
			"status":          "Playing",
			"categoryId":      categoryID,
		})
		require.NoError(t, err)
		w := doJSON(t, router, http.MethodPost, "/api/v1/games", token, string(payload))
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	w := doJSON(t, router, http.MethodGet, "/api/v1/games?search=elden", token, "")
	require.Equal(t, http.StatusOK, w.Code)

	env := decodeEnvelope(t, w)
	var games []GameResponse
	require.NoError(t, json.Unmarshal(env.Data, &games))
	require.Len(t, games, 1)
	assert.Equal(t, "Elden Ring", games[0].Title)
	require.NotNil(t, env.Pagination)
	assert.Equal(t, int64(1), env.Pagination.TotalItems)
}
