package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gameshelf/backend/internal/auth"
	"gameshelf/backend/internal/config"
	"gameshelf/backend/internal/database"
	"gameshelf/backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// envelope mirrors Response with the payload left raw for per-test decoding.
type envelope struct {
	Success    bool            `json:"success"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
	Pagination *Pagination     `json:"pagination"`
}

// setupRouter wires the full route table from cmd/server against an in-memory
// database, minus the swagger mount.
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	config.AppConfig = &config.Config{JWTSecret: "test-secret"}

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Category{}, &models.Platform{}, &models.Game{}))
	database.DB = db

	router := gin.New()
	apiV1 := router.Group("/api/v1")

	authRoutes := apiV1.Group("/auth")
	authRoutes.POST("/register", Register)
	authRoutes.POST("/login", Login)

	userRoutes := apiV1.Group("/users")
	userRoutes.Use(auth.AuthMiddleware())
	userRoutes.GET("/me", GetMe)

	categoryRoutes := apiV1.Group("/categories")
	categoryRoutes.Use(auth.AuthMiddleware())
	categoryRoutes.GET("", GetCategories)
	categoryRoutes.GET("/all", GetAllCategories)
	categoryRoutes.GET("/:id", GetCategoryByID)
	categoryRoutes.POST("", CreateCategory)
	categoryRoutes.PUT("/:id", UpdateCategory)
	categoryRoutes.DELETE("/:id", DeleteCategory)

	platformRoutes := apiV1.Group("/platforms")
	platformRoutes.Use(auth.AuthMiddleware())
	platformRoutes.GET("", GetPlatforms)
	platformRoutes.GET("/all", GetAllPlatforms)
	platformRoutes.GET("/:id", GetPlatformByID)
	platformRoutes.POST("", CreatePlatform)
	platformRoutes.PUT("/:id", UpdatePlatform)
	platformRoutes.DELETE("/:id", DeletePlatform)

	gameRoutes := apiV1.Group("/games")
	gameRoutes.Use(auth.AuthMiddleware())
	gameRoutes.GET("", GetGames)
	gameRoutes.GET("/:id", GetGameByID)
	gameRoutes.POST("", CreateGame)
	gameRoutes.PUT("/:id", UpdateGame)
	gameRoutes.DELETE("/:id", DeleteGame)

	dashboardRoutes := apiV1.Group("/dashboard")
	dashboardRoutes.Use(auth.AuthMiddleware())
	dashboardRoutes.GET("/stats", GetDashboardStats)
	dashboardRoutes.GET("/games-by-status", GetGamesByStatus)
	dashboardRoutes.GET("/recent-games", GetRecentGames)

	return router
}

// doJSON performs a request with an optional JSON body and bearer token.
func doJSON(t *testing.T, router *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func doBasicLogin(t *testing.T, router *gin.Engine, email, password string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", nil)
	req.SetBasicAuth(email, password)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

// registerAndLogin creates an account and returns a usable bearer token.
func registerAndLogin(t *testing.T, router *gin.Engine, email string) string {
	t.Helper()

	w := doJSON(t, router, http.MethodPost, "/api/v1/auth/register", "",
		`{"fullName":"Test User","email":"`+email+`","password":"Password1!","confirmPassword":"Password1!"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doBasicLogin(t, router, email, "Password1!")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var login LoginResponse
	env := decodeEnvelope(t, w)
	require.NoError(t, json.Unmarshal(env.Data, &login))
	require.NotEmpty(t, login.Token)
	return login.Token
}

// createCategory posts a category and returns its id.
func createCategory(t *testing.T, router *gin.Engine, token, name string) uint {
	t.Helper()

	w := doJSON(t, router, http.MethodPost, "/api/v1/categories", token, `{"name":"`+name+`"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created CategoryResponse
	env := decodeEnvelope(t, w)
	require.NoError(t, json.Unmarshal(env.Data, &created))
	return created.ID
}

// createPlatform posts a platform and returns its id.
func createPlatform(t *testing.T, router *gin.Engine, token, title string) uint {
	t.Helper()

	w := doJSON(t, router, http.MethodPost, "/api/v1/platforms", token, `{"title":"`+title+`"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created PlatformResponse
	env := decodeEnvelope(t, w)
	require.NoError(t, json.Unmarshal(env.Data, &created))
	return created.ID
}
