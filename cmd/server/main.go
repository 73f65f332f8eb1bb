package main

import (
	"fmt"
	"log"
	"net/http"

	"gameshelf/backend/internal/auth"
	"gameshelf/backend/internal/config"
	"gameshelf/backend/internal/database"
	"gameshelf/backend/internal/handler"

	"github.com/gin-gonic/gin"

	// Swagger imports
	_ "gameshelf/backend/docs" // This is important for swag to find the generated docs

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func init() {
	config.LoadConfig()
}

// @title           GameShelf API
// @version         1.0
// @description     Personal game-collection tracker API.
// @host            localhost:8080
// @BasePath        /api/v1
// @securityDefinitions.apiKey BearerAuth
// @in header
// @name Authorization
func main() {
	// Connect to the database
	database.Connect(config.AppConfig.DatabaseURL)

	router := gin.Default()

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	// API v1 routes
	apiV1 := router.Group("/api/v1")
	{
		// Auth routes
		authRoutes := apiV1.Group("/auth")
		{
			authRoutes.POST("/register", handler.Register)
			authRoutes.POST("/login", handler.Login)
		}

		// User routes (protected)
		userRoutes := apiV1.Group("/users")
		userRoutes.Use(auth.AuthMiddleware())
		{
			userRoutes.GET("/me", handler.GetMe)
		}

		// Category routes (protected)
		categoryRoutes := apiV1.Group("/categories")
		categoryRoutes.Use(auth.AuthMiddleware())
		{
			categoryRoutes.GET("", handler.GetCategories)
			categoryRoutes.GET("/all", handler.GetAllCategories) // Must be before /:id
			categoryRoutes.GET("/:id", handler.GetCategoryByID)
			categoryRoutes.POST("", handler.CreateCategory)
			categoryRoutes.PUT("/:id", handler.UpdateCategory)
			categoryRoutes.DELETE("/:id", handler.DeleteCategory)
		}

		// Platform routes (protected)
		platformRoutes := apiV1.Group("/platforms")
		platformRoutes.Use(auth.AuthMiddleware())
		{
			platformRoutes.GET("", handler.GetPlatforms)
			platformRoutes.GET("/all", handler.GetAllPlatforms) // Must be before /:id
			platformRoutes.GET("/:id", handler.GetPlatformByID)
			platformRoutes.POST("", handler.CreatePlatform)
			platformRoutes.PUT("/:id", handler.UpdatePlatform)
			platformRoutes.DELETE("/:id", handler.DeletePlatform)
		}

		// Game routes (protected)
		gameRoutes := apiV1.Group("/games")
		gameRoutes.Use(auth.AuthMiddleware())
		{
			gameRoutes.GET("", handler.GetGames)
			gameRoutes.GET("/:id", handler.GetGameByID)
			gameRoutes.POST("", handler.CreateGame)
			gameRoutes.PUT("/:id", handler.UpdateGame)
			gameRoutes.DELETE("/:id", handler.DeleteGame)
		}

		// Dashboard routes (protected)
		dashboardRoutes := apiV1.Group("/dashboard")
		dashboardRoutes.Use(auth.AuthMiddleware())
		{
			dashboardRoutes.GET("/stats", handler.GetDashboardStats)
			dashboardRoutes.GET("/games-by-status", handler.GetGamesByStatus)
			dashboardRoutes.GET("/recent-games", handler.GetRecentGames)
		}
	}

	addr := ":" + config.AppConfig.ServerPort
	fmt.Printf("Server is running on %s\n", addr)
	fmt.Printf("Swagger UI is available at http://localhost%s/swagger/index.html\n", addr)
	log.Fatal(router.Run(addr))
}
