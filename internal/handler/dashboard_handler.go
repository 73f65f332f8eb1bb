package handler

import (
	"net/http"
	"strconv"

	"gameshelf/backend/internal/database"
	"gameshelf/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// GetDashboardStats godoc
// @Summary      Collection summary counts
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  Response{data=service.DashboardStats}
// @Failure      401  {object}  ErrorResponse
// @Router       /dashboard/stats [get]
func GetDashboardStats(c *gin.Context) {
	stats, err := service.NewDashboardService(database.DB).Stats(currentUserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondData(c, http.StatusOK, "Dashboard stats retrieved successfully", stats)
}

// GetGamesByStatus godoc
// @Summary      Game counts grouped by status
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  Response{data=map[string]int64}
// @Failure      401  {object}  ErrorResponse
// @Router       /dashboard/games-by-status [get]
func GetGamesByStatus(c *gin.Context) {
	counts, err := service.NewDashboardService(database.DB).GamesByStatus(currentUserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondData(c, http.StatusOK, "Games by status retrieved successfully", counts)
}

// GetRecentGames godoc
// @Summary      Most recently added games
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Param        limit query int false "Number of games" default(5)
// @Success      200  {object}  Response{data=[]RecentGameResponse}
// @Failure      401  {object}  ErrorResponse
// @Router       /dashboard/recent-games [get]
func GetRecentGames(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "5"))

	games, err := service.NewDashboardService(database.DB).RecentGames(currentUserID(c), limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondData(c, http.StatusOK, "Recent games retrieved successfully", newRecentGameResponses(games))
}
