package handler

import (
	"net/http"
	"strconv"

	"gameshelf/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// Response is the envelope every endpoint answers with.
type Response struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message"`
	Data       interface{} `json:"data,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// Pagination defines the structure for pagination metadata.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalItems int64 `json:"totalItems"`
	TotalPages int   `json:"totalPages"`
	HasNext    bool  `json:"hasNext"`
	HasPrev    bool  `json:"hasPrev"`
}

func newPagination[T any](p *service.Paginated[T]) *Pagination {
	return &Pagination{
		Page:       p.Page,
		Limit:      p.Limit,
		TotalItems: p.TotalItems,
		TotalPages: p.TotalPages,
		HasNext:    p.Page < p.TotalPages,
		HasPrev:    p.Page > 1,
	}
}

func respondData(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, Response{Success: true, Message: message, Data: data})
}

func respondList(c *gin.Context, message string, data interface{}, pagination *Pagination) {
	c.JSON(http.StatusOK, Response{Success: true, Message: message, Data: data, Pagination: pagination})
}

func respondMessage(c *gin.Context, status int, message string) {
	c.JSON(status, Response{Success: true, Message: message})
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, Response{Success: false, Message: message})
}

// respondServiceError maps the service error taxonomy onto status codes.
// Delete-conflicts answer 409 rather than the 400 some older clients saw.
func respondServiceError(c *gin.Context, err error) {
	kind, ok := service.Kind(err)
	if !ok {
		respondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	switch kind {
	case service.KindValidation, service.KindDuplicateName:
		respondError(c, http.StatusBadRequest, err.Error())
	case service.KindNotFound:
		respondError(c, http.StatusNotFound, err.Error())
	case service.KindConflict:
		respondError(c, http.StatusConflict, err.Error())
	case service.KindAuth:
		respondError(c, http.StatusUnauthorized, err.Error())
	default:
		respondError(c, http.StatusInternalServerError, "Internal server error")
	}
}

func pageParams(c *gin.Context, defaultLimit int) service.PageParams {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	return service.NewPageParams(page, limit, defaultLimit)
}

// idParam parses the :id path segment; ok is false after a 400 was written.
func idParam(c *gin.Context, message string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondError(c, http.StatusBadRequest, message)
		return 0, false
	}
	return uint(id), true
}

func currentUserID(c *gin.Context) uint {
	userID, _ := c.Get("userID")
	return userID.(uint)
}
