package handler

import (
	"net/http"

	"gameshelf/backend/internal/database"
	"gameshelf/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// RegisterRequest defines the structure for user registration.
type RegisterRequest struct {
	FullName        string `json:"fullName" example:"Jane Doe"`
	Email           string `json:"email" example:"jane@example.com"`
	Password        string `json:"password" example:"s3cret!pw"`
	ConfirmPassword string `json:"confirmPassword" example:"s3cret!pw"`
}

// LoginResponse carries the authenticated user and their token.
type LoginResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

// Register godoc
// @Summary      Register a new user
// @Description  Creates a new account and returns the user's profile.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input body RegisterRequest true "Registration Info"
// @Success      201  {object}  Response{data=UserResponse}
// @Failure      400  {object}  ErrorResponse
// @Router       /auth/register [post]
func Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.FullName == "" || req.Email == "" || req.Password == "" || req.ConfirmPassword == "" {
		respondError(c, http.StatusBadRequest, "All fields are required: fullName, email, password, confirmPassword")
		return
	}

	user, err := service.NewAuthService(database.DB).Register(service.RegisterInput{
		FullName:        req.FullName,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondData(c, http.StatusCreated, "User registered successfully", newUserResponse(*user))
}

// Login godoc
// @Summary      Log in
// @Description  Exchanges HTTP Basic credentials for a JWT.
// @Tags         auth
// @Produce      json
// @Success      200  {object}  Response{data=LoginResponse}
// @Failure      401  {object}  ErrorResponse
// @Router       /auth/login [post]
func Login(c *gin.Context) {
	email, password, ok := c.Request.BasicAuth()
	if !ok {
		respondError(c, http.StatusUnauthorized, "Basic Authentication credentials are required")
		return
	}

	user, token, err := service.NewAuthService(database.DB).Authenticate(email, password)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondData(c, http.StatusOK, "User authenticated successfully", LoginResponse{
		User:  newUserResponse(*user),
		Token: token,
	})
}

// GetMe godoc
// @Summary      Get current user
// @Description  Returns the profile of the authenticated user.
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  Response{data=UserResponse}
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /users/me [get]
func GetMe(c *gin.Context) {
	user, err := service.NewAuthService(database.DB).GetUser(currentUserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondData(c, http.StatusOK, "User retrieved successfully", newUserResponse(*user))
}
