package service

import (
	"errors"
	"regexp"
	"strings"

	"gameshelf/backend/internal/models"
	"gameshelf/backend/pkg/jwt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	db *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{db: db}
}

type RegisterInput struct {
	FullName        string
	Email           string
	Password        string
	ConfirmPassword string
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Register validates the registration payload, rejects duplicate emails among
// non-deleted users and stores the user with a bcrypt hash.
func (s *AuthService) Register(in RegisterInput) (*models.User, error) {
	// Normalize before validating so padded or mixed-case emails pass the
	// format check and dedupe against the stored lowercase form.
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))

	if err := validateRegistration(in); err != nil {
		return nil, err
	}

	var count int64
	err := s.db.Model(&models.User{}).
		Where("email = ? AND is_deleted = ?", in.Email, false).
		Count(&count).Error
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, duplicateNameError("User with this email already exists.")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		FullName: strings.TrimSpace(in.FullName),
		Email:    in.Email,
		Password: string(hashed),
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Authenticate checks the credentials and returns the user plus a signed token.
// Unknown email and wrong password produce the same error.
func (s *AuthService) Authenticate(email, password string) (*models.User, string, error) {
	if email == "" || password == "" {
		return nil, "", authError("Email and password are required.")
	}

	var user models.User
	err := s.db.Where("email = ? AND is_deleted = ?", strings.ToLower(strings.TrimSpace(email)), false).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", authError("Invalid email or password")
	}
	if err != nil {
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", authError("Invalid email or password")
	}

	token, err := jwt.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

// GetUser returns the non-deleted user for an authenticated id.
func (s *AuthService) GetUser(userID uint) (*models.User, error) {
	var user models.User
	err := s.db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFoundError("User not found")
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func validateRegistration(in RegisterInput) error {
	if len(strings.TrimSpace(in.FullName)) < 3 {
		return validationError("Full name must be at least 3 characters long.")
	}

	if in.Email == "" {
		return validationError("Email is required.")
	}
	if !emailPattern.MatchString(in.Email) {
		return validationError("Invalid email format.")
	}

	if in.Password == "" {
		return validationError("Password is required.")
	}
	if len(in.Password) < 8 {
		return validationError("Password must be at least 8 characters long.")
	}
	if !strings.ContainsFunc(in.Password, isLetter) {
		return validationError("Password must contain at least one letter.")
	}
	if !strings.ContainsAny(in.Password, "0123456789") {
		return validationError("Password must contain at least one number.")
	}
	if !strings.ContainsAny(in.Password, `!@#$%^&*(),.?":{}|<>`) {
		return validationError("Password must contain at least one special character.")
	}

	if in.Password != in.ConfirmPassword {
		return validationError("Passwords do not match.")
	}
	return nil
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
