package jwt

import (
	"errors"
	"fmt"
	"time"

	"gameshelf/backend/internal/config"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the authenticated identity carried by a token.
type Claims struct {
	UserID uint
	Email  string
}

// GenerateToken creates a new JWT for a given user.
func GenerateToken(userID uint, email string) (string, error) {
	claims := jwt.MapClaims{
		"sub":   userID,
		"email": email,
		"exp":   time.Now().Add(time.Hour * 24).Unix(), // Token expires in 24 hours
		"iat":   time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(config.AppConfig.JWTSecret))
}

// VerifyToken parses and validates a token string and returns its claims.
func VerifyToken(tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.AppConfig.JWTSecret), nil
	})
	if err != nil {
		return nil, err
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	sub, ok := mapClaims["sub"].(float64)
	if !ok {
		return nil, errors.New("invalid token subject")
	}
	email, _ := mapClaims["email"].(string)

	return &Claims{UserID: uint(sub), Email: email}, nil
}
