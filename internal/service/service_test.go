package service

import (
	"testing"
	"time"

	"gameshelf/backend/internal/config"
	"gameshelf/backend/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Category{}, &models.Platform{}, &models.Game{}))
	return db
}

func setTestConfig(t *testing.T) {
	t.Helper()
	config.AppConfig = &config.Config{JWTSecret: "test-secret"}
}

func createTestUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	user := &models.User{FullName: "Test User", Email: email, Password: "irrelevant"}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestCategory(t *testing.T, db *gorm.DB, userID uint, name string) *models.Category {
	t.Helper()
	category := &models.Category{Name: name, UserID: userID}
	require.NoError(t, db.Create(category).Error)
	return category
}

func createTestPlatform(t *testing.T, db *gorm.DB, userID uint, title string) *models.Platform {
	t.Helper()
	platform := &models.Platform{Title: title, UserID: userID}
	require.NoError(t, db.Create(platform).Error)
	return platform
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func datePtr(year int, month time.Month, day int) *time.Time {
	d := date(year, month, day)
	return &d
}
