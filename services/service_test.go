package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/nyakundi-felix/pixelstore/database"
	"github.com/nyakundi-felix/pixelstore/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Each test gets its own in-memory database so tests cannot interfere
// with each other.
func setupTestDB(t *testing.T) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_busy_timeout=5000", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Transaction{},
		&models.Referral{},
		&models.ActivityLog{},
		&models.StoreItem{},
		&models.Purchase{},
	))
	database.Set(db)
}

func createTestUser(t *testing.T, code string, balance int64) models.User {
	t.Helper()

	user := models.User{
		FullName:     "Test User " + code,
		Email:        strings.ToLower(code) + "@example.com",
		Password:     "not-a-real-hash",
		ReferralCode: &code,
		Balance:      balance,
		IsActive:     true,
	}
	require.NoError(t, database.DB.Create(&user).Error)
	return user
}

func reloadUser(t *testing.T, user models.User) models.User {
	t.Helper()

	var fresh models.User
	require.NoError(t, database.DB.First(&fresh, "id = ?", user.ID).Error)
	return fresh
}

func userTransactions(t *testing.T, user models.User) []models.Transaction {
	t.Helper()

	var entries []models.Transaction
	require.NoError(t, database.DB.Where("user_id = ?", user.ID).Order("created_at asc").Find(&entries).Error)
	return entries
}
