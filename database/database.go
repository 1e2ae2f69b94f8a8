package database

import (
	"fmt"
	"log"

	config "github.com/nyakundi-felix/pixelstore/configs"
	"github.com/nyakundi-felix/pixelstore/models"
	"github.com/nyakundi-felix/pixelstore/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	var err error
	dsn := config.Config("DATABASE_URL")

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	if err != nil {
		log.Fatalf("🔥 Failed to connect to database: %v", err)
	}

	fmt.Println("✅ Database connected successfully")
}

// Set swaps the active connection; tests use it to run the full stack
// against an in-memory database.
func Set(db *gorm.DB) {
	DB = db
}

func Migrate() {
	err := DB.AutoMigrate(
		&models.User{},
		&models.Transaction{},
		&models.Referral{},
		&models.ActivityLog{},
		&models.StoreItem{},
		&models.Purchase{},
	)
	if err != nil {
		log.Fatalf("🔥 Failed to migrate database: %v", err)
	}
	fmt.Println("✅ Database migration successful")
}

func SeedAdmin() {
	adminEmail := config.Config("ADMIN_EMAIL")
	adminPassword := config.Config("ADMIN_PASSWORD")

	var count int64
	err := DB.Model(&models.User{}).Where("email = ?", adminEmail).Count(&count).Error
	if err != nil {
		log.Fatalf("🔥 Failed to check for admin user: %v", err)
		return
	}

	if count > 0 {
		log.Println("Admin user already exists.")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("🔥 Failed to hash admin password: %v", err)
		return
	}

	code, err := utils.GenerateUniqueReferralCode(DB)
	if err != nil {
		log.Fatalf("🔥 Failed to generate admin referral code: %v", err)
		return
	}

	adminUser := models.User{
		FullName:     config.Config("ADMIN_FULL_NAME"),
		Email:        adminEmail,
		Password:     string(hashedPassword),
		Role:         "admin",
		ReferralCode: &code,
	}

	if err := DB.Create(&adminUser).Error; err != nil {
		log.Fatalf("🔥 Failed to seed admin user: %v", err)
		return
	}

	log.Println("✅ Admin user seeded successfully")
}
