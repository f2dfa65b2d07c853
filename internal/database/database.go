package database

import (
	"fmt"
	"log"

	"quizmaster/internal/config"
	"quizmaster/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Connect(cfg *config.Config) *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	log.Println("database connected")
	return db
}

func AutoMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&models.User{},
		&models.Subject{},
		&models.Chapter{},
		&models.Quiz{},
		&models.Question{},
		&models.Score{},
		&models.Session{},
	)
	if err != nil {
		log.Fatalf("failed to auto-migrate: %v", err)
	}
	log.Println("database migrated")
}

// SeedAdmin creates the bootstrap administrator account when no admin
// exists yet. Safe to call on every startup.
func SeedAdmin(db *gorm.DB, cfg *config.Config) {
	var admin models.User
	if err := db.Where("role = ?", models.RoleAdmin).First(&admin).Error; err == nil {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash admin password: %v", err)
	}

	admin = models.User{
		Email:        cfg.AdminEmail,
		PasswordHash: string(hash),
		FullName:     "Admin",
		Role:         models.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Fatalf("failed to seed admin user: %v", err)
	}
	log.Printf("admin user %s created", cfg.AdminEmail)
}
