package main

import (
	"context"
	"errors"
	"log"
	"os"

	"gorm.io/gorm"

	"bellator/internal/auth"
	"bellator/internal/config"
	"bellator/internal/db"
	"bellator/internal/model"
	"bellator/internal/repository"
)

// Seeds the initial admin account so a fresh deployment has a working
// moderation login.
func main() {
	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Session{},
		&model.Prayer{},
		&model.PrayerSupport{},
		&model.Event{},
		&model.EventRegistration{},
		&model.Reflection{},
		&model.JoinRequest{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	ctx := context.Background()
	users := repository.NewUserRepository(gormDB)

	adminEmail := getEnv("ADMIN_EMAIL", "admin@bellator.local")
	adminPassword := getEnv("ADMIN_PASSWORD", "changeme123")

	if _, err := users.FindActiveByEmail(ctx, adminEmail); err == nil {
		log.Printf("admin %s already exists, nothing to do", adminEmail)
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Fatalf("lookup admin: %v", err)
	}

	hash, err := auth.HashPassword(adminPassword)
	if err != nil {
		log.Fatalf("hash admin password: %v", err)
	}

	admin := &model.User{
		Email:        adminEmail,
		Name:         "Administrator",
		PasswordHash: hash,
		Role:         model.RoleAdmin,
		Active:       true,
	}
	if err := users.Create(ctx, admin); err != nil {
		log.Fatalf("create admin: %v", err)
	}
	log.Printf("seeded admin user %s (id=%d)", adminEmail, admin.ID)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
