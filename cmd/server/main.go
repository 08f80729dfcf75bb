package main

import (
	"log"
	"net/http"

	_ "bellator/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"bellator/internal/auth"
	"bellator/internal/cache"
	"bellator/internal/config"
	"bellator/internal/db"
	"bellator/internal/handler"
	"bellator/internal/model"
	"bellator/internal/repository"
	"bellator/internal/router"
	"bellator/internal/service"
)

// @title Bellator Community API
// @version 1.0
// @description Community platform API: membership, prayer wall moderation, events and reflections, with JWT authentication.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Run migrations for all models
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

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	sessionRepo := repository.NewSessionRepository(gormDB)
	prayerRepo := repository.NewPrayerRepository(gormDB)
	eventRepo := repository.NewEventRepository(gormDB)
	reflectionRepo := repository.NewReflectionRepository(gormDB)
	joinRepo := repository.NewJoinRequestRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)

	// Initialize services
	authService := service.NewAuthService(userRepo, sessionRepo, jwtService)
	prayerService := service.NewPrayerService(prayerRepo, cacheClient)
	eventService := service.NewEventService(eventRepo, cacheClient)
	reflectionService := service.NewReflectionService(reflectionRepo)
	membershipService := service.NewMembershipService(joinRepo)

	// Tokens are honored only while their session is live.
	guard := auth.NewGuard(jwtService, authService)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService, guard)
	prayerHandler := handler.NewPrayerHandler(prayerService, guard)
	eventHandler := handler.NewEventHandler(eventService, guard)
	reflectionHandler := handler.NewReflectionHandler(reflectionService, guard)
	joinHandler := handler.NewJoinHandler(membershipService, guard)

	// Register routes
	router.Register(
		e,
		cfg,
		authHandler,
		prayerHandler,
		eventHandler,
		reflectionHandler,
		joinHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
