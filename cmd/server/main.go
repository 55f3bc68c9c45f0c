package main

import (
	"log"
	"net/http"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	_ "devhub/docs" // swagger docs

	"devhub/internal/auth"
	"devhub/internal/cache"
	"devhub/internal/config"
	"devhub/internal/db"
	"devhub/internal/handler"
	"devhub/internal/model"
	"devhub/internal/repository"
	"devhub/internal/router"
	"devhub/internal/service"
)

// @title DevHub API
// @version 1.0
// @description Developer social network API: users, profiles, posts, likes, and comments.
// @host localhost:5000
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey TokenAuth
// @in header
// @name x-auth-token
func main() {
	// Local development overrides; absence of a .env file is fine.
	_ = godotenv.Load()

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Profile{},
		&model.Experience{},
		&model.Education{},
		&model.Post{},
		&model.Like{},
		&model.Comment{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	userRepo := repository.NewUserRepository(gormDB)
	profileRepo := repository.NewProfileRepository(gormDB)
	postRepo := repository.NewPostRepository(gormDB)

	jwtService := auth.NewJWTService(cfg.JWTSecret)

	authService := service.NewAuthService(userRepo, jwtService, cacheClient)
	profileService := service.NewProfileService(profileRepo, cacheClient)
	postService := service.NewPostService(postRepo, userRepo, cacheClient)

	authHandler := handler.NewAuthHandler(authService)
	profileHandler := handler.NewProfileHandler(profileService)
	postHandler := handler.NewPostHandler(postService)

	e := echo.New()
	router.Register(e, cfg, authHandler, profileHandler, postHandler)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
