package main

import (
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	_ "github.com/icemanhv/forum/docs" // swagger docs

	"github.com/icemanhv/forum/internal/auth"
	"github.com/icemanhv/forum/internal/cache"
	"github.com/icemanhv/forum/internal/config"
	"github.com/icemanhv/forum/internal/db"
	"github.com/icemanhv/forum/internal/handler"
	"github.com/icemanhv/forum/internal/model"
	"github.com/icemanhv/forum/internal/repository"
	"github.com/icemanhv/forum/internal/router"
	"github.com/icemanhv/forum/internal/schema"
	"github.com/icemanhv/forum/internal/service"
)

// @title Blog Platform API
// @version 1.0
// @description Minimal blogging platform: paginated articles, tag filtering, comments, and a schema-driven admin console.
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.
func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("no .env file loaded")
	}
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("database init")
	}

	// The Blog.Tags association routes through the BlogTag join model so
	// blog_tags rows keep their own id column.
	if err := gormDB.SetupJoinTable(&model.Blog{}, "Tags", &model.BlogTag{}); err != nil {
		log.Fatal().Err(err).Msg("setup join table")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Blog{},
		&model.Tag{},
		&model.BlogTag{},
		&model.Comment{},
	); err != nil {
		log.Fatal().Err(err).Msg("auto-migrate")
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize registry and repositories
	registry := schema.NewRegistry()
	userRepo := repository.NewUserRepository(gormDB)
	blogRepo := repository.NewBlogRepository(gormDB)
	tagRepo := repository.NewTagRepository(gormDB)
	commentRepo := repository.NewCommentRepository(gormDB)
	entityStore := repository.NewEntityStore(gormDB, registry)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	sessionStore := auth.NewSessionStore(cacheClient)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, sessionStore)
	contentService := service.NewContentService(blogRepo, tagRepo, commentRepo)
	adminService := service.NewAdminService(registry, entityStore)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	contentHandler := handler.NewContentHandler(contentService)
	adminHandler := handler.NewAdminHandler(adminService)

	// Register routes
	router.Register(
		e,
		gormDB,
		jwtService,
		sessionStore,
		authHandler,
		contentHandler,
		adminHandler,
	)

	if cfg.SwaggerHost != "" {
		log.Info().Str("url", cfg.SwaggerHost+"/swagger/index.html").Msg("swagger documentation")
	} else {
		log.Info().Str("url", "http://localhost:"+cfg.ServerPort+"/swagger/index.html").Msg("swagger documentation")
	}

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server start")
	}
}
