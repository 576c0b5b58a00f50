package app

import (
	"context"
	"fmt"

	"github.com/karolisstonys/PROJECT-CA23/database"
	"github.com/karolisstonys/PROJECT-CA23/internal/auth"
	"github.com/karolisstonys/PROJECT-CA23/internal/config"
	"github.com/karolisstonys/PROJECT-CA23/internal/handlers"
	"github.com/karolisstonys/PROJECT-CA23/internal/logger"
	"github.com/karolisstonys/PROJECT-CA23/internal/middleware"
	"github.com/karolisstonys/PROJECT-CA23/internal/models"
	"github.com/karolisstonys/PROJECT-CA23/internal/omdb"
	"github.com/karolisstonys/PROJECT-CA23/internal/repositories"
	"github.com/karolisstonys/PROJECT-CA23/internal/routes"
	"github.com/karolisstonys/PROJECT-CA23/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Run starts the service: config, logger, database, DI, router, listen.
func Run() error {
	config.LoadConfig()
	cfg := config.GetConfig()

	logger.Init(cfg.Server.Env)

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}

	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	if err := database.SeedGenres(db); err != nil {
		return fmt.Errorf("seed genres: %w", err)
	}
	if err := seedFirstAdmin(db, cfg); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	router := SetupRouter(db, cfg)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("server starting", "addr", addr, "env", cfg.Server.Env)
	return router.Run(addr)
}

// SetupRouter builds the full gin engine against a live database handle.
// Tests call this with an sqlite handle.
func SetupRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	if cfg.Server.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	omdbClient := omdb.NewClient(cfg.Omdb.BaseURL, cfg.Omdb.APIKey)
	svc := services.NewServiceContainer(db, cfg, omdbClient)
	h := handlers.NewAppHandlers(svc)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())

	routes.SetupRoutes(router, h, cfg.JWT.Secret)
	return router
}

// seedFirstAdmin creates the bootstrap admin account once, on an empty user
// table, from configured credentials.
func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	if cfg.FirstAdminUsername == "" || cfg.FirstAdminPassword == "" {
		return nil
	}

	userRepo := repositories.NewUserRepository(db)
	ctx := context.Background()

	existing, err := userRepo.FindByUsername(ctx, cfg.FirstAdminUsername)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	hash, err := auth.HashPassword(cfg.FirstAdminPassword)
	if err != nil {
		return err
	}

	admin := &models.User{
		Username:     cfg.FirstAdminUsername,
		FirstName:    "Admin",
		LastName:     "Admin",
		Role:         models.UserRoleAdmin,
		PasswordHash: hash,
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		return err
	}

	logger.Info("first admin seeded", "username", cfg.FirstAdminUsername)
	return nil
}
