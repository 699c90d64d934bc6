package main

import (
	"github.com/breadsapp/breads/backend/internal/router"
	"github.com/breadsapp/breads/backend/pkg/config"
	"github.com/breadsapp/breads/backend/pkg/logger"
	"github.com/breadsapp/breads/backend/pkg/storage"
	"github.com/breadsapp/breads/backend/validators"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

func main() {
	// Load configuration
	cfg := config.Load()
	logger.Init(cfg.Env, cfg.LogLevel)

	// Initialize database connection
	db, err := config.InitDB()
	if err != nil {
		logrus.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.CloseDB()

	// Initialize image file storage
	store, err := storage.NewDiskStore(cfg.StaticDir)
	if err != nil {
		logrus.Fatalf("Failed to initialize image storage: %v", err)
	}

	// Create Echo instance
	e := echo.New()

	// Setup global middleware
	router.SetupMiddleware(e)

	// Setup routes and dependencies
	if err := router.SetupRoutes(e, db.Postgres, store, cfg); err != nil {
		logrus.Fatalf("Failed to set up routes: %v", err)
	}

	// Validator
	e.Validator = validators.NewValidator()

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
