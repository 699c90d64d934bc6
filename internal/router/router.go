package router

import (
	"github.com/breadsapp/breads/backend/internal/handlers"
	"github.com/breadsapp/breads/backend/internal/mailer"
	"github.com/breadsapp/breads/backend/internal/middleware"
	"github.com/breadsapp/breads/backend/internal/models"
	"github.com/breadsapp/breads/backend/internal/repositories"
	"github.com/breadsapp/breads/backend/internal/search"
	"github.com/breadsapp/breads/backend/pkg/config"
	"github.com/breadsapp/breads/backend/pkg/storage"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	logrus.Info("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, db *gorm.DB, store storage.Store, cfg *config.Config) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Follow{},
		&models.Post{},
		&models.Image{},
		&models.Comment{},
	)
	if err != nil {
		return err
	}
	logrus.Info("Auto-migrations completed for all models.")

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Initialize Repositories ---
	userRepo := repositories.NewPostgresUserRepository(db)
	followRepo := repositories.NewPostgresFollowRepository(db)
	postRepo := repositories.NewPostgresPostRepository(db)
	imageRepo := repositories.NewPostgresImageRepository(db)
	commentRepo := repositories.NewPostgresCommentRepository(db)

	indexer := search.NewNoopIndexer()
	mail := mailer.NewLogMailer()

	// --- Unprotected routes for authentication ---
	authGroup := e.Group("/api/v1/auth")
	authHandler := handlers.NewAuthHandler(userRepo, indexer, mail, cfg.JWTSecret, cfg.AccessTokenTTL, cfg.ResetTokenTTL)
	authHandler.RegisterAuthRoutes(authGroup)

	// --- Protected routes (require JWT authentication) ---
	api := e.Group("/api/v1")
	api.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))

	userHandler := handlers.NewUserHandler(userRepo, followRepo, indexer)
	userHandler.RegisterUserRoutes(api)

	followHandler := handlers.NewFollowHandler(followRepo, userRepo)
	followHandler.RegisterFollowRoutes(api)

	postHandler := handlers.NewPostHandler(postRepo, store)
	postHandler.RegisterPostRoutes(api)

	feedHandler := handlers.NewFeedHandler(postRepo, userRepo)
	feedHandler.RegisterFeedRoutes(api)

	imageHandler := handlers.NewImageHandler(imageRepo, store)
	imageHandler.RegisterImageRoutes(api)

	commentHandler := handlers.NewCommentHandler(commentRepo, imageRepo)
	commentHandler.RegisterCommentRoutes(api)

	logrus.Info("All routes configured.")
	return nil
}
