package router

import (
	"log"

	"github.com/Divya-010704/TripTeller/internal/engagement"
	"github.com/Divya-010704/TripTeller/internal/handlers"
	"github.com/Divya-010704/TripTeller/internal/identity"
	"github.com/Divya-010704/TripTeller/internal/mediastore"
	"github.com/Divya-010704/TripTeller/internal/middleware"
	"github.com/Divya-010704/TripTeller/internal/models"
	"github.com/Divya-010704/TripTeller/internal/planner"
	"github.com/Divya-010704/TripTeller/internal/repositories"
	"github.com/Divya-010704/TripTeller/pkg/config"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	log.Println("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, pgdb *gorm.DB, mgClient *mongo.Client, cfg *config.Config) error {
	// AutoMigrate the account directory table
	if err := pgdb.AutoMigrate(&models.User{}); err != nil {
		return err
	}
	log.Println("PostgreSQL auto-migrations completed.")

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Initialize repositories ---
	profileRepo := repositories.NewMongoProfileRepository(mgClient.Database("tripteller"))
	userRepo := repositories.NewPostgresUserRepository(pgdb)
	tripRepo := repositories.NewMongoTripRepository(mgClient.Database("tripteller"))

	// --- Initialize core components ---
	resolver := identity.NewDirectoryResolver(userRepo, cfg.DirectoryTimeout)
	store := engagement.NewPostStore(profileRepo)
	repairer := engagement.NewRepairer(profileRepo)
	media, err := mediastore.NewCloudinaryStore(cfg.CloudinaryURL)
	if err != nil {
		return err
	}
	plannerService := planner.NewService(nil, nil)

	api := e.Group("/api")
	api.Use(middleware.JWTIdentityMiddleware())

	// Profile routes
	profileHandler := handlers.NewProfileHandler(profileRepo, store, media, resolver)
	profileHandler.RegisterProfileRoutes(api)
	log.Println("Profile routes configured.")

	// Engagement routes
	engagementHandler := handlers.NewEngagementHandler(store, repairer, resolver)
	engagementHandler.RegisterEngagementRoutes(api)
	log.Println("Engagement routes configured.")

	// Trip routes
	tripHandler := handlers.NewTripHandler(tripRepo, plannerService)
	tripHandler.RegisterTripRoutes(api)
	log.Println("Trip routes configured.")

	log.Println("All routes configured.")
	return nil
}
