package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"cultura-cupping/internal/adapters/http/middleware"
	"cultura-cupping/internal/adapters/http/routes"
	"cultura-cupping/internal/adapters/persistence/repositories"
	"cultura-cupping/internal/config"
	"cultura-cupping/internal/core/domain"
	"cultura-cupping/internal/core/services"
	"cultura-cupping/internal/core/state"

	"github.com/gofiber/fiber/v2"

	_ "cultura-cupping/docs" // Swagger docs
)

// @title Cultura Cupping API
// @version 1.0
// @description Coffee cupping session and flavor profile API for Cafe Cultura

// @contact.name API Support
// @contact.email support@cafecultura.com

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host api.cupping.cafecultura.com
// @BasePath /api/v1
// @schemes https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	// Build the in-memory stores and the application state
	accountRepo := repositories.NewAccountRepository()
	sessionRepo := repositories.NewSessionRepository()
	profileRepo := repositories.NewProfileRepository()
	refreshTokenRepo := repositories.NewRefreshTokenRepository()
	catalog := domain.NewFlavorCatalog()
	appState := state.New()

	// Seed the demo account
	seeder := config.NewSeeder(accountRepo)
	if err := seeder.Run(context.Background()); err != nil {
		log.Fatalf("❌ Failed to seed reference data: %v", err)
	}

	// Start maintenance cron (token + stale guest cleanup)
	maintenance := services.NewMaintenanceService(refreshTokenRepo, accountRepo)
	maintenance.Start()
	defer maintenance.Stop()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Cultura Cupping API v1.0",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	// Setup middlewares
	middleware.Setup(app, cfg)

	// Setup routes
	routes.Setup(app, &routes.Deps{
		AccountRepo:      accountRepo,
		SessionRepo:      sessionRepo,
		ProfileRepo:      profileRepo,
		RefreshTokenRepo: refreshTokenRepo,
		Catalog:          catalog,
		AppState:         appState,
	}, cfg)

	// Graceful shutdown
	go gracefulShutdown(app)

	// Start server
	log.Printf("🚀 Server starting on port %s [MODE: %s]", cfg.Port, cfg.AppMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("❌ Error during shutdown: %v", err)
	}
	log.Println("✅ Server stopped gracefully")
}
