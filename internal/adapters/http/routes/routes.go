package routes

import (
	"cultura-cupping/internal/adapters/http/handlers"
	"cultura-cupping/internal/adapters/http/middleware"
	"cultura-cupping/internal/adapters/persistence/repositories"
	"cultura-cupping/internal/config"
	"cultura-cupping/internal/core/domain"
	"cultura-cupping/internal/core/services"
	"cultura-cupping/internal/core/state"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
)

// Deps bundles everything the route setup wires together
type Deps struct {
	AccountRepo      repositories.AccountRepository
	SessionRepo      repositories.SessionRepository
	ProfileRepo      repositories.ProfileRepository
	RefreshTokenRepo repositories.RefreshTokenRepository
	Catalog          *domain.FlavorCatalog
	AppState         *state.AppState
}

// Setup configures all routes for the application
func Setup(app *fiber.App, deps *Deps, cfg *config.Config) {
	// Initialize services
	accountService := services.NewAccountService(deps.AccountRepo, deps.RefreshTokenRepo, deps.AppState, cfg)
	sessionService := services.NewSessionService(deps.SessionRepo)
	flavorService := services.NewFlavorService(deps.Catalog, deps.AppState, deps.ProfileRepo)
	preferencesService := services.NewPreferencesService(deps.AppState)
	dashboardService := services.NewDashboardService(deps.AccountRepo, deps.SessionRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(accountService, cfg)
	sessionHandler := handlers.NewSessionHandler(sessionService)
	flavorHandler := handlers.NewFlavorHandler(flavorService)
	preferencesHandler := handlers.NewPreferencesHandler(preferencesService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API v1 group
	apiV1 := app.Group("/api/v1")
	apiV1.Get("/", healthHandler.APIInfo)

	// Auth routes (public, rate-limited, never cached)
	authRoutes := apiV1.Group("/auth")
	authRoutes.Use(middleware.NoCacheHeaders())
	setupAuthRoutes(authRoutes, authHandler, cfg)

	// Preferences routes (public - the login screen is translated too)
	preferencesRoutes := apiV1.Group("/preferences")
	setupPreferencesRoutes(preferencesRoutes, preferencesHandler)

	// Session routes (authenticated)
	sessionRoutes := apiV1.Group("/sessions")
	sessionRoutes.Use(middleware.AuthMiddleware(cfg))
	setupSessionRoutes(sessionRoutes, sessionHandler)

	// Flavor routes (catalog public, builder authenticated)
	flavorRoutes := apiV1.Group("/flavors")
	setupFlavorRoutes(flavorRoutes, flavorHandler, cfg)

	// Dashboard routes (authenticated)
	dashboardRoutes := apiV1.Group("/dashboard")
	dashboardRoutes.Use(middleware.AuthMiddleware(cfg))
	dashboardRoutes.Get("/", dashboardHandler.GetDashboard)
}

// setupAuthRoutes configures authentication routes
func setupAuthRoutes(router fiber.Router, handler *handlers.AuthHandler, cfg *config.Config) {
	// Public routes (5 req/min/IP against brute force)
	router.Post("/register", middleware.AuthRateLimiter(), handler.Register)
	router.Post("/login", middleware.AuthRateLimiter(), handler.Login)
	router.Post("/guest", middleware.AuthRateLimiter(), handler.Guest)
	router.Post("/refresh", handler.RefreshToken)
	router.Post("/logout", handler.Logout)

	// Protected routes
	router.Get("/me", middleware.AuthMiddleware(cfg), handler.Me)
	router.Post("/logout-all", middleware.AuthMiddleware(cfg), handler.LogoutAll)
}

// setupPreferencesRoutes configures language/translation routes
func setupPreferencesRoutes(router fiber.Router, handler *handlers.PreferencesHandler) {
	router.Get("/language", handler.GetLanguage)
	router.Put("/language", handler.SetLanguage)
	router.Get("/text/:key", handler.Text)
}

// setupSessionRoutes configures cupping-session routes
func setupSessionRoutes(router fiber.Router, handler *handlers.SessionHandler) {
	router.Post("/", handler.Create)
	router.Get("/", handler.List)
	router.Get("/:id", handler.GetByID)
}

// setupFlavorRoutes configures flavor catalog and profile-builder routes
func setupFlavorRoutes(router fiber.Router, handler *handlers.FlavorHandler, cfg *config.Config) {
	// The catalog is static reference data, safe to cache and serve
	// without auth
	router.Get("/catalog", middleware.CatalogCache(), handler.Catalog)

	// Builder routes operate on the working selection
	router.Get("/selection", middleware.AuthMiddleware(cfg), handler.Selection)
	router.Post("/toggle", middleware.AuthMiddleware(cfg), handler.Toggle)
	router.Get("/profiles", middleware.AuthMiddleware(cfg), handler.ListProfiles)
	router.Post("/profiles", middleware.AuthMiddleware(cfg), handler.SaveProfile)
}
