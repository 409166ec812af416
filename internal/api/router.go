package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/kanthalloor/governance-portal/internal/api/handler"
	"github.com/kanthalloor/governance-portal/internal/api/middleware"
	"github.com/kanthalloor/governance-portal/internal/core/domain"
	"github.com/kanthalloor/governance-portal/internal/core/service"
	"github.com/kanthalloor/governance-portal/internal/infrastructure/ai"
	mongodb "github.com/kanthalloor/governance-portal/internal/infrastructure/db/mongo"
	redisdb "github.com/kanthalloor/governance-portal/internal/infrastructure/db/redis"
	"github.com/kanthalloor/governance-portal/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("portal"))

	// --- Repositories ---
	accountRepo := mongodb.NewAccountRepository(db)
	profileRepo := mongodb.NewProfileRepository(db)
	schemeRepo := mongodb.NewSchemeRepository(db)
	applicationRepo := mongodb.NewApplicationRepository(db)
	schemeCache := redisdb.NewSchemeCache(rdb)

	// --- Services ---
	authService := service.NewAuthService(accountRepo, cfg.JWTSecret, cfg.TokenTTL)
	profileService := service.NewProfileService(profileRepo, accountRepo, log)
	schemeService := service.NewSchemeService(schemeRepo, schemeCache, service.NewIdentityAwareness(), log)
	composer := service.NewAutoFillComposer(profileRepo, log)
	applicationService := service.NewApplicationService(applicationRepo, accountRepo, schemeRepo, composer, log)
	reviewService := service.NewReviewService(applicationRepo, accountRepo, profileRepo, schemeRepo, log)
	chatService := ai.NewChatClient(ai.Config{
		BaseURL: cfg.Chat.BaseURL,
		APIKey:  cfg.Chat.APIKey,
		Model:   cfg.Chat.Model,
		Timeout: cfg.Chat.Timeout,
	}, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	infoHandler := handler.NewInfoHandler(profileService)
	schemeHandler := handler.NewSchemeHandler(schemeService)
	applicationHandler := handler.NewApplicationHandler(applicationService)
	adminHandler := handler.NewAdminHandler(reviewService)
	chatHandler := handler.NewChatHandler(chatService)

	authRequired := middleware.Auth(cfg.JWTSecret)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.GET("/auth/me", authHandler.Me, authRequired)
	e.PATCH("/auth/profile", authHandler.UpdateProfile, authRequired)

	// --- Citizen routes ---
	e.POST("/info/submit", infoHandler.Submit, authRequired)
	e.GET("/info/me", infoHandler.Me, authRequired)

	// Scheme reads are public so the portal landing page can render the
	// catalog before login; writes stay admin-only.
	e.GET("/schemes", schemeHandler.List)
	e.GET("/schemes/:id", schemeHandler.Get)
	e.POST("/schemes", schemeHandler.Create, authRequired, middleware.RBAC(domain.RoleAdmin))

	e.POST("/applications/apply", applicationHandler.Apply, authRequired)
	e.GET("/applications/my-applications", applicationHandler.MyApplications, authRequired)
	e.POST("/applications/generate-message", applicationHandler.GenerateMessage, authRequired)

	e.POST("/api/chat", chatHandler.Complete, authRequired)

	// --- Back-office routes (officials and admins) ---
	admin := e.Group("/admin", authRequired, middleware.RBAC(domain.RoleOfficial, domain.RoleAdmin))
	admin.GET("/stats", adminHandler.Stats)
	admin.GET("/users", adminHandler.Users)
	admin.GET("/applications/pending", adminHandler.PendingApplications)
	admin.POST("/verify-application/:id", adminHandler.Verify)
	admin.POST("/reject-application/:id", adminHandler.Reject)
	admin.DELETE("/applications", adminHandler.PurgeApplications)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
