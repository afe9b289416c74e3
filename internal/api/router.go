package api

import (
	"database/sql"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/networth-app/networth/internal/api/handler"
	"github.com/networth-app/networth/internal/api/middleware"
	"github.com/networth-app/networth/internal/auth"
	"github.com/networth-app/networth/internal/core/service"
	"github.com/networth-app/networth/internal/infrastructure/config"
	"github.com/networth-app/networth/internal/infrastructure/db/postgres"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *sql.DB, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Renderer = handler.NewRenderer()
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("networth"))

	// --- Dependencies ---
	userRepo := postgres.NewUserRepository(db)
	calcRepo := postgres.NewCalculationRepository(db)
	hasher := auth.NewBcryptHasher(0)
	signer := auth.NewTokenSigner([]byte(cfg.SessionSecret), cfg.SessionTTL)

	authService := service.NewAuthService(userRepo, hasher, signer)
	calcService := service.NewCalculatorService(calcRepo)

	authHandler := handler.NewAuthHandler(authService, signer.TTL())
	pageHandler := handler.NewPageHandler(calcService)
	healthHandler := handler.NewHealthHandler(db)

	// Every request resolves its session cookie; protected routes add
	// RequireUser on top.
	e.Use(middleware.LoadUser(signer, userRepo))

	// --- Pages ---
	e.GET("/", pageHandler.Index)
	e.POST("/", pageHandler.Calculate, middleware.RequireUser)
	e.GET("/history", pageHandler.History, middleware.RequireUser)

	// --- Auth ---
	e.GET("/signup", authHandler.SignupPage)
	e.POST("/signup", authHandler.Signup)
	e.GET("/login", authHandler.LoginPage)
	e.POST("/login", authHandler.Login)
	e.GET("/logout", authHandler.Logout)
	e.POST("/logout", authHandler.Logout)

	// --- Operational endpoints (no auth required) ---
	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthHandler.Readiness)     // readiness – is the database up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
