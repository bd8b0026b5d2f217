package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	billingapp "github.com/financespro/backend/internal/application/billing"
	catalogapp "github.com/financespro/backend/internal/application/catalog"
	identityapp "github.com/financespro/backend/internal/application/identity"
	partnerapp "github.com/financespro/backend/internal/application/partner"
	"github.com/financespro/backend/internal/infrastructure/auth"
	"github.com/financespro/backend/internal/infrastructure/config"
	"github.com/financespro/backend/internal/infrastructure/logger"
	"github.com/financespro/backend/internal/infrastructure/persistence"
	"github.com/financespro/backend/internal/interfaces/http/handler"
	"github.com/financespro/backend/internal/interfaces/http/middleware"
	"github.com/financespro/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting FinancesPro backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))

	db, err := persistence.NewDatabaseWithCustomLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected")

	// Repositories
	userRepo := persistence.NewGormUserRepository(db.DB)
	clientRepo := persistence.NewGormClientRepository(db.DB)
	serviceRepo := persistence.NewGormServiceRepository(db.DB)
	invoiceRepo := persistence.NewGormInvoiceRepository(db.DB)

	// Application services
	jwtService := auth.NewJWTService(cfg.JWT)
	authService := identityapp.NewAuthService(userRepo, jwtService)
	adminService := identityapp.NewAdminService(userRepo, clientRepo, invoiceRepo)
	clientService := partnerapp.NewClientService(clientRepo)
	serviceCatalog := catalogapp.NewServiceCatalog(serviceRepo)
	invoiceService := billingapp.NewInvoiceService(invoiceRepo, clientRepo)
	dashboardService := billingapp.NewDashboardService(invoiceRepo, clientRepo, serviceRepo)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	middleware.SetupValidator()

	engine := gin.New()

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID(log))
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	if len(cfg.HTTP.CORSAllowMethods) > 0 {
		corsConfig.AllowMethods = cfg.HTTP.CORSAllowMethods
	}
	if len(cfg.HTTP.CORSAllowHeaders) > 0 {
		corsConfig.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	if cfg.HTTP.RateLimitEnabled {
		rateLimiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		engine.Use(middleware.RateLimit(rateLimiter))
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
		)
	}

	// Liveness probe outside the API prefix
	healthHandler := handler.NewHealthHandler(db)
	engine.GET("/health", healthHandler.Health)

	authGuard := middleware.Authenticate(jwtService)
	adminGuard := middleware.AdminOnly(userRepo)

	router.NewRouter(engine).
		Register(handler.NewAuthHandler(authService, authGuard)).
		Register(handler.NewClientHandler(clientService, authGuard)).
		Register(handler.NewServiceHandler(serviceCatalog, authGuard)).
		Register(handler.NewInvoiceHandler(invoiceService, dashboardService, authGuard)).
		Register(handler.NewAdminHandler(adminService, authGuard, adminGuard)).
		Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
