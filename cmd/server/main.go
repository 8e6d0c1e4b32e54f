package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	analyticsapp "github.com/ZaidAbuSamraa/alaml/internal/application/analytics"
	cashflowapp "github.com/ZaidAbuSamraa/alaml/internal/application/cashflow"
	identityapp "github.com/ZaidAbuSamraa/alaml/internal/application/identity"
	notificationapp "github.com/ZaidAbuSamraa/alaml/internal/application/notification"
	partnerapp "github.com/ZaidAbuSamraa/alaml/internal/application/partner"
	payrollapp "github.com/ZaidAbuSamraa/alaml/internal/application/payroll"
	requestapp "github.com/ZaidAbuSamraa/alaml/internal/application/request"
	salesapp "github.com/ZaidAbuSamraa/alaml/internal/application/sales"
	"github.com/ZaidAbuSamraa/alaml/internal/infrastructure/auth"
	"github.com/ZaidAbuSamraa/alaml/internal/infrastructure/config"
	"github.com/ZaidAbuSamraa/alaml/internal/infrastructure/logger"
	"github.com/ZaidAbuSamraa/alaml/internal/infrastructure/notify"
	"github.com/ZaidAbuSamraa/alaml/internal/infrastructure/persistence"
	"github.com/ZaidAbuSamraa/alaml/internal/interfaces/http/handler"
	"github.com/ZaidAbuSamraa/alaml/internal/interfaces/http/middleware"
	"github.com/ZaidAbuSamraa/alaml/internal/interfaces/http/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting server",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	gormLogger := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLogger)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close database", zap.Error(err))
		}
	}()

	// Repositories
	settingsRepo := persistence.NewGormCashflowSettingsRepository(db.DB)
	baseCashRepo := persistence.NewGormBaseCashRepository(db.DB)
	dayRepo := persistence.NewGormDayRecordRepository(db.DB)
	cashflowPaymentRepo := persistence.NewGormCashflowPaymentRepository(db.DB)
	supplierRepo := persistence.NewGormSupplierRepository(db.DB)
	invoiceRepo := persistence.NewGormInvoiceRepository(db.DB)
	supplierPaymentRepo := persistence.NewGormSupplierPaymentRepository(db.DB)
	transactionRepo := persistence.NewGormTransactionRepository(db.DB)
	noteRepo := persistence.NewGormCashflowNoteRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)
	employeeRepo := persistence.NewGormEmployeeRepository(db.DB)
	timeLogRepo := persistence.NewGormTimeLogRepository(db.DB)
	saleRepo := persistence.NewGormSaleRepository(db.DB)
	notificationRepo := persistence.NewGormNotificationRepository(db.DB)
	requestRepo := persistence.NewGormResourceRequestRepository(db.DB)

	// Infrastructure services
	jwtService := auth.NewJWTService(cfg.JWT)
	notifier := notify.NewWhatsAppNotifier(cfg.WhatsApp, log)

	// Application services
	cashflowService := cashflowapp.NewService(
		settingsRepo, baseCashRepo, dayRepo, cashflowPaymentRepo,
		supplierRepo, noteRepo, notifier, log,
	)
	partnerService := partnerapp.NewService(
		supplierRepo, invoiceRepo, supplierPaymentRepo, transactionRepo, noteRepo, log,
	)
	analyticsService := analyticsapp.NewService(transactionRepo, supplierRepo)
	authService := identityapp.NewAuthService(userRepo, employeeRepo, jwtService, log)
	employeeService := identityapp.NewEmployeeService(employeeRepo)
	payrollService := payrollapp.NewService(
		timeLogRepo, employeeRepo, notificationRepo, notifier, log,
	)
	salesService := salesapp.NewService(saleRepo)
	notificationService := notificationapp.NewService(notificationRepo)
	requestService := requestapp.NewService(
		requestRepo, employeeRepo, notificationRepo, notifier, log,
	)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Fatal("Failed to set trusted proxies", zap.Error(err))
		}
	}

	corsCfg := middleware.DefaultCORSConfig()
	corsCfg.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	if len(cfg.HTTP.CORSAllowMethods) > 0 {
		corsCfg.AllowMethods = cfg.HTTP.CORSAllowMethods
	}
	if len(cfg.HTTP.CORSAllowHeaders) > 0 {
		corsCfg.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	}

	engine.Use(
		middleware.RequestID(),
		logger.Recovery(log),
		logger.GinMiddleware(log),
		middleware.Secure(),
		middleware.CORSWithConfig(corsCfg),
		middleware.BodyLimit(cfg.HTTP.MaxBodySize),
	)

	engine.GET("/health", healthHandler(db, log))

	jwtCfg := middleware.DefaultJWTConfig(jwtService)
	jwtCfg.Logger = log
	engine.Use(middleware.JWTAuthWithConfig(jwtCfg))

	router.NewRouter(engine, router.WithAPIVersion("v1")).
		Register(handler.NewAuthHandler(authService)).
		Register(handler.NewCashflowHandler(cashflowService)).
		Register(handler.NewSupplierHandler(partnerService)).
		Register(handler.NewAnalyticsHandler(analyticsService)).
		Register(handler.NewEmployeeHandler(employeeService)).
		Register(handler.NewTimeLogHandler(payrollService)).
		Register(handler.NewSalesHandler(salesService)).
		Register(handler.NewNotificationHandler(notificationService)).
		Register(handler.NewRequestHandler(requestService)).
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
		log.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.Info("Shutting down", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Graceful shutdown failed", zap.Error(err))
	}
	log.Info("Server stopped")
}

// healthHandler reports process and database health. It stays outside the
// versioned API group so load balancers can probe it without a token.
func healthHandler(db *persistence.Database, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			log.Warn("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"database": "down",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"database": "up",
			"time":     time.Now().UTC().Format(time.RFC3339),
		})
	}
}
