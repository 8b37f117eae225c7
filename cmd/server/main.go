package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	catalogapp "github.com/recyclezone/marketplace/internal/application/catalog"
	identityapp "github.com/recyclezone/marketplace/internal/application/identity"
	moderationapp "github.com/recyclezone/marketplace/internal/application/moderation"
	tradeapp "github.com/recyclezone/marketplace/internal/application/trade"
	"github.com/recyclezone/marketplace/internal/infrastructure/auth"
	"github.com/recyclezone/marketplace/internal/infrastructure/cache"
	"github.com/recyclezone/marketplace/internal/infrastructure/config"
	"github.com/recyclezone/marketplace/internal/infrastructure/logger"
	"github.com/recyclezone/marketplace/internal/infrastructure/persistence"
	"github.com/recyclezone/marketplace/internal/infrastructure/stripe"
	"github.com/recyclezone/marketplace/internal/infrastructure/telemetry"
	"github.com/recyclezone/marketplace/internal/interfaces/http/handler"
	"github.com/recyclezone/marketplace/internal/interfaces/http/middleware"
	"github.com/recyclezone/marketplace/internal/interfaces/http/router"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
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

	log.Info("Starting Recycle Zone API",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	ctx := context.Background()

	// Telemetry providers are no-ops unless enabled in config
	tracerProvider, err := telemetry.NewTracerProvider(ctx, telemetry.Config{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		SamplingRatio:     cfg.Telemetry.SamplingRatio,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize tracer provider", zap.Error(err))
	}
	meterProvider, err := telemetry.NewMeterProvider(ctx, telemetry.MetricsConfig{
		Enabled:           cfg.Telemetry.MetricsEnabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		ExportInterval:    cfg.Telemetry.ExportInterval,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize meter provider", zap.Error(err))
	}

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level),
		logger.WithSlowThreshold(cfg.Telemetry.DBSlowQueryThresh))
	db, err := persistence.NewDatabaseWithCustomLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully", zap.String("driver", cfg.Database.Driver))

	dbTracing := telemetry.NewDBTracingPlugin(telemetry.DBTracingConfig{
		Enabled:         cfg.Telemetry.Enabled && cfg.Telemetry.DBTraceEnabled,
		LogFullSQL:      cfg.Telemetry.DBLogFullSQL,
		SlowQueryThresh: cfg.Telemetry.DBSlowQueryThresh,
		DBSystem:        telemetry.DBSystemForDriver(cfg.Database.Driver),
	}, log)
	if err := dbTracing.RegisterOtelGorm(db.DB); err != nil {
		log.Fatal("Failed to register database tracing", zap.Error(err))
	}

	if cfg.Database.AutoMigrate {
		if err := db.AutoMigrate(); err != nil {
			log.Fatal("Failed to migrate database", zap.Error(err))
		}
		log.Info("Database schema migrated")
	}

	// Token blacklist: Redis when enabled, in memory otherwise
	blacklist, redisClient, err := cache.NewBlacklistFactory(cfg.Redis, cache.WithLogger(log)).CreateBlacklist()
	if err != nil {
		log.Fatal("Failed to initialize token blacklist", zap.Error(err))
	}
	var redisPinger handler.Pinger
	if redisClient != nil {
		redisPinger = cache.NewPinger(redisClient)
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Error("Error closing Redis client", zap.Error(err))
			}
		}()
	}

	// Repositories
	userRepo := persistence.NewGormUserRepository(db.DB)
	productRepo := persistence.NewGormProductRepository(db.DB)
	categoryRepo := persistence.NewGormCategoryRepository(db.DB)
	advertisementRepo := persistence.NewGormAdvertisementRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	paymentRepo := persistence.NewGormPaymentRepository(db.DB)
	reportRepo := persistence.NewGormReportRepository(db.DB)

	jwtService := auth.NewJWTService(cfg.JWT)

	gateway, err := stripe.NewIntentGateway(&stripe.Config{
		Enabled:   cfg.Stripe.Enabled,
		SecretKey: cfg.Stripe.SecretKey,
		Currency:  cfg.Stripe.Currency,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize payment gateway", zap.Error(err))
	}

	// Application services
	userService := identityapp.NewUserService(userRepo, blacklist, cfg.JWT.AccessTokenExpiration, log)
	tokenService := identityapp.NewTokenService(userRepo, jwtService, log)
	productService := catalogapp.NewProductService(productRepo, userService, log)
	categoryService := catalogapp.NewCategoryService(categoryRepo)
	advertisementService := catalogapp.NewAdvertisementService(advertisementRepo)
	orderService := tradeapp.NewOrderService(orderRepo, productRepo, log)
	paymentService := tradeapp.NewPaymentService(orderRepo, paymentRepo, gateway, cfg.Stripe.Currency, log)
	reportService := moderationapp.NewReportService(reportRepo, log)

	if meterProvider.IsEnabled() {
		businessMetrics, err := telemetry.NewBusinessMetrics(telemetry.BusinessMetricsConfig{
			Meter:  meterProvider.Meter("recycle-zone/business"),
			Logger: log,
		})
		if err != nil {
			log.Warn("Business metrics disabled", zap.Error(err))
		} else {
			productService.SetBusinessMetrics(businessMetrics)
			orderService.SetBusinessMetrics(businessMetrics)
			paymentService.SetBusinessMetrics(businessMetrics)
		}
	}

	if cfg.App.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := router.NewEngine(router.EngineConfig{
		HTTP:   cfg.HTTP,
		Logger: log,
		Tracing: middleware.TracingConfig{
			ServiceName: cfg.Telemetry.ServiceName,
			Enabled:     tracerProvider.IsEnabled(),
		},
		Metrics: middleware.HTTPMetricsConfig{
			MeterProvider: meterProvider,
			Enabled:       cfg.Telemetry.MetricsEnabled,
			Logger:        log,
		},
		Auth: middleware.AuthConfig{
			Validator:      jwtService,
			TokenBlacklist: blacklist,
			Logger:         log,
		},
		Resolver: userService,
	}, router.Handlers{
		System:        handler.NewSystemHandler(db, redisPinger),
		Token:         handler.NewTokenHandler(tokenService),
		User:          handler.NewUserHandler(userService),
		Category:      handler.NewCategoryHandler(categoryService),
		Product:       handler.NewProductHandler(productService),
		Order:         handler.NewOrderHandler(orderService),
		Payment:       handler.NewPaymentHandler(paymentService),
		Advertisement: handler.NewAdvertisementHandler(advertisementService),
		Report:        handler.NewReportHandler(reportService),
	})
	defer engine.Close()

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
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}
	if err := meterProvider.Shutdown(shutdownCtx); err != nil {
		log.Warn("Meter provider shutdown failed", zap.Error(err))
	}
	if err := tracerProvider.Shutdown(shutdownCtx); err != nil {
		log.Warn("Tracer provider shutdown failed", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
