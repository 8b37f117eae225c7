package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/recyclezone/marketplace/internal/infrastructure/config"
	"github.com/recyclezone/marketplace/internal/infrastructure/logger"
	"github.com/recyclezone/marketplace/internal/interfaces/http/middleware"
	"go.uber.org/zap"
)

// EngineConfig holds everything the HTTP engine needs besides handlers
type EngineConfig struct {
	HTTP     config.HTTPConfig
	Logger   *zap.Logger
	Tracing  middleware.TracingConfig
	Metrics  middleware.HTTPMetricsConfig
	Auth     middleware.AuthConfig
	Resolver middleware.RoleResolver
}

// Engine is the configured gin engine together with the rate limiters it
// owns
type Engine struct {
	*gin.Engine
	limiters []*middleware.RateLimiter
}

// Close stops background work started for the engine
func (e *Engine) Close() {
	for _, l := range e.limiters {
		l.Stop()
	}
}

// NewEngine builds the gin engine: the global middleware chain, the access
// policy and every marketplace route.
//
// Middleware order:
//  1. RequestID
//  2. Recovery
//  3. request logging
//  4. tracing and span enrichment
//  5. HTTP metrics
//  6. security headers and CORS
//  7. body limit and rate limit
//  8. access policy
func NewEngine(cfg EngineConfig, h Handlers) *Engine {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	if cfg.Auth.Logger == nil {
		cfg.Auth.Logger = log
	}
	if cfg.Metrics.Logger == nil {
		cfg.Metrics.Logger = log
	}

	middleware.SetupValidator()

	engine := gin.New()
	e := &Engine{Engine: engine}

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.TracingWithConfig(cfg.Tracing))
	if cfg.Tracing.Enabled {
		engine.Use(middleware.SpanEnricher())
	}
	engine.Use(middleware.HTTPMetrics(cfg.Metrics))
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORSWithConfig(corsConfig(cfg.HTTP)))

	if cfg.HTTP.MaxBodySize > 0 {
		engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))
	}

	if cfg.HTTP.RateLimitEnabled {
		limiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		e.limiters = append(e.limiters, limiter)
		engine.Use(middleware.RateLimit(limiter))
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
		)
	}

	if cfg.HTTP.AuthRateLimitEnabled && h.TokenRateLimit == nil {
		limiter := middleware.NewRateLimiter(cfg.HTTP.AuthRateLimitRequests, cfg.HTTP.AuthRateLimitWindow)
		e.limiters = append(e.limiters, limiter)
		h.TokenRateLimit = middleware.RateLimitByKey(limiter, func(c *gin.Context) string {
			return "jwt:" + c.ClientIP()
		})
	}

	// Must precede route registration so FullPath resolves inside the guard.
	engine.Use(middleware.AccessPolicyMiddleware(middleware.AccessPolicyConfig{
		Policy:   NewAccessPolicy(),
		Auth:     cfg.Auth,
		Resolver: cfg.Resolver,
		Logger:   log,
	}))

	NewRouter(engine).Register(DomainGroups(h)...).Setup()
	return e
}

func corsConfig(cfg config.HTTPConfig) middleware.CORSConfig {
	cors := middleware.DefaultCORSConfig()
	if len(cfg.CORSAllowOrigins) > 0 {
		cors.AllowOrigins = cfg.CORSAllowOrigins
	}
	if len(cfg.CORSAllowMethods) > 0 {
		cors.AllowMethods = cfg.CORSAllowMethods
	}
	if len(cfg.CORSAllowHeaders) > 0 {
		cors.AllowHeaders = cfg.CORSAllowHeaders
	}
	cors.MaxAge = 12 * time.Hour
	return cors
}
