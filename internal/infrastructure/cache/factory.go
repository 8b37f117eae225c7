package cache

import (
	"fmt"

	"github.com/recyclezone/marketplace/internal/infrastructure/auth"
	"github.com/recyclezone/marketplace/internal/infrastructure/config"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// BlacklistFactory creates the token blacklist based on configuration
type BlacklistFactory struct {
	redisConfig           config.RedisConfig
	logger                *zap.Logger
	allowInMemoryFallback bool
}

// BlacklistFactoryOption is a functional option for configuring the factory
type BlacklistFactoryOption func(*BlacklistFactory)

// WithLogger sets the logger for the factory
func WithLogger(logger *zap.Logger) BlacklistFactoryOption {
	return func(f *BlacklistFactory) {
		f.logger = logger
	}
}

// WithInMemoryFallback controls whether to fall back to the in-memory
// blacklist when Redis is enabled but unreachable. Default is true.
func WithInMemoryFallback(allow bool) BlacklistFactoryOption {
	return func(f *BlacklistFactory) {
		f.allowInMemoryFallback = allow
	}
}

// NewBlacklistFactory creates a new factory
func NewBlacklistFactory(cfg config.RedisConfig, opts ...BlacklistFactoryOption) *BlacklistFactory {
	f := &BlacklistFactory{
		redisConfig:           cfg,
		logger:                zap.NewNop(),
		allowInMemoryFallback: true,
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// CreateBlacklist returns a Redis-backed blacklist when Redis is enabled and
// reachable, and the in-memory blacklist otherwise. The Redis client is
// returned so the caller can close it and use it for health checks; it is
// nil for the in-memory blacklist.
func (f *BlacklistFactory) CreateBlacklist() (auth.TokenBlacklist, *redis.Client, error) {
	if !f.redisConfig.Enabled {
		f.logger.Info("Redis disabled, using in-memory token blacklist")
		return auth.NewInMemoryTokenBlacklist(), nil, nil
	}

	client, err := NewRedisClient(f.redisConfig)
	if err == nil {
		f.logger.Info("Using Redis token blacklist", zap.String("addr", f.redisConfig.Addr()))
		return auth.NewRedisTokenBlacklist(client), client, nil
	}

	if !f.allowInMemoryFallback {
		return nil, nil, fmt.Errorf("Redis required for token revocation but unavailable: %w", err)
	}

	f.logger.Warn("Redis unavailable, falling back to in-memory token blacklist. "+
		"Revocations will not be shared between instances.",
		zap.Error(err),
	)
	return auth.NewInMemoryTokenBlacklist(), nil, nil
}
