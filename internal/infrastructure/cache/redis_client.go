package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/recyclezone/marketplace/internal/infrastructure/config"
	"github.com/redis/go-redis/v9"
)

const pingTimeout = 5 * time.Second

// NewRedisClient connects to Redis and verifies the connection with a ping
func NewRedisClient(cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return client, nil
}

// Pinger reports Redis reachability for the health endpoint
type Pinger struct {
	client redis.Cmdable
}

// NewPinger wraps a Redis client
func NewPinger(client redis.Cmdable) *Pinger {
	return &Pinger{client: client}
}

// PingContext checks the Redis connection
func (p *Pinger) PingContext(ctx context.Context) error {
	return p.client.Ping(ctx).Err()
}
