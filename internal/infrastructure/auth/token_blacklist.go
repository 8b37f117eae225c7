package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenBlacklist revokes every token issued to an email before a given instant.
// Deleting a user account goes through here so outstanding tokens die with it.
type TokenBlacklist interface {
	InvalidateUserTokens(ctx context.Context, email string, ttl time.Duration) error
	IsUserTokenInvalidated(ctx context.Context, email string, tokenIssuedAt time.Time) (bool, error)
}

// RedisTokenBlacklist implements TokenBlacklist using Redis
type RedisTokenBlacklist struct {
	client    redis.Cmdable
	keyPrefix string
}

// NewRedisTokenBlacklist wraps an existing Redis client
func NewRedisTokenBlacklist(client redis.Cmdable) *RedisTokenBlacklist {
	return &RedisTokenBlacklist{
		client:    client,
		keyPrefix: "rz:token:revoked:",
	}
}

func (b *RedisTokenBlacklist) userKey(email string) string {
	return b.keyPrefix + email
}

// InvalidateUserTokens stores the revocation instant (unix nanoseconds)
// for ttl, which should cover the longest token lifetime.
func (b *RedisTokenBlacklist) InvalidateUserTokens(ctx context.Context, email string, ttl time.Duration) error {
	if err := b.client.Set(ctx, b.userKey(email), time.Now().UnixNano(), ttl).Err(); err != nil {
		return fmt.Errorf("failed to revoke tokens for %s: %w", email, err)
	}
	return nil
}

// IsUserTokenInvalidated reports whether a token issued at tokenIssuedAt was revoked
func (b *RedisTokenBlacklist) IsUserTokenInvalidated(ctx context.Context, email string, tokenIssuedAt time.Time) (bool, error) {
	raw, err := b.client.Get(ctx, b.userKey(email)).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check token revocation: %w", err)
	}

	revokedAt, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return false, fmt.Errorf("failed to parse revocation timestamp: %w", err)
	}
	return !tokenIssuedAt.After(time.Unix(0, revokedAt)), nil
}

var _ TokenBlacklist = (*RedisTokenBlacklist)(nil)

// InMemoryTokenBlacklist is used when Redis is disabled.
// It is per-process and is not shared between replicas.
type InMemoryTokenBlacklist struct {
	mu      sync.RWMutex
	revoked map[string]revocation
}

type revocation struct {
	at        time.Time
	expiresAt time.Time
}

// NewInMemoryTokenBlacklist creates a new in-memory token blacklist
func NewInMemoryTokenBlacklist() *InMemoryTokenBlacklist {
	return &InMemoryTokenBlacklist{revoked: make(map[string]revocation)}
}

// InvalidateUserTokens records the revocation instant for email
func (b *InMemoryTokenBlacklist) InvalidateUserTokens(_ context.Context, email string, ttl time.Duration) error {
	now := time.Now()
	b.mu.Lock()
	defer b.mu.Unlock()
	b.revoked[email] = revocation{at: now, expiresAt: now.Add(ttl)}
	return nil
}

// IsUserTokenInvalidated reports whether a token issued at tokenIssuedAt was revoked
func (b *InMemoryTokenBlacklist) IsUserTokenInvalidated(_ context.Context, email string, tokenIssuedAt time.Time) (bool, error) {
	b.mu.RLock()
	r, ok := b.revoked[email]
	b.mu.RUnlock()
	if !ok {
		return false, nil
	}

	if time.Now().After(r.expiresAt) {
		b.mu.Lock()
		delete(b.revoked, email)
		b.mu.Unlock()
		return false, nil
	}
	return !tokenIssuedAt.After(r.at), nil
}

var _ TokenBlacklist = (*InMemoryTokenBlacklist)(nil)
