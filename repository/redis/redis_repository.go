package redis

import (
	"context"
	"time"

	redisclient "github.com/muhammadheryan/echobody/cmd/redis"
)

const sessionPrefix = "session:"

// Repository records issued login sessions. Every call is a no-op when no
// Redis client has been configured.
type Repository interface {
	SetSession(ctx context.Context, sessionID, userID string, ttl time.Duration) error
	DeleteSession(ctx context.Context, sessionID string) error
}

type redis struct{}

// NewRepository returns a Redis Repository implementation
func NewRepository() Repository {
	return &redis{}
}

// SetSession stores the owning userID under the token id with a TTL
func (r *redis) SetSession(ctx context.Context, sessionID, userID string, ttl time.Duration) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Set(ctx, sessionPrefix+sessionID, userID, ttl).Err()
}

// DeleteSession removes a session
func (r *redis) DeleteSession(ctx context.Context, sessionID string) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Del(ctx, sessionPrefix+sessionID).Err()
}
