package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "chatarr:session:"

// RedisStore keeps sessions in Redis so multiple chat frontends can share
// them. Staleness is enforced by Redis key expiry.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore creates a Redis-backed session store.
func NewRedisStore(addr, password string, db int, ttl time.Duration) *RedisStore {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &RedisStore{client: client, ttl: ttl}
}

// Get returns the user's session, or nil when absent or expired.
func (r *RedisStore) Get(ctx context.Context, userID string) (*Session, error) {
	raw, err := r.client.Get(ctx, redisKeyPrefix+userID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("get session: %w", err)
	}

	var s Session
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	if !s.Active {
		return nil, nil
	}
	return &s, nil
}

// Set replaces the user's session.
func (r *RedisStore) Set(ctx context.Context, userID string, s *Session) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := r.client.Set(ctx, redisKeyPrefix+userID, raw, r.ttl).Err(); err != nil {
		return fmt.Errorf("set session: %w", err)
	}
	return nil
}

// Clear removes the user's session. Idempotent.
func (r *RedisStore) Clear(ctx context.Context, userID string) error {
	if err := r.client.Del(ctx, redisKeyPrefix+userID).Err(); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// Exists reports whether the user has an active session.
func (r *RedisStore) Exists(ctx context.Context, userID string) (bool, error) {
	s, err := r.Get(ctx, userID)
	if err != nil {
		return false, err
	}
	return s != nil, nil
}

// Ping checks the Redis connection.
func (r *RedisStore) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Close closes the underlying Redis client.
func (r *RedisStore) Close() error {
	return r.client.Close()
}
