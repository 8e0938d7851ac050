// Package conversation - Redis session store
package conversation

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"warequote/internal/errors"
)

const redisKeyPrefix = "warequote:session:"

// RedisStore persists sessions in redis with a sliding TTL
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore creates a redis-backed session store
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

// Get returns the session with the given id
func (r *RedisStore) Get(ctx context.Context, id string) (*Session, error) {
	data, err := r.client.Get(ctx, redisKeyPrefix+id).Bytes()
	if err == redis.Nil {
		return nil, errors.Newf(errors.TypeStore, "session not found: %s", id)
	}
	if err != nil {
		return nil, errors.Store("redis get failed", err)
	}

	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, errors.Store("session payload corrupt", err)
	}
	return &s, nil
}

// Put stores or replaces a session, refreshing its TTL
func (r *RedisStore) Put(ctx context.Context, s *Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return errors.Store("session marshal failed", err)
	}
	if err := r.client.Set(ctx, redisKeyPrefix+s.ID.String(), data, r.ttl).Err(); err != nil {
		return errors.Store("redis set failed", err)
	}
	return nil
}

// Delete removes a session
func (r *RedisStore) Delete(ctx context.Context, id string) error {
	if err := r.client.Del(ctx, redisKeyPrefix+id).Err(); err != nil {
		return errors.Store("redis del failed", err)
	}
	return nil
}

// ListExpired is a no-op for redis: expiry is delegated to the TTL
func (r *RedisStore) ListExpired(ctx context.Context, cutoff time.Time) ([]string, error) {
	return nil, nil
}
