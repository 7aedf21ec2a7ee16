package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vorobeiDev/goit-pythonweb-hw-12/domain"
)

// SessionCacheImpl implements domain.SessionCache using Redis.
//
// The cache key is the raw bearer token string. Entries are blind overwrites
// with a fixed TTL and are never invalidated before expiry, so a role or
// password change can be served stale for at most one TTL.
type SessionCacheImpl struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewSessionCache creates a new session cache
func NewSessionCache(client *redis.Client, ttl time.Duration) domain.SessionCache {
	return &SessionCacheImpl{
		client: client,
		prefix: "usercache:",
		ttl:    ttl,
	}
}

// Get implements domain.SessionCache
func (r *SessionCacheImpl) Get(ctx context.Context, token string) (*domain.UserSnapshot, error) {
	data, err := r.client.Get(ctx, r.prefix+token).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, domain.ErrCacheMiss
		}
		return nil, err
	}

	var snapshot domain.UserSnapshot
	if err := json.Unmarshal([]byte(data), &snapshot); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user snapshot: %w", err)
	}
	return &snapshot, nil
}

// Put implements domain.SessionCache
func (r *SessionCacheImpl) Put(ctx context.Context, token string, snapshot *domain.UserSnapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal user snapshot: %w", err)
	}
	return r.client.Set(ctx, r.prefix+token, data, r.ttl).Err()
}
