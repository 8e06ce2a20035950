package auth

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Revoker remembers logged-out token ids until they would have expired.
type Revoker interface {
	Revoke(ctx context.Context, tokenID string, until time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

type RedisRevoker struct {
	client *redis.Client
	now    func() time.Time
}

func NewRedisRevoker(client *redis.Client) *RedisRevoker {
	return &RedisRevoker{client: client, now: time.Now}
}

func revokedKey(tokenID string) string {
	return "auth:revoked:" + tokenID
}

func (r *RedisRevoker) Revoke(ctx context.Context, tokenID string, until time.Time) error {
	ttl := until.Sub(r.now())
	if ttl <= 0 {
		return nil
	}
	return r.client.Set(ctx, revokedKey(tokenID), 1, ttl).Err()
}

func (r *RedisRevoker) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	err := r.client.Get(ctx, revokedKey(tokenID)).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// MemoryRevoker is used when no redis address is configured.
type MemoryRevoker struct {
	mu      sync.Mutex
	revoked map[string]time.Time
	now     func() time.Time
}

func NewMemoryRevoker() *MemoryRevoker {
	return &MemoryRevoker{revoked: make(map[string]time.Time), now: time.Now}
}

func (r *MemoryRevoker) Revoke(_ context.Context, tokenID string, until time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	for id, exp := range r.revoked {
		if now.After(exp) {
			delete(r.revoked, id)
		}
	}
	if until.After(now) {
		r.revoked[tokenID] = until
	}
	return nil
}

func (r *MemoryRevoker) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	exp, ok := r.revoked[tokenID]
	return ok && r.now().Before(exp), nil
}
