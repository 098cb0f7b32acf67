package service

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RevocationStore tracks session tokens invalidated before their expiry.
type RevocationStore interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

const revokedKeyPrefix = "session:revoked:"

// RedisRevocationStore keeps revoked token IDs in Redis until the token would
// have expired anyway.
type RedisRevocationStore struct {
	client *redis.Client
}

var _ RevocationStore = (*RedisRevocationStore)(nil)

func NewRedisRevocationStore(client *redis.Client) *RedisRevocationStore {
	return &RedisRevocationStore{client: client}
}

func (s *RedisRevocationStore) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	return s.client.Set(ctx, revokedKeyPrefix+jti, "1", ttl).Err()
}

func (s *RedisRevocationStore) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := s.client.Exists(ctx, revokedKeyPrefix+jti).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
