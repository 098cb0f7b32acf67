package testhelpers

import (
	"context"
	"sync"
	"time"
)

// MemoryRevocationStore is an in-process stand-in for the Redis revocation
// store used in production.
type MemoryRevocationStore struct {
	mu      sync.Mutex
	revoked map[string]time.Time
}

func NewMemoryRevocationStore() *MemoryRevocationStore {
	return &MemoryRevocationStore{revoked: make(map[string]time.Time)}
}

func (s *MemoryRevocationStore) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.revoked[jti] = time.Now().Add(ttl)
	return nil
}

func (s *MemoryRevocationStore) IsRevoked(ctx context.Context, jti string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	expiry, ok := s.revoked[jti]
	if !ok {
		return false, nil
	}
	if time.Now().After(expiry) {
		delete(s.revoked, jti)
		return false, nil
	}
	return true, nil
}
