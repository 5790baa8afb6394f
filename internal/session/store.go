// Package session manages ephemeral authentication tokens in a TTL cache.
package session

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// KeyPrefix namespaces session keys in the cache.
const KeyPrefix = "auth_"

// Cache is the minimal TTL key-value contract the store needs. Expiry is
// enforced by the cache itself.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, val string, ttl time.Duration) error
	Del(ctx context.Context, key string) error
}

type Store struct {
	cache Cache
	ttl   time.Duration
}

func New(cache Cache, ttl time.Duration) *Store {
	return &Store{cache: cache, ttl: ttl}
}

// Create issues a fresh opaque token mapped to userID for the store's TTL.
// Multiple concurrent sessions per user are allowed.
func (s *Store) Create(ctx context.Context, userID string) (string, error) {
	token := uuid.NewString()
	if err := s.cache.Set(ctx, KeyPrefix+token, userID, s.ttl); err != nil {
		return "", err
	}
	return token, nil
}

// Resolve maps a token back to its user id. A miss, an expired token, and a
// cache outage all resolve to "": the caller treats every one of them as
// unauthenticated rather than a server failure. The token is not renewed.
func (s *Store) Resolve(ctx context.Context, token string) string {
	v, err := s.cache.Get(ctx, KeyPrefix+token)
	if err != nil {
		return ""
	}
	return v
}

// Destroy removes the token unconditionally. Destroying an absent token is
// not an error.
func (s *Store) Destroy(ctx context.Context, token string) error {
	return s.cache.Del(ctx, KeyPrefix+token)
}
