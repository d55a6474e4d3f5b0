package session

import (
	"context"
	"time"
)

// Store is the revocation-aware cache of active session tokens. Every call is
// a single-key operation; the backing store provides per-key atomicity.
type Store interface {
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Exists(ctx context.Context, key string) (bool, error)
	Delete(ctx context.Context, key string) error
}
