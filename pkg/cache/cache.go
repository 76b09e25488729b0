package cache

import (
	"context"
	"time"
)

// Cache abstracts the cache layer so implementations can be swapped
// (Redis in production, in-memory in tests).
type Cache interface {
	// Get reads a key and unmarshals it into dest.
	// found = false means cache miss; dest is left untouched.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores a value with a TTL.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes keys from the cache.
	Delete(ctx context.Context, keys ...string) error

	// SetAdd adds a member to a set, returning true if it was newly added.
	// Used for one-vote-per-user tracking on review helpful counts.
	SetAdd(ctx context.Context, key, member string) (bool, error)

	// Ping verifies connectivity.
	Ping(ctx context.Context) error
}
