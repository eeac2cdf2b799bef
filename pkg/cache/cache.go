// Package cache provides HTTP response caching for registry and API clients.
//
// Cached entries are stored as opaque byte slices with a per-entry TTL.
// Two implementations are provided:
//
//   - [FileCache]: persistent cache under a directory, suitable for CLI usage
//   - [NullCache]: no-op cache for tests and --refresh runs
//
// All implementations are safe for concurrent use: FileCache relies on the
// filesystem's atomic file operations, NullCache holds no state.
package cache

import (
	"context"
	"time"
)

// Cache stores byte payloads under string keys with optional expiration.
type Cache interface {
	// Get retrieves a value by key.
	// Returns (data, true, nil) on a hit and (nil, false, nil) on a miss.
	// Expired entries are treated as misses.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value under key. A ttl of 0 means the entry never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}
