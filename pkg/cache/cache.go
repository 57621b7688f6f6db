package cache

import (
	"context"
	"time"
)

// Store is the cache-aside contract the services depend on. Entries
// are written wholesale after a fully-computed result, so concurrent
// misses at worst duplicate work.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Put(ctx context.Context, key string, value []byte, ttl time.Duration)
	Has(ctx context.Context, key string) bool

	// Name identifies the backend on the diagnostics endpoint.
	Name() string
}
