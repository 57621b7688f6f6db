package cache

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore backs the cache with a shared redis instance. Read and
// write errors degrade to cache misses; the caller recomputes.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, bool) {
	value, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("redis get %q: %v", key, err)
		}
		return nil, false
	}
	return value, true
}

func (s *RedisStore) Put(ctx context.Context, key string, value []byte, ttl time.Duration) {
	if err := s.client.Set(ctx, key, value, ttl).Err(); err != nil {
		log.Printf("redis set %q: %v", key, err)
	}
}

func (s *RedisStore) Has(ctx context.Context, key string) bool {
	res, err := s.client.Exists(ctx, key).Result()
	if err != nil {
		return false
	}
	return res > 0
}

func (s *RedisStore) Name() string { return "redis" }
