package cache

import (
	"context"
	"sync/atomic"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/sorotlabs/sorot/internal/logging"
)

// Redis-backed cache; shared across service replicas
type redisStore struct {
	client *goredis.Client
	log    *logging.Logger
	hits   atomic.Int64
	misses atomic.Int64
}

func newRedisStore(addr string, log *logging.Logger) (*redisStore, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &redisStore{client: client, log: log}, nil
}

func (s *redisStore) Get(ctx context.Context, key string) ([]byte, bool) {
	value, err := s.client.Get(ctx, key).Bytes()
	if err == goredis.Nil {
		s.misses.Add(1)
		return nil, false
	}
	if err != nil {
		s.log.Warnw("Redis get error", "key", key, "error", err)
		s.misses.Add(1)
		return nil, false
	}

	s.hits.Add(1)
	return value, true
}

func (s *redisStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	if err := s.client.Set(ctx, key, value, ttl).Err(); err != nil {
		s.log.Warnw("Redis set error", "key", key, "error", err)
	}
}

func (s *redisStore) Delete(ctx context.Context, key string) {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		s.log.Warnw("Redis delete error", "key", key, "error", err)
	}
}

func (s *redisStore) Stats(ctx context.Context) Stats {
	hits := s.hits.Load()
	misses := s.misses.Load()

	stats := Stats{
		Backend:   "redis",
		HitCount:  hits,
		MissCount: misses,
		HitRate:   hitRate(hits, misses),
	}

	if size, err := s.client.DBSize(ctx).Result(); err == nil {
		stats.Entries = size
	} else {
		s.log.Warnw("Redis stats error", "error", err)
	}

	return stats
}
