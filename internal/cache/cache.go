package cache

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/sorotlabs/sorot/internal/logging"
)

// Store is a TTL cache for serialized metadata payloads. Backends absorb
// their own failures: a broken cache degrades to a miss, never an error.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
	Delete(ctx context.Context, key string)
	Stats(ctx context.Context) Stats
}

type Stats struct {
	Backend   string  `json:"backend"`
	Entries   int64   `json:"total_entries"`
	HitCount  int64   `json:"hit_count"`
	MissCount int64   `json:"miss_count"`
	HitRate   float64 `json:"hit_rate"`
}

// Key derives the cache key for one URL and option combination. Different
// option flags cache independently.
func Key(url string, includeThumbnailAnalysis, includeTranscript bool) string {
	keyData := fmt.Sprintf(
		"%s:thumbnail_analysis=%t:transcript=%t",
		url, includeThumbnailAnalysis, includeTranscript,
	)
	sum := md5.Sum([]byte(keyData))
	return "video_metadata:" + hex.EncodeToString(sum[:])
}

// New builds the configured cache backend. A Redis address is tried first
// when given; if the server is unreachable the in-memory backend takes over.
func New(redisAddr string, log *logging.Logger) Store {
	if redisAddr != "" {
		store, err := newRedisStore(redisAddr, log)
		if err == nil {
			log.Infow("Using Redis cache backend", "addr", redisAddr)
			return store
		}
		log.Warnw("Failed to initialize Redis cache, falling back to in-memory",
			"addr", redisAddr,
			"error", err,
		)
	}
	return newMemoryStore()
}

func hitRate(hits, misses int64) float64 {
	total := hits + misses
	if total == 0 {
		return 0
	}
	return float64(hits) / float64(total)
}
