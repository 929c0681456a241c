package cache

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

// in-process cache backend; expired entries are dropped on read
type memoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	hits    int64
	misses  int64
}

func newMemoryStore() *memoryStore {
	return &memoryStore{entries: map[string]memoryEntry{}}
}

func (s *memoryStore) Get(_ context.Context, key string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[key]
	if !ok {
		s.misses++
		return nil, false
	}
	if time.Now().After(entry.expiresAt) {
		delete(s.entries, key)
		s.misses++
		return nil, false
	}

	s.hits++
	return entry.value, true
}

func (s *memoryStore) Set(_ context.Context, key string, value []byte, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = memoryEntry{
		value:     value,
		expiresAt: time.Now().Add(ttl),
	}
}

func (s *memoryStore) Delete(_ context.Context, key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
}

func (s *memoryStore) Stats(_ context.Context) Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Stats{
		Backend:   "memory",
		Entries:   int64(len(s.entries)),
		HitCount:  s.hits,
		MissCount: s.misses,
		HitRate:   hitRate(s.hits, s.misses),
	}
}
