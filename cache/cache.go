package cache

import (
	"sync"
	"time"

	"api/metrics"
)

// DefaultTTL is the read-cache expiry window for content-store resources
const DefaultTTL = 5 * time.Minute

// Well-known cache keys. Per-file content uses KeyFile(path).
const (
	KeyTree     = "tree"
	KeyMembers  = "members"
	KeyActivity = "activity"
)

// KeyFile returns the cache key for a single file's content
func KeyFile(path string) string {
	return "file:" + path
}

// Store is the read-cache capability handed to content-store callers.
// Invalidation is explicit: gateway callers invalidate affected keys right
// after a successful mutation so the next read reflects the write.
type Store interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration)
	Invalidate(key string)
}

type item struct {
	value     []byte
	expiresAt time.Time
}

// MemoryStore is a process-local TTL cache
type MemoryStore struct {
	mu    sync.RWMutex
	items map[string]item
}

// NewMemoryStore creates a MemoryStore and starts a background sweep that
// drops expired entries
func NewMemoryStore() *MemoryStore {
	s := &MemoryStore{items: make(map[string]item)}
	go s.janitor()
	return s
}

func (s *MemoryStore) Get(key string) ([]byte, bool) {
	s.mu.RLock()
	it, ok := s.items[key]
	s.mu.RUnlock()

	if !ok || time.Now().After(it.expiresAt) {
		if ok {
			s.Invalidate(key)
		}
		metrics.CacheMisses.Inc()
		return nil, false
	}
	metrics.CacheHits.Inc()
	return it.value, true
}

func (s *MemoryStore) Set(key string, value []byte, ttl time.Duration) {
	s.mu.Lock()
	s.items[key] = item{value: value, expiresAt: time.Now().Add(ttl)}
	s.mu.Unlock()
}

func (s *MemoryStore) Invalidate(key string) {
	s.mu.Lock()
	delete(s.items, key)
	s.mu.Unlock()
}

func (s *MemoryStore) janitor() {
	for {
		time.Sleep(time.Minute)
		now := time.Now()
		s.mu.Lock()
		for key, it := range s.items {
			if now.After(it.expiresAt) {
				delete(s.items, key)
			}
		}
		s.mu.Unlock()
	}
}
