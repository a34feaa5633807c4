package cache

import (
	"sync"
	"time"
)

// Config configures a Store.
type Config struct {
	// Capacity is the maximum number of entries retained. A store
	// with capacity <= 0 never retains anything: evict-before-insert
	// leaves nothing to keep.
	Capacity int

	// DefaultTTL is the expiry Set applies. A zero or negative TTL
	// stores entries already expired.
	DefaultTTL time.Duration
}

// Stats is a point-in-time snapshot of a Store.
type Stats struct {
	Size       int
	Capacity   int
	DefaultTTL time.Duration
}

// Store is a bounded in-memory key/value store with per-entry expiry.
//
// Contract:
//   - Len never exceeds Capacity; inserting a new key at capacity
//     first evicts the oldest-inserted entry.
//   - Eviction order is insertion order, not access recency. An
//     overwrite re-inserts the key at the back of the queue.
//   - Expiry is lazy: an expired entry is removed only when Get or
//     Has touches it, and counts toward Len until then. There is no
//     background sweep.
//   - All operations are total; none of them error.
//   - Concurrency: safe for concurrent use.
type Store struct {
	mu         sync.RWMutex
	entries    map[string]*entry
	order      []string
	capacity   int
	defaultTTL time.Duration
}

type entry struct {
	value     any
	expiresAt time.Time
}

// New creates an empty Store with the given capacity and default TTL.
func New(config Config) *Store {
	return &Store{
		entries:    make(map[string]*entry),
		capacity:   config.Capacity,
		defaultTTL: config.DefaultTTL,
	}
}

// Set inserts or overwrites key with the store's default TTL.
func (s *Store) Set(key string, value any) {
	s.SetTTL(key, value, s.defaultTTL)
}

// SetTTL inserts or overwrites key with an explicit TTL.
//
// Overwriting an existing key resets its insertion order to "now", so
// the entry moves to the back of the eviction queue. A ttl <= 0 stores
// the entry already expired: invisible to Get and Has, but counted by
// Len until touched, like any other expired entry.
func (s *Store) SetTTL(key string, value any, ttl time.Duration) {
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.entries[key]; exists {
		s.unlinkLocked(key)
	} else {
		if s.capacity <= 0 {
			return
		}
		if len(s.entries) >= s.capacity {
			oldest := s.order[0]
			s.order = s.order[1:]
			delete(s.entries, oldest)
		}
	}

	s.entries[key] = &entry{value: value, expiresAt: now.Add(ttl)}
	s.order = append(s.order, key)
}

// Get returns the value for key if it is present and not yet expired.
// An expired entry is deleted as a side effect of the lookup.
func (s *Store) Get(key string) (any, bool) {
	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}

	if !time.Now().Before(e.expiresAt) {
		// Lazy expiry. Re-check identity under the write lock: the key
		// may have been overwritten since the read.
		s.mu.Lock()
		if cur, ok := s.entries[key]; ok && cur == e {
			delete(s.entries, key)
			s.unlinkLocked(key)
		}
		s.mu.Unlock()
		return nil, false
	}

	return e.value, true
}

// Has reports whether key is present and not yet expired, with the
// same lazy-deletion side effect as Get.
func (s *Store) Has(key string) bool {
	_, ok := s.Get(key)
	return ok
}

// Delete removes key if present. Absent keys are a no-op.
func (s *Store) Delete(key string) {
	s.mu.Lock()
	if _, ok := s.entries[key]; ok {
		delete(s.entries, key)
		s.unlinkLocked(key)
	}
	s.mu.Unlock()
}

// Clear removes all entries.
func (s *Store) Clear() {
	s.mu.Lock()
	clear(s.entries)
	s.order = s.order[:0]
	s.mu.Unlock()
}

// Len is the number of entries currently stored, including expired
// entries not yet removed by a lazy Get or Has.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Stats returns a snapshot of the store.
func (s *Store) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Stats{
		Size:       len(s.entries),
		Capacity:   s.capacity,
		DefaultTTL: s.defaultTTL,
	}
}

// unlinkLocked removes key from the insertion-order queue. Callers
// hold the write lock.
func (s *Store) unlinkLocked(key string) {
	for i, k := range s.order {
		if k == key {
			s.order = append(s.order[:i], s.order[i+1:]...)
			return
		}
	}
}
