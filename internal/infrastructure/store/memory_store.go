package store

import (
	"sort"
	"sync"
	"time"

	"github.com/roshan-1001/credence-realtor-sub001/internal/domain/contract"
	"github.com/roshan-1001/credence-realtor-sub001/internal/domain/entity"
)

// MemoryStore is a bounded in-process response cache. Entries expire by
// TTL on read and are removed by a capacity sweep on write, never by a
// background task.
//
// The eviction policy is insertion-order, not LRU: when the entry count
// exceeds the cap, the sweep keeps the cap newest entries by insertion
// time and discards the rest. An overwrite gets a fresh timestamp and is
// protected; a read does not promote, so a hot but old entry can still
// be evicted.
type MemoryStore struct {
	mu      sync.Mutex
	cap     int
	entries map[string]cacheEntry
	now     func() time.Time
}

type cacheEntry struct {
	payload    any
	insertedAt time.Time
	ttl        time.Duration
}

var _ contract.IResponseCache = (*MemoryStore)(nil)

// NewMemoryStore creates a store bounded to capacity entries.
func NewMemoryStore(capacity int) *MemoryStore {
	return &MemoryStore{
		cap:     capacity,
		entries: make(map[string]cacheEntry),
		now:     time.Now,
	}
}

// Get returns the payload for key if the entry exists and is still
// fresh. An expired entry is a miss but stays in the map until the next
// sweep or overwrite.
func (s *MemoryStore) Get(key string) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		return nil, false
	}
	if s.now().Sub(e.insertedAt) >= e.ttl {
		return nil, false
	}
	return e.payload, true
}

// Set inserts or overwrites the entry for key with the lifetime of the
// given TTL class, then sweeps if the store is over capacity.
func (s *MemoryStore) Set(key string, payload any, class entity.TTLClass) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = cacheEntry{
		payload:    payload,
		insertedAt: s.now(),
		ttl:        class.TTL(),
	}
	s.sweepLocked()
}

// Len returns the current entry count, expired entries included.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// sweepLocked keeps the cap newest entries by insertion time. Caller
// must hold s.mu.
func (s *MemoryStore) sweepLocked() {
	if len(s.entries) <= s.cap {
		return
	}
	type keyedEntry struct {
		key        string
		insertedAt time.Time
	}
	all := make([]keyedEntry, 0, len(s.entries))
	for k, e := range s.entries {
		all = append(all, keyedEntry{key: k, insertedAt: e.insertedAt})
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].insertedAt.After(all[j].insertedAt)
	})
	for _, ke := range all[s.cap:] {
		delete(s.entries, ke.key)
	}
}
