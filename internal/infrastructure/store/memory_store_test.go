package store

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/roshan-1001/credence-realtor-sub001/internal/domain/entity"
)

// fakeClock advances a fixed instant by a step on demand.
type fakeClock struct {
	at time.Time
}

func (c *fakeClock) now() time.Time { return c.at }

func (c *fakeClock) advance(d time.Duration) { c.at = c.at.Add(d) }

func newTestStore(capacity int) (*MemoryStore, *fakeClock) {
	clock := &fakeClock{at: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	s := NewMemoryStore(capacity)
	s.now = clock.now
	return s, clock
}

func TestGetMissOnUnknownKey(t *testing.T) {
	s, _ := newTestStore(10)
	_, ok := s.Get("listings:none")
	assert.False(t, ok)
}

func TestGetReturnsFreshEntry(t *testing.T) {
	s, clock := newTestStore(10)
	s.Set("k", "payload", entity.TTLFiltered)

	clock.advance(4 * time.Minute)
	v, ok := s.Get("k")
	assert.True(t, ok)
	assert.Equal(t, "payload", v)
}

func TestExpiredEntryIsMissButNotPurged(t *testing.T) {
	s, clock := newTestStore(10)
	s.Set("k", "payload", entity.TTLFiltered)

	clock.advance(5 * time.Minute)
	_, ok := s.Get("k")
	assert.False(t, ok)
	// No background purge: the entry lingers until a sweep or overwrite.
	assert.Equal(t, 1, s.Len())
}

func TestTTLClassesDiffer(t *testing.T) {
	s, clock := newTestStore(10)
	s.Set("filtered", "a", entity.TTLFiltered)
	s.Set("general", "b", entity.TTLGeneral)

	clock.advance(7 * time.Minute)
	_, ok := s.Get("filtered")
	assert.False(t, ok, "filtered entry should expire after 5m")
	_, ok = s.Get("general")
	assert.True(t, ok, "general entry should survive 7m")
}

func TestCapacitySweepKeepsNewestEntries(t *testing.T) {
	s, clock := newTestStore(100)
	for i := 0; i < 101; i++ {
		s.Set(fmt.Sprintf("k%d", i), i, entity.TTLGeneral)
		clock.advance(time.Millisecond)
	}

	assert.Equal(t, 100, s.Len())
	_, ok := s.Get("k0")
	assert.False(t, ok, "oldest entry should be evicted")
	for i := 1; i < 101; i++ {
		_, ok := s.Get(fmt.Sprintf("k%d", i))
		assert.True(t, ok, "entry k%d should survive", i)
	}
}

func TestOverwriteRefreshesInsertionTime(t *testing.T) {
	s, clock := newTestStore(2)
	s.Set("old", 1, entity.TTLGeneral)
	clock.advance(time.Second)
	s.Set("mid", 2, entity.TTLGeneral)
	clock.advance(time.Second)

	// Overwriting "old" gives it a fresh timestamp, so the next sweep
	// evicts "mid" instead.
	s.Set("old", 3, entity.TTLGeneral)
	clock.advance(time.Second)
	s.Set("new", 4, entity.TTLGeneral)

	_, ok := s.Get("old")
	assert.True(t, ok)
	_, ok = s.Get("mid")
	assert.False(t, ok)
	_, ok = s.Get("new")
	assert.True(t, ok)
}

func TestReadDoesNotPromote(t *testing.T) {
	s, clock := newTestStore(2)
	s.Set("hot", 1, entity.TTLGeneral)
	clock.advance(time.Second)
	s.Set("cold", 2, entity.TTLGeneral)
	clock.advance(time.Second)

	// Repeated reads of "hot" do not protect it from the sweep.
	for i := 0; i < 5; i++ {
		_, ok := s.Get("hot")
		assert.True(t, ok)
	}
	s.Set("new", 3, entity.TTLGeneral)

	_, ok := s.Get("hot")
	assert.False(t, ok, "read entries are not promoted by the sweep")
	_, ok = s.Get("cold")
	assert.True(t, ok)
}
