package cache

import (
	"context"
	"sync"
	"time"

	"github.com/skyhop/flightconnect/internal/models"
)

type memoryEntry struct {
	legs      []models.FlightLeg
	fetchedAt time.Time
}

// MemoryCache is an in-process FareCache. Entries age out after the TTL;
// expired entries are dropped lazily on lookup.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	ttl     time.Duration
	now     func() time.Time
}

func NewMemoryCache(ttl time.Duration) *MemoryCache {
	return &MemoryCache{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (c *MemoryCache) Get(_ context.Context, key Key) ([]models.FlightLeg, bool) {
	k := key.String()

	c.mu.RLock()
	e, ok := c.entries[k]
	c.mu.RUnlock()

	if !ok {
		return nil, false
	}
	if c.now().Sub(e.fetchedAt) > c.ttl {
		c.mu.Lock()
		// Re-check under the write lock; a concurrent Set may have
		// refreshed the entry.
		if cur, ok := c.entries[k]; ok && c.now().Sub(cur.fetchedAt) > c.ttl {
			delete(c.entries, k)
		}
		c.mu.Unlock()
		return nil, false
	}
	return e.legs, true
}

func (c *MemoryCache) Set(_ context.Context, key Key, legs []models.FlightLeg) error {
	stored := make([]models.FlightLeg, len(legs))
	copy(stored, legs)

	c.mu.Lock()
	c.entries[key.String()] = memoryEntry{legs: stored, fetchedAt: c.now()}
	c.mu.Unlock()
	return nil
}

// Len reports the number of live entries, expired or not.
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
