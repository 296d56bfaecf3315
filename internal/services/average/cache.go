package average

import (
	"sync"
	"time"

	"github.com/akgoel-in/nivesh/internal/common"
	"github.com/akgoel-in/nivesh/internal/models"
)

// Cache holds weekly-average results keyed by canonical ticker. Batch
// workers share it read-only through the lock; entries past the freshness
// window are recomputed, not served.
type Cache struct {
	mu      sync.Mutex
	entries map[string]cacheEntry
	ttl     time.Duration
}

type cacheEntry struct {
	result    models.WeeklyAverage
	fetchedAt time.Time
}

// NewCache creates a cache with the given freshness window
func NewCache(ttl time.Duration) *Cache {
	return &Cache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
	}
}

// Get returns a copy of the cached result while it is still fresh
func (c *Cache) Get(ticker string) (*models.WeeklyAverage, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[ticker]
	if !ok || !common.IsFresh(entry.fetchedAt, c.ttl) {
		return nil, false
	}
	result := entry.result
	return &result, true
}

// Put stores a result, replacing any previous entry for the ticker
func (c *Cache) Put(ticker string, result models.WeeklyAverage) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[ticker] = cacheEntry{
		result:    result,
		fetchedAt: time.Now(),
	}
}
