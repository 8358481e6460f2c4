// Package cache holds the process-wide item-catalog snapshot so repeated
// menu loads do not hammer the backend.
package cache

import (
	"context"
	"sync"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/Serve-X/Client-App/models"
)

// FetchFunc retrieves a complete, normalized catalog from the backend.
type FetchFunc func(ctx context.Context) ([]models.Item, error)

type snapshot struct {
	items     []models.Item
	fetchedAt time.Time
}

// ItemCache memoizes the catalog for a bounded window. The snapshot is
// replaced wholesale after a successful fetch and a failed fetch leaves it
// untouched, so callers see either the previous complete catalog or the new
// one, never a partial state. Concurrent refreshes in the same stale window
// are not coalesced; each performs its own fetch and the last to finish
// wins. Known limitation at this scale, kept deliberately.
type ItemCache struct {
	ttl   time.Duration
	clock clock.Clock
	fetch FetchFunc

	mu      sync.RWMutex
	current snapshot
}

func New(ttl time.Duration, clk clock.Clock, fetch FetchFunc) *ItemCache {
	return &ItemCache{
		ttl:   ttl,
		clock: clk,
		fetch: fetch,
	}
}

// GetItems returns the cached catalog when it is non-empty and younger than
// the TTL, refreshing from the backend otherwise. A failed refresh
// propagates the error without storing anything, so the stale snapshot stays
// available and the next call retries.
func (c *ItemCache) GetItems(ctx context.Context) ([]models.Item, error) {
	now := c.clock.Now()

	c.mu.RLock()
	current := c.current
	c.mu.RUnlock()

	if len(current.items) > 0 && now.Sub(current.fetchedAt) < c.ttl {
		return current.items, nil
	}

	items, err := c.fetch(ctx)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.current = snapshot{items: items, fetchedAt: now}
	c.mu.Unlock()

	return items, nil
}
