package snapshot

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Cache keeps parsed snapshots in memory in front of another Loader.
type Cache struct {
	next Loader

	mu      sync.RWMutex
	records map[string][]Record
}

// NewCache wraps next.
func NewCache(next Loader) *Cache {
	return &Cache{
		next:    next,
		records: make(map[string][]Record),
	}
}

// Load serves id from memory, falling back to the wrapped loader on a miss.
// Failed loads are not cached so a later tick can retry.
func (c *Cache) Load(id string) ([]Record, error) {
	c.mu.RLock()
	records, ok := c.records[id]
	c.mu.RUnlock()
	if ok {
		return records, nil
	}

	records, err := c.next.Load(id)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.records[id] = records
	c.mu.Unlock()
	return records, nil
}

// Preload fetches every id with up to workers concurrent loads. It stops at
// the first error, leaving whatever was already loaded in the cache.
func (c *Cache) Preload(ctx context.Context, ids []string, workers int) error {
	if workers < 1 {
		workers = 1
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for _, id := range ids {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if _, err := c.Load(id); err != nil {
				return fmt.Errorf("preload %s: %w", id, err)
			}
			return nil
		})
	}
	return g.Wait()
}

// Len returns the number of cached snapshots.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.records)
}
