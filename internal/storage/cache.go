package storage

import (
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"notekeeper/pkg/models"
)

const DefaultCacheSize = 1000

// CategoryCache holds recently resolved categories keyed by name. It backs
// the by-name lookup path so repeated lookups for the same name skip the
// database round-trip.
type CategoryCache struct {
	mu    sync.RWMutex
	names *lru.Cache[string, models.Category]
}

// NewCategoryCache creates a cache bounded to the given number of names.
func NewCategoryCache(size int) (*CategoryCache, error) {
	names, err := lru.New[string, models.Category](size)
	if err != nil {
		return nil, err
	}

	return &CategoryCache{names: names}, nil
}

func (c *CategoryCache) Get(name string) (models.Category, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.names.Get(name)
}

func (c *CategoryCache) Add(name string, category models.Category) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.names.Add(name, category)
}

func (c *CategoryCache) Remove(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.names.Remove(name)
}

// Len reports how many names are currently cached.
func (c *CategoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.names.Len()
}
