package loader

import (
	"sync"

	"worksvis/work"
)

// Cache holds the normalized rows of one dataset. The zero value is an empty
// cache. It guards its own fields but does not coordinate loads.
type Cache struct {
	mu     sync.RWMutex
	rows   []work.Row
	loaded bool
}

func NewCache() *Cache {
	return &Cache{}
}

// Get returns the cached slice itself, not a copy.
func (c *Cache) Get() ([]work.Row, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.rows, c.loaded
}

func (c *Cache) Set(rows []work.Row) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rows = rows
	c.loaded = true
}

func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rows = nil
	c.loaded = false
}
