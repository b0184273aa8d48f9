package dataset

import (
	"context"
	"sync"
)

// Cache loads the Table once and serves it for the process lifetime.
// A failed load is cached as well, there is no re-initialization.
type Cache struct {
	source  Source
	options Options

	once  sync.Once
	table *Table
	err   error
}

// NewCache creates lazy loading Cache.
func NewCache(source Source, options Options) *Cache {
	return &Cache{
		source:  source,
		options: options,
	}
}

// Get loads the Table on first call and returns the cached result afterwards.
func (c *Cache) Get(ctx context.Context) (*Table, error) {
	c.once.Do(func() {
		c.table, c.err = Load(ctx, c.source, c.options)
	})
	return c.table, c.err
}

// Location returns location of underlying source.
func (c *Cache) Location() string {
	return c.source.Location()
}
