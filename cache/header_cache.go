package cache

import (
	"sync"
)

// HeaderCache memoizes rendered header lines keyed by table kind and
// type/delimiter fingerprint. Implementations must be safe for concurrent use.
type HeaderCache interface {
	Get(key FixedKey) (string, bool)
	Set(key FixedKey, header string)
}

type memHeaderCache struct {
	mu   sync.RWMutex
	data map[FixedKey]string
}

// NewHeaderCache returns an unbounded in-memory HeaderCache. Header lines are
// small and the key space is one entry per registered type, so unbounded is
// the sensible default when no LRU is configured.
func NewHeaderCache() HeaderCache {
	return &memHeaderCache{
		data: make(map[FixedKey]string, 64),
	}
}

func (c *memHeaderCache) Get(key FixedKey) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	h, ok := c.data[key]
	return h, ok
}

func (c *memHeaderCache) Set(key FixedKey, header string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = header
}
