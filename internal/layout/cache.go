package layout

import "sync"

// Key identifies one computed layout.
type Key struct {
	Mode   Mode
	Period int
}

// Cache memoizes position maps per (mode, period) for the life of the
// process. Entries are write-once: attributes for a period never change, so
// a recomputation could only waste work, and callers may rely on getting the
// same map back every time.
//
// Background workers write disjoint keys, but Go maps still need a lock for
// concurrent access, so a single mutex guards the table.
type Cache struct {
	mu      sync.RWMutex
	entries map[Key]map[string]Position
}

func NewCache() *Cache {
	return &Cache{entries: make(map[Key]map[string]Position)}
}

// Get returns the cached positions for (mode, period), if computed.
func (c *Cache) Get(mode Mode, period int) (map[string]Position, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	m, ok := c.entries[Key{mode, period}]
	return m, ok
}

// Put stores positions for (mode, period) and returns the canonical map:
// the first write wins, later writes return the already-stored value.
func (c *Cache) Put(mode Mode, period int, positions map[string]Position) map[string]Position {
	c.mu.Lock()
	defer c.mu.Unlock()
	key := Key{mode, period}
	if existing, ok := c.entries[key]; ok {
		return existing
	}
	c.entries[key] = positions
	return positions
}

// Has reports whether (mode, period) is already computed.
func (c *Cache) Has(mode Mode, period int) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.entries[Key{mode, period}]
	return ok
}

// Len returns the number of cached layouts.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
