package layout

// resultCache memoizes computed layouts. Keys canonicalize the breakpoint
// plus the sorted expanded and absent widget sets, so insertion order in the
// caller's map never matters. Eviction is FIFO by insertion once capacity is
// reached; there is no other invalidation path because the catalog is static
// for the process lifetime.
type resultCache struct {
	capacity int
	entries  map[string]*LayoutResult
	order    []string
}

// DefaultCacheCapacity bounds the memoized layout count. Breakpoints times
// realistic expansion combinations stays well under this.
const DefaultCacheCapacity = 50

func newResultCache(capacity int) *resultCache {
	if capacity < 1 {
		capacity = 1
	}
	return &resultCache{
		capacity: capacity,
		entries:  make(map[string]*LayoutResult, capacity),
	}
}

func (c *resultCache) get(key string) (*LayoutResult, bool) {
	r, ok := c.entries[key]
	return r, ok
}

func (c *resultCache) put(key string, r *LayoutResult) {
	if _, exists := c.entries[key]; exists {
		c.entries[key] = r
		return
	}
	if len(c.order) >= c.capacity {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
	}
	c.entries[key] = r
	c.order = append(c.order, key)
}

func (c *resultCache) len() int {
	return len(c.entries)
}
