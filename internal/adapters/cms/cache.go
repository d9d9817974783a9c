package cms

import (
	"encoding/json"
	"sync"
	"time"
)

// resultCache holds raw query results for a short TTL so that a burst of
// page renders does not hammer the content API. The revalidation webhook
// clears it wholesale.
type resultCache struct {
	mu    sync.RWMutex
	ttl   time.Duration
	items map[string]cacheEntry
	now   func() time.Time
}

type cacheEntry struct {
	raw     json.RawMessage
	expires time.Time
}

func newResultCache(ttl time.Duration) *resultCache {
	return &resultCache{
		ttl:   ttl,
		items: map[string]cacheEntry{},
		now:   time.Now,
	}
}

func (c *resultCache) get(key string) (json.RawMessage, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.items[key]
	if !ok || c.now().After(entry.expires) {
		return nil, false
	}
	return entry.raw, true
}

func (c *resultCache) put(key string, raw json.RawMessage) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = cacheEntry{raw: raw, expires: c.now().Add(c.ttl)}
}

func (c *resultCache) invalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = map[string]cacheEntry{}
}
