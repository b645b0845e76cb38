package validation

import (
	"sync"
	"time"
)

// DefaultCacheTTL bounds how long a cached report is served.
const DefaultCacheTTL = 5 * time.Minute

// DefaultCacheSize bounds the number of cached reports.
const DefaultCacheSize = 256

type cacheEntry struct {
	report  Report
	expires time.Time
}

// Cache memoises reports by fingerprint. Entries expire after the TTL and
// the oldest entry is evicted when the cache is full. Reports are copied on
// the way in and out so callers never share mutable state. Safe for
// concurrent use.
type Cache struct {
	mu      sync.Mutex
	ttl     time.Duration
	max     int
	now     func() time.Time
	entries map[string]cacheEntry
	order   []string
}

// CacheOption configures a Cache.
type CacheOption func(*Cache)

// WithTTL sets the entry lifetime. Non-positive values keep the default.
func WithTTL(ttl time.Duration) CacheOption {
	return func(c *Cache) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

// WithMaxEntries caps the cache size. Non-positive values keep the default.
func WithMaxEntries(n int) CacheOption {
	return func(c *Cache) {
		if n > 0 {
			c.max = n
		}
	}
}

// WithCacheClock injects the time source, mostly for tests.
func WithCacheClock(now func() time.Time) CacheOption {
	return func(c *Cache) {
		if now != nil {
			c.now = now
		}
	}
}

// NewCache creates an empty cache.
func NewCache(opts ...CacheOption) *Cache {
	c := &Cache{
		ttl:     DefaultCacheTTL,
		max:     DefaultCacheSize,
		now:     time.Now,
		entries: make(map[string]cacheEntry),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// TTL returns the configured entry lifetime.
func (c *Cache) TTL() time.Duration {
	return c.ttl
}

// Get returns a copy of the report stored under key if it has not expired.
func (c *Cache) Get(key string) (Report, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return Report{}, false
	}
	if !c.now().Before(entry.expires) {
		c.removeLocked(key)
		return Report{}, false
	}
	return entry.report.clone(), true
}

// Set stores a copy of report under key.
func (c *Cache) Set(key string, report Report) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; exists {
		c.removeLocked(key)
	}
	c.pruneLocked()
	for len(c.order) >= c.max {
		c.removeLocked(c.order[0])
	}
	c.entries[key] = cacheEntry{report: report.clone(), expires: c.now().Add(c.ttl)}
	c.order = append(c.order, key)
}

// Len returns the number of stored entries, expired ones included.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Clear drops every entry.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]cacheEntry)
	c.order = nil
}

func (c *Cache) pruneLocked() {
	now := c.now()
	for key, entry := range c.entries {
		if !now.Before(entry.expires) {
			c.removeLocked(key)
		}
	}
}

func (c *Cache) removeLocked(key string) {
	delete(c.entries, key)
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}
