package ephemeris

import (
	"sync"
	"sync/atomic"
	"time"

	"iris/internal/domain"
	"iris/internal/ports"
)

// DefaultCacheSize bounds the number of memoised positions
const DefaultCacheSize = 4096

// cacheKey identifies an instant by whole seconds and nanoseconds so that
// distinct instants never collide, unlike UnixNano which wraps.
type cacheKey struct {
	body domain.Body
	sec  int64
	nsec int
}

// CachedResolver memoises successful lookups of an inner resolver.
// Safe for concurrent use by multiple goroutines. When the cache is full it
// is emptied before the next insert.
type CachedResolver struct {
	inner ports.PositionResolver
	size  int

	mu      sync.RWMutex
	entries map[cacheKey]domain.Position

	hits   atomic.Int64
	misses atomic.Int64
}

// Ensure CachedResolver implements PositionResolver
var _ ports.PositionResolver = (*CachedResolver)(nil)

// NewCachedResolver wraps inner. A non-positive size uses DefaultCacheSize.
func NewCachedResolver(inner ports.PositionResolver, size int) *CachedResolver {
	if size <= 0 {
		size = DefaultCacheSize
	}
	return &CachedResolver{
		inner:   inner,
		size:    size,
		entries: make(map[cacheKey]domain.Position, size),
	}
}

// Name returns the inner resolver name
func (c *CachedResolver) Name() string {
	return c.inner.Name()
}

// Coverage returns the inner resolver coverage
func (c *CachedResolver) Coverage() (time.Time, time.Time) {
	return c.inner.Coverage()
}

// Resolve returns a cached position or asks the inner resolver.
// Instants outside the inner coverage always go to the inner resolver, and
// errors are never cached.
func (c *CachedResolver) Resolve(body domain.Body, at time.Time) (domain.Position, error) {
	if start, end := c.inner.Coverage(); at.Before(start) || at.After(end) {
		c.misses.Add(1)
		return c.inner.Resolve(body, at)
	}
	key := cacheKey{body: body, sec: at.Unix(), nsec: at.Nanosecond()}

	c.mu.RLock()
	pos, ok := c.entries[key]
	c.mu.RUnlock()
	if ok {
		c.hits.Add(1)
		return pos, nil
	}
	c.misses.Add(1)

	pos, err := c.inner.Resolve(body, at)
	if err != nil {
		return domain.Position{}, err
	}

	c.mu.Lock()
	if len(c.entries) >= c.size {
		c.entries = make(map[cacheKey]domain.Position, c.size)
	}
	c.entries[key] = pos
	c.mu.Unlock()

	return pos, nil
}

// Stats returns the hit and miss counters
func (c *CachedResolver) Stats() (hits, misses int64) {
	return c.hits.Load(), c.misses.Load()
}

// Len returns the number of cached positions
func (c *CachedResolver) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
