package renderer

import (
	"sync"
	"time"
)

// Cache is an in-memory render cache with a TTL. Concurrent requests for
// the same path are coalesced into one in-flight render; late arrivals
// wait for that render and share its result instead of redoing the work.
type Cache struct {
	ttl time.Duration

	mu       sync.Mutex
	entries  map[string]cacheEntry
	inflight map[string]*renderCall
}

type cacheEntry struct {
	data     []byte
	status   int
	storedAt time.Time
}

type renderCall struct {
	done   chan struct{}
	data   []byte
	status int
	err    error
}

// NewCache creates a Cache. A zero or negative TTL disables caching of
// results but still coalesces concurrent renders.
func NewCache(ttl time.Duration) *Cache {
	return &Cache{
		ttl:      ttl,
		entries:  make(map[string]cacheEntry),
		inflight: make(map[string]*renderCall),
	}
}

// Get returns the cached bytes and status for a path, or false on a miss
// or an expired entry.
func (c *Cache) Get(path string) ([]byte, int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[path]
	if !ok {
		return nil, 0, false
	}
	if c.ttl <= 0 || time.Since(entry.storedAt) > c.ttl {
		delete(c.entries, path)
		return nil, 0, false
	}
	return entry.data, entry.status, true
}

// Render returns the cached result for path, or runs fn once to produce
// it. If another goroutine is already rendering the same path, the caller
// waits for that result rather than starting a second render.
func (c *Cache) Render(path string, fn func() ([]byte, int, error)) ([]byte, int, error) {
	if data, status, ok := c.Get(path); ok {
		return data, status, nil
	}

	c.mu.Lock()
	if call, ok := c.inflight[path]; ok {
		c.mu.Unlock()
		<-call.done
		return call.data, call.status, call.err
	}
	call := &renderCall{done: make(chan struct{})}
	c.inflight[path] = call
	c.mu.Unlock()

	call.data, call.status, call.err = fn()

	c.mu.Lock()
	delete(c.inflight, path)
	if call.err == nil && c.ttl > 0 {
		c.entries[path] = cacheEntry{data: call.data, status: call.status, storedAt: time.Now()}
	}
	c.mu.Unlock()

	close(call.done)
	return call.data, call.status, call.err
}
