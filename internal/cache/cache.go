package cache

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/hashicorp/golang-lru/v2/simplelru"
)

// DefaultCapacity is the number of entries kept when no capacity is configured.
const DefaultCapacity = 100

// Entry is one cached value together with its key.
type Entry[V any] struct {
	Key   int64
	Value V
}

// Stats describes the current state of an EntityCache.
type Stats struct {
	Name      string `json:"name"`
	Size      int    `json:"size"`
	Capacity  int    `json:"capacity"`
	Hits      uint64 `json:"hits"`
	Misses    uint64 `json:"misses"`
	Evictions uint64 `json:"evictions"`
}

// EntityCache is a bounded, access-ordered cache of entities keyed by ID.
// When an insert would exceed the capacity, the least recently used entry is
// dropped. Both Put and a successful Get count as a use.
//
// Values are copied with the clone function on the way in and on the way
// out, so callers never share memory with the cached entry.
//
// Loaders that read from a backing store take a Generation before the read
// and store the result with Fill, which refuses the value if any write or
// removal happened in between.
//
// All methods are safe for concurrent use.
type EntityCache[V any] struct {
	name     string
	capacity int
	clone    func(V) V
	logger   *slog.Logger

	mu        sync.Mutex
	lru       *simplelru.LRU[int64, V]
	hits      uint64
	misses    uint64
	evictions uint64
	gen       uint64
}

// New creates an EntityCache holding at most capacity entries. A nil clone
// stores values as-is, which is only correct for value types without
// references.
func New[V any](name string, capacity int, clone func(V) V, logger *slog.Logger) (*EntityCache[V], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("cache %q: capacity must be positive, got %d", name, capacity)
	}
	if clone == nil {
		clone = func(v V) V { return v }
	}
	if logger == nil {
		logger = slog.Default()
	}

	lru, err := simplelru.NewLRU[int64, V](capacity, nil)
	if err != nil {
		return nil, fmt.Errorf("cache %q: %w", name, err)
	}

	return &EntityCache[V]{
		name:     name,
		capacity: capacity,
		clone:    clone,
		logger:   logger.With(slog.String("component", "cache"), slog.String("cache", name)),
		lru:      lru,
	}, nil
}

// Put stores value under key, replacing any previous value and marking the
// key as most recently used.
func (c *EntityCache[V]) Put(key int64, value V) {
	c.mu.Lock()
	c.gen++
	evicted, size := c.add(key, value)
	c.mu.Unlock()

	c.logger.Debug("cache put", slog.Int64("key", key), slog.Int("size", size), slog.Bool("evicted", evicted))
}

// Generation returns the current write generation. Every Put, Remove,
// RemoveFunc and Clear advances it.
func (c *EntityCache[V]) Generation() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gen
}

// Fill stores a value loaded from the backing store, unless the cache was
// written since gen was taken. It reports whether the value was stored.
func (c *EntityCache[V]) Fill(key int64, value V, gen uint64) bool {
	c.mu.Lock()
	if c.gen != gen {
		c.mu.Unlock()
		c.logger.Debug("cache fill skipped", slog.Int64("key", key))
		return false
	}
	evicted, size := c.add(key, value)
	c.mu.Unlock()

	c.logger.Debug("cache fill", slog.Int64("key", key), slog.Int("size", size), slog.Bool("evicted", evicted))
	return true
}

// add must be called with mu held.
func (c *EntityCache[V]) add(key int64, value V) (evicted bool, size int) {
	evicted = c.lru.Add(key, c.clone(value))
	if evicted {
		c.evictions++
	}
	return evicted, c.lru.Len()
}

// Get returns a copy of the value stored under key. A hit marks the key as
// most recently used.
func (c *EntityCache[V]) Get(key int64) (V, bool) {
	c.mu.Lock()
	v, ok := c.lru.Get(key)
	if ok {
		c.hits++
		v = c.clone(v)
	} else {
		c.misses++
	}
	c.mu.Unlock()

	c.logger.Debug("cache get", slog.Int64("key", key), slog.Bool("hit", ok))
	return v, ok
}

// Contains reports whether key is cached without changing its recency.
func (c *EntityCache[V]) Contains(key int64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Contains(key)
}

// Remove drops key from the cache. It reports whether the key was present.
func (c *EntityCache[V]) Remove(key int64) bool {
	c.mu.Lock()
	c.gen++
	ok := c.lru.Remove(key)
	c.mu.Unlock()

	if ok {
		c.logger.Debug("cache remove", slog.Int64("key", key))
	}
	return ok
}

// RemoveFunc drops every entry for which match returns true and returns the
// number of entries removed.
func (c *EntityCache[V]) RemoveFunc(match func(V) bool) int {
	c.mu.Lock()
	c.gen++
	removed := 0
	for _, key := range c.lru.Keys() {
		v, ok := c.lru.Peek(key)
		if ok && match(v) {
			c.lru.Remove(key)
			removed++
		}
	}
	c.mu.Unlock()

	if removed > 0 {
		c.logger.Debug("cache remove matching", slog.Int("removed", removed))
	}
	return removed
}

// Clear drops every entry. Hit, miss and eviction counters are kept.
func (c *EntityCache[V]) Clear() {
	c.mu.Lock()
	c.gen++
	size := c.lru.Len()
	c.lru.Purge()
	c.mu.Unlock()

	c.logger.Info("cache cleared", slog.Int("dropped", size))
}

// Snapshot returns copies of all cached entries ordered from least to most
// recently used. Taking a snapshot does not change recency.
func (c *EntityCache[V]) Snapshot() []Entry[V] {
	c.mu.Lock()
	defer c.mu.Unlock()

	keys := c.lru.Keys()
	entries := make([]Entry[V], 0, len(keys))
	for _, key := range keys {
		if v, ok := c.lru.Peek(key); ok {
			entries = append(entries, Entry[V]{Key: key, Value: c.clone(v)})
		}
	}
	return entries
}

// Len returns the number of cached entries.
func (c *EntityCache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Len()
}

// Capacity returns the maximum number of entries.
func (c *EntityCache[V]) Capacity() int {
	return c.capacity
}

// Stats returns the current counters.
func (c *EntityCache[V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Stats{
		Name:      c.name,
		Size:      c.lru.Len(),
		Capacity:  c.capacity,
		Hits:      c.hits,
		Misses:    c.misses,
		Evictions: c.evictions,
	}
}
