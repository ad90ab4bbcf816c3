// Package cache implements the search's transposition cache: a
// fixed-capacity, thread-safe LRU keyed by Zobrist hash. The design is
// ported from the original engine's templated Cache<Key, Value, maxSize,
// Hash> (src/headers/tt.h) — a container/list plus a map under one mutex,
// most-recently-used entries promoted to the front on both store and
// probe-hit — rather than herohde-morlock's lock-free atomic-pointer table
// (pkg/search/transposition.go), since §5 specifies a single mutex
// protecting list and map together with no allocation while holding it.
package cache

import (
	"container/list"
	"context"
	"sync"

	"github.com/seekerror/logw"

	"github.com/chessplusplus/corechess/internal/engine"
)

// Bound records whether a cached score is exact or one-sided, the way the
// original's SearchBoundary enum and §4.H's bound classification describe:
// a fail-high/fail-low result from a null-window search only bounds the
// true score, it does not pin it down.
type Bound uint8

const (
	Exact Bound = iota
	Lower
	Upper
)

func (b Bound) String() string {
	switch b {
	case Lower:
		return "lower"
	case Upper:
		return "upper"
	default:
		return "exact"
	}
}

// Entry is what the cache stores per position hash. It intentionally
// stores only the 64-bit hash, not a full board snapshot, so two distinct
// positions that collide on hash will silently shadow one another — a
// documented, accepted approximation (§5), not a correctness bug to be
// designed away.
type Entry struct {
	Depth int
	Score int
	Bound Bound
	Move  engine.Move
}

type record struct {
	hash  uint64
	entry Entry
}

// Cache is a fixed-capacity, thread-safe, most-recently-used transposition
// cache. The zero value is not usable; construct with New.
type Cache struct {
	mu       sync.Mutex
	capacity int
	ll       *list.List               // front = most recently used
	index    map[uint64]*list.Element // hash -> element holding *record
}

const bytesPerEntry = 64 // conservative per-entry footprint for CACHE_MB sizing

// New builds a Cache sized to hold roughly mb megabytes of entries. It logs
// the resulting entry capacity the same way herohde-morlock's
// NewTranspositionTable logs its allocation, since that is exactly the
// kind of startup event §5's ambient logging section calls for.
func New(ctx context.Context, mb int) *Cache {
	if mb <= 0 {
		mb = 1
	}
	capacity := (mb * 1024 * 1024) / bytesPerEntry
	if capacity < 1 {
		capacity = 1
	}
	logw.Infof(ctx, "Allocating %vMB transposition cache with %v entries", mb, capacity)
	return &Cache{
		capacity: capacity,
		ll:       list.New(),
		index:    make(map[uint64]*list.Element, capacity),
	}
}

// Probe returns the entry stored for hash, if any, and promotes it to
// most-recently-used on a hit.
func (c *Cache) Probe(hash uint64) (Entry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.index[hash]
	if !ok {
		return Entry{}, false
	}
	c.ll.MoveToFront(el)
	return el.Value.(*record).entry, true
}

// Store records entry under hash, promoting it to most-recently-used.
// Overwriting an existing hash replaces its entry outright (the original's
// Cache::add/operator[] behavior) rather than comparing depth, since
// collisions are rare enough at this scale not to warrant a replacement
// policy of their own. When the cache is at capacity, the least-recently-
// used entry is evicted first; no allocation happens while the mutex is
// held beyond the single new list/map entry being inserted.
func (c *Cache) Store(hash uint64, entry Entry) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.index[hash]; ok {
		el.Value.(*record).entry = entry
		c.ll.MoveToFront(el)
		return
	}

	if c.ll.Len() >= c.capacity {
		oldest := c.ll.Back()
		if oldest != nil {
			c.ll.Remove(oldest)
			delete(c.index, oldest.Value.(*record).hash)
		}
	}

	el := c.ll.PushFront(&record{hash: hash, entry: entry})
	c.index[hash] = el
}

// Len returns the number of entries currently stored.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ll.Len()
}

// Clear empties the cache, for a fresh game.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ll.Init()
	c.index = make(map[uint64]*list.Element, c.capacity)
}
