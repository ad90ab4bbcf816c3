package cache

import (
	"container/list"
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chessplusplus/corechess/internal/engine"
)

func TestStoreAndProbe(t *testing.T) {
	c := New(context.Background(), 1)
	entry := Entry{Depth: 4, Score: 37, Bound: Exact, Move: engine.Move{From: 12, To: 28}}
	c.Store(0xABCD, entry)

	got, ok := c.Probe(0xABCD)
	require.True(t, ok)
	require.Equal(t, entry, got)

	_, ok = c.Probe(0x1234)
	require.False(t, ok)
}

func newTestCache(capacity int) *Cache {
	return &Cache{
		capacity: capacity,
		ll:       list.New(),
		index:    make(map[uint64]*list.Element, capacity),
	}
}

func TestEvictsLeastRecentlyUsed(t *testing.T) {
	c := newTestCache(2)
	c.Store(1, Entry{Score: 1})
	c.Store(2, Entry{Score: 2})
	c.Store(3, Entry{Score: 3}) // evicts hash 1, the least recently used

	_, ok := c.Probe(1)
	require.False(t, ok, "hash 1 should have been evicted")
	_, ok = c.Probe(2)
	require.True(t, ok)
	_, ok = c.Probe(3)
	require.True(t, ok)
}

func TestProbePromotesToMostRecentlyUsed(t *testing.T) {
	c := newTestCache(2)
	c.Store(1, Entry{Score: 1})
	c.Store(2, Entry{Score: 2})
	c.Probe(1) // touch 1 so it is no longer the least recently used
	c.Store(3, Entry{Score: 3}) // should evict 2, not 1

	_, ok := c.Probe(1)
	require.True(t, ok)
	_, ok = c.Probe(2)
	require.False(t, ok)
}

func TestClear(t *testing.T) {
	c := New(context.Background(), 1)
	c.Store(1, Entry{Score: 1})
	require.Equal(t, 1, c.Len())
	c.Clear()
	require.Equal(t, 0, c.Len())
}
