package pure

import (
	"sync"
	"sync/atomic"
)

// Cache is a bounded memo table with dual-map rotation: once the live map
// reaches maxSize entries, the stale map is dropped and the roles swap.
// Recently used entries therefore survive one rotation.
//
// Safe for unsynchronized concurrent use. The head index and both map slots
// are atomics; a rotation racing a store may at worst drop that store into
// the retiring map, which only costs a future recomputation.
type Cache[O any] struct {
	memos   [2]atomic.Pointer[sync.Map]
	headIdx atomic.Uint32
	size    atomic.Uint32
	maxSize uint32
}

func NewCache[O any](maxSize uint32) *Cache[O] {
	if maxSize == 0 {
		panic("maxSize should be greater than 0")
	}
	c := &Cache[O]{maxSize: maxSize}
	c.memos[0].Store(&sync.Map{})
	c.memos[1].Store(&sync.Map{})
	return c
}

func (c *Cache[O]) Load(key any) (O, bool) {
	headIdx := c.headIdx.Load()
	v, ok := c.memos[headIdx].Load().Load(key)
	if !ok {
		v, ok = c.memos[1-headIdx].Load().Load(key)
		if !ok {
			var zero O
			return zero, false
		}
	}
	return v.(O), true
}

func (c *Cache[O]) Store(key any, value O) {
	if swapped := c.size.CompareAndSwap(c.maxSize, 0); swapped {
		// publish the fresh map before moving the head onto it
		newIdx := 1 - c.headIdx.Load()
		c.memos[newIdx].Store(&sync.Map{})
		c.headIdx.Store(newIdx)
	}
	c.memos[c.headIdx.Load()].Load().Store(key, value)
	c.size.Add(1)
}

// Memoize caches calls of a pure single-argument function by input value.
// The function must be referentially transparent; memoizing an impure
// function changes its behavior.
func Memoize[I comparable, O any](pureFn func(I) O, maxTableSize uint32) func(I) O {
	memo := NewCache[O](maxTableSize)
	return func(i I) O {
		v, ok := memo.Load(i)
		if !ok {
			v = pureFn(i)
			memo.Store(i, v)
		}
		return v
	}
}
