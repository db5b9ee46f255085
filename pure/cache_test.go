package pure_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/on-the-ground/optic_ive_go/pure"
)

func TestCache_BasicUsage(t *testing.T) {
	cache := pure.NewCache[string](4)

	cache.Store("k", "v")
	val, ok := cache.Load("k")
	assert.True(t, ok)
	assert.Equal(t, "v", val)

	_, ok = cache.Load("missing")
	assert.False(t, ok)

	// overwrite existing
	cache.Store("k", "v2")
	val, ok = cache.Load("k")
	assert.True(t, ok)
	assert.Equal(t, "v2", val)
}

func TestCache_RotationKeepsRecentEntries(t *testing.T) {
	cache := pure.NewCache[int](2)

	cache.Store("a", 1)
	cache.Store("b", 2)
	// hits the bound: rotation happens on the next store
	cache.Store("c", 3)

	_, okC := cache.Load("c")
	assert.True(t, okC)

	// entries from before the rotation survive exactly one more rotation
	_, okA := cache.Load("a")
	_, okB := cache.Load("b")
	assert.True(t, okA)
	assert.True(t, okB)

	cache.Store("d", 4)
	cache.Store("e", 5)
	_, okA = cache.Load("a")
	assert.False(t, okA)
}

func TestCache_ZeroSizePanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected panic on zero maxSize, but didn't panic")
		}
	}()
	pure.NewCache[int](0)
}

func TestMemoize_ConcurrentRotation(t *testing.T) {
	// bound of 2 forces rotations while 8 goroutines load and store
	square := pure.Memoize(func(i int) int { return i * i }, 2)

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(seed int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				k := (seed + i) % 5
				assert.Equal(t, k*k, square(k))
			}
		}(g)
	}
	wg.Wait()
}

func TestMemoize_CachesByInput(t *testing.T) {
	calls := 0
	square := pure.Memoize(func(i int) int {
		calls++
		return i * i
	}, 8)

	assert.Equal(t, 9, square(3))
	assert.Equal(t, 9, square(3))
	assert.Equal(t, 16, square(4))
	assert.Equal(t, 2, calls)
}
