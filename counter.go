package fenwick

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"

	"github.com/caio/go-fenwick/internal/rank"
)

// Counter is a multiset over a fixed universe of keys. Besides per-key
// counts it answers rank and selection queries in O(log n), which makes
// it suitable for inventories and running order statistics.
type Counter[K constraints.Ordered] struct {
	keys   *rank.Index[K]
	counts *Tree[int64]
}

// NewCounter creates an empty counter accepting the given keys.
// Duplicates in universe are ignored.
func NewCounter[K constraints.Ordered](universe ...K) *Counter[K] {
	keys := rank.New(universe...)
	return &Counter[K]{
		keys:   keys,
		counts: newTree[int64](keys.Len()),
	}
}

// Distinct returns the size of the key universe.
func (c *Counter[K]) Distinct() int {
	return c.keys.Len()
}

// Add adds n items of key. A negative n removes items.
func (c *Counter[K]) Add(key K, n int64) error {
	i, ok := c.keys.Find(key)
	if !ok {
		return fmt.Errorf("%w: %v", ErrUnknownKey, key)
	}
	// counts are non-negative, so the total bounds every single count
	if n > 0 && c.counts.Total() > math.MaxInt64-n {
		return fmt.Errorf("%w: adding %d to %v overflows the total", ErrInvalidArgument, n, key)
	}
	if cur := c.counts.get(i + 1); cur+n < 0 {
		return fmt.Errorf("%w: %v has %d, cannot add %d", ErrNegativeCount, key, cur, n)
	}
	c.counts.add(i+1, n)
	return nil
}

// Count returns the number of items of key.
func (c *Counter[K]) Count(key K) int64 {
	i, ok := c.keys.Find(key)
	if !ok {
		return 0
	}
	return c.counts.get(i + 1)
}

// Total returns the number of items across all keys.
func (c *Counter[K]) Total() int64 {
	return c.counts.Total()
}

// Rank returns the number of items whose key is strictly less than key.
// key does not need to belong to the universe.
func (c *Counter[K]) Rank(key K) int64 {
	return c.counts.prefixSum(c.keys.LowerBound(key))
}

// CountRange returns the number of items with lo <= key <= hi.
func (c *Counter[K]) CountRange(lo, hi K) int64 {
	if lo > hi {
		return 0
	}
	return c.counts.prefixSum(c.keys.UpperBound(hi)) - c.counts.prefixSum(c.keys.LowerBound(lo))
}

// Select returns the key of the k-th smallest item, counting from 0.
func (c *Counter[K]) Select(k int64) (K, error) {
	if k < 0 || k >= c.Total() {
		var zero K
		return zero, fmt.Errorf("%w: %d not within [0, %d)", ErrIndexOutOfRange, k, c.Total())
	}
	return c.keys.At(c.counts.Search(k+1) - 1)
}

// ForEach calls f for each key with a non-zero count, in ascending
// order, until f returns false.
func (c *Counter[K]) ForEach(f func(K, int64) bool) {
	for i, key := range c.keys.Keys() {
		n := c.counts.get(i + 1)
		if n == 0 {
			continue
		}
		if !f(key, n) {
			break
		}
	}
}

func (c *Counter[K]) String() string {
	return fmt.Sprintf("Counter<distinct=%d, total=%d>", c.Distinct(), c.Total())
}
