// Package rank maps values onto dense 0-based ranks (coordinate
// compression), so that a Fenwick tree can be indexed by value.
package rank

import (
	"fmt"
	"sort"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Index is an immutable sorted set of distinct keys.
type Index[K constraints.Ordered] struct {
	keys []K
}

// New returns an index over the distinct values of keys. The argument
// is not modified.
func New[K constraints.Ordered](keys ...K) *Index[K] {
	k := make([]K, len(keys))
	copy(k, keys)
	slices.Sort(k)
	return &Index[K]{
		keys: slices.Compact(k),
	}
}

func (x *Index[K]) Len() int {
	return len(x.keys)
}

func (x *Index[K]) String() string {
	return fmt.Sprintf("Index(size=%d, keys=%v)", len(x.keys), x.keys)
}

// Find returns the rank of key and whether it is in the index.
func (x *Index[K]) Find(key K) (int, bool) {
	// short indexes are cheaper to scan
	if len(x.keys) < 30 {
		for i, item := range x.keys {
			if item >= key {
				return i, item == key
			}
		}
		return len(x.keys), false
	}
	i := sort.Search(len(x.keys), func(i int) bool {
		return x.keys[i] >= key
	})
	return i, i < len(x.keys) && x.keys[i] == key
}

// LowerBound returns the number of keys strictly less than key.
func (x *Index[K]) LowerBound(key K) int {
	i, _ := x.Find(key)
	return i
}

// UpperBound returns the number of keys less than or equal to key.
func (x *Index[K]) UpperBound(key K) int {
	return sort.Search(len(x.keys), func(i int) bool {
		return x.keys[i] > key
	})
}

// At returns the key of rank i.
func (x *Index[K]) At(i int) (K, error) {
	var zero K
	if x.Len()-1 < i {
		return zero, fmt.Errorf("offset (%d) past index length (%d)", i, x.Len())
	}
	if i < 0 {
		return zero, fmt.Errorf("invalid offset: %d", i)
	}
	return x.keys[i], nil
}

// Keys returns the keys in ascending order. The slice must not be
// modified.
func (x *Index[K]) Keys() []K {
	return x.keys
}
