// Package fenwick provides a list data structure supporting prefix sums.
//
// A Fenwick tree, or binary indexed tree, keeps a list of n numbers so
// that both adding to one element and summing a prefix of the list run
// in O(log n) time, using n+1 words of memory. A plain array gives O(1)
// updates but O(n) sums; a prefix-sum array gives the opposite.
//
// Positions are 1-indexed: the first element lives at index 1 and
// PrefixSum(0) is always zero.
package fenwick

import (
	"fmt"
	"math/bits"

	"golang.org/x/exp/constraints"
)

// Number is the set of element types a Tree can hold.
//
// Sums are computed in T, so they wrap around on integer overflow. For
// the usual counting workloads int64 is the right choice; it holds
// values up to about ±9.2e18.
type Number interface {
	constraints.Integer | constraints.Float
}

// Tree is a fixed-capacity Fenwick tree over elements of type T.
type Tree[T Number] struct {
	n int
	// tree[i] holds the sum of the original elements at positions
	// i-lsb(i)+1 through i, where lsb(i) = i & -i. tree[0] is unused
	// and stays zero.
	//
	// The prefix sum up to 13 (1101₂) is tree[13] + tree[12] + tree[8]:
	// each step clears the lowest set bit, and the three nodes cover
	// positions 13, 9…12 and 1…8 respectively.
	tree []T
}

// New creates an all-zero tree with n positions.
func New[T Number](n int) (*Tree[T], error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: capacity %d is negative", ErrInvalidArgument, n)
	}
	return newTree[T](n), nil
}

func newTree[T Number](n int) *Tree[T] {
	return &Tree[T]{
		n:    n,
		tree: make([]T, n+1),
	}
}

// From creates a tree holding values, values[0] at position 1. It runs
// in O(n), against O(n log n) for adding the values one by one.
func From[T Number](values ...T) *Tree[T] {
	n := len(values)
	t := make([]T, n+1)
	copy(t[1:], values)
	for i := 1; i <= n; i++ {
		if j := i + lsb(i); j <= n {
			t[j] += t[i]
		}
	}
	return &Tree[T]{
		n:    n,
		tree: t,
	}
}

func lsb(i int) int {
	return i & -i
}

// Len returns the number of positions in the tree.
func (t *Tree[T]) Len() int {
	return t.n
}

// Add adds delta to the element at position i.
func (t *Tree[T]) Add(i int, delta T) error {
	if i < 1 || i > t.n {
		return outOfRange(i, 1, t.n)
	}
	t.add(i, delta)
	return nil
}

func (t *Tree[T]) add(i int, delta T) {
	for ; i <= t.n; i += lsb(i) {
		t.tree[i] += delta
	}
}

// PrefixSum returns the sum of the elements at positions 1 through i.
// PrefixSum(0) is zero.
func (t *Tree[T]) PrefixSum(i int) (T, error) {
	if i < 0 || i > t.n {
		return 0, outOfRange(i, 0, t.n)
	}
	return t.prefixSum(i), nil
}

func (t *Tree[T]) prefixSum(i int) T {
	var sum T
	for ; i > 0; i -= lsb(i) {
		sum += t.tree[i]
	}
	return sum
}

// RangeSum returns the sum of the elements at positions l through r,
// both inclusive.
func (t *Tree[T]) RangeSum(l, r int) (T, error) {
	if l < 1 || r > t.n || l > r {
		return 0, fmt.Errorf("%w: range [%d, %d] not within [1, %d]", ErrIndexOutOfRange, l, r, t.n)
	}
	return t.rangeSum(l, r), nil
}

// rangeSum walks both ends down until they meet, so the blocks shared by
// l-1 and r are never visited.
func (t *Tree[T]) rangeSum(l, r int) T {
	var sum T
	l--
	for r > l {
		sum += t.tree[r]
		r -= lsb(r)
	}
	for l > r {
		sum -= t.tree[l]
		l -= lsb(l)
	}
	return sum
}

// Get returns the element at position i.
func (t *Tree[T]) Get(i int) (T, error) {
	if i < 1 || i > t.n {
		return 0, outOfRange(i, 1, t.n)
	}
	return t.get(i), nil
}

func (t *Tree[T]) get(i int) T {
	sum := t.tree[i]
	j := i - lsb(i)
	for i--; i > j; i -= lsb(i) {
		sum -= t.tree[i]
	}
	return sum
}

// Set sets the element at position i to v.
func (t *Tree[T]) Set(i int, v T) error {
	if i < 1 || i > t.n {
		return outOfRange(i, 1, t.n)
	}
	t.add(i, v-t.get(i))
	return nil
}

// Total returns the sum of all elements.
func (t *Tree[T]) Total() T {
	return t.prefixSum(t.n)
}

// Search returns the smallest position i such that PrefixSum(i) >= target,
// or Len()+1 if there is none. The result is only meaningful when no
// element is negative, since prefix sums must be non-decreasing.
func (t *Tree[T]) Search(target T) int {
	pos := 0
	if t.n > 0 {
		for step := 1 << (bits.Len(uint(t.n)) - 1); step > 0; step >>= 1 {
			if next := pos + step; next <= t.n && t.tree[next] < target {
				pos = next
				target -= t.tree[next]
			}
		}
	}
	return pos + 1
}

// Nodes returns a copy of the internal accumulators, index 0 included.
func (t *Tree[T]) Nodes() []T {
	nodes := make([]T, len(t.tree))
	copy(nodes, t.tree)
	return nodes
}

// Reset sets every element back to zero.
func (t *Tree[T]) Reset() {
	for i := range t.tree {
		t.tree[i] = 0
	}
}

func (t *Tree[T]) String() string {
	return fmt.Sprintf("FT<n=%d, total=%v>", t.n, t.Total())
}

// Ancestors returns the nodes an update at position i touches in a tree
// of capacity n, in the order they are visited, followed by the root 0.
func Ancestors(n, i int) ([]int, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: capacity %d is negative", ErrInvalidArgument, n)
	}
	if i < 1 || i > n {
		return nil, outOfRange(i, 1, n)
	}
	path := make([]int, 0, bits.Len(uint(n))+1)
	for ; i <= n; i += lsb(i) {
		path = append(path, i)
	}
	return append(path, 0), nil
}
