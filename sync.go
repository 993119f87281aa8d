package fenwick

import "sync"

// Synced wraps a Tree with a read-write lock so it can be shared between
// goroutines. Queries hold the read lock and may run in parallel.
type Synced[T Number] struct {
	mu sync.RWMutex
	t  *Tree[T]
}

// NewSynced creates an all-zero synchronized tree with n positions.
func NewSynced[T Number](n int) (*Synced[T], error) {
	t, err := New[T](n)
	if err != nil {
		return nil, err
	}
	return &Synced[T]{t: t}, nil
}

// Len returns the number of positions in the tree.
func (s *Synced[T]) Len() int {
	return s.t.Len()
}

// Add adds delta to the element at position i.
func (s *Synced[T]) Add(i int, delta T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.t.Add(i, delta)
}

// PrefixSum returns the sum of the elements at positions 1 through i.
func (s *Synced[T]) PrefixSum(i int) (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.t.PrefixSum(i)
}

// RangeSum returns the sum of the elements at positions l through r.
func (s *Synced[T]) RangeSum(l, r int) (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.t.RangeSum(l, r)
}

// Get returns the element at position i.
func (s *Synced[T]) Get(i int) (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.t.Get(i)
}

// Total returns the sum of all elements.
func (s *Synced[T]) Total() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.t.Total()
}
