package fenwick

import "fmt"

const (
	// DefaultModulus is the modulus used by NewMod when none is given.
	DefaultModulus = 1_000_000_007
	// MaxModulus is the largest modulus accepted by Modulus.
	MaxModulus = 1 << 62
)

// ModTree is a Fenwick tree over int64 whose sums are reduced modulo a
// fixed modulus. Every stored value and every result is in [0, Modulus()).
type ModTree struct {
	n       int
	modulus int64
	tree    []int64
}

// NewMod creates an all-zero tree with n positions.
func NewMod(n int, options ...modOption) (*ModTree, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: capacity %d is negative", ErrInvalidArgument, n)
	}
	t := &ModTree{
		n:       n,
		modulus: DefaultModulus,
	}
	for _, opt := range options {
		if err := opt(t); err != nil {
			return nil, err
		}
	}
	t.tree = make([]int64, n+1)
	return t, nil
}

// Len returns the number of positions in the tree.
func (t *ModTree) Len() int {
	return t.n
}

// Modulus returns the modulus sums are reduced by.
func (t *ModTree) Modulus() int64 {
	return t.modulus
}

func (t *ModTree) reduce(x int64) int64 {
	x %= t.modulus
	if x < 0 {
		x += t.modulus
	}
	return x
}

// Add adds delta to the element at position i. Negative deltas are
// allowed.
func (t *ModTree) Add(i int, delta int64) error {
	if i < 1 || i > t.n {
		return outOfRange(i, 1, t.n)
	}
	delta = t.reduce(delta)
	for ; i <= t.n; i += lsb(i) {
		t.tree[i] = (t.tree[i] + delta) % t.modulus
	}
	return nil
}

// PrefixSum returns the sum of positions 1 through i, reduced.
func (t *ModTree) PrefixSum(i int) (int64, error) {
	if i < 0 || i > t.n {
		return 0, outOfRange(i, 0, t.n)
	}
	return t.prefixSum(i), nil
}

func (t *ModTree) prefixSum(i int) int64 {
	var sum int64
	for ; i > 0; i -= lsb(i) {
		sum = (sum + t.tree[i]) % t.modulus
	}
	return sum
}

// RangeSum returns the sum of positions l through r, reduced.
func (t *ModTree) RangeSum(l, r int) (int64, error) {
	if l < 1 || r > t.n || l > r {
		return 0, fmt.Errorf("%w: range [%d, %d] not within [1, %d]", ErrIndexOutOfRange, l, r, t.n)
	}
	return t.reduce(t.prefixSum(r) - t.prefixSum(l-1)), nil
}

func (t *ModTree) String() string {
	return fmt.Sprintf("MFT<n=%d, mod=%d, total=%d>", t.n, t.modulus, t.prefixSum(t.n))
}
