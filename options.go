package fenwick

import "fmt"

type modOption func(*ModTree) error

// Modulus sets the modulus every sum is reduced by.
//
// The default, 1_000_000_007, is the prime most counting problems ask
// for. Any modulus in [2, 2^62] works; the upper bound keeps the sum of
// two reduced values inside an int64.
//
// NewMod fails with ErrInvalidArgument for a modulus outside that range.
func Modulus(m int64) modOption {
	return func(t *ModTree) error {
		if m < 2 || m > MaxModulus {
			return fmt.Errorf("%w: modulus %d not within [2, %d]", ErrInvalidArgument, m, int64(MaxModulus))
		}
		t.modulus = m
		return nil
	}
}
