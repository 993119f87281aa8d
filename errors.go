package fenwick

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned for a negative capacity or a bad option.
	ErrInvalidArgument = errors.New("fenwick: invalid argument")
	// ErrIndexOutOfRange is returned when a position falls outside the tree.
	// The tree is left unchanged.
	ErrIndexOutOfRange = errors.New("fenwick: index out of range")
	// ErrUnknownKey is returned by Counter for keys outside its universe.
	ErrUnknownKey = errors.New("fenwick: unknown key")
	// ErrNegativeCount is returned by Counter when a removal would take a
	// count below zero.
	ErrNegativeCount = errors.New("fenwick: negative count")
)

func outOfRange(i, lo, hi int) error {
	return fmt.Errorf("%w: %d not within [%d, %d]", ErrIndexOutOfRange, i, lo, hi)
}
