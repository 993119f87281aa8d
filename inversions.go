package fenwick

import (
	"golang.org/x/exp/constraints"

	"github.com/caio/go-fenwick/internal/rank"
)

// Inversions returns the number of pairs (i, j) with i < j and
// seq[i] > seq[j]. Equal values do not count. It runs in O(n log n).
func Inversions[T constraints.Ordered](seq []T) int64 {
	ranks := rank.New(seq...)
	seen := newTree[int64](ranks.Len())

	var count int64
	for i := len(seq) - 1; i >= 0; i-- {
		r, _ := ranks.Find(seq[i])
		// everything already inserted sits to the right of i
		count += seen.prefixSum(r)
		seen.add(r+1, 1)
	}
	return count
}
