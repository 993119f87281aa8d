package query

import (
	"fmt"
	"io"

	"github.com/phuslu/log"

	fenwick "github.com/caio/go-fenwick"
	"github.com/caio/go-fenwick/internal/rank"
)

// CountJumps returns the number of ways to go from 0 to goal by jumps of
// length in [minJump, maxJump], landing only on stones or on the goal,
// reduced modulo modulus.
func CountJumps(goal, minJump, maxJump int64, stones []int64, modulus int64) (int64, error) {
	if goal < 1 {
		return 0, fmt.Errorf("%w: goal %d", fenwick.ErrInvalidArgument, goal)
	}
	if minJump < 1 || minJump > maxJump {
		return 0, fmt.Errorf("%w: jump range [%d, %d]", fenwick.ErrInvalidArgument, minJump, maxJump)
	}
	points := make([]int64, 0, len(stones)+2)
	points = append(points, 0, goal)
	for _, x := range stones {
		if x <= 0 || x >= goal {
			return 0, fmt.Errorf("%w: stone %d not strictly between 0 and %d", fenwick.ErrInvalidArgument, x, goal)
		}
		points = append(points, x)
	}
	pos := rank.New(points...)

	// ways[i] lives at position i+1 of the tree
	ways, err := fenwick.NewMod(pos.Len(), fenwick.Modulus(modulus))
	if err != nil {
		return 0, err
	}
	if err := ways.Add(1, 1); err != nil {
		return 0, err
	}

	var last int64
	for i, cur := range pos.Keys() {
		if i == 0 {
			continue
		}
		lo := pos.LowerBound(cur - maxJump)
		hi := pos.UpperBound(cur-minJump) - 1
		last = 0
		if lo <= hi {
			if last, err = ways.RangeSum(lo+1, hi+1); err != nil {
				return 0, err
			}
			if err := ways.Add(i+1, last); err != nil {
				return 0, err
			}
		}
		log.Debug().Int64("at", cur).Int64("ways", last).Msg("jump")
	}
	return last, nil
}

func runJumps(cfg Config, in *scanner, out io.Writer) error {
	var hdr [4]int64
	for i := range hdr {
		v, err := in.readInt64()
		if err != nil {
			return fmt.Errorf("header: %w", err)
		}
		hdr[i] = v
	}
	stones, err := in.readInt64s(hdr[0])
	if err != nil {
		return err
	}
	modulus := cfg.Modulus
	if modulus == 0 {
		modulus = fenwick.DefaultModulus
	}
	ways, err := CountJumps(hdr[1], hdr[2], hdr[3], stones, modulus)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, ways)
	return err
}
