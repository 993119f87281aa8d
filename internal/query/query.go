// Package query drives Fenwick trees from a stream of whitespace
// separated tokens, the way judge-style programs read their input.
package query

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/phuslu/log"

	fenwick "github.com/caio/go-fenwick"
)

// Mode selects what Run reads from its input.
type Mode string

const (
	// ModeQueries reads a capacity, the initial values and then a list of
	// commands (add, sum, range, get, set, search, path, dump).
	ModeQueries Mode = "queries"
	// ModeInversions reads a length and a sequence and prints its
	// inversion count.
	ModeInversions Mode = "inversions"
	// ModeJumps reads N W L R and N stone positions and prints the number
	// of ways to jump from 0 to W.
	ModeJumps Mode = "jumps"
)

// MaxLength bounds every count read from the input.
const MaxLength = 1 << 26

var (
	// ErrUnexpectedEOF is returned when the input ends in the middle of a
	// header, a sequence or a command.
	ErrUnexpectedEOF = errors.New("unexpected end of input")
	// ErrUnknownCommand is returned for a command name Run does not know.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrUnknownMode is returned for a Config.Mode Run does not know.
	ErrUnknownMode = errors.New("unknown mode")
	// ErrUnsupported is returned for get, set, search, path and dump when
	// sums are reduced by a modulus.
	ErrUnsupported = errors.New("command not supported with a modulus")
)

// Config selects the mode and the optional modulus of a Run.
type Config struct {
	Mode Mode
	// Modulus reduces every sum when non-zero. ModeJumps always reduces
	// and falls back to fenwick.DefaultModulus.
	Modulus int64
}

// Run reads the input for cfg.Mode from r and writes one result per line
// to w.
func Run(cfg Config, r io.Reader, w io.Writer) error {
	in := newScanner(r)
	out := bufio.NewWriter(w)
	defer out.Flush()

	var err error
	switch cfg.Mode {
	case ModeQueries, "":
		err = runQueries(cfg, in, out)
	case ModeInversions:
		err = runInversions(in, out)
	case ModeJumps:
		err = runJumps(cfg, in, out)
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownMode, cfg.Mode)
	}
	if err != nil {
		return err
	}
	return out.Flush()
}

type scanner struct {
	s *bufio.Scanner
}

func newScanner(r io.Reader) *scanner {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 64*1024), 1024*1024)
	s.Split(bufio.ScanWords)
	return &scanner{s: s}
}

// next returns the next token, or io.EOF once the input is exhausted.
func (s *scanner) next() (string, error) {
	if !s.s.Scan() {
		if err := s.s.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return s.s.Text(), nil
}

func (s *scanner) readInt64() (int64, error) {
	tok, err := s.next()
	if err == io.EOF {
		return 0, ErrUnexpectedEOF
	}
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("bad integer %q: %w", tok, err)
	}
	return v, nil
}

func (s *scanner) readInt() (int, error) {
	v, err := s.readInt64()
	return int(v), err
}

func (s *scanner) readInt64s(n int64) ([]int64, error) {
	if n < 0 || n > MaxLength {
		return nil, fmt.Errorf("%w: length %d not within [0, %d]", fenwick.ErrInvalidArgument, n, MaxLength)
	}
	// the slice grows with the values actually present
	vs := make([]int64, 0, min(n, 4096))
	for i := int64(0); i < n; i++ {
		v, err := s.readInt64()
		if err != nil {
			return nil, fmt.Errorf("value %d of %d: %w", i+1, n, err)
		}
		vs = append(vs, v)
	}
	return vs, nil
}

// sums is the part of the tree API shared by plain and modular trees.
type sums interface {
	Add(i int, delta int64) error
	PrefixSum(i int) (int64, error)
	RangeSum(l, r int) (int64, error)
}

func runQueries(cfg Config, in *scanner, out io.Writer) error {
	length, err := in.readInt64()
	if err != nil {
		return fmt.Errorf("capacity: %w", err)
	}
	values, err := in.readInt64s(length)
	if err != nil {
		return err
	}
	n := len(values)

	var tree sums
	if cfg.Modulus != 0 {
		mt, err := fenwick.NewMod(n, fenwick.Modulus(cfg.Modulus))
		if err != nil {
			return err
		}
		for i, v := range values {
			if err := mt.Add(i+1, v); err != nil {
				return err
			}
		}
		tree = mt
	} else {
		tree = fenwick.From(values...)
	}
	log.Info().Int("capacity", n).Int64("modulus", cfg.Modulus).
		Str("footprint", humanize.IBytes(uint64(n+1)*8)).Msg("tree ready")

	for cmd := 1; ; cmd++ {
		op, err := in.next()
		if err == io.EOF {
			log.Info().Int("commands", cmd-1).Msg("input exhausted")
			return nil
		}
		if err != nil {
			return err
		}
		if err := exec(tree, op, in, out); err != nil {
			return fmt.Errorf("command %d (%s): %w", cmd, op, err)
		}
	}
}

func exec(tree sums, op string, in *scanner, out io.Writer) error {
	plain, _ := tree.(*fenwick.Tree[int64])

	switch op {
	case "add":
		i, delta, err := twoInts(in)
		if err != nil {
			return err
		}
		log.Debug().Int64("i", i).Int64("delta", delta).Msg("add")
		return tree.Add(int(i), delta)
	case "sum":
		i, err := in.readInt()
		if err != nil {
			return err
		}
		return emit(out)(tree.PrefixSum(i))
	case "range":
		l, r, err := twoInts(in)
		if err != nil {
			return err
		}
		return emit(out)(tree.RangeSum(int(l), int(r)))
	}

	if plain == nil {
		switch op {
		case "get", "set", "search", "path", "dump":
			return ErrUnsupported
		}
		return ErrUnknownCommand
	}

	switch op {
	case "get":
		i, err := in.readInt()
		if err != nil {
			return err
		}
		return emit(out)(plain.Get(i))
	case "set":
		i, v, err := twoInts(in)
		if err != nil {
			return err
		}
		log.Debug().Int64("i", i).Int64("value", v).Msg("set")
		return plain.Set(int(i), v)
	case "search":
		target, err := in.readInt64()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, plain.Search(target))
		return err
	case "path":
		i, err := in.readInt()
		if err != nil {
			return err
		}
		path, err := fenwick.Ancestors(plain.Len(), i)
		if err != nil {
			return err
		}
		return writeInts(out, path)
	case "dump":
		return writeInts(out, plain.Nodes())
	}
	return ErrUnknownCommand
}

func twoInts(in *scanner) (int64, int64, error) {
	a, err := in.readInt64()
	if err != nil {
		return 0, 0, err
	}
	b, err := in.readInt64()
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}

func emit(out io.Writer) func(int64, error) error {
	return func(v int64, err error) error {
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, v)
		return err
	}
}

func writeInts[T int | int64](out io.Writer, vs []T) error {
	buf := make([]byte, 0, len(vs)*4)
	for i, v := range vs {
		if i > 0 {
			buf = append(buf, ' ')
		}
		buf = strconv.AppendInt(buf, int64(v), 10)
	}
	buf = append(buf, '\n')
	_, err := out.Write(buf)
	return err
}

func runInversions(in *scanner, out io.Writer) error {
	n, err := in.readInt64()
	if err != nil {
		return fmt.Errorf("length: %w", err)
	}
	seq, err := in.readInt64s(n)
	if err != nil {
		return err
	}
	count := fenwick.Inversions(seq)
	log.Info().Int64("length", n).Str("inversions", humanize.Comma(count)).Msg("counted")
	_, err = fmt.Fprintln(out, count)
	return err
}
