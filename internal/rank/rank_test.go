package rank

import (
	"math/rand"
	"sort"
	"testing"
)

func TestBasics(t *testing.T) {
	x := New[float64]()

	for _, n := range []float64{12, 13, 14, 15} {
		if _, ok := x.Find(n); ok {
			t.Errorf("Found something for non existing key %.0f", n)
		}
	}

	x = New(3.0, 1.0, 2.0, 3.0, 1.0)

	if x.Len() != 3 {
		t.Errorf("Duplicates should collapse. Got %s", x)
	}

	if i, ok := x.Find(2); !ok || i != 1 {
		t.Errorf("Find(2) = (%d, %v), expected (1, true)", i, ok)
	}

	if i, ok := x.Find(2.5); ok || i != 2 {
		t.Errorf("Find(2.5) = (%d, %v), expected (2, false)", i, ok)
	}
}

func checkSorted(x *Index[float64], t *testing.T) {
	if !sort.Float64sAreSorted(x.keys) {
		t.Fatalf("Keys are not sorted! %v", x.keys)
	}
}

func TestCore(t *testing.T) {
	// large enough to go past the linear scan
	const maxDataSize = 10000

	data := make([]float64, maxDataSize)
	unique := make(map[float64]bool)
	for i := range data {
		data[i] = float64(rand.Intn(maxDataSize / 2))
		unique[data[i]] = true
	}
	orig := append([]float64(nil), data...)

	x := New(data...)
	checkSorted(x, t)

	for i := range data {
		if data[i] != orig[i] {
			t.Fatalf("New must not modify its argument")
		}
	}

	if x.Len() != len(unique) {
		t.Errorf("Got Len() == %d. Expected %d", x.Len(), len(unique))
	}

	for k := range unique {
		i, ok := x.Find(k)
		if !ok || x.keys[i] != k {
			t.Errorf("Couldn't find previously added key %.0f", k)
		}
		if x.LowerBound(k) != i || x.UpperBound(k) != i+1 {
			t.Errorf("Bounds of %.0f are (%d, %d), expected (%d, %d)", k, x.LowerBound(k), x.UpperBound(k), i, i+1)
		}
	}

	if x.LowerBound(-1) != 0 || x.UpperBound(maxDataSize) != x.Len() {
		t.Errorf("Bounds outside the keys should clamp to the ends")
	}
}

func TestBounds(t *testing.T) {
	x := New(10, 20, 30)

	cases := []struct {
		key, lower, upper int
	}{
		{5, 0, 0},
		{10, 0, 1},
		{15, 1, 1},
		{30, 2, 3},
		{31, 3, 3},
	}
	for _, c := range cases {
		if got := x.LowerBound(c.key); got != c.lower {
			t.Errorf("LowerBound(%d) = %d, expected %d", c.key, got, c.lower)
		}
		if got := x.UpperBound(c.key); got != c.upper {
			t.Errorf("UpperBound(%d) = %d, expected %d", c.key, got, c.upper)
		}
	}
}

func TestGetAt(t *testing.T) {
	const maxDataSize = 1000

	x := New[int]()

	if _, err := x.At(0); err == nil {
		t.Errorf("At() on an empty index should give an error")
	}

	keys := make([]int, maxDataSize)
	for i := range keys {
		keys[i] = maxDataSize - i
	}
	x = New(keys...)

	for i := 0; i < maxDataSize; i++ {
		k, err := x.At(i)
		if err != nil || k != i+1 {
			t.Errorf("At(%d) = %d. Should've been %d", i, k, i+1)
		}
	}

	if _, err := x.At(x.Len()); err == nil {
		t.Errorf("At() past the index length should give an error")
	}

	if _, err := x.At(-10); err == nil {
		t.Errorf("At() with negative index should give an error")
	}
}
