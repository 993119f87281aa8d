package fenwick

import (
	"errors"
	"math"
	"math/rand"
	"sort"
	"testing"
)

func TestCounterBasics(t *testing.T) {
	c := NewCounter(10, 20, 30, 20)

	if c.Distinct() != 3 {
		t.Errorf("Duplicate keys in the universe should be ignored. Got %d distinct", c.Distinct())
	}

	if err := c.Add(20, 2); err != nil {
		t.Errorf("Failed to add simple item: %s", err)
	}

	if err := c.Add(25, 1); !errors.Is(err, ErrUnknownKey) {
		t.Errorf("Adding a key outside the universe shouldn't be allowed. Got %v", err)
	}

	if err := c.Add(20, -3); !errors.Is(err, ErrNegativeCount) {
		t.Errorf("Removing more than present shouldn't be allowed. Got %v", err)
	}

	if c.Count(20) != 2 || c.Count(25) != 0 {
		t.Errorf("Unexpected counts: 20 -> %d, 25 -> %d", c.Count(20), c.Count(25))
	}

	if err := c.Add(20, -2); err != nil || c.Total() != 0 {
		t.Errorf("Removing every item should empty the counter. err=%v total=%d", err, c.Total())
	}
}

func TestCounterOverflow(t *testing.T) {
	c := NewCounter("a", "b")

	if err := c.Add("a", math.MaxInt64); err != nil {
		t.Fatalf("Filling a key up to MaxInt64 should work. Got %s", err)
	}

	for _, key := range []string{"a", "b"} {
		err := c.Add(key, 1)
		if !errors.Is(err, ErrInvalidArgument) || errors.Is(err, ErrNegativeCount) {
			t.Errorf("Overflowing the total through %q should fail with ErrInvalidArgument. Got %v", key, err)
		}
	}

	if c.Count("a") != math.MaxInt64 || c.Count("b") != 0 {
		t.Errorf("A failed Add must not change counts. Got a=%d b=%d", c.Count("a"), c.Count("b"))
	}

	if err := c.Add("a", -1); err != nil {
		t.Errorf("Removing from a full key should work. Got %s", err)
	}
}

func TestCounterInventory(t *testing.T) {
	c := NewCounter("apple", "banana", "cherry", "date")

	_ = c.Add("banana", 5)
	_ = c.Add("date", 2)
	_ = c.Add("apple", 1)
	_ = c.Add("banana", -1)

	if c.Total() != 7 {
		t.Errorf("Expected 7 items, Got %d", c.Total())
	}
	if got := c.CountRange("b", "cz"); got != 4 {
		t.Errorf("Expected 4 items between b and cz, Got %d", got)
	}
	if got := c.CountRange("z", "a"); got != 0 {
		t.Errorf("An inverted range should be empty, Got %d", got)
	}
	if got := c.Rank("c"); got != 5 {
		t.Errorf("Expected 5 items before c, Got %d", got)
	}

	var seen []string
	c.ForEach(func(k string, n int64) bool {
		seen = append(seen, k)
		return true
	})
	if len(seen) != 3 || seen[0] != "apple" || seen[2] != "date" {
		t.Errorf("ForEach should skip empty keys and walk in order. Got %v", seen)
	}

	calls := 0
	c.ForEach(func(string, int64) bool {
		calls++
		return false
	})
	if calls != 1 {
		t.Errorf("ForEach must exit early if the closure returns false")
	}
}

func TestCounterSelect(t *testing.T) {
	const keys = 500

	universe := make([]float64, keys)
	for i := range universe {
		universe[i] = rand.Float64()
	}
	c := NewCounter(universe...)

	var items []float64
	for i := 0; i < 2000; i++ {
		k := universe[rand.Intn(keys)]
		if err := c.Add(k, 1); err != nil {
			t.Fatalf("Add(%f) failed: %s", k, err)
		}
		items = append(items, k)
	}
	sort.Float64s(items)

	for k := range items {
		got, err := c.Select(int64(k))
		if err != nil || got != items[k] {
			t.Fatalf("Select(%d) = %f (err=%v), expected %f", k, got, err, items[k])
		}
		if r := c.Rank(got); r > int64(k) || items[r] != got {
			t.Fatalf("Rank(Select(%d)) = %d is inconsistent", k, r)
		}
	}

	for _, k := range []int64{-1, int64(len(items))} {
		if _, err := c.Select(k); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("Select(%d) should fail with ErrIndexOutOfRange. Got %v", k, err)
		}
	}
}
