package compare

import (
	"errors"
	"testing"

	"github.com/WessleyAI/autospecs/engine/domain"
)

func TestCollectionAddAndOrder(t *testing.T) {
	c := NewCollection()
	for _, m := range []string{"A", "B", "C", "D"} {
		if err := c.Add(car(m, 2024, 100, "7 seconds")); err != nil {
			t.Fatalf("Add(%s): %v", m, err)
		}
	}
	if err := c.Add(car("E", 2024, 100, "7 seconds")); !errors.Is(err, ErrCollectionFull) {
		t.Fatalf("expected ErrCollectionFull, got %v", err)
	}
	got := c.Specs()
	for i, m := range []string{"A", "B", "C", "D"} {
		if got[i].Make != m {
			t.Fatalf("order not preserved at %d: %s", i, got[i].Make)
		}
	}
}

func TestCollectionDuplicate(t *testing.T) {
	c := NewCollection()
	civic := domain.Spec{Make: "Honda", Model: "Civic", Year: 2024, Horsepower: 158}
	if err := c.Add(civic); err != nil {
		t.Fatal(err)
	}
	civic.Horsepower = 200
	if err := c.Add(civic); !errors.Is(err, ErrDuplicate) {
		t.Fatalf("same key must be rejected, got %v", err)
	}
	civic.Year = 2023
	if err := c.Add(civic); err != nil {
		t.Fatalf("different year is a different car: %v", err)
	}
	if c.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", c.Len())
	}
}

// A full collection reports the duplicate first so callers can tell the
// two conditions apart.
func TestCollectionDuplicateWhenFull(t *testing.T) {
	c := NewCollection()
	for _, m := range []string{"A", "B", "C", "D"} {
		_ = c.Add(car(m, 2024, 100, ""))
	}
	if err := c.Add(car("A", 2024, 100, "")); !errors.Is(err, ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
}

func TestCollectionRemove(t *testing.T) {
	c := NewCollection()
	_ = c.Add(car("A", 2024, 1, ""))
	_ = c.Add(car("B", 2024, 2, ""))
	_ = c.Add(car("C", 2024, 3, ""))

	if err := c.Remove(1); err != nil {
		t.Fatal(err)
	}
	if got := c.Specs(); len(got) != 2 || got[0].Make != "A" || got[1].Make != "C" {
		t.Fatalf("unexpected entries after Remove: %+v", got)
	}
	for _, i := range []int{-1, 2, 10} {
		if err := c.Remove(i); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("Remove(%d) = %v, want ErrIndexOutOfRange", i, err)
		}
	}

	if !c.RemoveKey(domain.SpecKey{Make: "A", Model: "X", Year: 2024}) {
		t.Fatal("RemoveKey should find A")
	}
	if c.RemoveKey(domain.SpecKey{Make: "A", Model: "X", Year: 2024}) {
		t.Fatal("RemoveKey should not find A twice")
	}
	if c.Len() != 1 {
		t.Fatalf("expected 1 entry, got %d", c.Len())
	}

	c.Clear()
	if c.Len() != 0 {
		t.Fatal("Clear should empty the collection")
	}
	if err := c.Add(car("Z", 2024, 1, "")); err != nil {
		t.Fatalf("Add after Clear: %v", err)
	}
}

func TestCollectionSpecsIsCopy(t *testing.T) {
	c := NewCollection()
	_ = c.Add(car("A", 2024, 1, ""))
	s := c.Specs()
	s[0].Make = "mutated"
	if c.Specs()[0].Make != "A" {
		t.Fatal("Specs must return a copy")
	}
}

func TestCollectionSummary(t *testing.T) {
	c := NewCollection()
	if _, ok := c.Summary(); ok {
		t.Fatal("empty collection has no summary")
	}
	_ = c.Add(car("Slow", 2020, 100, "9.0 seconds"))
	_ = c.Add(car("Fast", 2022, 500, "3.1 seconds"))
	sum, ok := c.Summary()
	if !ok || sum.Fastest.Make != "Fast" || sum.Count != 2 {
		t.Fatalf("unexpected summary: %+v", sum)
	}
}
