package compare

import (
	"errors"

	"github.com/WessleyAI/autospecs/engine/domain"
)

// MaxEntries is the capacity of a Collection.
const MaxEntries = domain.MaxCompare

var (
	ErrCollectionFull  = errors.New("comparison is full")
	ErrDuplicate       = errors.New("car is already in the comparison")
	ErrIndexOutOfRange = errors.New("comparison index out of range")
)

// Collection is an insertion-ordered set of records keyed by make, model
// and year. It is not safe for concurrent use.
type Collection struct {
	specs []domain.Spec
}

// NewCollection returns an empty collection.
func NewCollection() *Collection {
	return &Collection{specs: make([]domain.Spec, 0, MaxEntries)}
}

// Add appends s unless the collection is full or already holds its key.
func (c *Collection) Add(s domain.Spec) error {
	if c.Contains(s.Key()) {
		return ErrDuplicate
	}
	if len(c.specs) >= MaxEntries {
		return ErrCollectionFull
	}
	c.specs = append(c.specs, s)
	return nil
}

// Remove deletes the entry at position i.
func (c *Collection) Remove(i int) error {
	if i < 0 || i >= len(c.specs) {
		return ErrIndexOutOfRange
	}
	c.specs = append(c.specs[:i], c.specs[i+1:]...)
	return nil
}

// RemoveKey deletes the entry with key k and reports whether it was present.
func (c *Collection) RemoveKey(k domain.SpecKey) bool {
	i := c.index(k)
	if i < 0 {
		return false
	}
	c.specs = append(c.specs[:i], c.specs[i+1:]...)
	return true
}

// Clear empties the collection.
func (c *Collection) Clear() { c.specs = c.specs[:0] }

func (c *Collection) Len() int { return len(c.specs) }

// Contains reports whether an entry with key k exists.
func (c *Collection) Contains(k domain.SpecKey) bool { return c.index(k) >= 0 }

// Specs returns a copy of the entries in insertion order.
func (c *Collection) Specs() []domain.Spec {
	out := make([]domain.Spec, len(c.specs))
	copy(out, c.specs)
	return out
}

// Summary summarizes the current entries.
func (c *Collection) Summary() (Summary, bool) { return Summarize(c.specs) }

func (c *Collection) index(k domain.SpecKey) int {
	for i, s := range c.specs {
		if s.Key() == k {
			return i
		}
	}
	return -1
}
