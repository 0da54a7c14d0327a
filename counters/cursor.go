package counters

import (
	"iter"

	"github.com/pkg/errors"
)

// Cursor walks every occurrence of a bag, emitting each distinct element
// once per occurrence before moving on to the next one. The set of distinct
// elements is captured when the cursor is created, so the order is stable
// for one traversal. Mutating the bag by any means other than Cursor.Remove
// invalidates the cursor.
type Cursor[T comparable] struct {
	bag      *Bag[T]
	elements []T
	next     int

	current T
	left    int64
	pos     int64
	limit   int64

	mods      uint64
	removable bool
}

func (b *Bag[T]) Iterator() *Cursor[T] {
	return &Cursor[T]{
		bag:      b,
		elements: b.elements(),
		limit:    b.total,
		mods:     b.mods,
	}
}

// All ranges over every occurrence. It panics with ErrConcurrentModification
// when the loop body mutates the bag and more occurrences are requested.
func (b *Bag[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		c := b.Iterator()
		for c.HasNext() {
			e, err := c.Next()
			if err != nil {
				panic(err)
			}
			if !yield(e) {
				return
			}
		}
	}
}

func (c *Cursor[T]) HasNext() bool {
	return c.pos < c.limit
}

func (c *Cursor[T]) Next() (T, error) {
	var zero T
	if err := c.checkMods(); err != nil {
		return zero, err
	}
	if !c.HasNext() {
		return zero, errors.Wrapf(ErrExhausted, "read past %d occurrences", c.limit)
	}
	for c.left == 0 {
		if c.next >= len(c.elements) {
			return zero, errors.Wrapf(ErrConcurrentModification, "ran out of elements at %d of %d", c.pos, c.limit)
		}
		c.current = c.elements[c.next]
		c.next++
		c.left = c.bag.counts[c.current]
	}
	c.left--
	c.pos++
	c.removable = true
	return c.current, nil
}

// Remove removes one occurrence of the element returned by the last Next.
// The removed occurrence has already been emitted, so the rest of the
// traversal is unaffected.
func (c *Cursor[T]) Remove() error {
	if err := c.checkMods(); err != nil {
		return err
	}
	if !c.removable {
		return errors.Wrap(ErrIllegalState, "remove without a preceding next")
	}
	if !c.bag.Remove(c.current) {
		return errors.Wrapf(ErrIllegalState, "%v is no longer in the bag", c.current)
	}
	c.removable = false
	c.mods = c.bag.mods
	c.pos--
	c.limit--
	return nil
}

func (c *Cursor[T]) checkMods() error {
	if c.mods != c.bag.mods {
		return errors.WithStack(ErrConcurrentModification)
	}
	return nil
}
