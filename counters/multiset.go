// Package counters implements Bag, a multiset that keeps one count per
// distinct element instead of one entry per occurrence. A bag holding a
// hundred million copies of a single value costs one map entry.
//
// Bags are not safe for concurrent mutation.
package counters

import (
	"iter"
	"maps"

	"github.com/benbjohnson/immutable"
	"github.com/pkg/errors"
)

// MaxAddMany is the largest count accepted by a single AddMany call.
const MaxAddMany = 1_000_000_000

// Bag is a counting multiset. The zero value is an empty bag ready to use.
// A nil *Bag is only accepted by Equal and Hash; every other method
// requires a non-nil receiver.
type Bag[T comparable] struct {
	counts map[T]int64
	total  int64
	mods   uint64
	hasher immutable.Hasher[T]
}

type Option[T comparable] func(*Bag[T])

// WithHasher replaces the default hasher used by Hash and Distinct. The
// hasher must agree with == on T.
func WithHasher[T comparable](h immutable.Hasher[T]) Option[T] {
	return func(b *Bag[T]) {
		b.hasher = h
	}
}

func New[T comparable](opts ...Option[T]) *Bag[T] {
	b := &Bag[T]{
		counts: map[T]int64{},
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Of returns a bag holding one occurrence per argument.
func Of[T comparable](elems ...T) *Bag[T] {
	b := New[T]()
	b.AddAll(elems...)
	return b
}

func (b *Bag[T]) init() {
	if b.counts == nil {
		b.counts = map[T]int64{}
	}
}

func (b *Bag[T]) hash() immutable.Hasher[T] {
	if b.hasher == nil {
		return comparableHasher[T]{}
	}
	return b.hasher
}

func (b *Bag[T]) Add(e T) {
	b.init()
	b.counts[e]++
	b.total++
	b.mods++
}

// AddMany adds n occurrences of e and reports whether the bag changed.
// n must be within [0, MaxAddMany]; otherwise the bag is left untouched.
func (b *Bag[T]) AddMany(e T, n int64) (bool, error) {
	if n < 0 || n > MaxAddMany {
		return false, errors.Wrapf(ErrInvalidArgument, "count %d is outside [0, %d]", n, MaxAddMany)
	}
	if n == 0 {
		return false, nil
	}
	b.init()
	b.counts[e] += n
	b.total += n
	b.mods++
	return true, nil
}

func (b *Bag[T]) AddAll(elems ...T) {
	for _, e := range elems {
		b.Add(e)
	}
}

// Merge adds every occurrence held by other.
func (b *Bag[T]) Merge(other *Bag[T]) {
	if other == nil || other.total == 0 {
		return
	}
	b.init()
	added := other.total
	for e, n := range other.counts {
		b.counts[e] += n
	}
	b.total += added
	b.mods++
}

// Remove removes a single occurrence of e. It reports false if e is absent.
func (b *Bag[T]) Remove(e T) bool {
	n, ok := b.counts[e]
	if !ok || n <= 0 {
		return false
	}
	if n == 1 {
		delete(b.counts, e)
	} else {
		b.counts[e] = n - 1
	}
	b.total--
	b.mods++
	return true
}

func (b *Bag[T]) Clear() {
	if b.total == 0 {
		return
	}
	clear(b.counts)
	b.total = 0
	b.mods++
}

func (b *Bag[T]) Contains(e T) bool {
	return b.counts[e] > 0
}

func (b *Bag[T]) ContainsAll(elems ...T) bool {
	for _, e := range elems {
		if !b.Contains(e) {
			return false
		}
	}
	return true
}

// Count returns the number of occurrences of e, or 0.
func (b *Bag[T]) Count(e T) int64 {
	return b.counts[e]
}

// Len returns the number of occurrences, duplicates included.
func (b *Bag[T]) Len() int64 {
	return b.total
}

func (b *Bag[T]) IsEmpty() bool {
	return b.total == 0
}

// DistinctLen returns the number of distinct elements.
func (b *Bag[T]) DistinctLen() int {
	return len(b.counts)
}

// Distinct returns a snapshot of the distinct elements. Later changes to the
// bag are not reflected in it.
func (b *Bag[T]) Distinct() immutable.Set[T] {
	return immutable.NewSet(b.hash(), b.elements()...)
}

// Counts enumerates (element, count) pairs in no particular order.
func (b *Bag[T]) Counts() iter.Seq2[T, int64] {
	return maps.All(b.counts)
}

func (b *Bag[T]) Clone() *Bag[T] {
	return &Bag[T]{
		counts: maps.Clone(b.counts),
		total:  b.total,
		hasher: b.hasher,
	}
}

func (b *Bag[T]) elements() []T {
	out := make([]T, 0, len(b.counts))
	for e := range b.counts {
		out = append(out, e)
	}
	return out
}

// Equal reports whether both bags hold the same elements with the same
// counts. A nil bag only equals another nil bag.
func (b *Bag[T]) Equal(other *Bag[T]) bool {
	if b == other {
		return true
	}
	if b == nil || other == nil {
		return false
	}
	return b.total == other.total && maps.Equal(b.counts, other.counts)
}

// Hash is consistent with Equal: it folds every (element, count) entry with
// an order-independent sum. Values are only meaningful within one process.
func (b *Bag[T]) Hash() uint64 {
	if b == nil {
		return 0
	}
	h := b.hash()
	var sum uint64
	for e, n := range b.counts {
		eh := uint64(h.Hash(e))
		sum += (eh<<32 | eh) ^ (uint64(n) * 0x9e3779b97f4a7c15)
	}
	return sum
}
