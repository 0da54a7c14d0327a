package counters

import "github.com/pkg/errors"

// Source is the random number generator consumed by Choose. It is satisfied
// by *math/rand/v2.Rand.
type Source interface {
	// Int64N returns a uniform value in [0, n).
	Int64N(n int64) int64
}

// Choose picks an element with probability Count(e)/Len(). It takes time
// proportional to the number of distinct elements and leaves the bag as is.
func (b *Bag[T]) Choose(r Source) (T, error) {
	var zero T
	if b.total == 0 {
		return zero, errors.WithStack(ErrEmpty)
	}
	index := r.Int64N(b.total)
	var sum int64
	for e, n := range b.counts {
		sum += n
		if sum > index {
			return e, nil
		}
	}
	return zero, errors.Wrapf(ErrIllegalState, "index %d is beyond %d occurrences", index, sum)
}
