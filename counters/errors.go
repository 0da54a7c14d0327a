package counters

import "github.com/pkg/errors"

var (
	// ErrInvalidArgument is returned when an occurrence count is out of range.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrEmpty is returned by Choose on a bag without occurrences.
	ErrEmpty = errors.New("empty bag")

	// ErrExhausted is returned by Cursor.Next past the last occurrence.
	ErrExhausted = errors.New("no more occurrences")

	// ErrConcurrentModification is returned by a cursor when its bag was
	// mutated by anything other than the cursor itself.
	ErrConcurrentModification = errors.New("bag modified during iteration")

	// ErrIllegalState is returned by Cursor.Remove without a preceding Next.
	ErrIllegalState = errors.New("illegal cursor state")
)
