package counters

import (
	"hash/maphash"

	"github.com/benbjohnson/immutable"
)

var seed = maphash.MakeSeed()

// comparableHasher hashes any comparable value with a per-process seed, so
// hashes are stable for the lifetime of the process only.
type comparableHasher[T comparable] struct{}

var _ immutable.Hasher[string] = comparableHasher[string]{}

func (comparableHasher[T]) Hash(k T) uint32 {
	h := maphash.Comparable(seed, k)
	return uint32(h ^ h>>32)
}

func (comparableHasher[T]) Equal(a, b T) bool {
	return a == b
}
