package counters

import (
	"encoding/json"
	"math"

	"github.com/pkg/errors"
)

func (b *Bag[T]) MarshalJSON() ([]byte, error) {
	stats := b.Stats()
	if stats == nil {
		stats = []Pair[T]{}
	}
	return json.Marshal(stats)
}

// UnmarshalJSON replaces the contents of the bag. Repeated elements are
// summed; a non-positive count or a total beyond math.MaxInt64 rejects the
// whole document and leaves the bag as it was.
func (b *Bag[T]) UnmarshalJSON(raw []byte) error {
	var pairs []Pair[T]
	err := json.Unmarshal(raw, &pairs)
	if err != nil {
		return err
	}
	counts := make(map[T]int64, len(pairs))
	var total int64
	for _, p := range pairs {
		if p.Count < 1 {
			return errors.Wrapf(ErrInvalidArgument, "%v has count %d", p.Element, p.Count)
		}
		if counts[p.Element] > math.MaxInt64-p.Count || total > math.MaxInt64-p.Count {
			return errors.Wrapf(ErrInvalidArgument, "%v with count %d overflows the bag", p.Element, p.Count)
		}
		counts[p.Element] += p.Count
		total += p.Count
	}
	b.counts = counts
	b.total = total
	b.mods++
	return nil
}
