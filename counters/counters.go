package counters

import (
	"fmt"
	"sort"
	"strings"
)

type Pair[T comparable] struct {
	Element T     `json:"element"`
	Count   int64 `json:"count"`
}

// Stats returns (element, count) pairs, most frequent first. Ties are broken
// by the formatted element.
func (b *Bag[T]) Stats() []Pair[T] {
	if len(b.counts) == 0 {
		return nil
	}
	type entry struct {
		pair Pair[T]
		key  string
	}
	entries := make([]entry, 0, len(b.counts))
	for k, v := range b.counts {
		entries = append(entries, entry{Pair[T]{k, v}, fmt.Sprint(k)})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].pair.Count != entries[j].pair.Count {
			return entries[i].pair.Count > entries[j].pair.Count
		}
		return entries[i].key < entries[j].key
	})
	stats := make([]Pair[T], len(entries))
	for i, e := range entries {
		stats[i] = e.pair
	}
	return stats
}

func (b *Bag[T]) Keys() (out []T) {
	for _, v := range b.Stats() {
		out = append(out, v.Element)
	}
	return out
}

func (b *Bag[T]) HeadOrDefault(def T) T {
	keys := b.Keys()
	if len(keys) == 0 {
		return def
	}
	return keys[0]
}

// String is meant for debugging, e.g. {a:3 b:2 c:1}.
func (b *Bag[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, p := range b.Stats() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%v:%d", p.Element, p.Count)
	}
	sb.WriteByte('}')
	return sb.String()
}
