package slotseq

import (
	"hash/maphash"

	"golang.org/x/exp/constraints"
)

// Equal reports whether s and other hold the same slot state at every index.
// Sequences of different capacity are never equal.
func (s Seq[T]) Equal(other Seq[T]) bool {
	if len(s.slots) != len(other.slots) {
		return false
	}
	for i := range s.slots {
		if s.slots[i] != other.slots[i] {
			return false
		}
	}
	return true
}

// Compare orders sequences by capacity, then slot by slot, with an empty slot
// sorting before any occupied one. Apart from NaN values it returns 0 iff a.Equal(b).
func Compare[T constraints.Ordered](a, b Seq[T]) int {
	return CompareFunc(a, b, func(x, y T) int {
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		}
		return 0
	})
}

// CompareFunc is Compare with a caller supplied value ordering.
func CompareFunc[T comparable](a, b Seq[T], cmp func(x, y T) int) int {
	if len(a.slots) != len(b.slots) {
		if len(a.slots) < len(b.slots) {
			return -1
		}
		return 1
	}
	for i := range a.slots {
		x, y := a.slots[i], b.slots[i]
		switch {
		case !x.occupied && !y.occupied:
			continue
		case !x.occupied:
			return -1
		case !y.occupied:
			return 1
		}
		if c := cmp(x.value, y.value); c != 0 {
			return c
		}
	}
	return 0
}

// Hash returns a hash of the slot states under seed. Equal sequences hash equally.
func (s Seq[T]) Hash(seed maphash.Seed) uint64 {
	var h maphash.Hash
	h.SetSeed(seed)
	maphash.WriteComparable(&h, len(s.slots))
	for _, slot := range s.slots {
		maphash.WriteComparable(&h, slot)
	}
	return h.Sum64()
}
