package slotseq

import "iter"

// Seq is a fixed-capacity sequence of slots.
//
// The capacity is chosen at construction and never changes; GrowByOne and
// PopFront return new sequences instead of resizing the receiver.
// Like a slice, copying a Seq shares its slot storage; use Clone for an
// independent copy. The zero value is a sequence of capacity 0.
type Seq[T comparable] struct {
	slots []Slot[T]
}

// New returns a sequence of capacity empty slots.
func New[T comparable](capacity int) Seq[T] {
	if capacity < 0 {
		panic(ErrInvalidCapacity)
	}
	return Seq[T]{slots: make([]Slot[T], capacity)}
}

// FromPrefix copies the first min(capacity, len(input)) values of input into
// slots 0.. in order. Remaining slots are empty; excess input is dropped.
func FromPrefix[T comparable](capacity int, input []T) Seq[T] {
	s := New[T](capacity)
	for i := 0; i < capacity && i < len(input); i++ {
		s.slots[i] = Occupied(input[i])
	}
	return s
}

// FromArray returns a full sequence whose capacity is len(values).
func FromArray[T comparable](values ...T) Seq[T] {
	return FromPrefix(len(values), values)
}

// FromSlots returns a sequence whose capacity is len(slots), holding exactly
// the given slots in order.
func FromSlots[T comparable](slots ...Slot[T]) Seq[T] {
	s := New[T](len(slots))
	copy(s.slots, slots)
	return s
}

// Of returns a sequence of the given capacity with values inserted in order.
// It panics with CapacityExceededError if there are more values than slots.
func Of[T comparable](capacity int, values ...T) Seq[T] {
	s := New[T](capacity)
	for _, v := range values {
		s.Insert(v)
	}
	return s
}

// Cap returns the number of slots.
func (s Seq[T]) Cap() int {
	return len(s.slots)
}

// Len returns the number of occupied slots.
func (s Seq[T]) Len() int {
	n := 0
	for _, slot := range s.slots {
		if slot.occupied {
			n++
		}
	}
	return n
}

func (s Seq[T]) IsFull() bool {
	return s.Len() == len(s.slots)
}

// IsCompact reports whether no occupied slot follows an empty one.
func (s Seq[T]) IsCompact() bool {
	gap := false
	for _, slot := range s.slots {
		if !slot.occupied {
			gap = true
		} else if gap {
			return false
		}
	}
	return true
}

// Get returns the value at idx. An empty slot yields false; an index outside
// [0, Cap) panics with IndexOutOfRangeError.
func (s Seq[T]) Get(idx int) (T, bool) {
	s.checkIndex(idx)
	return s.slots[idx].Value()
}

// Slot returns the slot at idx with the same bounds policy as Get.
func (s Seq[T]) Slot(idx int) Slot[T] {
	s.checkIndex(idx)
	return s.slots[idx]
}

// Slots returns a snapshot of every slot in index order.
func (s Seq[T]) Slots() []Slot[T] {
	slots := make([]Slot[T], len(s.slots))
	copy(slots, s.slots)
	return slots
}

// Values returns the occupied values in index order.
func (s Seq[T]) Values() []T {
	values := make([]T, 0, len(s.slots))
	for _, slot := range s.slots {
		if slot.occupied {
			values = append(values, slot.value)
		}
	}
	return values
}

// All enumerates every slot in index order, empty ones included.
func (s Seq[T]) All() iter.Seq2[int, Slot[T]] {
	return func(yield func(int, Slot[T]) bool) {
		for i, slot := range s.slots {
			if !yield(i, slot) {
				return
			}
		}
	}
}

// Insert occupies the first empty slot with v. Other slots are untouched.
// It panics with CapacityExceededError when the sequence is full.
func (s *Seq[T]) Insert(v T) {
	for i := range s.slots {
		if !s.slots[i].occupied {
			s.slots[i] = Occupied(v)
			return
		}
	}
	panic(CapacityExceededError{Capacity: len(s.slots)})
}

// RemoveRaw clears the slot at idx and returns its value, leaving a gap.
// It panics with EmptySlotError if the slot is already empty.
func (s *Seq[T]) RemoveRaw(idx int) T {
	s.checkIndex(idx)
	v, ok := s.slots[idx].Value()
	if !ok {
		panic(EmptySlotError{Index: idx})
	}
	s.slots[idx] = Slot[T]{}
	return v
}

// Remove is RemoveRaw followed by Compact.
func (s *Seq[T]) Remove(idx int) T {
	v := s.RemoveRaw(idx)
	s.Compact()
	return v
}

// Compact moves occupied slots left over every gap, keeping their relative order.
// It is a no-op on a sequence that is already compact.
func (s *Seq[T]) Compact() {
	s.compact()
}

// compact runs passes until one finds nothing to shift and returns the number
// of passes. Each shifting pass moves the first gap to the tail, so a sequence
// of capacity n needs at most max(n, 1) passes.
func (s *Seq[T]) compact() int {
	passes := 1
	for !s.compactOnce() {
		passes++
	}
	return passes
}

// compactOnce shifts every slot after the first gap one position left and
// reports whether the sequence was already compact.
func (s *Seq[T]) compactOnce() bool {
	first := -1
	for i := range s.slots {
		if !s.slots[i].occupied {
			first = i
			break
		}
	}
	if first < 0 {
		return true
	}

	compact := true
	for i := first + 1; i < len(s.slots); i++ {
		if s.slots[i].occupied {
			compact = false
		}
		s.slots[i-1] = s.slots[i]
	}
	s.slots[len(s.slots)-1] = Slot[T]{}
	return compact
}

// PopFront returns the value in slot 0 and a new sequence of the same capacity
// holding slots 1.. shifted down by one, with an empty tail slot.
// It panics with EmptySlotError when slot 0 is empty.
func (s Seq[T]) PopFront() (T, Seq[T]) {
	s.checkIndex(0)
	v, ok := s.slots[0].Value()
	if !ok {
		panic(EmptySlotError{Index: 0})
	}
	next := New[T](len(s.slots))
	copy(next.slots, s.slots[1:])
	return v, next
}

// GrowByOne returns a copy of s with one more, empty, slot at the end.
func (s Seq[T]) GrowByOne() Seq[T] {
	next := New[T](len(s.slots) + 1)
	copy(next.slots, s.slots)
	return next
}

// Clone returns a sequence with the same slots and its own storage.
func (s Seq[T]) Clone() Seq[T] {
	return FromSlots(s.slots...)
}

func (s Seq[T]) checkIndex(idx int) {
	if idx < 0 || idx >= len(s.slots) {
		panic(IndexOutOfRangeError{Index: idx, Capacity: len(s.slots)})
	}
}
