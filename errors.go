package slotseq

import (
	"errors"
	"fmt"
)

// Sentinel errors matched by the typed panic values below through errors.Is.
var (
	ErrCapacityExceeded = errors.New("slotseq: capacity exceeded")
	ErrEmptySlot        = errors.New("slotseq: empty slot")
	ErrIndexOutOfRange  = errors.New("slotseq: index out of range")
	ErrInvalidCapacity  = errors.New("slotseq: invalid capacity")
)

// CapacityExceededError means Insert was called on a full sequence.
type CapacityExceededError struct {
	Capacity int
}

func (e CapacityExceededError) Error() string {
	return fmt.Sprintf("slotseq: insert into full sequence: capacity=%d", e.Capacity)
}

func (e CapacityExceededError) Is(target error) bool {
	return target == ErrCapacityExceeded
}

// EmptySlotError means a removal targeted a slot that holds no value.
type EmptySlotError struct {
	Index int
}

func (e EmptySlotError) Error() string {
	return fmt.Sprintf("slotseq: no element present at index %d", e.Index)
}

func (e EmptySlotError) Is(target error) bool {
	return target == ErrEmptySlot
}

// IndexOutOfRangeError means an index is negative or not below Capacity.
type IndexOutOfRangeError struct {
	Index    int
	Capacity int
}

func (e IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("slotseq: index out of range: index=%d capacity=%d", e.Index, e.Capacity)
}

func (e IndexOutOfRangeError) Is(target error) bool {
	return target == ErrIndexOutOfRange
}
