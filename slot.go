package slotseq

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Slot is one storage position of a Seq. The zero value is an empty slot.
//
// Slot is comparable: two slots are == iff both are empty or both hold equal values.
type Slot[T comparable] struct {
	value    T
	occupied bool
}

// Empty returns an empty slot.
func Empty[T comparable]() Slot[T] {
	return Slot[T]{}
}

// Occupied returns a slot holding v.
func Occupied[T comparable](v T) Slot[T] {
	return Slot[T]{value: v, occupied: true}
}

// Value returns the held value and whether the slot is occupied.
func (s Slot[T]) Value() (T, bool) {
	return s.value, s.occupied
}

func (s Slot[T]) IsEmpty() bool {
	return !s.occupied
}

func (s Slot[T]) IsOccupied() bool {
	return s.occupied
}

func (s Slot[T]) String() string {
	if !s.occupied {
		return "_"
	}
	return fmt.Sprint(s.value)
}

// MarshalJSON encodes an empty slot as null and an occupied slot as its value.
func (s Slot[T]) MarshalJSON() ([]byte, error) {
	if !s.occupied {
		return []byte("null"), nil
	}
	return json.Marshal(s.value)
}

func (s *Slot[T]) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*s = Slot[T]{}
		return nil
	}
	var v T
	if err := json.Unmarshal(trimmed, &v); err != nil {
		return fmt.Errorf("decode slot: %w", err)
	}
	*s = Occupied(v)
	return nil
}

// MarshalYAML encodes an empty slot as null and an occupied slot as its value.
func (s Slot[T]) MarshalYAML() (any, error) {
	if !s.occupied {
		return nil, nil
	}
	return s.value, nil
}

func (s *Slot[T]) UnmarshalYAML(value *yaml.Node) error {
	if isNullNode(value) {
		*s = Slot[T]{}
		return nil
	}
	var v T
	if err := value.Decode(&v); err != nil {
		return fmt.Errorf("decode slot at line %d: %w", value.Line, err)
	}
	*s = Occupied(v)
	return nil
}

func isNullNode(n *yaml.Node) bool {
	return n == nil || (n.Kind == yaml.ScalarNode && n.ShortTag() == "!!null")
}
