package slotseq

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalJSON encodes s as an array of Cap() elements, null for empty slots.
func (s Seq[T]) MarshalJSON() ([]byte, error) {
	if s.slots == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(s.slots)
}

// UnmarshalJSON replaces s with the decoded slots; the capacity becomes the array length.
func (s *Seq[T]) UnmarshalJSON(data []byte) error {
	var slots []Slot[T]
	if err := json.Unmarshal(data, &slots); err != nil {
		return fmt.Errorf("decode sequence: %w", err)
	}
	*s = FromSlots(slots...)
	return nil
}

// MarshalYAML encodes s as a sequence of Cap() nodes, null for empty slots.
func (s Seq[T]) MarshalYAML() (any, error) {
	if s.slots == nil {
		return []Slot[T]{}, nil
	}
	return s.slots, nil
}

// UnmarshalYAML decodes a YAML sequence node. Null entries become empty slots
// in place, so the capacity is always the number of entries.
func (s *Seq[T]) UnmarshalYAML(value *yaml.Node) error {
	if isNullNode(value) {
		*s = New[T](0)
		return nil
	}
	if value.Kind != yaml.SequenceNode {
		return fmt.Errorf("decode sequence at line %d: want a YAML sequence, got kind %d", value.Line, value.Kind)
	}
	next := New[T](len(value.Content))
	for i, item := range value.Content {
		if err := next.slots[i].UnmarshalYAML(item); err != nil {
			return fmt.Errorf("decode sequence index %d: %w", i, err)
		}
	}
	*s = next
	return nil
}
