package slotseq

import (
	"fmt"
	"strings"
)

// String renders the slots in order, "_" for empty ones: [1 _ 3].
func (s Seq[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, slot := range s.slots {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(slot.String())
	}
	b.WriteByte(']')
	return b.String()
}

// GoString renders s as a FromSlots call, used by the %#v verb.
func (s Seq[T]) GoString() string {
	var zero T
	typ := fmt.Sprintf("%T", zero)

	var b strings.Builder
	b.WriteString(fmt.Sprintf("slotseq.FromSlots[%s](", typ))
	for i, slot := range s.slots {
		if i > 0 {
			b.WriteString(", ")
		}
		if !slot.occupied {
			b.WriteString(fmt.Sprintf("slotseq.Empty[%s]()", typ))
			continue
		}
		b.WriteString(fmt.Sprintf("slotseq.Occupied[%s](%#v)", typ, slot.value))
	}
	b.WriteByte(')')
	return b.String()
}
