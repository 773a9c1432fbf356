// Package slotseq provides a fixed-capacity, order-preserving sequence of slots.
//
// It offers:
// - Slot[T], a value that is either empty or occupied
// - Seq[T], exactly Cap() slots with first-empty insertion, raw and compacting removal
// - gap compaction that keeps the relative order of occupied slots
// - front removal and grow-by-one, both producing new sequences
// - positional equality, a total order and a hash consistent with it
// - JSON and YAML codecs that keep empty slots as null
//
// Contract violations (inserting into a full sequence, removing an empty slot,
// indexing past Cap) panic with one of the typed errors in this package.
package slotseq
