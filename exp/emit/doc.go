// Package emit provides experimental Go source generation for slotseq values.
//
// It is a read-only consumer of a sequence: it walks the ordered slots through
// Source and emits an expression that, when compiled, rebuilds an equal
// sequence with slotseq.FromSlots. It performs:
// 1. slot enumeration in index order
// 2. Go literal rendering per occupied value
// 3. expression validation and gofmt formatting
// 4. optional wrapping into a complete generated file with a content checksum
//
// This package is EXPERIMENTAL and its API may change before v1.
package emit
