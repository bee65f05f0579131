// Package iter provides random-access iterators over a byte Sequence.
//
// Iterators are small values holding the sequence, a forward index and the
// generation observed at creation. Any edit that moves live bytes advances the
// sequence's generation, after which dereferencing an older iterator reports
// ErrInvalidIterator instead of reading through a stale position.
//
// ReverseIterator mirrors Iterator with increment moving toward the head. Its
// Base method converts back to the forward iterator one past the element.
package iter
