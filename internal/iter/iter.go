package iter

import (
	"errors"

	"github.com/dshills/bytestring/internal/buffer"
)

// ErrInvalidIterator indicates an iterator that is detached, stale, or
// belongs to a different sequence.
var ErrInvalidIterator = errors.New("invalid iterator")

// Sequence is the byte storage an iterator walks.
// The generation must change whenever live bytes move.
type Sequence interface {
	Len() int
	ByteAt(i int) byte
	SetByteAt(i int, v byte)
	Generation() uint64
}

// Iterator is a forward random-access position in a Sequence.
// The zero value is detached and never valid.
type Iterator struct {
	seq Sequence
	off int
	gen uint64
}

// New returns an iterator at forward offset off, bound to the sequence's
// current generation.
func New(seq Sequence, off int) Iterator {
	return Iterator{seq: seq, off: off, gen: seq.Generation()}
}

// Offset returns the forward index the iterator refers to.
func (it Iterator) Offset() int {
	return it.off
}

// Sequence returns the sequence the iterator is bound to.
func (it Iterator) Sequence() Sequence {
	return it.seq
}

// Attached reports whether the iterator is bound to seq and has not been
// invalidated by a layout change.
func (it Iterator) Attached(seq Sequence) bool {
	return it.seq != nil && it.seq == seq && it.gen == seq.Generation()
}

// Valid reports whether the iterator can be dereferenced.
func (it Iterator) Valid() bool {
	return it.seq != nil && it.gen == it.seq.Generation() && it.off >= 0 && it.off < it.seq.Len()
}

// Value returns the byte under the iterator.
func (it Iterator) Value() (byte, error) {
	return it.Index(0)
}

// Index returns the byte n positions away from the iterator.
func (it Iterator) Index(n int) (byte, error) {
	i, err := checkDeref(it.seq, it.gen, it.off+n)
	if err != nil {
		return 0, err
	}
	return it.seq.ByteAt(i), nil
}

// Set overwrites the byte under the iterator.
func (it Iterator) Set(v byte) error {
	i, err := checkDeref(it.seq, it.gen, it.off)
	if err != nil {
		return err
	}
	it.seq.SetByteAt(i, v)
	return nil
}

// Movement

// Next returns the iterator one position forward.
func (it Iterator) Next() Iterator {
	return it.Add(1)
}

// Prev returns the iterator one position back.
func (it Iterator) Prev() Iterator {
	return it.Add(-1)
}

// Add returns the iterator n positions forward.
func (it Iterator) Add(n int) Iterator {
	it.off += n
	return it
}

// Sub returns the iterator n positions back.
func (it Iterator) Sub(n int) Iterator {
	it.off -= n
	return it
}

// Inc moves the iterator forward in place (prefix increment).
func (it *Iterator) Inc() {
	it.off++
}

// Dec moves the iterator back in place (prefix decrement).
func (it *Iterator) Dec() {
	it.off--
}

// Advance moves the iterator n positions in place.
func (it *Iterator) Advance(n int) {
	it.off += n
}

// PostInc moves the iterator forward and returns its previous value.
func (it *Iterator) PostInc() Iterator {
	old := *it
	it.off++
	return old
}

// PostDec moves the iterator back and returns its previous value.
func (it *Iterator) PostDec() Iterator {
	old := *it
	it.off--
	return old
}

// Distance returns to.Offset() - it.Offset().
func (it Iterator) Distance(to Iterator) int {
	return to.off - it.off
}

// Ordering

// Compare orders iterators by offset: -1, 0 or 1.
func (it Iterator) Compare(other Iterator) int {
	return compareOffsets(it.off, other.off)
}

// Equal reports whether both iterators name the same position of the same sequence.
func (it Iterator) Equal(other Iterator) bool {
	return it.seq == other.seq && it.off == other.off
}

// Less reports it < other.
func (it Iterator) Less(other Iterator) bool { return it.off < other.off }

// LessEq reports it <= other.
func (it Iterator) LessEq(other Iterator) bool { return it.off <= other.off }

// Greater reports it > other.
func (it Iterator) Greater(other Iterator) bool { return it.off > other.off }

// GreaterEq reports it >= other.
func (it Iterator) GreaterEq(other Iterator) bool { return it.off >= other.off }

func compareOffsets(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// checkDeref validates a forward index for reading or writing.
func checkDeref(seq Sequence, gen uint64, i int) (int, error) {
	if seq == nil || gen != seq.Generation() {
		return 0, ErrInvalidIterator
	}
	if i < 0 || i >= seq.Len() {
		return 0, &buffer.RangeError{Op: "deref", Pos: i, Size: seq.Len()}
	}
	return i, nil
}
