package iter

// ReverseIterator walks a Sequence from the tail to the head.
//
// It stores the forward index it refers to: RBegin is Len()-1 and REnd is -1,
// one before the first element. Incrementing moves toward the head.
type ReverseIterator struct {
	seq Sequence
	off int
	gen uint64
}

// NewReverse returns a reverse iterator referring to forward index off.
func NewReverse(seq Sequence, off int) ReverseIterator {
	return ReverseIterator{seq: seq, off: off, gen: seq.Generation()}
}

// Position returns the forward index the iterator refers to.
func (it ReverseIterator) Position() int {
	return it.off
}

// Base returns the forward iterator one past the referenced element.
// RBegin().Base() equals End(); REnd().Base() equals Begin().
func (it ReverseIterator) Base() Iterator {
	return Iterator{seq: it.seq, off: it.off + 1, gen: it.gen}
}

// Valid reports whether the iterator can be dereferenced.
func (it ReverseIterator) Valid() bool {
	return it.seq != nil && it.gen == it.seq.Generation() && it.off >= 0 && it.off < it.seq.Len()
}

// Value returns the byte under the iterator.
func (it ReverseIterator) Value() (byte, error) {
	return it.Index(0)
}

// Index returns the byte n reverse steps away, i.e. at forward index off-n.
func (it ReverseIterator) Index(n int) (byte, error) {
	i, err := checkDeref(it.seq, it.gen, it.off-n)
	if err != nil {
		return 0, err
	}
	return it.seq.ByteAt(i), nil
}

// Set overwrites the byte under the iterator.
func (it ReverseIterator) Set(v byte) error {
	i, err := checkDeref(it.seq, it.gen, it.off)
	if err != nil {
		return err
	}
	it.seq.SetByteAt(i, v)
	return nil
}

// Next returns the iterator one step toward the head.
func (it ReverseIterator) Next() ReverseIterator {
	return it.Add(1)
}

// Prev returns the iterator one step toward the tail.
func (it ReverseIterator) Prev() ReverseIterator {
	return it.Add(-1)
}

// Add returns the iterator n steps toward the head.
func (it ReverseIterator) Add(n int) ReverseIterator {
	it.off -= n
	return it
}

// Sub returns the iterator n steps toward the tail.
func (it ReverseIterator) Sub(n int) ReverseIterator {
	it.off += n
	return it
}

// Inc moves one step toward the head in place.
func (it *ReverseIterator) Inc() {
	it.off--
}

// Dec moves one step toward the tail in place.
func (it *ReverseIterator) Dec() {
	it.off++
}

// Advance moves n steps toward the head in place.
func (it *ReverseIterator) Advance(n int) {
	it.off -= n
}

// PostInc steps toward the head and returns the previous value.
func (it *ReverseIterator) PostInc() ReverseIterator {
	old := *it
	it.off--
	return old
}

// PostDec steps toward the tail and returns the previous value.
func (it *ReverseIterator) PostDec() ReverseIterator {
	old := *it
	it.off++
	return old
}

// Distance returns the number of increments from it to to.
func (it ReverseIterator) Distance(to ReverseIterator) int {
	return it.off - to.off
}

// Compare orders reverse iterators by traversal order: an iterator closer to
// the tail compares less.
func (it ReverseIterator) Compare(other ReverseIterator) int {
	return compareOffsets(other.off, it.off)
}

// Equal reports whether both iterators name the same position of the same sequence.
func (it ReverseIterator) Equal(other ReverseIterator) bool {
	return it.seq == other.seq && it.off == other.off
}

// Less reports it < other in traversal order.
func (it ReverseIterator) Less(other ReverseIterator) bool { return it.off > other.off }

// LessEq reports it <= other in traversal order.
func (it ReverseIterator) LessEq(other ReverseIterator) bool { return it.off >= other.off }

// Greater reports it > other in traversal order.
func (it ReverseIterator) Greater(other ReverseIterator) bool { return it.off < other.off }

// GreaterEq reports it >= other in traversal order.
func (it ReverseIterator) GreaterEq(other ReverseIterator) bool { return it.off <= other.off }
