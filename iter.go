package bytestring

import (
	"github.com/dshills/bytestring/internal/iter"
)

// Re-export iterator types.
type (
	// Iterator is a forward random-access position in a String.
	Iterator = iter.Iterator

	// ReverseIterator walks a String from the last byte to the first.
	ReverseIterator = iter.ReverseIterator
)

// Begin returns an iterator at the first byte.
func (s *String) Begin() Iterator {
	return iter.New(s.b(), 0)
}

// End returns an iterator one past the last byte.
func (s *String) End() Iterator {
	return iter.New(s.b(), s.Len())
}

// RBegin returns a reverse iterator at the last byte.
func (s *String) RBegin() ReverseIterator {
	return iter.NewReverse(s.b(), s.Len()-1)
}

// REnd returns a reverse iterator one before the first byte.
func (s *String) REnd() ReverseIterator {
	return iter.NewReverse(s.b(), -1)
}

// IteratorAt returns an iterator at pos.
func (s *String) IteratorAt(pos int) Iterator {
	return iter.New(s.b(), pos)
}

// position translates it into an index in [0, Len()]. It fails for an
// iterator from another string, one made stale by an edit, or one outside
// the string.
func (s *String) position(it Iterator) (int, bool) {
	buf := s.b()
	if !it.Attached(buf) {
		return 0, false
	}
	off := it.Offset()
	if off < 0 || off > buf.Len() {
		return 0, false
	}
	return off, true
}

// span translates [first, last) into a start and length.
func (s *String) span(first, last Iterator) (int, int, bool) {
	from, ok := s.position(first)
	if !ok {
		return 0, 0, false
	}
	to, ok := s.position(last)
	if !ok || from > to {
		return 0, 0, false
	}
	return from, to - from, true
}

// Iterator Edits
//
// The iterator forms return an iterator valid after the edit. An invalid
// argument leaves the string untouched and yields End().

// InsertAt places p before it and returns an iterator at the first inserted
// byte.
func (s *String) InsertAt(it Iterator, p []byte) Iterator {
	pos, ok := s.position(it)
	if !ok {
		return s.End()
	}
	if err := s.b().Insert(pos, p); err != nil {
		return s.End()
	}
	return s.IteratorAt(pos)
}

// InsertByteAt places c before it.
func (s *String) InsertByteAt(it Iterator, c byte) Iterator {
	return s.InsertAt(it, []byte{c})
}

// InsertRepeatAt places n copies of c before it.
func (s *String) InsertRepeatAt(it Iterator, n int, c byte) Iterator {
	pos, ok := s.position(it)
	if !ok {
		return s.End()
	}
	if err := s.b().InsertRepeat(pos, n, c); err != nil {
		return s.End()
	}
	return s.IteratorAt(pos)
}

// EraseAt removes the byte under it and returns an iterator at the byte that
// followed it.
func (s *String) EraseAt(it Iterator) Iterator {
	pos, ok := s.position(it)
	if !ok || pos == s.Len() {
		return s.End()
	}
	if err := s.b().Erase(pos, 1); err != nil {
		return s.End()
	}
	return s.IteratorAt(pos)
}

// EraseRange removes [first, last) and returns an iterator at the byte that
// followed the range.
func (s *String) EraseRange(first, last Iterator) Iterator {
	pos, n, ok := s.span(first, last)
	if !ok {
		return s.End()
	}
	if n == 0 {
		return s.IteratorAt(pos)
	}
	if err := s.b().Erase(pos, n); err != nil {
		return s.End()
	}
	return s.IteratorAt(pos)
}

// ReplaceRange substitutes [first, last) with p. An empty range inserts p.
func (s *String) ReplaceRange(first, last Iterator, p []byte) error {
	pos, n, ok := s.span(first, last)
	if !ok {
		return ErrInvalidIterator
	}
	if n == 0 {
		return s.b().Insert(pos, p)
	}
	return s.b().Replace(pos, n, p)
}

// FromRange creates a string from the bytes in [first, last). Both
// iterators must come from the same string and still be valid.
func FromRange(first, last Iterator, opts ...Option) (*String, error) {
	seq := first.Sequence()
	if seq == nil || !first.Attached(seq) || !last.Attached(seq) {
		return nil, ErrInvalidIterator
	}
	from, to := first.Offset(), last.Offset()
	if from < 0 || from > to || to > seq.Len() {
		return nil, ErrInvalidIterator
	}

	s := New(opts...)
	s.Reserve(to - from)
	for it := first; it.Less(last); it.Inc() {
		c, err := it.Value()
		if err != nil {
			return nil, err
		}
		s.PushBack(c)
	}
	return s, nil
}
