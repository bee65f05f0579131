package buffer

import (
	"errors"
	"math"
	"slices"

	"github.com/dshills/bytestring/internal/alloc"
)

var errSizeOverflow = errors.New("size overflows int")

// Mutations pick one of two strategies. When the result fits the current
// capacity the block is reused in place; otherwise a block of exactly the new
// size is allocated, the untouched prefix, the new bytes and the untouched
// suffix are constructed into it, and the old block is released. Every bound
// is validated before a single byte is destroyed.

// Append extends the buffer with p. p may alias the buffer.
func (b *Buffer) Append(p []byte) {
	if len(p) == 0 {
		return
	}
	newSize := grownSize(b.size, len(p))
	if newSize <= len(b.data) {
		// copy is a memmove, so a p overlapping the tail reads correctly.
		b.size = constructRange(b.data, b.size, p)
		return
	}

	block := b.allocate(newSize)
	at := constructRange(block, 0, b.data[:b.size])
	constructRange(block, at, p)
	b.adopt(block, newSize)
}

// AppendRepeat extends the buffer with n copies of v.
func (b *Buffer) AppendRepeat(n int, v byte) {
	if n <= 0 {
		return
	}
	newSize := grownSize(b.size, n)
	b.GrowTo(newSize)
	b.size = constructFill(b.data, b.size, n, v)
}

// grownSize returns size+n. A sum past math.MaxInt can never be allocated, so
// it fails the way an allocator would, before anything is touched.
func grownSize(size, n int) int {
	if n > math.MaxInt-size {
		panic(alloc.NewError("allocate", n, errSizeOverflow))
	}
	return size + n
}

// PushBack appends one byte, doubling the capacity when it is full.
func (b *Buffer) PushBack(v byte) {
	if b.size == len(b.data) {
		b.growForPush()
	}
	construct(b.data, b.size, v)
	b.size++
}

// PopBack drops the last byte. It is a no-op on an empty buffer.
func (b *Buffer) PopBack() {
	if b.size == 0 {
		return
	}
	b.size--
	destroyRange(b.data, b.size, b.size+1)
}

// Insert places p before position pos. pos == Len() appends.
func (b *Buffer) Insert(pos int, p []byte) error {
	if pos < 0 || pos > b.size {
		return rangeError("insert", pos, b.size)
	}
	if len(p) == 0 {
		return nil
	}
	newSize := grownSize(b.size, len(p))

	if newSize <= len(b.data) {
		// Rebuilding in place would overwrite source bytes that are not yet
		// copied, so work from a snapshot of the old content.
		old := slices.Clone(b.data[:b.size])
		if overlaps(b.data, p) {
			p = slices.Clone(p)
		}
		destroyRange(b.data, 0, b.size)
		at := constructRange(b.data, 0, old[:pos])
		at = constructRange(b.data, at, p)
		constructRange(b.data, at, old[pos:])
		b.size = newSize
		b.gen++
		return nil
	}

	block := b.allocate(newSize)
	at := constructRange(block, 0, b.data[:pos])
	at = constructRange(block, at, p)
	constructRange(block, at, b.data[pos:b.size])
	b.adopt(block, newSize)
	return nil
}

// InsertRepeat places n copies of v before position pos.
func (b *Buffer) InsertRepeat(pos, n int, v byte) error {
	if pos < 0 || pos > b.size {
		return rangeError("insert", pos, b.size)
	}
	if n <= 0 {
		return nil
	}
	newSize := grownSize(b.size, n)

	if newSize <= len(b.data) {
		constructRange(b.data, pos+n, b.data[pos:b.size])
		constructFill(b.data, pos, n, v)
		b.size = newSize
		b.gen++
		return nil
	}

	block := b.allocate(newSize)
	at := constructRange(block, 0, b.data[:pos])
	at = constructFill(block, at, n, v)
	constructRange(block, at, b.data[pos:b.size])
	b.adopt(block, newSize)
	return nil
}

// Erase removes up to n bytes starting at pos. n is clamped to the bytes
// available. Erase never reallocates.
func (b *Buffer) Erase(pos, n int) error {
	if pos < 0 || pos >= b.size {
		return rangeError("erase", pos, b.size)
	}
	n = clampLen(n, b.size-pos)
	if n == 0 {
		return nil
	}
	copy(b.data[pos:], b.data[pos+n:b.size])
	destroyRange(b.data, b.size-n, b.size)
	b.size -= n
	b.gen++
	return nil
}

// Replace substitutes up to n bytes at pos with p. n is clamped to the bytes
// available. Replace always builds into a fresh block of max(newSize, Cap()).
func (b *Buffer) Replace(pos, n int, p []byte) error {
	if pos < 0 || pos >= b.size {
		return rangeError("replace", pos, b.size)
	}
	n = clampLen(n, b.size-pos)
	newSize := grownSize(b.size-n, len(p))

	block := b.allocate(max(newSize, len(b.data)))
	at := constructRange(block, 0, b.data[:pos])
	at = constructRange(block, at, p)
	constructRange(block, at, b.data[pos+n:b.size])
	b.adopt(block, newSize)
	return nil
}

// ReplaceRepeat substitutes up to n bytes at pos with count copies of v.
func (b *Buffer) ReplaceRepeat(pos, n, count int, v byte) error {
	if pos < 0 || pos >= b.size {
		return rangeError("replace", pos, b.size)
	}
	n = clampLen(n, b.size-pos)
	count = max(count, 0)
	newSize := grownSize(b.size-n, count)

	block := b.allocate(max(newSize, len(b.data)))
	at := constructRange(block, 0, b.data[:pos])
	at = constructFill(block, at, count, v)
	constructRange(block, at, b.data[pos+n:b.size])
	b.adopt(block, newSize)
	return nil
}

// Assign replaces the whole content with p. p may alias the buffer.
func (b *Buffer) Assign(p []byte) {
	if len(p) > len(b.data) {
		block := b.allocate(len(p))
		constructRange(block, 0, p)
		b.adopt(block, len(p))
		return
	}
	if overlaps(b.data, p) {
		p = slices.Clone(p)
	}
	if b.data != nil {
		destroyRange(b.data, 0, b.size)
		constructRange(b.data, 0, p)
	}
	b.size = len(p)
	b.gen++
}

// CopyFrom replaces the content with a copy of src's. Copying a buffer onto
// itself is a no-op.
func (b *Buffer) CopyFrom(src *Buffer) {
	if src == b {
		return
	}
	b.Assign(src.Bytes())
}

// clampLen limits a length argument to [0, avail].
func clampLen(n, avail int) int {
	if n < 0 {
		return 0
	}
	return min(n, avail)
}
