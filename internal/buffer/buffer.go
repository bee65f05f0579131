package buffer

import (
	"errors"

	"github.com/dshills/bytestring/internal/alloc"
)

// Buffer owns one contiguous block of bytes.
//
// len(data) is the capacity; data[:size] is live, data[size:] is unspecified.
// data is nil exactly when the capacity is zero. The generation moves forward
// whenever live bytes change address, which is how iterators detect that they
// went stale.
//
// A Buffer is not safe for concurrent use.
type Buffer struct {
	data  []byte
	size  int
	alloc alloc.Allocator
	gen   uint64
}

// New creates an empty buffer drawing blocks from a.
// A nil allocator selects alloc.Default.
func New(a alloc.Allocator) *Buffer {
	return &Buffer{alloc: a}
}

// Read Operations

// Len returns the number of live bytes.
func (b *Buffer) Len() int {
	return b.size
}

// Cap returns the number of allocated slots.
func (b *Buffer) Cap() int {
	return len(b.data)
}

// IsEmpty returns true if the buffer holds no live bytes.
func (b *Buffer) IsEmpty() bool {
	return b.size == 0
}

// Bytes returns the live bytes. The slice aliases the buffer and is valid
// until the next mutation; its capacity is clipped so appends cannot reach
// the spare slots.
func (b *Buffer) Bytes() []byte {
	if b.data == nil {
		return nil
	}
	return b.data[:b.size:b.size]
}

// Generation returns the current layout generation.
func (b *Buffer) Generation() uint64 {
	return b.gen
}

// ByteAt returns the byte at i without bounds checking against size.
func (b *Buffer) ByteAt(i int) byte {
	return b.data[i]
}

// SetByteAt overwrites the live byte at i without bounds checking against size.
func (b *Buffer) SetByteAt(i int, v byte) {
	b.data[i] = v
}

// At returns the byte at i.
func (b *Buffer) At(i int) (byte, error) {
	if i < 0 || i >= b.size {
		return 0, rangeError("at", i, b.size)
	}
	return b.data[i], nil
}

// Set overwrites the byte at i.
func (b *Buffer) Set(i int, v byte) error {
	if i < 0 || i >= b.size {
		return rangeError("set", i, b.size)
	}
	b.data[i] = v
	return nil
}

// Front returns the first byte.
func (b *Buffer) Front() (byte, error) {
	if b.size == 0 {
		return 0, ErrEmpty
	}
	return b.data[0], nil
}

// Back returns the last byte.
func (b *Buffer) Back() (byte, error) {
	if b.size == 0 {
		return 0, ErrEmpty
	}
	return b.data[b.size-1], nil
}

// CopyOut copies up to len(dst) bytes starting at pos and returns the count.
func (b *Buffer) CopyOut(dst []byte, pos int) (int, error) {
	if pos < 0 || pos > b.size {
		return 0, rangeError("copy", pos, b.size)
	}
	return copy(dst, b.data[pos:b.size]), nil
}

// Allocator returns the allocator backing this buffer.
func (b *Buffer) Allocator() alloc.Allocator {
	if b.alloc == nil {
		return alloc.Default
	}
	return b.alloc
}

// SetAllocator switches the allocator. Live bytes move into a block from a
// so that every block is always returned to the allocator that produced it.
func (b *Buffer) SetAllocator(a alloc.Allocator) {
	if a == nil {
		a = alloc.Default
	}
	if b.data == nil {
		b.alloc = a
		return
	}
	block := mustAllocate(a, len(b.data))
	constructRange(block, 0, b.data[:b.size])
	b.adopt(block, b.size)
	b.alloc = a
}

// Block management

// mustAllocate asks a for n slots. Allocation failure is fatal: it panics with
// the *alloc.Error, before the caller has touched its current block.
func mustAllocate(a alloc.Allocator, n int) []byte {
	if n == 0 {
		return nil
	}
	block, err := a.Allocate(n)
	if err != nil {
		var aerr *alloc.Error
		if !errors.As(err, &aerr) {
			aerr = alloc.NewError("allocate", n, err)
		}
		panic(aerr)
	}
	return block[:n]
}

func (b *Buffer) allocate(n int) []byte {
	return mustAllocate(b.Allocator(), n)
}

// adopt releases the current block and takes ownership of block holding size
// live bytes.
func (b *Buffer) adopt(block []byte, size int) {
	if b.data != nil {
		destroyRange(b.data, 0, b.size)
		b.Allocator().Free(b.data)
	}
	b.data = block
	b.size = size
	b.gen++
}

// reallocate moves the live bytes into a fresh block of exactly n slots.
func (b *Buffer) reallocate(n int) {
	block := b.allocate(n)
	constructRange(block, 0, b.data[:b.size])
	b.adopt(block, b.size)
}

// Capacity Operations

// GrowTo ensures capacity for at least n bytes. The new block is exactly n
// slots. It never shrinks or truncates.
func (b *Buffer) GrowTo(n int) {
	if n <= len(b.data) {
		return
	}
	b.reallocate(n)
}

// growForPush doubles the capacity, starting from one slot.
func (b *Buffer) growForPush() {
	b.reallocate(max(2*len(b.data), 1))
}

// ShrinkToFit reallocates so that the capacity equals the size.
func (b *Buffer) ShrinkToFit() {
	if len(b.data) == b.size {
		return
	}
	if b.size == 0 {
		b.Release()
		return
	}
	b.reallocate(b.size)
}

// Release destroys every live byte, frees the block and resets to empty.
// Calling it on an empty buffer is a no-op.
func (b *Buffer) Release() {
	if b.data == nil {
		return
	}
	b.adopt(nil, 0)
}

// Resize sets the size to n, constructing fill bytes at the tail or destroying
// trailing bytes as needed.
func (b *Buffer) Resize(n int, fill byte) error {
	if n < 0 {
		return rangeError("resize", n, b.size)
	}
	switch {
	case n > b.size:
		b.GrowTo(n)
		for i := b.size; i < n; i++ {
			construct(b.data, i, fill)
		}
		b.size = n
	case n < b.size:
		destroyRange(b.data, n, b.size)
		b.size = n
		b.gen++
	}
	return nil
}

// Terminated guarantees a zero byte right after the live bytes, growing the
// capacity by exactly one when it is full. The result includes the zero byte
// and is valid until the next mutation.
func (b *Buffer) Terminated() []byte {
	if b.size == len(b.data) {
		b.reallocate(b.size + 1)
	}
	construct(b.data, b.size, 0)
	return b.data[:b.size+1 : b.size+1]
}

// Ownership

// Clone returns an independent buffer with the same content and allocator.
// The copy's capacity equals its size.
func (b *Buffer) Clone() *Buffer {
	c := &Buffer{alloc: b.alloc}
	if b.size == 0 {
		return c
	}
	block := c.allocate(b.size)
	constructRange(block, 0, b.data[:b.size])
	c.data = block
	c.size = b.size
	return c
}

// Take moves the block out into a new buffer and leaves b empty.
func (b *Buffer) Take() *Buffer {
	moved := &Buffer{
		data:  b.data,
		size:  b.size,
		alloc: b.alloc,
	}
	b.data = nil
	b.size = 0
	b.gen++
	return moved
}

// MoveFrom releases b's block and takes over src's. src is left empty.
// Moving a buffer into itself is a no-op.
func (b *Buffer) MoveFrom(src *Buffer) {
	if src == b {
		return
	}
	b.Release()
	b.data = src.data
	b.size = src.size
	b.alloc = src.alloc
	b.gen++
	src.data = nil
	src.size = 0
	src.gen++
}

// Swap exchanges blocks, sizes and allocators with other.
func (b *Buffer) Swap(other *Buffer) {
	if other == b {
		return
	}
	b.data, other.data = other.data, b.data
	b.size, other.size = other.size, b.size
	b.alloc, other.alloc = other.alloc, b.alloc
	b.gen++
	other.gen++
}
