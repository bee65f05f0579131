package bytestring

import (
	"bytes"

	"github.com/dshills/bytestring/internal/buffer"
	"github.com/dshills/bytestring/internal/scan"
)

// String is a growable, contiguous sequence of bytes with explicit capacity
// management.
//
// The zero value is an empty string ready to use. A String must not be copied
// after first use; use Clone for an independent copy or Take to move the
// content. A String is not safe for concurrent use.
//
// Allocation failure is fatal: methods that need a new block panic with an
// *AllocationError and leave the content unchanged.
type String struct {
	buf *buffer.Buffer
}

// New creates an empty string.
func New(opts ...Option) *String {
	s := &String{buf: buffer.New(nil)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FromString creates a string holding a copy of str.
func FromString(str string, opts ...Option) *String {
	s := New(opts...)
	s.AppendString(str)
	return s
}

// FromBytes creates a string holding a copy of p.
func FromBytes(p []byte, opts ...Option) *String {
	s := New(opts...)
	s.Append(p)
	return s
}

// Repeat creates a string of n copies of c.
func Repeat(n int, c byte, opts ...Option) *String {
	s := New(opts...)
	s.AppendRepeat(n, c)
	return s
}

// SubstringOf creates a string from up to n bytes of other starting at pos.
// pos == other.Len() yields an empty string; pos > other.Len() is an error.
func SubstringOf(other *String, pos, n int, opts ...Option) (*String, error) {
	w, err := scan.Window("substr", other.Bytes(), pos, n)
	if err != nil {
		return nil, err
	}
	return FromBytes(w, opts...), nil
}

func (s *String) b() *buffer.Buffer {
	if s.buf == nil {
		s.buf = buffer.New(nil)
	}
	return s.buf
}

// Read Operations

// Len returns the number of bytes.
func (s *String) Len() int {
	return s.b().Len()
}

// Cap returns the number of bytes the current block can hold.
func (s *String) Cap() int {
	return s.b().Cap()
}

// IsEmpty returns true if the string holds no bytes.
func (s *String) IsEmpty() bool {
	return s.b().IsEmpty()
}

// Bytes returns the content. The slice aliases the string and is valid until
// the next mutation.
func (s *String) Bytes() []byte {
	return s.b().Bytes()
}

// String returns the content as a Go string.
func (s *String) String() string {
	return string(s.b().Bytes())
}

// CStr returns the content followed by a zero byte, growing the block by one
// byte when it is full. Len is unchanged.
func (s *String) CStr() []byte {
	return s.b().Terminated()
}

// Copy copies up to len(dst) bytes starting at pos into dst and returns the
// number copied. pos == Len() copies nothing.
func (s *String) Copy(dst []byte, pos int) (int, error) {
	return s.b().CopyOut(dst, pos)
}

// At returns the byte at i.
func (s *String) At(i int) (byte, error) {
	return s.b().At(i)
}

// Set overwrites the byte at i.
func (s *String) Set(i int, c byte) error {
	return s.b().Set(i, c)
}

// Front returns the first byte.
func (s *String) Front() (byte, error) {
	return s.b().Front()
}

// Back returns the last byte.
func (s *String) Back() (byte, error) {
	return s.b().Back()
}

// Allocator returns the allocator the string draws blocks from.
func (s *String) Allocator() Allocator {
	return s.b().Allocator()
}

// Capacity Operations

// Reserve ensures room for at least n bytes. The block grows to exactly n;
// Reserve never shrinks.
func (s *String) Reserve(n int) {
	s.b().GrowTo(n)
}

// ShrinkToFit reduces the capacity to the length.
func (s *String) ShrinkToFit() {
	s.b().ShrinkToFit()
}

// Clear drops every byte and releases the block.
func (s *String) Clear() {
	s.b().Release()
}

// Resize sets the length to n, padding with zero bytes or truncating.
func (s *String) Resize(n int) error {
	return s.b().Resize(n, 0)
}

// ResizeFill sets the length to n, padding with c or truncating.
func (s *String) ResizeFill(n int, c byte) error {
	return s.b().Resize(n, c)
}

// Append Operations

// Append adds p to the end. p may alias the string itself.
func (s *String) Append(p []byte) {
	s.b().Append(p)
}

// AppendString adds str to the end.
func (s *String) AppendString(str string) {
	s.b().Append([]byte(str))
}

// AppendByte adds c to the end.
func (s *String) AppendByte(c byte) {
	s.b().PushBack(c)
}

// AppendRepeat adds n copies of c to the end.
func (s *String) AppendRepeat(n int, c byte) {
	s.b().AppendRepeat(n, c)
}

// AppendSub adds up to n bytes of other starting at pos.
func (s *String) AppendSub(other *String, pos, n int) error {
	w, err := scan.Window("append", other.Bytes(), pos, n)
	if err != nil {
		return err
	}
	s.b().Append(w)
	return nil
}

// PushBack adds c to the end, doubling the capacity when it is full.
func (s *String) PushBack(c byte) {
	s.b().PushBack(c)
}

// PopBack removes the last byte. It does nothing on an empty string.
func (s *String) PopBack() {
	s.b().PopBack()
}

// Write appends p. It always succeeds.
func (s *String) Write(p []byte) (int, error) {
	s.b().Append(p)
	return len(p), nil
}

// WriteString appends str. It always succeeds.
func (s *String) WriteString(str string) (int, error) {
	s.AppendString(str)
	return len(str), nil
}

// WriteByte appends c. It always succeeds.
func (s *String) WriteByte(c byte) error {
	s.b().PushBack(c)
	return nil
}

// Positional Edits

// Insert places p before pos. pos == Len() appends.
func (s *String) Insert(pos int, p []byte) error {
	return s.b().Insert(pos, p)
}

// InsertString places str before pos.
func (s *String) InsertString(pos int, str string) error {
	return s.b().Insert(pos, []byte(str))
}

// InsertRepeat places n copies of c before pos.
func (s *String) InsertRepeat(pos, n int, c byte) error {
	return s.b().InsertRepeat(pos, n, c)
}

// Erase removes up to n bytes starting at pos. pos must index a byte.
func (s *String) Erase(pos, n int) error {
	return s.b().Erase(pos, n)
}

// Replace substitutes up to n bytes at pos with p. pos must index a byte.
func (s *String) Replace(pos, n int, p []byte) error {
	return s.b().Replace(pos, n, p)
}

// ReplaceString substitutes up to n bytes at pos with str.
func (s *String) ReplaceString(pos, n int, str string) error {
	return s.b().Replace(pos, n, []byte(str))
}

// ReplaceRepeat substitutes up to n bytes at pos with count copies of c.
func (s *String) ReplaceRepeat(pos, n, count int, c byte) error {
	return s.b().ReplaceRepeat(pos, n, count, c)
}

// Whole-value Operations

// Assign replaces the content with p, reusing the block when it fits.
func (s *String) Assign(p []byte) {
	s.b().Assign(p)
}

// AssignString replaces the content with str.
func (s *String) AssignString(str string) {
	s.b().Assign([]byte(str))
}

// CopyFrom replaces the content with a copy of src's.
func (s *String) CopyFrom(src *String) {
	s.b().CopyFrom(src.b())
}

// MoveFrom releases s's block and takes over src's, leaving src empty.
func (s *String) MoveFrom(src *String) {
	s.b().MoveFrom(src.b())
}

// Clone returns an independent copy whose capacity equals its length.
func (s *String) Clone() *String {
	return &String{buf: s.b().Clone()}
}

// Take moves the content into a new String and leaves s empty.
func (s *String) Take() *String {
	return &String{buf: s.b().Take()}
}

// Swap exchanges the contents of s and other.
func (s *String) Swap(other *String) {
	s.b().Swap(other.b())
}

// Substr returns a copy of up to n bytes starting at pos, drawn from the
// same allocator. pos == Len() yields an empty string.
func (s *String) Substr(pos, n int) (*String, error) {
	return SubstringOf(s, pos, n, WithAllocator(s.b().Allocator()))
}

// Concat returns a new string holding the parts in order. The result draws
// from the first part's allocator, so a budgeted or pooled string stays on
// its allocator when joined.
func Concat(parts ...*String) *String {
	var n int
	for _, p := range parts {
		n += p.Len()
	}
	var opts []Option
	if len(parts) > 0 {
		opts = append(opts, WithAllocator(parts[0].Allocator()))
	}
	s := New(append(opts, WithCapacity(n))...)
	for _, p := range parts {
		s.Append(p.Bytes())
	}
	return s
}

// Equal reports whether a and b hold the same bytes.
func Equal(a, b *String) bool {
	return bytes.Equal(a.Bytes(), b.Bytes())
}
