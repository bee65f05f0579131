package alloc

import (
	"errors"
	"fmt"
)

// ErrAllocation indicates an allocator could not provide the requested block.
var ErrAllocation = errors.New("allocation failed")

// Allocator hands out raw byte blocks for string buffers.
//
// Allocate returns a block with len == n. The contents are unspecified; callers
// construct every byte they intend to read. Allocate(0) returns a nil block.
// Free returns a block previously obtained from the same allocator.
//
// Implementations must be safe for concurrent use: many single-owner strings
// may share one allocator.
type Allocator interface {
	Allocate(n int) ([]byte, error)
	Free(b []byte)
}

// Error describes a failed allocation.
type Error struct {
	Op   string
	Size int
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %d bytes: %v", e.Op, e.Size, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError wraps err so that errors.Is(result, ErrAllocation) holds.
func NewError(op string, size int, err error) *Error {
	if err == nil {
		err = ErrAllocation
	} else if !errors.Is(err, ErrAllocation) {
		err = fmt.Errorf("%w: %w", ErrAllocation, err)
	}
	return &Error{Op: op, Size: size, Err: err}
}

// Heap allocates blocks from the Go heap.
type Heap struct{}

// Allocate returns a fresh zeroed block of n bytes. A size the runtime refuses
// to allocate is reported as an *Error instead of a runtime panic.
func (Heap) Allocate(n int) (block []byte, err error) {
	if n < 0 {
		return nil, NewError("allocate", n, errors.New("negative size"))
	}
	if n == 0 {
		return nil, nil
	}
	defer func() {
		if r := recover(); r != nil {
			block, err = nil, NewError("allocate", n, fmt.Errorf("%v", r))
		}
	}()
	return make([]byte, n), nil
}

// Free is a no-op; the garbage collector reclaims heap blocks.
func (Heap) Free([]byte) {}

// Default is the allocator used when none is configured.
var Default Allocator = Heap{}
