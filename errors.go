package bytestring

import (
	"github.com/dshills/bytestring/internal/alloc"
	"github.com/dshills/bytestring/internal/buffer"
	"github.com/dshills/bytestring/internal/iter"
	"github.com/dshills/bytestring/internal/scan"
)

// Errors returned by String operations.
var (
	// ErrOutOfRange indicates a position outside the valid range for the
	// operation. It is wrapped by *RangeError.
	ErrOutOfRange = buffer.ErrOutOfRange

	// ErrEmpty indicates Front or Back on an empty string.
	ErrEmpty = buffer.ErrEmpty

	// ErrInvalidIterator indicates an iterator that is detached, stale, or
	// belongs to another string.
	ErrInvalidIterator = iter.ErrInvalidIterator

	// ErrAllocation indicates the allocator could not provide a block. It is
	// never returned: String panics with an *AllocationError wrapping it.
	ErrAllocation = alloc.ErrAllocation
)

// Re-export error types.
type (
	// RangeError carries the operation, offending position and size.
	RangeError = buffer.RangeError

	// AllocationError is the panic value raised when a block cannot be
	// allocated.
	AllocationError = alloc.Error
)

// NPos is the largest representable position. Searches return it when there
// is no match. As a starting position it lies past every byte, so any search
// given NPos finds nothing.
const NPos = scan.NotFound

// NotFound is an alias of NPos for search results.
const NotFound = scan.NotFound
