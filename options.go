package bytestring

import (
	"log/slog"

	"github.com/pamburus/slogx"

	"github.com/dshills/bytestring/internal/alloc"
)

// Re-export allocator types.
type (
	// Allocator provides the blocks behind a String.
	Allocator = alloc.Allocator

	// HeapAllocator takes blocks from the Go heap.
	HeapAllocator = alloc.Heap

	// PoolAllocator recycles blocks through power-of-two size classes.
	PoolAllocator = alloc.Pool

	// LimitAllocator bounds the bytes outstanding from another allocator.
	LimitAllocator = alloc.Limit

	// MmapAllocator serves large blocks from anonymous memory mappings.
	MmapAllocator = alloc.Mmap
)

// NewPoolAllocator returns a size-class pool backed by the heap.
func NewPoolAllocator() *PoolAllocator {
	return alloc.NewPool(nil)
}

// NewLimitAllocator caps next at max outstanding bytes.
func NewLimitAllocator(next Allocator, max int64) *LimitAllocator {
	return alloc.NewLimit(next, max)
}

// NewMmapAllocator maps blocks of at least threshold bytes and serves the
// rest from fallback.
func NewMmapAllocator(threshold int, fallback Allocator) *MmapAllocator {
	return alloc.NewMmap(threshold, fallback)
}

// Option configures a String during creation.
type Option func(*String)

// WithAllocator sets the allocator blocks are drawn from.
func WithAllocator(a Allocator) Option {
	return func(s *String) {
		s.b().SetAllocator(a)
	}
}

// WithLogger traces allocator traffic at debug level to logger.
// Apply it after WithAllocator so the tracer wraps the chosen allocator.
func WithLogger(logger *slog.Logger) Option {
	return func(s *String) {
		if logger == nil {
			return
		}
		buf := s.b()
		buf.SetAllocator(alloc.NewTraced(buf.Allocator(), slogx.New(logger.Handler())))
	}
}

// WithCapacity reserves room for n bytes up front.
func WithCapacity(n int) Option {
	return func(s *String) {
		s.Reserve(n)
	}
}
