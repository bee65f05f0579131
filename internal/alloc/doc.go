// Package alloc provides the block allocators behind string buffers.
//
// Allocators compose by wrapping:
//
//	var a alloc.Allocator = alloc.NewPool(nil)
//	a = alloc.NewLimit(a, 1<<20)           // fail past 1 MiB outstanding
//	a, _ = alloc.NewInstrumented(a, "app", prometheus.DefaultRegisterer)
//	a = alloc.NewTraced(a, logger)          // debug log of block traffic
//
// A failed allocation is reported as an *Error wrapping ErrAllocation.
// Buffers treat that as fatal and panic with it, the same way bytes.Buffer
// panics with bytes.ErrTooLarge.
package alloc
