// Package bytestring provides String, a growable contiguous byte string with
// manual capacity control, in-place editing, iterators, search and
// comparison.
//
// # Capacity
//
// Edits that fit the current block reuse it. Edits that do not allocate a
// block of exactly the new length, so a string built with Append has no slack.
// PushBack is the exception: it doubles the capacity so that byte-at-a-time
// building stays amortized O(1). Reserve and ShrinkToFit adjust the capacity
// explicitly.
//
//	s := bytestring.FromString("hello")
//	s.Replace(1, 4, []byte("ippo"))      // "hippo"
//	i := s.FindString("po", 0)           // 3
//	sub, _ := s.Substr(1, 3)             // "ipp"
//
// # Errors
//
// Positions are validated before any byte changes. A bad position returns a
// *RangeError that wraps ErrOutOfRange. Lengths are clamped to what is
// available and never rejected. Allocation failure panics with an
// *AllocationError wrapping ErrAllocation.
//
// # Iterators
//
// Iterators record the string's layout generation. Any edit that moves bytes
// (insert, erase, replace, reallocation) makes older iterators stale, and
// dereferencing a stale iterator reports ErrInvalidIterator. Appends that fit
// the block and PopBack keep iterators valid.
//
//	for it := s.Begin(); !it.Equal(s.End()); it.Inc() {
//		c, _ := it.Value()
//		...
//	}
//
// # Allocators
//
// Blocks come from an Allocator: the Go heap by default, or a size-class pool,
// an mmap allocator for large blocks, a byte budget, prometheus metrics and
// slog tracing layered on top. LoadConfig and OptionsFromConfig build that
// chain from a TOML or YAML file.
package bytestring
