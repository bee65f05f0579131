// Package buffer implements the owned byte block behind a string: capacity
// management, the construct/destroy discipline for live bytes, and the
// structural edits (append, insert, erase, replace) built on top of it.
//
// Growth is exact: a mutation that outgrows the block allocates precisely the
// size it needs. PushBack is the only path that doubles, so that byte-at-a-time
// appends stay amortized O(1).
//
// Allocation failure is fatal and surfaces as a panic carrying *alloc.Error.
// Position errors are returned as *RangeError values wrapping ErrOutOfRange,
// and are always detected before any byte is touched.
package buffer
