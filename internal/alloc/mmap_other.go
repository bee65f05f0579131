//go:build !unix

package alloc

// DefaultMmapThreshold is the smallest request that would be mapped on unix.
const DefaultMmapThreshold = 256 * 1024

// Mmap falls back to its fallback allocator on platforms without mmap.
type Mmap struct {
	fallback Allocator
}

// NewMmap returns an allocator that delegates every request to fallback.
func NewMmap(_ int, fallback Allocator) *Mmap {
	if fallback == nil {
		fallback = Heap{}
	}
	return &Mmap{fallback: fallback}
}

// Allocate delegates to the fallback allocator.
func (m *Mmap) Allocate(n int) ([]byte, error) {
	return m.fallback.Allocate(n)
}

// Free delegates to the fallback allocator.
func (m *Mmap) Free(b []byte) {
	m.fallback.Free(b)
}

// Mapped always reports zero.
func (m *Mmap) Mapped() int {
	return 0
}
