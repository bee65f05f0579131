//go:build unix

package alloc

import (
	"sync"
	"unsafe"

	"golang.org/x/sys/unix"
)

// DefaultMmapThreshold is the smallest request served by an anonymous mapping.
const DefaultMmapThreshold = 256 * 1024

// Mmap serves large blocks from private anonymous memory mappings and smaller
// ones from a fallback allocator. Mapped blocks are unmapped on Free, so their
// memory returns to the OS immediately instead of waiting for a GC cycle.
type Mmap struct {
	threshold int
	fallback  Allocator

	mu     sync.Mutex
	mapped map[uintptr][]byte // base address -> full mapping
}

// NewMmap creates an mmap allocator. Requests of at least threshold bytes are
// mapped; a threshold <= 0 selects DefaultMmapThreshold.
func NewMmap(threshold int, fallback Allocator) *Mmap {
	if threshold <= 0 {
		threshold = DefaultMmapThreshold
	}
	if fallback == nil {
		fallback = Heap{}
	}
	return &Mmap{
		threshold: threshold,
		fallback:  fallback,
		mapped:    make(map[uintptr][]byte),
	}
}

// Allocate maps n bytes rounded up to the page size and returns the first n.
func (m *Mmap) Allocate(n int) ([]byte, error) {
	if n < m.threshold {
		return m.fallback.Allocate(n)
	}
	page := unix.Getpagesize()
	size := (n + page - 1) &^ (page - 1)
	region, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return nil, NewError("mmap", n, err)
	}

	m.mu.Lock()
	m.mapped[baseOf(region)] = region
	m.mu.Unlock()

	return region[:n], nil
}

// Free unmaps b if it came from a mapping, otherwise hands it to the fallback.
func (m *Mmap) Free(b []byte) {
	if cap(b) == 0 {
		return
	}
	base := baseOf(b)

	m.mu.Lock()
	region, ok := m.mapped[base]
	if ok {
		delete(m.mapped, base)
	}
	m.mu.Unlock()

	if !ok {
		m.fallback.Free(b)
		return
	}
	// Munmap only fails for invalid arguments, which a registered region cannot be.
	_ = unix.Munmap(region)
}

// Mapped reports the number of live mappings.
func (m *Mmap) Mapped() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.mapped)
}

func baseOf(b []byte) uintptr {
	return uintptr(unsafe.Pointer(unsafe.SliceData(b[:cap(b)])))
}
