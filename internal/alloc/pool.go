package alloc

import (
	"math/bits"
	"sync"
)

// Size classes served by the pool. Larger requests bypass it.
const (
	MinPooledSize = 16
	MaxPooledSize = 64 * 1024
)

// Pool recycles blocks in power-of-two size classes using sync.Pool.
//
// A pooled block keeps its class capacity, so Allocate returns b[:n] with
// cap(b) equal to the class size. Free only recycles blocks whose capacity is
// an exact class size; anything else is left to the garbage collector.
type Pool struct {
	classes  []sync.Pool
	fallback Allocator
}

// NewPool creates a size-class pool. Requests above MaxPooledSize go to fallback,
// or to the heap when fallback is nil.
func NewPool(fallback Allocator) *Pool {
	if fallback == nil {
		fallback = Heap{}
	}
	n := classIndex(MaxPooledSize) + 1
	p := &Pool{
		classes:  make([]sync.Pool, n),
		fallback: fallback,
	}
	for i := range p.classes {
		size := MinPooledSize << i
		p.classes[i].New = func() any {
			b := make([]byte, size)
			return &b
		}
	}
	return p
}

// classIndex returns the class serving n bytes. n must be in (0, MaxPooledSize].
func classIndex(n int) int {
	if n <= MinPooledSize {
		return 0
	}
	return bits.Len(uint(n-1)) - bits.Len(uint(MinPooledSize-1))
}

// Allocate returns a block of n bytes, drawn from the matching size class.
func (p *Pool) Allocate(n int) ([]byte, error) {
	if n <= 0 || n > MaxPooledSize {
		return p.fallback.Allocate(n)
	}
	bp := p.classes[classIndex(n)].Get().(*[]byte)
	return (*bp)[:n], nil
}

// Free returns b to its size class.
func (p *Pool) Free(b []byte) {
	c := cap(b)
	if c == 0 {
		return
	}
	if c > MaxPooledSize || c < MinPooledSize || c&(c-1) != 0 {
		p.fallback.Free(b)
		return
	}
	b = b[:c]
	p.classes[classIndex(c)].Put(&b)
}
