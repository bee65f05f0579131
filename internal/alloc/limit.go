package alloc

import (
	"fmt"
	"sync/atomic"
)

// Limit caps the number of bytes outstanding from an underlying allocator.
// Requests that would exceed the budget fail with ErrAllocation.
type Limit struct {
	next  Allocator
	max   atomic.Int64
	inUse atomic.Int64
}

// NewLimit wraps next with a budget of max bytes.
func NewLimit(next Allocator, max int64) *Limit {
	if next == nil {
		next = Heap{}
	}
	l := &Limit{next: next}
	l.max.Store(max)
	return l
}

// Allocate reserves n bytes of budget before delegating.
func (l *Limit) Allocate(n int) ([]byte, error) {
	if n <= 0 {
		return l.next.Allocate(n)
	}
	budget := l.max.Load()
	if int64(n) > budget {
		return nil, NewError("allocate", n, fmt.Errorf("request exceeds budget of %d bytes", budget))
	}
	if used := l.inUse.Add(int64(n)); used > budget || used < 0 {
		l.inUse.Add(-int64(n))
		return nil, NewError("allocate", n, fmt.Errorf("budget of %d bytes exhausted (%d in use)", budget, used-int64(n)))
	}
	b, err := l.next.Allocate(n)
	if err != nil {
		l.inUse.Add(-int64(n))
		return nil, err
	}
	return b, nil
}

// Free releases len(b) bytes of budget.
func (l *Limit) Free(b []byte) {
	if len(b) == 0 {
		return
	}
	l.inUse.Add(-int64(len(b)))
	l.next.Free(b)
}

// InUse reports the bytes currently outstanding.
func (l *Limit) InUse() int64 {
	return l.inUse.Load()
}

// Max reports the configured budget.
func (l *Limit) Max() int64 {
	return l.max.Load()
}

// SetMax changes the budget. Blocks already handed out are not reclaimed when
// the budget drops below InUse; later requests fail until enough are freed.
func (l *Limit) SetMax(max int64) {
	l.max.Store(max)
}
