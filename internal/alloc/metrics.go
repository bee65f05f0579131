package alloc

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Instrumented wraps an allocator with prometheus metrics.
type Instrumented struct {
	next Allocator

	allocations prometheus.Counter
	frees       prometheus.Counter
	failures    prometheus.Counter
	allocated   prometheus.Counter
	inUse       prometheus.Gauge
}

// NewInstrumented wraps next and registers its metrics on reg under namespace.
// A nil reg skips registration, which is useful when metrics are read directly.
func NewInstrumented(next Allocator, namespace string, reg prometheus.Registerer) (*Instrumented, error) {
	if next == nil {
		next = Heap{}
	}
	const subsystem = "allocator"
	in := &Instrumented{
		next: next,
		allocations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "allocations_total",
			Help:      "Number of blocks handed out.",
		}),
		frees: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "frees_total",
			Help:      "Number of blocks returned.",
		}),
		failures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "allocation_failures_total",
			Help:      "Number of allocation requests that failed.",
		}),
		allocated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "allocated_bytes_total",
			Help:      "Bytes handed out over the allocator's lifetime.",
		}),
		inUse: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "in_use_bytes",
			Help:      "Bytes currently held by live buffers.",
		}),
	}

	if reg != nil {
		for _, c := range in.collectors() {
			if err := reg.Register(c); err != nil {
				return nil, err
			}
		}
	}
	return in, nil
}

func (in *Instrumented) collectors() []prometheus.Collector {
	return []prometheus.Collector{in.allocations, in.frees, in.failures, in.allocated, in.inUse}
}

// Allocate delegates and records the outcome.
func (in *Instrumented) Allocate(n int) ([]byte, error) {
	b, err := in.next.Allocate(n)
	if err != nil {
		in.failures.Inc()
		return nil, err
	}
	if len(b) > 0 {
		in.allocations.Inc()
		in.allocated.Add(float64(len(b)))
		in.inUse.Add(float64(len(b)))
	}
	return b, nil
}

// Free records the release and delegates.
func (in *Instrumented) Free(b []byte) {
	if len(b) > 0 {
		in.frees.Inc()
		in.inUse.Sub(float64(len(b)))
	}
	in.next.Free(b)
}
