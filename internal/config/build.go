package config

import (
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/pamburus/slogx"
	"github.com/pamburus/slogx/slogjson"
	"github.com/pamburus/slogx/slogtext"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/dshills/bytestring/internal/alloc"
)

// Runtime is the allocator chain built from a Config, together with the
// handles for the settings that may change while strings are using it.
type Runtime struct {
	// Allocator is shared by every string built from this runtime.
	Allocator alloc.Allocator
	// Logger receives trace records. It is nil when tracing is off.
	Logger *slogx.Logger

	mu    sync.RWMutex
	cfg   Config
	limit *alloc.Limit
	level *slog.LevelVar
}

// Build validates c and assembles its allocator chain. Trace records go to
// logOut when logging is enabled; metrics are registered on reg when enabled.
func (c *Config) Build(logOut io.Writer, reg prometheus.Registerer) (*Runtime, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	level, _ := c.Logging.level()
	rt := &Runtime{cfg: *c, level: new(slog.LevelVar)}
	rt.level.Set(level)

	if c.Logging.Enabled && logOut != nil {
		logger, err := c.newLogger(logOut, rt.level)
		if err != nil {
			return nil, err
		}
		rt.Logger = logger
	}

	a, limit, err := c.newAllocator(reg, rt.Logger)
	if err != nil {
		return nil, err
	}
	rt.Allocator = a
	rt.limit = limit
	return rt, nil
}

// Config returns a copy of the settings currently in effect. It is safe to
// call while a Watcher applies reloads.
func (r *Runtime) Config() Config {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.cfg
}

// Apply brings the live settings in line with next: allocator.maxBytes and
// logging.level change in place. It returns the names of changed settings
// that only take effect on a new Runtime. A budget can be adjusted only if
// the runtime was built with one.
func (r *Runtime) Apply(next *Config) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	var rebuild []string
	if level, err := next.Logging.level(); err == nil {
		r.level.Set(level)
		r.cfg.Logging.Level = next.Logging.Level
	}

	switch {
	case next.Allocator.MaxBytes == r.cfg.Allocator.MaxBytes:
	case r.limit != nil && next.Allocator.MaxBytes > 0:
		r.limit.SetMax(next.Allocator.MaxBytes)
		r.cfg.Allocator.MaxBytes = next.Allocator.MaxBytes
	default:
		rebuild = append(rebuild, "allocator.maxBytes")
	}

	if next.Allocator.Kind != r.cfg.Allocator.Kind {
		rebuild = append(rebuild, "allocator.kind")
	}
	if next.Allocator.MmapThreshold != r.cfg.Allocator.MmapThreshold {
		rebuild = append(rebuild, "allocator.mmapThreshold")
	}
	if next.Logging.Enabled != r.cfg.Logging.Enabled {
		rebuild = append(rebuild, "logging.enabled")
	}
	if next.Logging.Format != r.cfg.Logging.Format || next.Logging.Color != r.cfg.Logging.Color {
		rebuild = append(rebuild, "logging.format")
	}
	if next.Metrics != r.cfg.Metrics {
		rebuild = append(rebuild, "metrics")
	}
	return rebuild
}

// NewLogger builds a logger writing to w in the configured format and level.
func (c *Config) NewLogger(w io.Writer) (*slogx.Logger, error) {
	level, err := c.Logging.level()
	if err != nil {
		return nil, &ValidationError{Setting: "logging.level", Value: c.Logging.Level, Reason: err.Error()}
	}
	return c.newLogger(w, level)
}

func (c *Config) newLogger(w io.Writer, level slog.Leveler) (*slogx.Logger, error) {
	var handler slog.Handler
	switch c.Logging.Format {
	case FormatJSON:
		handler = slogjson.NewHandler(w, slogjson.WithLevel(level))
	case FormatText, "":
		color := slogtext.ColorNever
		if c.Logging.Color {
			color = slogtext.ColorAlways
		}
		handler = slogtext.NewHandler(w,
			slogtext.WithLevel(level),
			slogtext.WithColor(color),
		)
	default:
		return nil, &ValidationError{Setting: "logging.format", Value: c.Logging.Format, Reason: "must be text or json"}
	}
	return slogx.New(handler), nil
}

// NewAllocator assembles the allocator chain described by the configuration:
// the base kind, then the byte budget, then metrics on reg, then tracing to
// logger. Layers that are not configured are left out. A nil logger disables
// tracing even when logging is enabled.
func (c *Config) NewAllocator(reg prometheus.Registerer, logger *slogx.Logger) (alloc.Allocator, error) {
	a, _, err := c.newAllocator(reg, logger)
	return a, err
}

func (c *Config) newAllocator(reg prometheus.Registerer, logger *slogx.Logger) (alloc.Allocator, *alloc.Limit, error) {
	var a alloc.Allocator
	switch c.Allocator.Kind {
	case KindHeap, "":
		a = alloc.Heap{}
	case KindPool:
		a = alloc.NewPool(alloc.Heap{})
	case KindMmap:
		a = alloc.NewMmap(c.Allocator.MmapThreshold, alloc.NewPool(alloc.Heap{}))
	default:
		return nil, nil, &ValidationError{Setting: "allocator.kind", Value: c.Allocator.Kind, Reason: "must be heap, pool or mmap"}
	}

	var limit *alloc.Limit
	if c.Allocator.MaxBytes > 0 {
		limit = alloc.NewLimit(a, c.Allocator.MaxBytes)
		a = limit
	}

	if c.Metrics.Enabled {
		in, err := alloc.NewInstrumented(a, c.Metrics.Namespace, reg)
		if err != nil {
			return nil, nil, fmt.Errorf("registering allocator metrics: %w", err)
		}
		a = in
	}

	if c.Logging.Enabled && logger != nil {
		a = alloc.NewTraced(a, logger)
	}
	return a, limit, nil
}
