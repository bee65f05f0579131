package config

import (
	"log/slog"
	"strings"
)

// Allocator kinds.
const (
	KindHeap = "heap"
	KindPool = "pool"
	KindMmap = "mmap"
)

// Log formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config holds every tunable of the string runtime.
type Config struct {
	Allocator AllocatorConfig `toml:"allocator" yaml:"allocator"`
	Logging   LoggingConfig   `toml:"logging" yaml:"logging"`
	Metrics   MetricsConfig   `toml:"metrics" yaml:"metrics"`
}

// AllocatorConfig selects and bounds the block allocator.
type AllocatorConfig struct {
	// Kind is one of heap, pool or mmap.
	Kind string `toml:"kind" yaml:"kind"`
	// MaxBytes caps the bytes held at once. Zero means unlimited.
	MaxBytes int64 `toml:"maxBytes" yaml:"maxBytes"`
	// MmapThreshold is the smallest block served by a mapping (mmap kind only).
	MmapThreshold int `toml:"mmapThreshold" yaml:"mmapThreshold"`
}

// LoggingConfig configures allocator tracing.
type LoggingConfig struct {
	// Enabled wraps the allocator in a tracer.
	Enabled bool `toml:"enabled" yaml:"enabled"`
	// Level is debug, info, warn or error.
	Level string `toml:"level" yaml:"level"`
	// Format is text or json.
	Format string `toml:"format" yaml:"format"`
	// Color enables ANSI colors in text output.
	Color bool `toml:"color" yaml:"color"`
}

// MetricsConfig configures prometheus instrumentation.
type MetricsConfig struct {
	Enabled   bool   `toml:"enabled" yaml:"enabled"`
	Namespace string `toml:"namespace" yaml:"namespace"`
}

// Default returns the configuration used when nothing is specified.
func Default() *Config {
	return &Config{
		Allocator: AllocatorConfig{
			Kind: KindHeap,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: FormatText,
		},
		Metrics: MetricsConfig{
			Namespace: "bytestring",
		},
	}
}

// Validate checks every setting and returns the first problem found.
func (c *Config) Validate() error {
	switch c.Allocator.Kind {
	case KindHeap, KindPool, KindMmap:
	default:
		return &ValidationError{Setting: "allocator.kind", Value: c.Allocator.Kind, Reason: "must be heap, pool or mmap"}
	}
	if c.Allocator.MaxBytes < 0 {
		return &ValidationError{Setting: "allocator.maxBytes", Value: c.Allocator.MaxBytes, Reason: "must not be negative"}
	}
	if c.Allocator.MmapThreshold < 0 {
		return &ValidationError{Setting: "allocator.mmapThreshold", Value: c.Allocator.MmapThreshold, Reason: "must not be negative"}
	}
	if _, err := c.Logging.level(); err != nil {
		return &ValidationError{Setting: "logging.level", Value: c.Logging.Level, Reason: err.Error()}
	}
	switch c.Logging.Format {
	case FormatText, FormatJSON:
	default:
		return &ValidationError{Setting: "logging.format", Value: c.Logging.Format, Reason: "must be text or json"}
	}
	if c.Metrics.Enabled && c.Metrics.Namespace == "" {
		return &ValidationError{Setting: "metrics.namespace", Value: `""`, Reason: "required when metrics are enabled"}
	}
	return nil
}

func (l LoggingConfig) level() (slog.Level, error) {
	var level slog.Level
	err := level.UnmarshalText([]byte(strings.TrimSpace(l.Level)))
	return level, err
}
