package bytestring

import (
	"io"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/dshills/bytestring/internal/config"
)

// Config is the runtime configuration for allocators, tracing and metrics.
type Config = config.Config

// DefaultConfig returns the configuration used when nothing is specified.
func DefaultConfig() *Config {
	return config.Default()
}

// LoadConfig reads a TOML or YAML file, applies BYTESTRING_* environment
// overrides and validates the result.
func LoadConfig(path string) (*Config, error) {
	return config.Load(path)
}

// OptionsFromConfig builds the options that give strings the configured
// allocator. Trace records go to logOut when logging is enabled; metrics are
// registered on reg when enabled. Build the options once and share them: every
// String created with them draws from the same allocator.
func OptionsFromConfig(cfg *Config, logOut io.Writer, reg prometheus.Registerer) ([]Option, error) {
	rt, err := cfg.Build(logOut, reg)
	if err != nil {
		return nil, err
	}
	return []Option{WithAllocator(rt.Allocator)}, nil
}

// WatchConfig loads path like LoadConfig, builds options like
// OptionsFromConfig, and keeps watching the file. Later edits to
// allocator.maxBytes and logging.level apply to the shared allocator in
// place. Close the returned io.Closer to stop watching.
func WatchConfig(path string, logOut io.Writer, reg prometheus.Registerer) ([]Option, io.Closer, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, err
	}
	rt, err := cfg.Build(logOut, reg)
	if err != nil {
		return nil, nil, err
	}
	w, err := config.Watch(path, rt)
	if err != nil {
		return nil, nil, err
	}
	return []Option{WithAllocator(rt.Allocator)}, w, nil
}
