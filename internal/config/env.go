package config

import (
	"fmt"
	"strconv"
	"strings"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "BYTESTRING_"

// LookupFunc matches os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// envOverride binds one environment variable to the setting it replaces.
type envOverride struct {
	name    string
	setting string
	set     func(c *Config, v string) error
}

var envOverrides = []envOverride{
	{EnvPrefix + "ALLOCATOR_KIND", "allocator.kind", func(c *Config, v string) error {
		c.Allocator.Kind = strings.ToLower(v)
		return nil
	}},
	{EnvPrefix + "ALLOCATOR_MAX_BYTES", "allocator.maxBytes", func(c *Config, v string) error {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return err
		}
		c.Allocator.MaxBytes = n
		return nil
	}},
	{EnvPrefix + "ALLOCATOR_MMAP_THRESHOLD", "allocator.mmapThreshold", func(c *Config, v string) error {
		n, err := strconv.Atoi(v)
		if err != nil {
			return err
		}
		c.Allocator.MmapThreshold = n
		return nil
	}},
	{EnvPrefix + "LOG_ENABLED", "logging.enabled", func(c *Config, v string) error {
		return setBool(&c.Logging.Enabled, v)
	}},
	{EnvPrefix + "LOG_LEVEL", "logging.level", func(c *Config, v string) error {
		c.Logging.Level = v
		return nil
	}},
	{EnvPrefix + "LOG_FORMAT", "logging.format", func(c *Config, v string) error {
		c.Logging.Format = strings.ToLower(v)
		return nil
	}},
	{EnvPrefix + "LOG_COLOR", "logging.color", func(c *Config, v string) error {
		return setBool(&c.Logging.Color, v)
	}},
	{EnvPrefix + "METRICS_ENABLED", "metrics.enabled", func(c *Config, v string) error {
		return setBool(&c.Metrics.Enabled, v)
	}},
	{EnvPrefix + "METRICS_NAMESPACE", "metrics.namespace", func(c *Config, v string) error {
		c.Metrics.Namespace = v
		return nil
	}},
}

// ApplyEnv overrides settings from the environment as seen through lookup.
// Empty values are treated as set. The first malformed value stops the pass
// and is reported as a *ParseError naming the variable.
func (c *Config) ApplyEnv(lookup LookupFunc) error {
	for _, o := range envOverrides {
		v, ok := lookup(o.name)
		if !ok {
			continue
		}
		if err := o.set(c, v); err != nil {
			return &ParseError{
				Source:  "$" + o.name,
				Setting: o.setting,
				Err:     err,
			}
		}
	}
	return nil
}

func setBool(dst *bool, v string) error {
	b, err := parseBool(v)
	if err != nil {
		return err
	}
	*dst = b
	return nil
}

// parseBool accepts the usual spellings: true/false, yes/no, on/off, 1/0.
func parseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "yes", "on", "1":
		return true, nil
	case "false", "no", "off", "0", "":
		return false, nil
	}
	return false, fmt.Errorf("not a boolean: %q", s)
}
