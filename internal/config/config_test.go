package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/dshills/bytestring/internal/alloc"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default().Validate() = %v", err)
	}
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "bytestring.toml", `
[allocator]
kind = "pool"
maxBytes = 4096

[logging]
enabled = true
level = "debug"
format = "json"

[metrics]
enabled = true
namespace = "test"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Allocator.Kind != KindPool || cfg.Allocator.MaxBytes != 4096 {
		t.Errorf("allocator = %+v", cfg.Allocator)
	}
	if !cfg.Logging.Enabled || cfg.Logging.Level != "debug" || cfg.Logging.Format != FormatJSON {
		t.Errorf("logging = %+v", cfg.Logging)
	}
	if !cfg.Metrics.Enabled || cfg.Metrics.Namespace != "test" {
		t.Errorf("metrics = %+v", cfg.Metrics)
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "bytestring.yaml", `
allocator:
  kind: mmap
  mmapThreshold: 65536
logging:
  level: warn
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Allocator.Kind != KindMmap || cfg.Allocator.MmapThreshold != 65536 {
		t.Errorf("allocator = %+v", cfg.Allocator)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("level = %q, want warn", cfg.Logging.Level)
	}
	// Unset keys keep their defaults.
	if cfg.Logging.Format != FormatText || cfg.Metrics.Namespace != "bytestring" {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadEmptyYAML(t *testing.T) {
	cfg, err := Load(writeFile(t, "empty.yml", "\n"))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Allocator.Kind != KindHeap {
		t.Errorf("kind = %q, want heap", cfg.Allocator.Kind)
	}
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
		if !errors.Is(err, ErrFileNotFound) {
			t.Errorf("error = %v, want ErrFileNotFound", err)
		}
	})

	t.Run("unknown extension", func(t *testing.T) {
		_, err := Load(writeFile(t, "cfg.ini", "kind=heap"))
		if !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("error = %v, want ErrUnsupportedFormat", err)
		}
	})

	t.Run("bad toml", func(t *testing.T) {
		_, err := Load(writeFile(t, "bad.toml", "[allocator]\nkind = \n"))
		var perr *ParseError
		if !errors.As(err, &perr) {
			t.Fatalf("error = %v, want *ParseError", err)
		}
		if perr.Line != 2 {
			t.Errorf("Line = %d, want 2", perr.Line)
		}
		if perr.FromEnv() || !strings.Contains(perr.Error(), "bad.toml:2") {
			t.Errorf("Error() = %q", perr.Error())
		}
		if perr.Unwrap() == nil {
			t.Error("ParseError should wrap the decoder error")
		}
	})

	t.Run("unknown toml key", func(t *testing.T) {
		_, err := Load(writeFile(t, "extra.toml", "[allocator]\nflavor = \"x\"\n"))
		var perr *ParseError
		if !errors.As(err, &perr) {
			t.Errorf("error = %v, want *ParseError", err)
		}
	})

	t.Run("bad yaml", func(t *testing.T) {
		_, err := Load(writeFile(t, "bad.yaml", "allocator: [1, 2\n"))
		var perr *ParseError
		if !errors.As(err, &perr) {
			t.Errorf("error = %v, want *ParseError", err)
		}
	})

	t.Run("invalid value", func(t *testing.T) {
		_, err := Load(writeFile(t, "invalid.toml", "[allocator]\nkind = \"slab\"\n"))
		if !errors.Is(err, ErrValidationFailed) {
			t.Errorf("error = %v, want ErrValidationFailed", err)
		}
	})
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeFile(t, "bytestring.toml", "[allocator]\nkind = \"pool\"\nmaxBytes = 10\n")
	t.Setenv("BYTESTRING_ALLOCATOR_KIND", "HEAP")
	t.Setenv("BYTESTRING_ALLOCATOR_MAX_BYTES", "2048")
	t.Setenv("BYTESTRING_LOG_ENABLED", "yes")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Allocator.Kind != KindHeap {
		t.Errorf("kind = %q, want heap", cfg.Allocator.Kind)
	}
	if cfg.Allocator.MaxBytes != 2048 {
		t.Errorf("maxBytes = %d, want 2048", cfg.Allocator.MaxBytes)
	}
	if !cfg.Logging.Enabled {
		t.Error("logging should be enabled by env")
	}
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("BYTESTRING_METRICS_ENABLED", "on")
	t.Setenv("BYTESTRING_METRICS_NAMESPACE", "svc")
	cfg, err := LoadEnv()
	if err != nil {
		t.Fatalf("LoadEnv error: %v", err)
	}
	if !cfg.Metrics.Enabled || cfg.Metrics.Namespace != "svc" {
		t.Errorf("metrics = %+v", cfg.Metrics)
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"BYTESTRING_ALLOCATOR_MMAP_THRESHOLD": "8192",
		"BYTESTRING_LOG_LEVEL":                "debug",
		"BYTESTRING_LOG_FORMAT":               "JSON",
		"BYTESTRING_LOG_COLOR":                "1",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	cfg := Default()
	if err := cfg.ApplyEnv(lookup); err != nil {
		t.Fatalf("ApplyEnv error: %v", err)
	}
	if cfg.Allocator.MmapThreshold != 8192 || cfg.Logging.Level != "debug" ||
		cfg.Logging.Format != FormatJSON || !cfg.Logging.Color {
		t.Errorf("config = %+v", cfg)
	}

	env = map[string]string{"BYTESTRING_ALLOCATOR_MAX_BYTES": "lots"}
	var perr *ParseError
	if err := Default().ApplyEnv(lookup); !errors.As(err, &perr) {
		t.Errorf("bad integer error = %v, want *ParseError", err)
	} else {
		if perr.Source != "$BYTESTRING_ALLOCATOR_MAX_BYTES" || perr.Setting != "allocator.maxBytes" || !perr.FromEnv() {
			t.Errorf("ParseError = %+v", perr)
		}
		if !strings.Contains(perr.Error(), "$BYTESTRING_ALLOCATOR_MAX_BYTES (allocator.maxBytes)") {
			t.Errorf("Error() = %q", perr.Error())
		}
	}
	cfg = Default()
	cfg.Allocator.MaxBytes = 99
	if err := cfg.ApplyEnv(lookup); err == nil || cfg.Allocator.MaxBytes != 99 {
		t.Errorf("malformed override changed maxBytes to %d", cfg.Allocator.MaxBytes)
	}

	env = map[string]string{"BYTESTRING_METRICS_ENABLED": "maybe"}
	if err := Default().ApplyEnv(lookup); err == nil {
		t.Error("expected error for a non-boolean value")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		setting string
	}{
		{"kind", func(c *Config) { c.Allocator.Kind = "slab" }, "allocator.kind"},
		{"max bytes", func(c *Config) { c.Allocator.MaxBytes = -1 }, "allocator.maxBytes"},
		{"threshold", func(c *Config) { c.Allocator.MmapThreshold = -1 }, "allocator.mmapThreshold"},
		{"level", func(c *Config) { c.Logging.Level = "loud" }, "logging.level"},
		{"format", func(c *Config) { c.Logging.Format = "xml" }, "logging.format"},
		{"namespace", func(c *Config) { c.Metrics.Enabled = true; c.Metrics.Namespace = "" }, "metrics.namespace"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Validate() = %v, want *ValidationError", err)
			}
			if verr.Setting != tt.setting {
				t.Errorf("Setting = %q, want %q", verr.Setting, tt.setting)
			}
			if !errors.Is(err, ErrValidationFailed) {
				t.Error("ValidationError should unwrap to ErrValidationFailed")
			}
		})
	}
}

func TestNewLogger(t *testing.T) {
	t.Run("text", func(t *testing.T) {
		var out bytes.Buffer
		cfg := Default()
		cfg.Logging.Level = "debug"
		logger, err := cfg.NewLogger(&out)
		if err != nil {
			t.Fatal(err)
		}
		logger.Debug("hello")
		if !strings.Contains(out.String(), "hello") {
			t.Errorf("output %q missing message", out.String())
		}
	})

	t.Run("json", func(t *testing.T) {
		var out bytes.Buffer
		cfg := Default()
		cfg.Logging.Format = FormatJSON
		logger, err := cfg.NewLogger(&out)
		if err != nil {
			t.Fatal(err)
		}
		logger.Info("hello")
		if !strings.Contains(out.String(), `"msg":"hello"`) {
			t.Errorf("output %q missing JSON message", out.String())
		}
	})

	t.Run("level filters", func(t *testing.T) {
		var out bytes.Buffer
		cfg := Default()
		cfg.Logging.Level = "error"
		logger, err := cfg.NewLogger(&out)
		if err != nil {
			t.Fatal(err)
		}
		logger.Info("quiet")
		if out.Len() != 0 {
			t.Errorf("info record written at error level: %q", out.String())
		}
	})

	t.Run("bad format", func(t *testing.T) {
		cfg := Default()
		cfg.Logging.Format = "xml"
		if _, err := cfg.NewLogger(&bytes.Buffer{}); !errors.Is(err, ErrValidationFailed) {
			t.Errorf("error = %v, want ErrValidationFailed", err)
		}
	})
}

func TestNewAllocator(t *testing.T) {
	t.Run("heap", func(t *testing.T) {
		a, err := Default().NewAllocator(nil, nil)
		if err != nil {
			t.Fatal(err)
		}
		if _, ok := a.(alloc.Heap); !ok {
			t.Errorf("allocator = %T, want alloc.Heap", a)
		}
	})

	t.Run("pool with limit", func(t *testing.T) {
		cfg := Default()
		cfg.Allocator.Kind = KindPool
		cfg.Allocator.MaxBytes = 64
		a, err := cfg.NewAllocator(nil, nil)
		if err != nil {
			t.Fatal(err)
		}
		lim, ok := a.(*alloc.Limit)
		if !ok {
			t.Fatalf("allocator = %T, want *alloc.Limit", a)
		}
		if lim.Max() != 64 {
			t.Errorf("Max() = %d, want 64", lim.Max())
		}
		if _, err := a.Allocate(65); !errors.Is(err, alloc.ErrAllocation) {
			t.Errorf("over-budget error = %v", err)
		}
	})

	t.Run("mmap", func(t *testing.T) {
		cfg := Default()
		cfg.Allocator.Kind = KindMmap
		a, err := cfg.NewAllocator(nil, nil)
		if err != nil {
			t.Fatal(err)
		}
		if _, ok := a.(*alloc.Mmap); !ok {
			t.Errorf("allocator = %T, want *alloc.Mmap", a)
		}
	})

	t.Run("metrics and tracing", func(t *testing.T) {
		var out bytes.Buffer
		cfg := Default()
		cfg.Metrics.Enabled = true
		cfg.Logging.Enabled = true
		cfg.Logging.Level = "debug"
		logger, err := cfg.NewLogger(&out)
		if err != nil {
			t.Fatal(err)
		}

		reg := prometheus.NewRegistry()
		a, err := cfg.NewAllocator(reg, logger)
		if err != nil {
			t.Fatal(err)
		}
		if _, ok := a.(*alloc.Traced); !ok {
			t.Fatalf("allocator = %T, want *alloc.Traced", a)
		}

		b, err := a.Allocate(32)
		if err != nil {
			t.Fatal(err)
		}
		a.Free(b)

		families, err := reg.Gather()
		if err != nil {
			t.Fatal(err)
		}
		var found bool
		for _, mf := range families {
			if mf.GetName() == "bytestring_allocator_allocations_total" {
				found = mf.GetMetric()[0].GetCounter().GetValue() == 1
			}
		}
		if !found {
			t.Error("allocations_total not registered or not incremented")
		}
		if !strings.Contains(out.String(), "allocate") {
			t.Errorf("trace output %q missing allocate record", out.String())
		}
	})

	t.Run("duplicate registration", func(t *testing.T) {
		cfg := Default()
		cfg.Metrics.Enabled = true
		reg := prometheus.NewRegistry()
		if _, err := cfg.NewAllocator(reg, nil); err != nil {
			t.Fatal(err)
		}
		if _, err := cfg.NewAllocator(reg, nil); err == nil {
			t.Error("second registration on the same registry should fail")
		}
	})
}
