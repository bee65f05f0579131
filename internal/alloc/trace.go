package alloc

import (
	"log/slog"

	"github.com/pamburus/slogx"
)

// Traced logs every allocation and release at debug level.
type Traced struct {
	next   Allocator
	logger *slogx.Logger
}

// NewTraced wraps next so that block traffic is reported to logger.
// A nil logger uses slogx.Default().
func NewTraced(next Allocator, logger *slogx.Logger) *Traced {
	if next == nil {
		next = Heap{}
	}
	if logger == nil {
		logger = slogx.Default()
	}
	return &Traced{
		next:   next,
		logger: logger.WithGroup("alloc"),
	}
}

// Allocate delegates and logs the request.
func (t *Traced) Allocate(n int) ([]byte, error) {
	b, err := t.next.Allocate(n)
	if err != nil {
		t.logger.Warn("allocate failed", slog.Int("size", n), slog.Any("error", err))
		return nil, err
	}
	t.logger.Debug("allocate", slog.Int("size", n), slog.Int("cap", cap(b)))
	return b, nil
}

// Free logs the release and delegates.
func (t *Traced) Free(b []byte) {
	if len(b) > 0 {
		t.logger.Debug("free", slog.Int("size", len(b)))
	}
	t.next.Free(b)
}
