package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/roundtrip/pkg/observability"
)

// logHooks logs round-trip stage events at debug level.
type logHooks struct {
	logger *log.Logger
}

func newLogHooks(l *log.Logger) *logHooks {
	return &logHooks{logger: l}
}

func (h *logHooks) OnStageStart(ctx context.Context, stage, path string) {
	h.logger.Debug("stage started", "stage", stage, "path", path)
}

func (h *logHooks) OnStageComplete(ctx context.Context, stage, path string, size int, duration time.Duration, err error) {
	kv := []any{"stage", stage, "path", path, "duration", duration.Round(time.Microsecond)}
	if size > 0 {
		kv = append(kv, "bytes", size)
	}
	if err != nil {
		kv = append(kv, "err", err)
	}
	h.logger.Debug("stage finished", kv...)
}

func (h *logHooks) OnRunComplete(ctx context.Context, path string, consistent bool, duration time.Duration) {
	h.logger.Debug("run finished", "path", path, "consistent", consistent, "duration", duration.Round(time.Microsecond))
}

var _ observability.RoundTripHooks = (*logHooks)(nil)
