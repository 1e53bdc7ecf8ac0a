package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"

	"github.com/matzehuels/drawrows/pkg/observability"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time, rounded to the millisecond.
// Example output: "Assigned 42 intervals (1.234s)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

// logHooks reports pipeline events at debug level.
type logHooks struct {
	observability.NoopPipelineHooks
	logger *log.Logger
}

// registerHooks routes pipeline events into the CLI logger.
func (c *CLI) registerHooks() {
	observability.SetPipelineHooks(&logHooks{logger: c.Logger})
}

func (h *logHooks) OnLoadComplete(_ context.Context, path string, intervals int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("load failed", "path", path, "err", err)
		return
	}
	h.logger.Debug("read input", "path", path, "intervals", humanize.Comma(int64(intervals)), "duration", d)
}

func (h *logHooks) OnAssignComplete(_ context.Context, rows, segments int, d time.Duration, err error) {
	if err != nil {
		return
	}
	h.logger.Debug("sweep finished", "rows", rows, "segments", humanize.Comma(int64(segments)), "duration", d)
}

func (h *logHooks) OnWrite(_ context.Context, path string, size int) {
	h.logger.Debug("wrote file", "path", path, "size", humanize.Bytes(uint64(size)))
}
