package progress

import (
	"log/slog"
	"time"

	"golang.org/x/time/rate"
)

// LogReporter emits progress as structured log lines, for non-interactive
// runs where a \r status line would either scroll or vanish. Row updates
// are throttled so a small reporting interval cannot flood the log; the
// finalization statuses are always emitted.
type LogReporter struct {
	logger   *slog.Logger
	throttle rate.Sometimes
}

// NewLogReporter creates a LogReporter that logs row progress at most once
// per minInterval.
func NewLogReporter(logger *slog.Logger, minInterval time.Duration) *LogReporter {
	return &LogReporter{
		logger:   logger.With("component", "replay_progress"),
		throttle: rate.Sometimes{Interval: minInterval},
	}
}

func (l *LogReporter) Rows(n int64) {
	l.throttle.Do(func() {
		l.logger.Info("replay progress", "rows", n)
	})
}

func (l *LogReporter) Status(msg string) {
	l.logger.Info(msg)
}
