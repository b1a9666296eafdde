package api

import (
	"io"
	"log/slog"
	"time"

	"github.com/lmittmann/tint"
)

// CallEvent captures observability data for a completed API call.
type CallEvent struct {
	Method    string
	Path      string
	Status    int
	LatencyMs int64
	RequestID string
	Success   bool
	ErrorCode string
}

// Observer receives call events from the client.
type Observer interface {
	OnCallComplete(event CallEvent)
}

// NoopObserver discards all events.
type NoopObserver struct{}

func (NoopObserver) OnCallComplete(CallEvent) {}

// LogObserver writes call events as structured log lines. Output goes to
// the given writer (normally stderr) so it never bleeds into the TUI frame.
type LogObserver struct {
	log *slog.Logger
}

// NewLogObserver creates a LogObserver backed by a tint slog handler.
func NewLogObserver(w io.Writer) *LogObserver {
	handler := tint.NewHandler(w, &tint.Options{
		Level:      slog.LevelDebug,
		TimeFormat: time.TimeOnly,
	})
	return &LogObserver{log: slog.New(handler)}
}

func (o *LogObserver) OnCallComplete(e CallEvent) {
	if e.Success {
		o.log.Debug("api call",
			"method", e.Method,
			"path", e.Path,
			"status", e.Status,
			"latency_ms", e.LatencyMs,
			"request_id", e.RequestID,
		)
		return
	}
	o.log.Warn("api call failed",
		"method", e.Method,
		"path", e.Path,
		"status", e.Status,
		"latency_ms", e.LatencyMs,
		"request_id", e.RequestID,
		"error_code", e.ErrorCode,
	)
}
