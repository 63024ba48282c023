package llm

import (
	"io"
	"log/slog"
)

// CallEvent describes one summarize call.
type CallEvent struct {
	Model       string
	PromptBytes int
	LatencyMs   int64
	Success     bool
	ErrorCode   string
}

// Observer receives one event per summarize call.
type Observer interface {
	OnCallComplete(event CallEvent)
}

// LogObserver writes call events as structured log lines.
type LogObserver struct {
	logger *slog.Logger
}

// NewLogObserver creates an Observer that logs events to w.
func NewLogObserver(w io.Writer) *LogObserver {
	return &LogObserver{logger: slog.New(slog.NewTextHandler(w, nil))}
}

func (o *LogObserver) OnCallComplete(event CallEvent) {
	attrs := []any{
		"model", event.Model,
		"prompt_bytes", event.PromptBytes,
		"latency_ms", event.LatencyMs,
	}
	if !event.Success {
		o.logger.Warn("llm_summarize", append(attrs, "error_code", event.ErrorCode)...)
		return
	}
	o.logger.Info("llm_summarize", attrs...)
}

// NoopObserver discards all events.
type NoopObserver struct{}

func (NoopObserver) OnCallComplete(CallEvent) {}
