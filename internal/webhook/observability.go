package webhook

import (
	"io"
	"log/slog"
)

// SendEvent records metadata about a single webhook post.
type SendEvent struct {
	Room      string
	Bytes     int
	LatencyMs int64
	Sent      bool
	ErrorCode string
}

// Observer receives events about webhook posts.
type Observer interface {
	OnSend(event SendEvent)
}

// LogObserver writes send events through slog.
type LogObserver struct {
	logger *slog.Logger
}

// NewLogObserver creates an Observer that logs events to w.
func NewLogObserver(w io.Writer) *LogObserver {
	return &LogObserver{logger: slog.New(slog.NewTextHandler(w, nil))}
}

func (o *LogObserver) OnSend(event SendEvent) {
	attrs := []any{
		"room", event.Room,
		"bytes", event.Bytes,
		"latency_ms", event.LatencyMs,
		"sent", event.Sent,
	}
	if !event.Sent {
		o.logger.Warn("webhook_send", append(attrs, "error_code", event.ErrorCode)...)
		return
	}
	o.logger.Info("webhook_send", attrs...)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnSend(SendEvent) {}
