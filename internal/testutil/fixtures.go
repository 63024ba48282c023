package testutil

import (
	"time"

	"github.com/alexanderramin/workstats/internal/domain"
	"github.com/google/uuid"
)

// Entry options
type EntryOption func(*domain.HistoryEntry)

func WithDate(d time.Time) EntryOption {
	return func(e *domain.HistoryEntry) {
		e.Date = d
	}
}

func WithCounts(c domain.CounterMap) EntryOption {
	return func(e *domain.HistoryEntry) {
		e.Counts = c
	}
}

func WithImages(imgs ...domain.Attachment) EntryOption {
	return func(e *domain.HistoryEntry) {
		e.Images = imgs
	}
}

func WithSynced(s bool) EntryOption {
	return func(e *domain.HistoryEntry) {
		e.Synced = s
	}
}

func WithRoom(room string, items map[string]domain.OfficeValue) EntryOption {
	return func(e *domain.HistoryEntry) {
		e.Room = room
		e.Items = items
	}
}

func WithSummary(s string) EntryOption {
	return func(e *domain.HistoryEntry) {
		e.Summary = s
	}
}

func NewTestEntry(kind domain.Kind, opts ...EntryOption) domain.HistoryEntry {
	e := domain.HistoryEntry{
		ID:      uuid.New().String(),
		Date:    time.Now(),
		Kind:    kind,
		Summary: string(kind),
	}
	if kind != domain.KindOffice {
		e.Counts = domain.CounterMap{}
	}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

// NewTestImage returns a small fake JPEG attachment.
func NewTestImage(tag string) domain.Attachment {
	return domain.Attachment{MIME: "image/jpeg", Data: []byte("jpeg:" + tag)}
}

// FixedClock returns a clock function pinned to t.
func FixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
