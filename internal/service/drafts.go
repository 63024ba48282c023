package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/workstats/internal/app"
	"github.com/alexanderramin/workstats/internal/domain"
)

func (w *Workspace) counterFor(k domain.Kind) (domain.CounterMap, error) {
	switch k {
	case domain.KindPersonnel:
		return w.state.Personnel, nil
	case domain.KindBikes:
		return w.state.Bikes, nil
	}
	return nil, fmt.Errorf("%s has no counters: %w", k, domain.ErrUnknownKind)
}

// Counts returns a copy of the personnel or bikes draft.
func (w *Workspace) Counts(ctx context.Context, k domain.Kind) (domain.CounterMap, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.ensureStarted(ctx)

	m, err := w.counterFor(k)
	if err != nil {
		return nil, err
	}
	return m.Clone(), nil
}

// Adjust adds delta to one category, never going below zero, and persists
// the draft.
func (w *Workspace) Adjust(ctx context.Context, k domain.Kind, key string, delta int) (res *app.MutationResult, err error) {
	startedAt := time.Now()
	fields := map[string]any{"kind": string(k), "key": key, "delta": delta}
	w.mu.Lock()
	defer w.mu.Unlock()
	defer func() { w.observe(ctx, "adjust", startedAt, fields, warningsOf(res), err) }()
	w.ensureStarted(ctx)

	m, err := w.counterFor(k)
	if err != nil {
		return nil, err
	}
	if !domain.IsCategory(k, key) {
		return nil, fmt.Errorf("%s category %q: %w", k, key, domain.ErrUnknownCategory)
	}

	res = &app.MutationResult{Value: m.Increment(key, delta), Written: true}
	fields["value"] = res.Value
	res.Warnings = appendWarning(res.Warnings, w.drafts.SaveCounts(ctx, k, m))
	return res, nil
}

// Office returns a copy of the office draft.
func (w *Workspace) Office(ctx context.Context) (domain.OfficeMap, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.ensureStarted(ctx)
	return w.state.Office.Clone(), nil
}

// SetOffice records a value for one room item. Items hidden in the room are
// ignored and reported with Written=false.
func (w *Workspace) SetOffice(ctx context.Context, room, item string, v domain.OfficeValue) (res *app.MutationResult, err error) {
	startedAt := time.Now()
	fields := map[string]any{"room": room, "item": item, "value": v.String()}
	w.mu.Lock()
	defer w.mu.Unlock()
	defer func() { w.observe(ctx, "set-office", startedAt, fields, warningsOf(res), err) }()
	w.ensureStarted(ctx)

	if !domain.IsOfficeRoom(room) {
		return nil, fmt.Errorf("room %q: %w", room, domain.ErrUnknownRoom)
	}
	if !domain.RoomAllowsItem(room, item) {
		fields["hidden"] = true
		return &app.MutationResult{}, nil
	}
	if err := v.Validate(item); err != nil {
		return nil, err
	}

	res = &app.MutationResult{Written: w.state.Office.Set(room, item, v), Value: v.N}
	res.Warnings = appendWarning(res.Warnings, w.drafts.SaveOffice(ctx, w.state.Office))
	return res, nil
}

// ClearDraft empties the draft of one domain and deletes its blob. For
// office every room is cleared.
func (w *Workspace) ClearDraft(ctx context.Context, k domain.Kind) (res *app.MutationResult, err error) {
	startedAt := time.Now()
	fields := map[string]any{"kind": string(k)}
	w.mu.Lock()
	defer w.mu.Unlock()
	defer func() { w.observe(ctx, "clear-draft", startedAt, fields, warningsOf(res), err) }()
	w.ensureStarted(ctx)

	if k == domain.KindOffice {
		w.state.Office.Clear()
	} else {
		m, err := w.counterFor(k)
		if err != nil {
			return nil, err
		}
		m.Clear()
	}
	res = &app.MutationResult{Written: true}
	res.Warnings = appendWarning(res.Warnings, w.drafts.Clear(ctx, k))
	return res, nil
}

func appendWarning(ws []error, err error) []error {
	if err == nil {
		return ws
	}
	return append(ws, err)
}

func warningsOf(res *app.MutationResult) []error {
	if res == nil {
		return nil
	}
	return res.Warnings
}
