package service

import (
	"context"
	"time"

	"github.com/alexanderramin/workstats/internal/analysis"
	"github.com/alexanderramin/workstats/internal/app"
	"github.com/alexanderramin/workstats/internal/domain"
)

// History returns the ledger entries, newest first by date.
func (w *Workspace) History(ctx context.Context) ([]domain.HistoryEntry, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.ensureStarted(ctx)
	return w.state.History.SortedByDate(), nil
}

// GroupedHistory returns the ledger grouped by local day, then domain.
func (w *Workspace) GroupedHistory(ctx context.Context) ([]domain.DayGroup, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.ensureStarted(ctx)
	return w.state.History.Group(w.loc), nil
}

// ClearHistory empties the ledger.
func (w *Workspace) ClearHistory(ctx context.Context) (res *app.MutationResult, err error) {
	startedAt := time.Now()
	w.mu.Lock()
	defer w.mu.Unlock()
	fields := map[string]any{}
	defer func() { w.observe(ctx, "clear-history", startedAt, fields, warningsOf(res), err) }()
	w.ensureStarted(ctx)

	fields["entries"] = w.state.History.Len()
	w.state.History.Clear()
	res = &app.MutationResult{Written: true}
	res.Warnings = appendWarning(res.Warnings, w.history.Clear(ctx))
	return res, nil
}

// Analyze summarizes the newest entries in the current language.
func (w *Workspace) Analyze(ctx context.Context) (sum *analysis.Summary, err error) {
	startedAt := time.Now()
	fields := map[string]any{}
	defer func() {
		if sum != nil {
			fields["source"] = string(sum.Source)
			fields["entries"] = sum.EntryCount
		}
		w.observe(ctx, "analyze", startedAt, fields, nil, err)
	}()

	w.mu.Lock()
	w.ensureStarted(ctx)
	entries := w.state.History.Newest(analysis.MaxEntries)
	lang := w.state.Settings.Language
	w.mu.Unlock()

	return w.summarizer.Summarize(ctx, entries, lang)
}
