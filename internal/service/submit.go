package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/workstats/internal/app"
	"github.com/alexanderramin/workstats/internal/domain"
	"github.com/alexanderramin/workstats/internal/report"
	"github.com/alexanderramin/workstats/internal/repository"
	"github.com/alexanderramin/workstats/internal/webhook"
)

// Submit finalizes the personnel or bikes draft. It always builds the
// report; when any count is positive it upserts today's history entry,
// moves the bike photos into it and attempts the webhook. The history write
// is committed before the webhook is tried and is never rolled back.
func (w *Workspace) Submit(ctx context.Context, k domain.Kind) (res *app.SubmitResult, err error) {
	startedAt := time.Now()
	fields := map[string]any{"kind": string(k)}
	w.mu.Lock()
	defer w.mu.Unlock()
	defer func() { w.observe(ctx, "submit", startedAt, fields, submitWarnings(res), err) }()
	w.ensureStarted(ctx)

	counts, err := w.counterFor(k)
	if err != nil {
		return nil, err
	}

	now := w.now()
	lang := w.state.Settings.Language
	res = &app.SubmitResult{Report: report.Counts(k, counts, now.In(w.loc), lang)}
	if !counts.HasData() {
		fields["saved"] = false
		return res, nil
	}

	entry := domain.HistoryEntry{
		ID:      w.newID(),
		Date:    now,
		Kind:    k,
		Summary: report.For(lang).Summary(k, ""),
		Counts:  counts.Clone(),
	}
	clearImages := k == domain.KindBikes
	if clearImages {
		entry.Images = w.state.BikeImages.Clone()
		// An empty live set keeps the photos already in today's entry.
		if len(entry.Images) == 0 {
			if today, ok := w.state.History.FindForDay(k, now, w.loc); ok {
				entry.Images = today.Images.Clone()
			}
		}
	}

	up := w.state.History.UpsertForToday(entry, w.loc)
	res.Entry, res.Replaced = &up.Entry, up.Replaced
	if clearImages {
		w.state.BikeImages = nil
	}
	res.Warnings = appendWarning(res.Warnings, w.commitHistory(ctx, clearImages))

	res.Sync = w.sync(ctx, string(k), counts.Clone(), now)
	if res.Sync.Sent {
		res.Entry.Synced = true
		w.state.History.MarkSynced(res.Entry.ID, true)
		res.Warnings = appendWarning(res.Warnings, w.history.Save(ctx, w.state.History))
	}

	fields["saved"] = true
	fields["replaced"] = res.Replaced
	fields["synced"] = res.Sync.Sent
	fields["images"] = len(entry.Images)
	return res, nil
}

// SyncOffice sends one room's values and prepends an office entry. A room
// without values fails with ErrNoRoomData. A failed send keeps the local
// entry with synced=false.
func (w *Workspace) SyncOffice(ctx context.Context, room string) (res *app.SubmitResult, err error) {
	startedAt := time.Now()
	fields := map[string]any{"room": room}
	w.mu.Lock()
	defer w.mu.Unlock()
	defer func() { w.observe(ctx, "sync-office", startedAt, fields, submitWarnings(res), err) }()
	w.ensureStarted(ctx)

	if !domain.IsOfficeRoom(room) {
		return nil, fmt.Errorf("room %q: %w", room, domain.ErrUnknownRoom)
	}
	if !w.state.Office.RoomHasData(room) {
		return nil, fmt.Errorf("room %s: %w", room, domain.ErrNoRoomData)
	}

	now := w.now()
	lang := w.state.Settings.Language
	items := w.state.Office.Room(room)
	res = &app.SubmitResult{Report: report.Office(room, items, now.In(w.loc), lang)}

	res.Sync = w.sync(ctx, room, items, now)
	entry := domain.HistoryEntry{
		ID:      w.newID(),
		Date:    now,
		Kind:    domain.KindOffice,
		Summary: report.For(lang).Summary(domain.KindOffice, room),
		Room:    room,
		Items:   items,
		Synced:  res.Sync.Sent,
	}
	w.state.History.Prepend(entry)
	res.Entry = &entry
	res.Warnings = appendWarning(res.Warnings, w.commitHistory(ctx, false))

	fields["items"] = entry.ItemCount()
	fields["synced"] = res.Sync.Sent
	return res, nil
}

// commitHistory persists the ledger and, for bikes, drops the photo draft
// in the same transaction.
func (w *Workspace) commitHistory(ctx context.Context, clearImages bool) error {
	ledger := w.state.History
	return w.tx.WithinTx(ctx, func(ctx context.Context, store repository.BlobStore) error {
		if err := repository.NewHistoryRepo(store).Save(ctx, ledger); err != nil {
			return fmt.Errorf("saving history: %w", err)
		}
		if clearImages {
			if err := repository.NewAttachmentRepo(store).Clear(ctx); err != nil {
				return fmt.Errorf("clearing bike images: %w", err)
			}
		}
		return nil
	})
}

// sync posts a payload when a webhook is configured. Without one nothing is
// attempted and the entry stays local.
func (w *Workspace) sync(ctx context.Context, room string, items any, date time.Time) app.SyncStatus {
	url := w.state.Settings.WebhookURL
	if w.sender == nil || !w.state.Settings.HasWebhook() {
		return app.SyncStatus{}
	}
	r, err := w.sender.Send(ctx, url, webhook.Payload{Date: date, Room: room, Items: items})
	return app.SyncStatus{Attempted: true, Sent: r.PresumedSent, Err: err}
}

func submitWarnings(res *app.SubmitResult) []error {
	if res == nil {
		return nil
	}
	return res.Warnings
}
