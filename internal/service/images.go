package service

import (
	"context"
	"time"

	"github.com/alexanderramin/workstats/internal/app"
	"github.com/alexanderramin/workstats/internal/domain"
)

// Images returns a copy of the bike photo draft.
func (w *Workspace) Images(ctx context.Context) (domain.AttachmentSet, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.ensureStarted(ctx)
	return w.state.BikeImages.Clone(), nil
}

// AttachImage appends a photo to the bikes draft.
func (w *Workspace) AttachImage(ctx context.Context, a domain.Attachment) (res *app.MutationResult, err error) {
	startedAt := time.Now()
	fields := map[string]any{"bytes": len(a.Data)}
	w.mu.Lock()
	defer w.mu.Unlock()
	defer func() { w.observe(ctx, "attach-image", startedAt, fields, warningsOf(res), err) }()
	w.ensureStarted(ctx)

	w.state.BikeImages = w.state.BikeImages.Append(a)
	return w.persistImages(ctx), nil
}

// RemoveImage drops the photo at index.
func (w *Workspace) RemoveImage(ctx context.Context, index int) (res *app.MutationResult, err error) {
	startedAt := time.Now()
	fields := map[string]any{"index": index}
	w.mu.Lock()
	defer w.mu.Unlock()
	defer func() { w.observe(ctx, "remove-image", startedAt, fields, warningsOf(res), err) }()
	w.ensureStarted(ctx)

	set, err := w.state.BikeImages.Remove(index)
	if err != nil {
		return nil, err
	}
	w.state.BikeImages = set
	return w.persistImages(ctx), nil
}

// ClearImages drops every photo from the bikes draft.
func (w *Workspace) ClearImages(ctx context.Context) (res *app.MutationResult, err error) {
	startedAt := time.Now()
	w.mu.Lock()
	defer w.mu.Unlock()
	defer func() { w.observe(ctx, "clear-images", startedAt, nil, warningsOf(res), err) }()
	w.ensureStarted(ctx)

	w.state.BikeImages = nil
	return w.persistImages(ctx), nil
}

func (w *Workspace) persistImages(ctx context.Context) *app.MutationResult {
	res := &app.MutationResult{Written: true, Count: len(w.state.BikeImages)}
	res.Warnings = appendWarning(res.Warnings, w.images.Save(ctx, w.state.BikeImages))
	return res
}
