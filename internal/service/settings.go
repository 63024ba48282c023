package service

import (
	"context"
	"time"

	"github.com/alexanderramin/workstats/internal/domain"
)

// Settings returns the current preferences.
func (w *Workspace) Settings(ctx context.Context) (domain.Settings, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.ensureStarted(ctx)
	return w.state.Settings, nil
}

// UpdateSettings applies p and persists the result. A failed write is
// returned as a warning; the new settings stay in effect.
func (w *Workspace) UpdateSettings(ctx context.Context, p domain.SettingsPatch) (s domain.Settings, warnings []error, err error) {
	startedAt := time.Now()
	w.mu.Lock()
	defer w.mu.Unlock()
	defer func() { w.observe(ctx, "update-settings", startedAt, nil, warnings, err) }()
	w.ensureStarted(ctx)

	w.state.Settings = w.state.Settings.Apply(p)
	warnings = appendWarning(warnings, w.settings.Save(ctx, w.state.Settings))
	return w.state.Settings, warnings, nil
}

// Login stores the identity assertion as given. Nothing is verified.
func (w *Workspace) Login(ctx context.Context, id domain.Identity) (err error) {
	startedAt := time.Now()
	w.mu.Lock()
	defer w.mu.Unlock()
	defer func() { w.observe(ctx, "login", startedAt, map[string]any{"user_id": id.ID}, nil, err) }()
	w.ensureStarted(ctx)

	if err := w.identity.Save(ctx, id); err != nil {
		return err
	}
	w.state.Identity = &id
	return nil
}

// Logout forgets the stored identity.
func (w *Workspace) Logout(ctx context.Context) (err error) {
	startedAt := time.Now()
	w.mu.Lock()
	defer w.mu.Unlock()
	defer func() { w.observe(ctx, "logout", startedAt, nil, nil, err) }()
	w.ensureStarted(ctx)

	if err := w.identity.Delete(ctx); err != nil {
		return err
	}
	w.state.Identity = nil
	return nil
}

// Whoami returns the signed-in identity, or nil.
func (w *Workspace) Whoami(ctx context.Context) (*domain.Identity, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.ensureStarted(ctx)
	if w.state.Identity == nil {
		return nil, nil
	}
	id := *w.state.Identity
	return &id, nil
}
