package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/workstats/internal/app"
	"github.com/alexanderramin/workstats/internal/domain"
)

// ColdStart loads persisted state, applies the reset policy and rehydrates
// the bike attachments. It runs once per workspace; later calls return the
// first result.
func (w *Workspace) ColdStart(ctx context.Context) (res *app.ColdStartResult, err error) {
	startedAt := time.Now()
	w.mu.Lock()
	defer w.mu.Unlock()

	fresh := !w.started
	w.ensureStarted(ctx)
	res = w.boot
	if fresh {
		w.observe(ctx, "cold-start", startedAt, map[string]any{
			"daily_reset":       res.Daily.Discard,
			"weekly_reset":      res.Weekly.Discard,
			"rehydrated_images": res.RehydratedImages,
		}, res.Warnings, nil)
	}
	return res, nil
}

func (w *Workspace) coldStart(ctx context.Context) *app.ColdStartResult {
	res := &app.ColdStartResult{}
	warn := func(err error) {
		if err != nil {
			res.Warnings = append(res.Warnings, err)
		}
	}
	// Load failures fall back to empty defaults and are only logged.
	logLoad := func(what string, err error) {
		if err != nil {
			w.logger.WarnContext(ctx, "load_failed", "blob", what, "error", err.Error())
		}
	}
	now := w.now()
	state := emptyState()

	var err error
	state.Settings, err = w.settings.Load(ctx)
	logLoad("settings", err)
	state.Identity, err = w.identity.Load(ctx)
	logLoad("identity", err)
	state.History, err = w.history.Load(ctx)
	logLoad("history", err)

	// Personnel and bikes reset together, so one lastActiveDate marker
	// covers both. Office keeps its own weekly marker below.
	stored, err := w.markers.Load(ctx, domain.ResetDaily)
	logLoad("last active date", err)
	res.Daily = domain.EvaluateReset(domain.ResetDaily, stored, now, w.loc)
	if res.Daily.Discard {
		warn(w.drafts.SaveCounts(ctx, domain.KindPersonnel, state.Personnel))
		warn(w.drafts.SaveCounts(ctx, domain.KindBikes, state.Bikes))
		warn(w.images.Clear(ctx))
		warn(w.markers.Save(ctx, domain.ResetDaily, res.Daily.Current))
	} else {
		state.Personnel, err = w.drafts.LoadCounts(ctx, domain.KindPersonnel)
		logLoad("personnel draft", err)
		state.Bikes, err = w.drafts.LoadCounts(ctx, domain.KindBikes)
		logLoad("bikes draft", err)
		state.BikeImages, err = w.images.Load(ctx)
		logLoad("bike images", err)
	}

	stored, err = w.markers.Load(ctx, domain.ResetWeekly)
	logLoad("last active week", err)
	res.Weekly = domain.EvaluateReset(domain.ResetWeekly, stored, now, w.loc)
	if res.Weekly.Discard {
		warn(w.drafts.SaveOffice(ctx, state.Office))
		warn(w.markers.Save(ctx, domain.ResetWeekly, res.Weekly.Current))
	} else {
		state.Office, err = w.drafts.LoadOffice(ctx)
		logLoad("office draft", err)
	}

	// An empty draft set picks up the photos of today's bikes submit.
	if len(state.BikeImages) == 0 {
		if e, ok := state.History.FindForDay(domain.KindBikes, now, w.loc); ok && len(e.Images) > 0 {
			state.BikeImages = e.Images.Clone()
			res.RehydratedImages = len(state.BikeImages)
			if err := w.images.Save(ctx, state.BikeImages); err != nil {
				warn(fmt.Errorf("persisting rehydrated images: %w", err))
			}
		}
	}

	w.state = state
	return res
}
