package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/alexanderramin/workstats/internal/analysis"
	"github.com/alexanderramin/workstats/internal/app"
	"github.com/alexanderramin/workstats/internal/domain"
	"github.com/alexanderramin/workstats/internal/repository"
	"github.com/alexanderramin/workstats/internal/webhook"
	"github.com/google/uuid"
)

// AppState is everything the workspace holds in memory between cold starts.
type AppState struct {
	Settings   domain.Settings
	Personnel  domain.CounterMap
	Bikes      domain.CounterMap
	Office     domain.OfficeMap
	BikeImages domain.AttachmentSet
	History    domain.Ledger
	Identity   *domain.Identity
}

func emptyState() AppState {
	return AppState{
		Settings:  domain.DefaultSettings(),
		Personnel: domain.CounterMap{},
		Bikes:     domain.CounterMap{},
		Office:    domain.OfficeMap{},
	}
}

// Workspace is the root controller. It owns the application state, mirrors
// every mutation to the blob store and runs the submit flows.
type Workspace struct {
	mu sync.Mutex

	store    repository.BlobStore
	tx       repository.Transactor
	drafts   *repository.DraftRepo
	history  *repository.HistoryRepo
	images   *repository.AttachmentRepo
	settings *repository.SettingsRepo
	identity *repository.IdentityRepo
	markers  *repository.MarkerRepo

	sender     webhook.Sender
	summarizer analysis.Summarizer
	observer   UseCaseObserver
	logger     *slog.Logger
	now        func() time.Time
	loc        *time.Location
	newID      func() string

	state   AppState
	started bool
	boot    *app.ColdStartResult
}

// Option configures a Workspace.
type Option func(*Workspace)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(w *Workspace) { w.now = now }
}

// WithLocation sets the zone used for calendar days and ISO weeks.
func WithLocation(loc *time.Location) Option {
	return func(w *Workspace) { w.loc = loc }
}

// WithTransactor groups multi-blob writes.
func WithTransactor(tx repository.Transactor) Option {
	return func(w *Workspace) { w.tx = tx }
}

// WithSender enables webhook sync.
func WithSender(s webhook.Sender) Option {
	return func(w *Workspace) { w.sender = s }
}

// WithSummarizer sets the history analyzer.
func WithSummarizer(s analysis.Summarizer) Option {
	return func(w *Workspace) { w.summarizer = s }
}

// WithObserver receives one event per use case.
func WithObserver(o UseCaseObserver) Option {
	return func(w *Workspace) { w.observer = o }
}

// WithLogger receives load and persistence warnings.
func WithLogger(l *slog.Logger) Option {
	return func(w *Workspace) { w.logger = l }
}

// WithIDGenerator overrides history entry ids.
func WithIDGenerator(f func() string) Option {
	return func(w *Workspace) { w.newID = f }
}

// NewWorkspace creates a Workspace over store. ColdStart runs lazily on the
// first use case if the caller does not run it explicitly.
func NewWorkspace(store repository.BlobStore, opts ...Option) *Workspace {
	w := &Workspace{
		store:    store,
		drafts:   repository.NewDraftRepo(store),
		history:  repository.NewHistoryRepo(store),
		images:   repository.NewAttachmentRepo(store),
		settings: repository.NewSettingsRepo(store),
		identity: repository.NewIdentityRepo(store),
		markers:  repository.NewMarkerRepo(store),
		observer: NoopUseCaseObserver{},
		logger:   slog.New(slog.DiscardHandler),
		now:      time.Now,
		loc:      time.Local,
		newID:    func() string { return uuid.New().String() },
		state:    emptyState(),
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.tx == nil {
		w.tx = repository.DirectTransactor{Store: store}
	}
	if w.summarizer == nil {
		w.summarizer = analysis.NewDeterministicSummarizer(w.loc)
	}
	if w.observer == nil {
		w.observer = NoopUseCaseObserver{}
	}
	return w
}

// Location returns the zone used for calendar days.
func (w *Workspace) Location() *time.Location {
	return w.loc
}

// Now returns the workspace clock.
func (w *Workspace) Now() time.Time {
	return w.now()
}

// ensureStarted runs the cold start once. Callers hold w.mu.
func (w *Workspace) ensureStarted(ctx context.Context) {
	if w.started {
		return
	}
	w.boot = w.coldStart(ctx)
	w.started = true
}
