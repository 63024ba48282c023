package app

import (
	"context"

	"github.com/alexanderramin/workstats/internal/analysis"
	"github.com/alexanderramin/workstats/internal/domain"
)

type ColdStartUseCase interface {
	ColdStart(ctx context.Context) (*ColdStartResult, error)
}

type CounterUseCase interface {
	Counts(ctx context.Context, k domain.Kind) (domain.CounterMap, error)
	Adjust(ctx context.Context, k domain.Kind, key string, delta int) (*MutationResult, error)
	ClearDraft(ctx context.Context, k domain.Kind) (*MutationResult, error)
}

type OfficeUseCase interface {
	Office(ctx context.Context) (domain.OfficeMap, error)
	SetOffice(ctx context.Context, room, item string, v domain.OfficeValue) (*MutationResult, error)
}

type AttachmentUseCase interface {
	Images(ctx context.Context) (domain.AttachmentSet, error)
	AttachImage(ctx context.Context, a domain.Attachment) (*MutationResult, error)
	RemoveImage(ctx context.Context, index int) (*MutationResult, error)
	ClearImages(ctx context.Context) (*MutationResult, error)
}

type SubmitUseCase interface {
	Submit(ctx context.Context, k domain.Kind) (*SubmitResult, error)
	SyncOffice(ctx context.Context, room string) (*SubmitResult, error)
}

type HistoryUseCase interface {
	History(ctx context.Context) ([]domain.HistoryEntry, error)
	GroupedHistory(ctx context.Context) ([]domain.DayGroup, error)
	ClearHistory(ctx context.Context) (*MutationResult, error)
	Analyze(ctx context.Context) (*analysis.Summary, error)
}

type SettingsUseCase interface {
	Settings(ctx context.Context) (domain.Settings, error)
	UpdateSettings(ctx context.Context, p domain.SettingsPatch) (domain.Settings, []error, error)
}

type IdentityUseCase interface {
	Login(ctx context.Context, id domain.Identity) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) (*domain.Identity, error)
}
