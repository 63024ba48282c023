package service

import "github.com/alexanderramin/workstats/internal/app"

var (
	_ app.ColdStartUseCase  = (*Workspace)(nil)
	_ app.CounterUseCase    = (*Workspace)(nil)
	_ app.OfficeUseCase     = (*Workspace)(nil)
	_ app.AttachmentUseCase = (*Workspace)(nil)
	_ app.SubmitUseCase     = (*Workspace)(nil)
	_ app.HistoryUseCase    = (*Workspace)(nil)
	_ app.SettingsUseCase   = (*Workspace)(nil)
	_ app.IdentityUseCase   = (*Workspace)(nil)
)
