package app

import (
	"errors"

	"github.com/alexanderramin/workstats/internal/domain"
)

// ColdStartResult reports what the reset policy and attachment
// rehydration did when the workspace was opened.
type ColdStartResult struct {
	Daily            domain.ResetDecision
	Weekly           domain.ResetDecision
	RehydratedImages int
	Warnings         []error
}

// MutationResult is returned by every draft edit. Warnings carry
// persistence failures; the in-memory edit has still been applied.
type MutationResult struct {
	Value    int
	Written  bool
	Count    int
	Warnings []error
}

// SyncStatus describes a webhook attempt.
type SyncStatus struct {
	Attempted bool
	Sent      bool
	Err       error
}

// SubmitResult is returned by the submit flows.
type SubmitResult struct {
	Report   string
	Entry    *domain.HistoryEntry
	Replaced bool
	Sync     SyncStatus
	Warnings []error
}

// Saved reports whether a history entry was written.
func (r *SubmitResult) Saved() bool {
	return r != nil && r.Entry != nil
}

// Warning folds a list of warnings into one error, or nil.
func Warning(ws []error) error {
	return errors.Join(ws...)
}
