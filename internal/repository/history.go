package repository

import (
	"context"

	"github.com/alexanderramin/workstats/internal/domain"
)

// HistoryRepo persists the ledger as one ordered array.
type HistoryRepo struct {
	store BlobStore
}

// NewHistoryRepo creates a new HistoryRepo.
func NewHistoryRepo(store BlobStore) *HistoryRepo {
	return &HistoryRepo{store: store}
}

// Load returns the stored ledger; an empty ledger when missing or unreadable.
func (r *HistoryRepo) Load(ctx context.Context) (domain.Ledger, error) {
	var entries []domain.HistoryEntry
	if _, err := loadJSON(ctx, r.store, KeyHistory, &entries); err != nil {
		return domain.Ledger{}, err
	}
	return domain.Ledger{Entries: entries}, nil
}

func (r *HistoryRepo) Save(ctx context.Context, l domain.Ledger) error {
	entries := l.Entries
	if entries == nil {
		entries = []domain.HistoryEntry{}
	}
	return saveJSON(ctx, r.store, KeyHistory, entries)
}

func (r *HistoryRepo) Clear(ctx context.Context) error {
	return r.store.Delete(ctx, KeyHistory)
}
