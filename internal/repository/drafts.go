package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/workstats/internal/domain"
)

// DraftRepo persists the three working drafts.
type DraftRepo struct {
	store BlobStore
}

// NewDraftRepo creates a new DraftRepo.
func NewDraftRepo(store BlobStore) *DraftRepo {
	return &DraftRepo{store: store}
}

func draftKey(k domain.Kind) (string, error) {
	switch k {
	case domain.KindPersonnel:
		return KeyDraftPersonnel, nil
	case domain.KindBikes:
		return KeyDraftBikes, nil
	case domain.KindOffice:
		return KeyDraftOffice, nil
	}
	return "", fmt.Errorf("draft %q: %w", k, domain.ErrUnknownKind)
}

// LoadCounts returns the personnel or bikes draft. Unreadable or missing
// drafts come back empty alongside any decode error.
func (r *DraftRepo) LoadCounts(ctx context.Context, k domain.Kind) (domain.CounterMap, error) {
	key, err := draftKey(k)
	if err != nil {
		return domain.CounterMap{}, err
	}
	m := domain.CounterMap{}
	if _, err := loadJSON(ctx, r.store, key, &m); err != nil {
		return domain.CounterMap{}, err
	}
	if m == nil {
		m = domain.CounterMap{}
	}
	return m, nil
}

func (r *DraftRepo) SaveCounts(ctx context.Context, k domain.Kind, m domain.CounterMap) error {
	key, err := draftKey(k)
	if err != nil {
		return err
	}
	if m == nil {
		m = domain.CounterMap{}
	}
	return saveJSON(ctx, r.store, key, m)
}

// LoadOffice returns the office draft, empty when missing or unreadable.
func (r *DraftRepo) LoadOffice(ctx context.Context) (domain.OfficeMap, error) {
	m := domain.OfficeMap{}
	if _, err := loadJSON(ctx, r.store, KeyDraftOffice, &m); err != nil {
		return domain.OfficeMap{}, err
	}
	if m == nil {
		m = domain.OfficeMap{}
	}
	return m, nil
}

func (r *DraftRepo) SaveOffice(ctx context.Context, m domain.OfficeMap) error {
	if m == nil {
		m = domain.OfficeMap{}
	}
	return saveJSON(ctx, r.store, KeyDraftOffice, m)
}

// Clear removes the stored draft for a kind.
func (r *DraftRepo) Clear(ctx context.Context, k domain.Kind) error {
	key, err := draftKey(k)
	if err != nil {
		return err
	}
	return r.store.Delete(ctx, key)
}
