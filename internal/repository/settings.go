package repository

import (
	"context"

	"github.com/alexanderramin/workstats/internal/domain"
)

// SettingsRepo persists user preferences.
type SettingsRepo struct {
	store BlobStore
}

// NewSettingsRepo creates a new SettingsRepo.
func NewSettingsRepo(store BlobStore) *SettingsRepo {
	return &SettingsRepo{store: store}
}

// Load returns the stored settings merged over defaults.
func (r *SettingsRepo) Load(ctx context.Context) (domain.Settings, error) {
	s := domain.DefaultSettings()
	if _, err := loadJSON(ctx, r.store, KeySettings, &s); err != nil {
		return domain.DefaultSettings(), err
	}
	return s.Normalize(), nil
}

func (r *SettingsRepo) Save(ctx context.Context, s domain.Settings) error {
	return saveJSON(ctx, r.store, KeySettings, s)
}
