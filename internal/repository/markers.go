package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/workstats/internal/domain"
)

// MarkerRepo persists the last-active period markers. Markers are stored as
// plain text.
type MarkerRepo struct {
	store BlobStore
}

// NewMarkerRepo creates a new MarkerRepo.
func NewMarkerRepo(store BlobStore) *MarkerRepo {
	return &MarkerRepo{store: store}
}

func markerKey(c domain.ResetCadence) string {
	if c == domain.ResetWeekly {
		return KeyLastActiveWeek
	}
	return KeyLastActiveDate
}

// Load returns the stored marker, or "" when none is stored.
func (r *MarkerRepo) Load(ctx context.Context, c domain.ResetCadence) (string, error) {
	raw, err := r.store.Load(ctx, markerKey(c))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("loading marker: %w", err)
	}
	return string(raw), nil
}

func (r *MarkerRepo) Save(ctx context.Context, c domain.ResetCadence, marker string) error {
	return r.store.Save(ctx, markerKey(c), []byte(marker))
}
