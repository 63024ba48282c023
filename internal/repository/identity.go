package repository

import (
	"context"

	"github.com/alexanderramin/workstats/internal/domain"
)

// IdentityRepo persists the signed-in user.
type IdentityRepo struct {
	store BlobStore
}

// NewIdentityRepo creates a new IdentityRepo.
func NewIdentityRepo(store BlobStore) *IdentityRepo {
	return &IdentityRepo{store: store}
}

// Load returns nil when nobody is signed in.
func (r *IdentityRepo) Load(ctx context.Context) (*domain.Identity, error) {
	var id domain.Identity
	found, err := loadJSON(ctx, r.store, KeyIdentity, &id)
	if err != nil || !found {
		return nil, err
	}
	return &id, nil
}

func (r *IdentityRepo) Save(ctx context.Context, id domain.Identity) error {
	return saveJSON(ctx, r.store, KeyIdentity, id)
}

func (r *IdentityRepo) Delete(ctx context.Context) error {
	return r.store.Delete(ctx, KeyIdentity)
}
