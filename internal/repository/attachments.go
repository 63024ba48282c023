package repository

import (
	"context"

	"github.com/alexanderramin/workstats/internal/domain"
)

// AttachmentRepo persists the bike photo draft.
type AttachmentRepo struct {
	store BlobStore
}

// NewAttachmentRepo creates a new AttachmentRepo.
func NewAttachmentRepo(store BlobStore) *AttachmentRepo {
	return &AttachmentRepo{store: store}
}

func (r *AttachmentRepo) Load(ctx context.Context) (domain.AttachmentSet, error) {
	var set domain.AttachmentSet
	if _, err := loadJSON(ctx, r.store, KeyBikeImages, &set); err != nil {
		return nil, err
	}
	return set, nil
}

// Save stores set; an empty set removes the blob.
func (r *AttachmentRepo) Save(ctx context.Context, set domain.AttachmentSet) error {
	if len(set) == 0 {
		return r.Clear(ctx)
	}
	return saveJSON(ctx, r.store, KeyBikeImages, set)
}

func (r *AttachmentRepo) Clear(ctx context.Context) error {
	return r.store.Delete(ctx, KeyBikeImages)
}
