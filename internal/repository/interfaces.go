package repository

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no blob is stored under a key.
var ErrNotFound = errors.New("not found")

// Fixed blob keys. Every blob is read and written whole.
const (
	KeySettings       = "ws_settings"
	KeyHistory        = "ws_history"
	KeyDraftPersonnel = "ws_draft_personnel"
	KeyDraftBikes     = "ws_draft_bikes"
	KeyDraftOffice    = "ws_draft_office"
	KeyBikeImages     = "ws_bike_images"
	KeyIdentity       = "ws_user"
	KeyLastActiveDate = "ws_last_active_date"
	KeyLastActiveWeek = "ws_last_active_week"
)

// BlobStore is the durable key/value collaborator behind every repo.
type BlobStore interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Transactor runs fn against a BlobStore whose writes land together.
// Backends without transactions run fn directly.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, store BlobStore) error) error
}

// DirectTransactor runs fn against the wrapped store without a transaction.
type DirectTransactor struct {
	Store BlobStore
}

func (d DirectTransactor) WithinTx(ctx context.Context, fn func(ctx context.Context, store BlobStore) error) error {
	return fn(ctx, d.Store)
}
