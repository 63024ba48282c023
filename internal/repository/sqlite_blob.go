package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/workstats/internal/db"
)

// SQLiteBlobStore implements BlobStore on the blobs table.
type SQLiteBlobStore struct {
	db db.DBTX
}

// NewSQLiteBlobStore creates a new SQLiteBlobStore.
func NewSQLiteBlobStore(conn db.DBTX) *SQLiteBlobStore {
	return &SQLiteBlobStore{db: conn}
}

func (r *SQLiteBlobStore) Load(ctx context.Context, key string) ([]byte, error) {
	row := r.db.QueryRowContext(ctx, `SELECT value FROM blobs WHERE key = ?`, key)

	var value []byte
	if err := row.Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("blob %s: %w", key, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning blob %s: %w", key, err)
	}
	return value, nil
}

func (r *SQLiteBlobStore) Save(ctx context.Context, key string, value []byte) error {
	query := `INSERT INTO blobs (key, value, size, updated_at) VALUES (?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, size = excluded.size, updated_at = excluded.updated_at`
	if value == nil {
		value = []byte{}
	}
	if _, err := r.db.ExecContext(ctx, query, key, value, len(value), nowUTC()); err != nil {
		return fmt.Errorf("saving blob %s: %w", key, err)
	}
	return nil
}

func (r *SQLiteBlobStore) Delete(ctx context.Context, key string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM blobs WHERE key = ?`, key); err != nil {
		return fmt.Errorf("deleting blob %s: %w", key, err)
	}
	return nil
}

// SQLiteTransactor runs blob writes inside one SQLite transaction.
type SQLiteTransactor struct {
	uow db.UnitOfWork
}

// NewSQLiteTransactor wraps a UnitOfWork.
func NewSQLiteTransactor(uow db.UnitOfWork) *SQLiteTransactor {
	return &SQLiteTransactor{uow: uow}
}

func (t *SQLiteTransactor) WithinTx(ctx context.Context, fn func(ctx context.Context, store BlobStore) error) error {
	return t.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return fn(ctx, NewSQLiteBlobStore(tx))
	})
}
