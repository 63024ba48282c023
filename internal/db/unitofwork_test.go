package db_test

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/workstats/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestUoW(t *testing.T) (*db.SQLiteUnitOfWork, db.DBTX) {
	t.Helper()
	database, err := db.OpenDB(db.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return db.NewSQLiteUnitOfWork(database), database
}

func putBlob(ctx context.Context, tx db.DBTX, key, val string) error {
	_, err := tx.ExecContext(ctx,
		`INSERT OR REPLACE INTO blobs (key, value, updated_at) VALUES (?, ?, '2024-01-01T00:00:00Z')`,
		key, []byte(val))
	return err
}

func readBlob(t *testing.T, conn db.DBTX, key string) (string, bool) {
	t.Helper()
	var val []byte
	err := conn.QueryRowContext(context.Background(), `SELECT value FROM blobs WHERE key = ?`, key).Scan(&val)
	if err != nil {
		return "", false
	}
	return string(val), true
}

func TestWithinTx_CommitsBothWrites(t *testing.T) {
	uow, conn := openTestUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := putBlob(ctx, tx, "ws_history", `[]`); err != nil {
			return err
		}
		return putBlob(ctx, tx, "ws_bike_images", `null`)
	})
	require.NoError(t, err)

	val, found := readBlob(t, conn, "ws_history")
	assert.True(t, found)
	assert.Equal(t, "[]", val)
	_, found = readBlob(t, conn, "ws_bike_images")
	assert.True(t, found)
}

func TestWithinTx_RollbackOnError(t *testing.T) {
	uow, conn := openTestUoW(t)
	boom := errors.New("deliberate failure")

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := putBlob(ctx, tx, "ws_history", `[]`); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	_, found := readBlob(t, conn, "ws_history")
	assert.False(t, found, "row should not exist after rollback")
}

func TestWithinTx_RollbackOnPanic(t *testing.T) {
	uow, conn := openTestUoW(t)

	assert.Panics(t, func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
			_ = putBlob(ctx, tx, "ws_settings", `{}`)
			panic("boom")
		})
	})

	_, found := readBlob(t, conn, "ws_settings")
	assert.False(t, found, "row should not exist after panic rollback")
}
