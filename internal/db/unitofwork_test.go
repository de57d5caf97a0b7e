package db_test

import (
	"context"
	"errors"
	"testing"

	"github.com/sofiebrandt/prepdeck/internal/db"
	"github.com/sofiebrandt/prepdeck/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countDrafts(t *testing.T, conn db.DBTX) int {
	t.Helper()
	var n int
	err := conn.QueryRowContext(context.Background(), `SELECT COUNT(*) FROM drafts`).Scan(&n)
	require.NoError(t, err)
	return n
}

func TestWithinTx_CommitsOnSuccess(t *testing.T) {
	database := testutil.NewTestDB(t)
	uow := db.NewSQLiteUnitOfWork(database)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO drafts (key, value, updated_at) VALUES (?, ?, ?)`,
			"draft:q1", "first pass", "2026-01-01T00:00:00Z")
		return err
	})
	require.NoError(t, err)

	assert.Equal(t, 1, countDrafts(t, database))
}

func TestWithinTx_RollsBackOnError(t *testing.T) {
	database := testutil.NewTestDB(t)
	uow := db.NewSQLiteUnitOfWork(database)

	boom := errors.New("boom")
	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		_, execErr := tx.ExecContext(ctx,
			`INSERT INTO drafts (key, value, updated_at) VALUES (?, ?, ?)`,
			"draft:q1", "first pass", "2026-01-01T00:00:00Z")
		require.NoError(t, execErr)
		return boom
	})
	require.ErrorIs(t, err, boom)

	assert.Equal(t, 0, countDrafts(t, database))
}
