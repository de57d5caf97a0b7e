package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/sofiebrandt/prepdeck/internal/db"
)

// SQLiteDraftRepo implements DraftRepo using a SQLite database.
type SQLiteDraftRepo struct {
	db db.DBTX
}

// NewSQLiteDraftRepo creates a new SQLiteDraftRepo. Accepts either a *sql.DB
// or a transaction.
func NewSQLiteDraftRepo(conn db.DBTX) *SQLiteDraftRepo {
	return &SQLiteDraftRepo{db: conn}
}

func (r *SQLiteDraftRepo) Put(ctx context.Context, key, value string) error {
	query := `INSERT INTO drafts (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
	_, err := r.db.ExecContext(ctx, query, key, value, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("saving draft: %w", err)
	}
	return nil
}

func (r *SQLiteDraftRepo) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM drafts WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", fmt.Errorf("draft %s: %w", key, ErrNotFound)
		}
		return "", fmt.Errorf("loading draft: %w", err)
	}
	return value, nil
}

func (r *SQLiteDraftRepo) Delete(ctx context.Context, key string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM drafts WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("deleting draft: %w", err)
	}
	return nil
}
