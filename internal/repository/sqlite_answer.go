package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/sofiebrandt/prepdeck/internal/db"
	"github.com/sofiebrandt/prepdeck/internal/domain"
)

// SQLiteSharedAnswerRepo implements SharedAnswerRepo using a SQLite database.
type SQLiteSharedAnswerRepo struct {
	db db.DBTX
}

// NewSQLiteSharedAnswerRepo creates a new SQLiteSharedAnswerRepo. Accepts
// either a *sql.DB or a transaction.
func NewSQLiteSharedAnswerRepo(conn db.DBTX) *SQLiteSharedAnswerRepo {
	return &SQLiteSharedAnswerRepo{db: conn}
}

func (r *SQLiteSharedAnswerRepo) Create(ctx context.Context, a *domain.SharedAnswer) error {
	query := `INSERT INTO shared_answers (id, question_id, author, text, score, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	var score interface{}
	if a.Score != nil {
		score = *a.Score
	}
	_, err := r.db.ExecContext(ctx, query,
		a.ID,
		a.QuestionID,
		a.Author,
		a.Text,
		score,
		a.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting shared answer: %w", err)
	}
	return nil
}

func (r *SQLiteSharedAnswerRepo) GetByID(ctx context.Context, id string) (*domain.SharedAnswer, error) {
	query := `SELECT id, question_id, author, text, score, created_at
		FROM shared_answers WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	a, err := scanSharedAnswer(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("shared answer %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return a, nil
}

func (r *SQLiteSharedAnswerRepo) ListByQuestion(ctx context.Context, questionID string) ([]*domain.SharedAnswer, error) {
	query := `SELECT id, question_id, author, text, score, created_at
		FROM shared_answers WHERE question_id = ? ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, questionID)
	if err != nil {
		return nil, fmt.Errorf("listing shared answers: %w", err)
	}
	defer rows.Close()

	var answers []*domain.SharedAnswer
	for rows.Next() {
		a, err := scanSharedAnswer(rows.Scan)
		if err != nil {
			return nil, err
		}
		answers = append(answers, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating shared answers: %w", err)
	}
	return answers, nil
}

func (r *SQLiteSharedAnswerRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM shared_answers WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting shared answer: %w", err)
	}
	return nil
}

func scanSharedAnswer(scan func(...interface{}) error) (*domain.SharedAnswer, error) {
	var a domain.SharedAnswer
	var score sql.NullInt64
	var createdAtStr string

	if err := scan(&a.ID, &a.QuestionID, &a.Author, &a.Text, &score, &createdAtStr); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning shared answer: %w", err)
	}

	if score.Valid {
		v := int(score.Int64)
		a.Score = &v
	}

	createdAt, err := time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	a.CreatedAt = createdAt
	return &a, nil
}
