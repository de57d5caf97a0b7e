package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/sofiebrandt/prepdeck/internal/db"
	"github.com/sofiebrandt/prepdeck/internal/domain"
)

// SQLiteQuestionRepo implements QuestionRepo using a SQLite database.
type SQLiteQuestionRepo struct {
	db db.DBTX
}

// NewSQLiteQuestionRepo creates a new SQLiteQuestionRepo. Accepts either a
// *sql.DB or a transaction.
func NewSQLiteQuestionRepo(conn db.DBTX) *SQLiteQuestionRepo {
	return &SQLiteQuestionRepo{db: conn}
}

func (r *SQLiteQuestionRepo) Create(ctx context.Context, q *domain.Question) error {
	query := `INSERT INTO questions (id, topic, experience_level, text, source, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		q.ID,
		q.Topic,
		string(q.ExperienceLevel),
		q.Text,
		string(q.Source),
		q.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting question: %w", err)
	}
	return nil
}

func (r *SQLiteQuestionRepo) GetByID(ctx context.Context, id string) (*domain.Question, error) {
	query := `SELECT id, topic, experience_level, text, source, created_at
		FROM questions WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	q, err := scanQuestion(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("question %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return q, nil
}

func (r *SQLiteQuestionRepo) List(ctx context.Context, filter QuestionFilter) ([]*domain.Question, error) {
	query := `SELECT id, topic, experience_level, text, source, created_at FROM questions`
	var conds []string
	var args []interface{}
	if filter.Topic != "" {
		conds = append(conds, "topic = ?")
		args = append(args, filter.Topic)
	}
	if filter.ExperienceLevel != "" {
		conds = append(conds, "experience_level = ?")
		args = append(args, string(filter.ExperienceLevel))
	}
	for i, c := range conds {
		if i == 0 {
			query += " WHERE " + c
		} else {
			query += " AND " + c
		}
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing questions: %w", err)
	}
	defer rows.Close()

	var questions []*domain.Question
	for rows.Next() {
		q, err := scanQuestion(rows.Scan)
		if err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating questions: %w", err)
	}
	return questions, nil
}

func (r *SQLiteQuestionRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM questions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting question: %w", err)
	}
	return nil
}

// scanQuestion scans one question row through the given scan function.
func scanQuestion(scan func(...interface{}) error) (*domain.Question, error) {
	var q domain.Question
	var level, source, createdAtStr string

	if err := scan(&q.ID, &q.Topic, &level, &q.Text, &source, &createdAtStr); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning question: %w", err)
	}

	q.ExperienceLevel = domain.ExperienceLevel(level)
	q.Source = domain.QuestionSource(source)

	createdAt, err := time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	q.CreatedAt = createdAt
	return &q, nil
}
