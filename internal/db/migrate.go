package db

import (
	"database/sql"
	"fmt"
)

// migrations are idempotent schema statements, applied in order on every open.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS questions (
		id               TEXT PRIMARY KEY,
		topic            TEXT NOT NULL,
		experience_level TEXT NOT NULL DEFAULT '',
		text             TEXT NOT NULL,
		source           TEXT NOT NULL DEFAULT 'authored'
		                 CHECK(source IN ('authored','imported','prompted')),
		created_at       TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_questions_topic ON questions(topic)`,

	`CREATE TABLE IF NOT EXISTS shared_answers (
		id          TEXT PRIMARY KEY,
		question_id TEXT NOT NULL REFERENCES questions(id) ON DELETE CASCADE,
		author      TEXT NOT NULL,
		text        TEXT NOT NULL,
		score       INTEGER,
		created_at  TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_shared_answers_question ON shared_answers(question_id)`,

	`CREATE TABLE IF NOT EXISTS drafts (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,
}

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
