package domain

import (
	"fmt"
	"time"
)

// QuestionSource records where a bank question came from.
type QuestionSource string

const (
	SourceAuthored QuestionSource = "authored"
	SourceImported QuestionSource = "imported"
	SourcePrompted QuestionSource = "prompted"
)

// Question is a practice question stored in the local bank.
type Question struct {
	ID              string          `json:"id"`
	Topic           string          `json:"topic"`
	ExperienceLevel ExperienceLevel `json:"experience_level"`
	Text            string          `json:"text"`
	Source          QuestionSource  `json:"source"`
	CreatedAt       time.Time       `json:"created_at"`
}

// Validate checks the invariants required before persisting a question.
func (q *Question) Validate() error {
	if err := ValidateQuestionText(q.Text); err != nil {
		return err
	}
	if q.Topic == "" {
		return fmt.Errorf("question topic is required")
	}
	if q.ExperienceLevel != "" && !ValidExperienceLevels[string(q.ExperienceLevel)] {
		return fmt.Errorf("unknown experience level %q", q.ExperienceLevel)
	}
	return nil
}

// SharedAnswer is an answer a user published against a bank question,
// optionally with the score its analysis produced.
type SharedAnswer struct {
	ID         string    `json:"id"`
	QuestionID string    `json:"question_id"`
	Author     string    `json:"author"`
	Text       string    `json:"text"`
	Score      *int      `json:"score,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// Validate checks the invariants required before persisting a shared answer.
func (a *SharedAnswer) Validate() error {
	if a.QuestionID == "" {
		return fmt.Errorf("shared answer requires a question id")
	}
	if a.Author == "" {
		return fmt.Errorf("shared answer requires an author")
	}
	return ValidateAnswerText(a.Text)
}
