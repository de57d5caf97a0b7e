package service

import (
	"context"

	"github.com/sofiebrandt/prepdeck/internal/domain"
	"github.com/sofiebrandt/prepdeck/internal/repository"
)

type QuestionService interface {
	Create(ctx context.Context, q *domain.Question) error
	GetByID(ctx context.Context, id string) (*domain.Question, error)
	List(ctx context.Context, filter repository.QuestionFilter) ([]*domain.Question, error)
	Delete(ctx context.Context, id string) error
}

type SharedAnswerService interface {
	Share(ctx context.Context, a *domain.SharedAnswer) error
	GetByID(ctx context.Context, id string) (*domain.SharedAnswer, error)
	ListByQuestion(ctx context.Context, questionID string) ([]*domain.SharedAnswer, error)
	Delete(ctx context.Context, id string) error
}

// DraftService stores in-progress answer text per question so that a half
// written answer survives navigating away from the Answer step.
type DraftService interface {
	Save(ctx context.Context, questionID, text string) error
	Load(ctx context.Context, questionID string) (string, error)
	Discard(ctx context.Context, questionID string) error
}

// ImportReport holds the outcome of a question bank import.
type ImportReport struct {
	QuestionCount int
	AnswerCount   int
	Topics        []string
}

type ImportService interface {
	ImportBank(ctx context.Context, filePath string) (*ImportReport, error)
}
