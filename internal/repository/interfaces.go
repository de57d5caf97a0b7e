package repository

import (
	"context"
	"errors"

	"github.com/sofiebrandt/prepdeck/internal/domain"
)

// ErrNotFound indicates the requested row does not exist.
var ErrNotFound = errors.New("not found")

// QuestionFilter narrows question listings. Zero values match everything.
type QuestionFilter struct {
	Topic           string
	ExperienceLevel domain.ExperienceLevel
}

type QuestionRepo interface {
	Create(ctx context.Context, q *domain.Question) error
	GetByID(ctx context.Context, id string) (*domain.Question, error)
	List(ctx context.Context, filter QuestionFilter) ([]*domain.Question, error)
	Delete(ctx context.Context, id string) error
}

type SharedAnswerRepo interface {
	Create(ctx context.Context, a *domain.SharedAnswer) error
	GetByID(ctx context.Context, id string) (*domain.SharedAnswer, error)
	ListByQuestion(ctx context.Context, questionID string) ([]*domain.SharedAnswer, error)
	Delete(ctx context.Context, id string) error
}

// DraftRepo is a key-value store for in-progress text, keyed by the
// draft:{questionID} scheme. Injected rather than ambient so tests can fake it.
type DraftRepo interface {
	Put(ctx context.Context, key, value string) error
	Get(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
}
