package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sofiebrandt/prepdeck/internal/domain"
	"github.com/sofiebrandt/prepdeck/internal/repository"
)

type questionService struct {
	questions repository.QuestionRepo
}

func NewQuestionService(questions repository.QuestionRepo) QuestionService {
	return &questionService{questions: questions}
}

func (s *questionService) Create(ctx context.Context, q *domain.Question) error {
	q.Text = strings.TrimSpace(q.Text)
	if err := domain.ValidateQuestionText(q.Text); err != nil {
		return err
	}
	if q.ID == "" {
		q.ID = uuid.New().String()
	}
	if q.Source == "" {
		q.Source = domain.SourceAuthored
	}
	if q.CreatedAt.IsZero() {
		q.CreatedAt = time.Now().UTC()
	}
	if err := q.Validate(); err != nil {
		return err
	}
	return s.questions.Create(ctx, q)
}

func (s *questionService) GetByID(ctx context.Context, id string) (*domain.Question, error) {
	return s.questions.GetByID(ctx, id)
}

func (s *questionService) List(ctx context.Context, filter repository.QuestionFilter) ([]*domain.Question, error) {
	return s.questions.List(ctx, filter)
}

func (s *questionService) Delete(ctx context.Context, id string) error {
	if _, err := s.questions.GetByID(ctx, id); err != nil {
		return fmt.Errorf("deleting question: %w", err)
	}
	return s.questions.Delete(ctx, id)
}
