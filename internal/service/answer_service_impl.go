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

type sharedAnswerService struct {
	answers   repository.SharedAnswerRepo
	questions repository.QuestionRepo
}

func NewSharedAnswerService(answers repository.SharedAnswerRepo, questions repository.QuestionRepo) SharedAnswerService {
	return &sharedAnswerService{answers: answers, questions: questions}
}

func (s *sharedAnswerService) Share(ctx context.Context, a *domain.SharedAnswer) error {
	a.Text = strings.TrimSpace(a.Text)
	if err := domain.ValidateAnswerText(a.Text); err != nil {
		return err
	}
	// the answer must hang off a real question
	if _, err := s.questions.GetByID(ctx, a.QuestionID); err != nil {
		return fmt.Errorf("sharing answer: %w", err)
	}
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	if a.Author == "" {
		a.Author = "anonymous"
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}
	if err := a.Validate(); err != nil {
		return err
	}
	return s.answers.Create(ctx, a)
}

func (s *sharedAnswerService) GetByID(ctx context.Context, id string) (*domain.SharedAnswer, error) {
	return s.answers.GetByID(ctx, id)
}

func (s *sharedAnswerService) ListByQuestion(ctx context.Context, questionID string) ([]*domain.SharedAnswer, error) {
	return s.answers.ListByQuestion(ctx, questionID)
}

func (s *sharedAnswerService) Delete(ctx context.Context, id string) error {
	if _, err := s.answers.GetByID(ctx, id); err != nil {
		return fmt.Errorf("deleting shared answer: %w", err)
	}
	return s.answers.Delete(ctx, id)
}
