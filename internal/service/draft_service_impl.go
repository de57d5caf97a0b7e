package service

import (
	"context"
	"errors"
	"strings"

	"github.com/sofiebrandt/prepdeck/internal/repository"
)

type draftService struct {
	drafts repository.DraftRepo
}

func NewDraftService(drafts repository.DraftRepo) DraftService {
	return &draftService{drafts: drafts}
}

func draftKey(questionID string) string {
	return "draft:" + questionID
}

func (s *draftService) Save(ctx context.Context, questionID, text string) error {
	if strings.TrimSpace(text) == "" {
		// an emptied draft is the same as no draft
		return s.drafts.Delete(ctx, draftKey(questionID))
	}
	return s.drafts.Put(ctx, draftKey(questionID), text)
}

func (s *draftService) Load(ctx context.Context, questionID string) (string, error) {
	text, err := s.drafts.Get(ctx, draftKey(questionID))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", nil
		}
		return "", err
	}
	return text, nil
}

func (s *draftService) Discard(ctx context.Context, questionID string) error {
	return s.drafts.Delete(ctx, draftKey(questionID))
}
