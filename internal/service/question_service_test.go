package service_test

import (
	"context"
	"strings"
	"testing"

	"github.com/sofiebrandt/prepdeck/internal/domain"
	"github.com/sofiebrandt/prepdeck/internal/repository"
	"github.com/sofiebrandt/prepdeck/internal/service"
	"github.com/sofiebrandt/prepdeck/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newQuestionService(t *testing.T) (service.QuestionService, repository.QuestionRepo) {
	t.Helper()
	repo := repository.NewSQLiteQuestionRepo(testutil.NewTestDB(t))
	return service.NewQuestionService(repo), repo
}

func TestQuestionService_CreateFillsDefaults(t *testing.T) {
	svc, _ := newQuestionService(t)
	ctx := context.Background()

	q := &domain.Question{
		Topic:           "pricing",
		ExperienceLevel: domain.ExperienceMid,
		Text:            "  How would you reposition a commodity product?  ",
	}
	require.NoError(t, svc.Create(ctx, q))

	assert.NotEmpty(t, q.ID)
	assert.Equal(t, domain.SourceAuthored, q.Source)
	assert.False(t, q.CreatedAt.IsZero())
	assert.Equal(t, "How would you reposition a commodity product?", q.Text)

	got, err := svc.GetByID(ctx, q.ID)
	require.NoError(t, err)
	assert.Equal(t, q.Text, got.Text)
}

func TestQuestionService_CreateRejectsShortText(t *testing.T) {
	svc, _ := newQuestionService(t)

	err := svc.Create(context.Background(), &domain.Question{
		Topic:           "pricing",
		ExperienceLevel: domain.ExperienceMid,
		Text:            "why?",
	})
	require.Error(t, err)
	assert.True(t, domain.IsTooShort(err))
}

func TestQuestionService_CreateRejectsWhitespacePadding(t *testing.T) {
	svc, _ := newQuestionService(t)

	// trimmed length is what counts
	err := svc.Create(context.Background(), &domain.Question{
		Topic:           "pricing",
		ExperienceLevel: domain.ExperienceMid,
		Text:            "   why?   " + strings.Repeat(" ", 20),
	})
	assert.True(t, domain.IsTooShort(err))
}

func TestQuestionService_DeleteMissing(t *testing.T) {
	svc, _ := newQuestionService(t)

	err := svc.Delete(context.Background(), "absent")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestQuestionService_ListFilter(t *testing.T) {
	svc, _ := newQuestionService(t)
	ctx := context.Background()

	require.NoError(t, svc.Create(ctx, &domain.Question{
		Topic: "pricing", ExperienceLevel: domain.ExperienceMid,
		Text: "How would you price a freemium tier?",
	}))
	require.NoError(t, svc.Create(ctx, &domain.Question{
		Topic: "growth", ExperienceLevel: domain.ExperienceMid,
		Text: "Which channel would you invest in first?",
	}))

	got, err := svc.List(ctx, repository.QuestionFilter{Topic: "growth"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "growth", got[0].Topic)
}
