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

func answerFixture(questionID string) *domain.SharedAnswer {
	return &domain.SharedAnswer{
		QuestionID: questionID,
		Text:       strings.Repeat("Lead with the customer problem, then the tradeoffs. ", 2),
	}
}

func newAnswerService(t *testing.T) (service.SharedAnswerService, service.QuestionService) {
	t.Helper()
	database := testutil.NewTestDB(t)
	questions := repository.NewSQLiteQuestionRepo(database)
	answers := repository.NewSQLiteSharedAnswerRepo(database)
	return service.NewSharedAnswerService(answers, questions), service.NewQuestionService(questions)
}

func TestSharedAnswerService_Share(t *testing.T) {
	answers, questions := newAnswerService(t)
	ctx := context.Background()

	q := &domain.Question{
		Topic: "pricing", ExperienceLevel: domain.ExperienceMid,
		Text: "How would you price a freemium tier?",
	}
	require.NoError(t, questions.Create(ctx, q))

	a := answerFixture(q.ID)
	require.NoError(t, answers.Share(ctx, a))

	assert.NotEmpty(t, a.ID)
	assert.Equal(t, "anonymous", a.Author)
	assert.False(t, a.CreatedAt.IsZero())

	list, err := answers.ListByQuestion(ctx, q.ID)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestSharedAnswerService_ShareRequiresQuestion(t *testing.T) {
	answers, _ := newAnswerService(t)

	err := answers.Share(context.Background(), answerFixture("no-such-question"))
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestSharedAnswerService_ShareRejectsShortText(t *testing.T) {
	answers, questions := newAnswerService(t)
	ctx := context.Background()

	q := &domain.Question{
		Topic: "pricing", ExperienceLevel: domain.ExperienceMid,
		Text: "How would you price a freemium tier?",
	}
	require.NoError(t, questions.Create(ctx, q))

	a := answerFixture(q.ID)
	a.Text = "too brief"
	err := answers.Share(ctx, a)
	assert.True(t, domain.IsTooShort(err))
}

func TestSharedAnswerService_DeleteMissing(t *testing.T) {
	answers, _ := newAnswerService(t)

	err := answers.Delete(context.Background(), "absent")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
