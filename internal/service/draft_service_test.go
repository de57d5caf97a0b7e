package service_test

import (
	"context"
	"testing"

	"github.com/sofiebrandt/prepdeck/internal/repository"
	"github.com/sofiebrandt/prepdeck/internal/service"
	"github.com/sofiebrandt/prepdeck/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDraftService(t *testing.T) service.DraftService {
	t.Helper()
	return service.NewDraftService(repository.NewSQLiteDraftRepo(testutil.NewTestDB(t)))
}

func TestDraftService_SaveLoad(t *testing.T) {
	drafts := newDraftService(t)
	ctx := context.Background()

	require.NoError(t, drafts.Save(ctx, "q-1", "half an answer"))

	got, err := drafts.Load(ctx, "q-1")
	require.NoError(t, err)
	assert.Equal(t, "half an answer", got)
}

func TestDraftService_LoadMissingReturnsEmpty(t *testing.T) {
	drafts := newDraftService(t)

	got, err := drafts.Load(context.Background(), "q-absent")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDraftService_SaveBlankDiscards(t *testing.T) {
	drafts := newDraftService(t)
	ctx := context.Background()

	require.NoError(t, drafts.Save(ctx, "q-1", "text"))
	require.NoError(t, drafts.Save(ctx, "q-1", "   "))

	got, err := drafts.Load(ctx, "q-1")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDraftService_DraftsAreIsolatedPerQuestion(t *testing.T) {
	drafts := newDraftService(t)
	ctx := context.Background()

	require.NoError(t, drafts.Save(ctx, "q-1", "first"))
	require.NoError(t, drafts.Save(ctx, "q-2", "second"))
	require.NoError(t, drafts.Discard(ctx, "q-1"))

	got, err := drafts.Load(ctx, "q-2")
	require.NoError(t, err)
	assert.Equal(t, "second", got)
}
