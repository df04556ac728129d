package training

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"simorgh/internal/core/apperror"
	"simorgh/internal/domain/holding"
	"simorgh/pkg/logger"
)

type stubStorage struct{}

func (stubStorage) Read(context.Context) (*holding.Snapshot, error) {
	return nil, holding.ErrNoDocument
}

func (stubStorage) Write(context.Context, holding.Snapshot) error { return nil }

func newService(t *testing.T) *Service {
	t.Helper()
	store := holding.NewStore(stubStorage{}, logger.Nop())
	store.Load(context.Background())
	return NewService(store)
}

func TestService_PublicHidesInactiveAndSolutions(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	hidden, err := svc.Create(ctx, holding.TrainingModule{
		Title:    "Hidden",
		IsActive: false,
	})
	require.NoError(t, err)

	visible, err := svc.Create(ctx, holding.TrainingModule{
		Title:    "Visible solution",
		IsActive: true,
		Assignment: holding.Assignment{
			Solution:          "42",
			IsSolutionVisible: true,
			SolutionFiles:     []holding.File{{Name: "answer.pdf", URL: "/files/answer.pdf"}},
		},
	})
	require.NoError(t, err)

	public, err := svc.Public()
	require.NoError(t, err)

	byID := make(map[string]holding.TrainingModule, len(public))
	for _, m := range public {
		byID[m.ID] = m
	}
	assert.NotContains(t, byID, hidden.ID)

	onboarding := byID["module-onboarding"]
	assert.Empty(t, onboarding.Assignment.Solution)
	assert.NotNil(t, onboarding.Assignment.SolutionFiles)

	assert.Equal(t, "42", byID[visible.ID].Assignment.Solution)
	assert.Len(t, byID[visible.ID].Assignment.SolutionFiles, 1)

	all, err := svc.List()
	require.NoError(t, err)
	assert.Len(t, all, 3)
	full, err := svc.Get("module-onboarding")
	require.NoError(t, err)
	assert.NotEmpty(t, full.Assignment.Solution, "admin view keeps the solution")
}

func TestService_CreateAssignsIDAndNormalizesFiles(t *testing.T) {
	svc := newService(t)

	created, err := svc.Create(context.Background(), holding.TrainingModule{ID: "ignored", Title: "New"})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(created.ID, "module-"))
	assert.NotEqual(t, "ignored", created.ID)
	assert.NotNil(t, created.Assignment.QuestionFiles)
	assert.NotNil(t, created.Assignment.SolutionFiles)

	_, err = svc.Create(context.Background(), holding.TrainingModule{Title: "  "})
	assert.True(t, apperror.HasCode(err, apperror.CodeValidation))
}

func TestService_UpdateAndDelete(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	updated, err := svc.Update(ctx, "module-onboarding", holding.TrainingModule{Title: "Onboarding v2", IsActive: true})
	require.NoError(t, err)
	assert.Equal(t, "module-onboarding", updated.ID)

	got, err := svc.Get("module-onboarding")
	require.NoError(t, err)
	assert.Equal(t, "Onboarding v2", got.Title)

	_, err = svc.Update(ctx, "missing", holding.TrainingModule{Title: "x"})
	assert.True(t, apperror.IsNotFound(err))

	require.NoError(t, svc.Delete(ctx, "module-onboarding"))
	_, err = svc.Get("module-onboarding")
	assert.True(t, apperror.IsNotFound(err))
}
