package company

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"simorgh/internal/core/apperror"
	"simorgh/internal/domain/holding"
	"simorgh/pkg/logger"
)

type stubStorage struct {
	mu       sync.Mutex
	writeErr error
	writes   int
}

func (s *stubStorage) Read(context.Context) (*holding.Snapshot, error) {
	return nil, holding.ErrNoDocument
}

func (s *stubStorage) Write(context.Context, holding.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writes++
	return s.writeErr
}

func newService(t *testing.T) (*Service, *stubStorage) {
	t.Helper()
	storage := &stubStorage{}
	store := holding.NewStore(storage, logger.Nop())
	store.Load(context.Background())
	return NewService(store), storage
}

func TestSlugFromName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Simorgh Tech", "simorgh-tech"},
		{"  Alpha   Beta  ", "alpha-beta"},
		{"R&D Labs!", "rd-labs"},
		{"already-slugged", "already-slugged"},
		{"شرکت نمونه", "-"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SlugFromName(tt.name))
		})
	}
}

func TestNormalizeSlug(t *testing.T) {
	assert.Equal(t, "my-company", NormalizeSlug("My Company"))
	assert.Equal(t, "a-b", NormalizeSlug("a__&&b"))
	assert.Equal(t, "ok-1", NormalizeSlug("ok-1"))
}

func TestService_Create(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, holding.Company{Name: "Simorgh Energy"})
	require.NoError(t, err)
	assert.Equal(t, "simorgh-energy", created.Slug)

	got, err := svc.Get("simorgh-energy")
	require.NoError(t, err)
	assert.Equal(t, "Simorgh Energy", got.Name)

	_, err = svc.Create(ctx, holding.Company{Name: "Another", Slug: "Simorgh Energy"})
	assert.True(t, apperror.HasCode(err, apperror.CodeDuplicate))
	assert.Equal(t, 409, apperror.GetHTTPStatus(err))

	_, err = svc.Create(ctx, holding.Company{Name: "شرکت"})
	assert.True(t, apperror.HasCode(err, apperror.CodeValidation))

	_, err = svc.Create(ctx, holding.Company{Slug: "no-name"})
	assert.True(t, apperror.HasCode(err, apperror.CodeValidation))

	list, err := svc.List()
	require.NoError(t, err)
	assert.Len(t, list, 3)
}

func TestService_UpdateKeepsSlugAndChart(t *testing.T) {
	svc, _ := newService(t)

	saved, err := svc.Update(context.Background(), "simorgh-tech", holding.Company{
		Slug: "renamed",
		Name: "Simorgh Technology",
	})
	require.NoError(t, err)
	assert.Equal(t, "simorgh-tech", saved.Slug)
	assert.Len(t, saved.OrganizationalChart, 3)

	_, err = svc.Get("renamed")
	assert.True(t, apperror.IsNotFound(err))

	_, err = svc.Update(context.Background(), "missing", holding.Company{Name: "X"})
	assert.True(t, apperror.IsNotFound(err))
}

func TestService_Delete(t *testing.T) {
	svc, storage := newService(t)

	require.NoError(t, svc.Delete(context.Background(), "simorgh-logistics"))
	list, _ := svc.List()
	assert.Len(t, list, 1)

	storage.writeErr = errors.New("offline")
	err := svc.Delete(context.Background(), "simorgh-tech")
	assert.True(t, apperror.IsNotDurable(err))
	list, _ = svc.List()
	assert.Empty(t, list)

	err = svc.Delete(context.Background(), "simorgh-tech")
	assert.True(t, apperror.IsNotFound(err))
}
