package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"simorgh/internal/domain/holding"
)

func TestStorage_ReadWrite(t *testing.T) {
	ctx := context.Background()
	s := New()

	_, err := s.Read(ctx)
	assert.ErrorIs(t, err, holding.ErrNoDocument)

	snap := holding.Dehydrate(holding.Default())
	require.NoError(t, s.Write(ctx, snap))

	got, err := s.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, snap, *got)

	got.Subsidiaries[0].Name = "changed"
	again, err := s.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, snap.Subsidiaries[0].Name, again.Subsidiaries[0].Name)
}
