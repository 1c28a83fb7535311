package settings

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/safewalk/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepository_DefaultsThenSave(t *testing.T) {
	r := NewMemoryRepository()
	ctx := context.Background()

	s, err := r.Get(ctx, "o")
	require.NoError(t, err)
	assert.Equal(t, models.DefaultSettings(), s)

	s.NightMode = false
	require.NoError(t, r.Save(ctx, "o", s))

	got, _ := r.Get(ctx, "o")
	assert.False(t, got.NightMode)
	assert.True(t, got.Notifications)

	other, _ := r.Get(ctx, "p")
	assert.True(t, other.NightMode)
}
