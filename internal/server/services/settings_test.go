package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/safewalk/internal/common"
	"github.com/dmitrijs2005/safewalk/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsStore_Defaults(t *testing.T) {
	f := newFixture(t, fastPolicy())

	st, err := f.settings.Get(context.Background(), "o")
	require.NoError(t, err)
	assert.Equal(t, models.DefaultSettings(), st)
}

func TestSettingsStore_SetThenGet(t *testing.T) {
	f := newFixture(t, fastPolicy())
	ctx := context.Background()

	st, err := f.settings.Set(ctx, "o", "nightMode", false)
	require.NoError(t, err)
	assert.False(t, st.NightMode)

	v, err := f.settings.Flag(ctx, "o", "nightMode")
	require.NoError(t, err)
	assert.False(t, v)

	v, err = f.settings.Flag(ctx, "o", "notifications")
	require.NoError(t, err)
	assert.True(t, v)
}

func TestSettingsStore_UnknownFlag(t *testing.T) {
	f := newFixture(t, fastPolicy())
	ctx := context.Background()

	_, err := f.settings.Set(ctx, "o", "unknownFlag", true)
	require.ErrorIs(t, err, common.ErrConfiguration)

	var ce *common.ConfigurationError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "unknownFlag", ce.Flag)

	_, err = f.settings.Flag(ctx, "o", "NightMode")
	assert.ErrorIs(t, err, common.ErrConfiguration)

	st, _ := f.settings.Get(ctx, "o")
	assert.Equal(t, models.DefaultSettings(), st)
}
