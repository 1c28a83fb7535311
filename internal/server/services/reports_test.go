package services

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/safewalk/internal/common"
	"github.com/dmitrijs2005/safewalk/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportLog_SeverityPerCategory(t *testing.T) {
	f := newFixture(t, fastPolicy())
	ctx := context.Background()

	want := map[string]models.Severity{
		"poor-lighting":       models.SeverityMedium,
		"suspicious-activity": models.SeverityHigh,
		"harassment":          models.SeverityHigh,
		"safe-area":           models.SeveritySafe,
	}
	for cat, sev := range want {
		r, err := f.reports.Submit(ctx, "o", cat, "desc", "")
		require.NoError(t, err)
		assert.Equal(t, sev, r.Severity(), cat)
	}
}

func TestReportLog_SubmitValidation(t *testing.T) {
	f := newFixture(t, fastPolicy())
	ctx := context.Background()

	_, err := f.reports.Submit(ctx, "o", "", "desc", "")
	assert.ErrorIs(t, err, common.ErrValidation)

	_, err = f.reports.Submit(ctx, "o", "poor-lighting", "  ", "")
	assert.ErrorIs(t, err, common.ErrValidation)

	_, err = f.reports.Submit(ctx, "o", "meteor", "desc", "")
	assert.ErrorIs(t, err, common.ErrValidation)

	list, _ := f.reports.List(ctx, "o")
	assert.Empty(t, list)
}

func TestReportLog_ListNewestFirst(t *testing.T) {
	f := newFixture(t, fastPolicy())
	ctx := context.Background()

	now := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	f.reports.now = func() time.Time { return now }

	first, _ := f.reports.Submit(ctx, "o", "safe-area", "a", "")
	now = now.Add(time.Minute)
	second, _ := f.reports.Submit(ctx, "o", "harassment", "b", "Park")

	list, err := f.reports.List(ctx, "o")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)
}

func TestReportLog_Summary(t *testing.T) {
	f := newFixture(t, fastPolicy())
	ctx := context.Background()

	now := time.Date(2025, 5, 10, 12, 0, 0, 0, time.UTC)
	f.reports.now = func() time.Time { return now }

	repo := f.rm.Reports(nil)
	for _, r := range []models.Report{
		{OwnerID: "o", Category: models.CategoryPoorLighting, Description: "a", CreatedAt: now.Add(-2 * time.Hour)},
		{OwnerID: "o", Category: models.CategorySuspiciousActivity, Description: "b", CreatedAt: now.Add(-5 * time.Hour)},
		{OwnerID: "o", Category: models.CategorySafeArea, Description: "c", CreatedAt: now.Add(-30 * time.Hour)},
		{OwnerID: "o", Category: models.CategoryHarassment, Description: "d", CreatedAt: now.Add(-10 * 24 * time.Hour)},
	} {
		_, err := repo.Create(ctx, &r)
		require.NoError(t, err)
	}

	week, err := f.reports.Summary(ctx, "o", 0)
	require.NoError(t, err)
	assert.Equal(t, DefaultSummaryWindow, week.Window)
	assert.Equal(t, 3, week.Total)
	assert.Equal(t, map[models.Severity]int{
		models.SeveritySafe:   1,
		models.SeverityMedium: 1,
		models.SeverityHigh:   1,
	}, week.BySeverity)

	day, err := f.reports.Summary(ctx, "o", 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 2, day.Total)
	assert.Equal(t, 0, day.BySeverity[models.SeveritySafe])
}

func TestReportLog_Remove(t *testing.T) {
	f := newFixture(t, fastPolicy())
	ctx := context.Background()

	r, _ := f.reports.Submit(ctx, "o", "safe-area", "a", "")
	require.NoError(t, f.reports.Remove(ctx, "o", r.ID))
	assert.ErrorIs(t, f.reports.Remove(ctx, "o", r.ID), common.ErrorNotFound)
}
