// Package settings stores the feature toggles of each owner.
package settings

import (
	"context"

	"github.com/dmitrijs2005/safewalk/internal/server/models"
)

// Repository persists settings. An owner with nothing stored reads as
// models.DefaultSettings.
type Repository interface {
	Get(ctx context.Context, ownerID string) (models.Settings, error)
	Save(ctx context.Context, ownerID string, s models.Settings) error
}
