// Package reports stores community safety reports.
package reports

import (
	"context"

	"github.com/dmitrijs2005/safewalk/internal/server/models"
)

// Repository persists reports. Reports are never modified after Create.
type Repository interface {
	// Create assigns ID and, when unset, CreatedAt.
	Create(ctx context.Context, report *models.Report) (*models.Report, error)
	// List returns the owner's reports newest first; ties are broken by
	// descending ID.
	List(ctx context.Context, ownerID string) ([]models.Report, error)
	Get(ctx context.Context, ownerID string, id int64) (*models.Report, error)
	Delete(ctx context.Context, ownerID string, id int64) error
}
