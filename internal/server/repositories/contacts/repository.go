// Package contacts stores emergency contacts, one ordered book per owner.
package contacts

import (
	"context"

	"github.com/dmitrijs2005/safewalk/internal/server/models"
)

// Repository persists contacts. Identifiers are assigned by the repository,
// unique within an owner's book and never reused.
type Repository interface {
	// Create assigns ID and CreatedAt and stores the contact.
	Create(ctx context.Context, contact *models.Contact) (*models.Contact, error)
	// List returns the owner's contacts in insertion order.
	List(ctx context.Context, ownerID string) ([]models.Contact, error)
	Get(ctx context.Context, ownerID string, id int64) (*models.Contact, error)
	// Update overwrites name, phone and relationship of an existing contact.
	Update(ctx context.Context, contact *models.Contact) error
	Delete(ctx context.Context, ownerID string, id int64) error
}
