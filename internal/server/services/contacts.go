// Package services contains the server-side state model: the contact book,
// the report log, the settings store, emergency alerts and sessions. Every
// operation is scoped to the owner carried by the caller's session.
package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/safewalk/internal/dbx"
	"github.com/dmitrijs2005/safewalk/internal/server/models"
	"github.com/dmitrijs2005/safewalk/internal/server/repositories/repomanager"
)

// ContactBook manages the emergency contacts of each owner.
type ContactBook struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewContactBook constructs a ContactBook. db may be nil for in-memory storage.
func NewContactBook(db *sql.DB, m repomanager.RepositoryManager) *ContactBook {
	return &ContactBook{db: db, repomanager: m}
}

// List returns the owner's contacts in the order they were added.
func (s *ContactBook) List(ctx context.Context, ownerID string) ([]models.Contact, error) {
	list, err := s.repomanager.Contacts(s.db).List(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("error listing contacts: %w", err)
	}
	return list, nil
}

// Add validates the input and appends a new contact. An empty relationship
// defaults to Friend.
func (s *ContactBook) Add(ctx context.Context, ownerID, name, phone, relationship string) (*models.Contact, error) {
	c, err := models.NewContact(ownerID, name, phone, relationship)
	if err != nil {
		return nil, err
	}

	created, err := s.repomanager.Contacts(s.db).Create(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("error adding contact: %w", err)
	}
	return created, nil
}

// Get returns one contact or common.ErrorNotFound.
func (s *ContactBook) Get(ctx context.Context, ownerID string, id int64) (*models.Contact, error) {
	c, err := s.repomanager.Contacts(s.db).Get(ctx, ownerID, id)
	if err != nil {
		return nil, fmt.Errorf("error getting contact %d: %w", id, err)
	}
	return c, nil
}

// Update replaces name, phone and relationship of an existing contact. The
// ID and creation time are kept.
func (s *ContactBook) Update(ctx context.Context, ownerID string, id int64, name, phone, relationship string) (*models.Contact, error) {
	c, err := models.NewContact(ownerID, name, phone, relationship)
	if err != nil {
		return nil, err
	}
	c.ID = id

	var updated *models.Contact
	err = dbx.RunInTx(ctx, s.db, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Contacts(tx)
		if err := repo.Update(ctx, c); err != nil {
			return err
		}
		var err error
		updated, err = repo.Get(ctx, ownerID, id)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("error updating contact %d: %w", id, err)
	}
	return updated, nil
}

// Remove deletes a contact. Its ID is not handed out again.
func (s *ContactBook) Remove(ctx context.Context, ownerID string, id int64) error {
	if err := s.repomanager.Contacts(s.db).Delete(ctx, ownerID, id); err != nil {
		return fmt.Errorf("error removing contact %d: %w", id, err)
	}
	return nil
}
