package services

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/safewalk/internal/dbx"
	"github.com/dmitrijs2005/safewalk/internal/server/models"
	"github.com/dmitrijs2005/safewalk/internal/server/repositories/repomanager"
)

// SettingsStore holds the feature toggles of each owner.
type SettingsStore struct {
	// mu serialises read-modify-write in Set.
	mu          sync.Mutex
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewSettingsStore(db *sql.DB, m repomanager.RepositoryManager) *SettingsStore {
	return &SettingsStore{db: db, repomanager: m}
}

// Get returns the owner's settings, or the defaults when none were saved.
func (s *SettingsStore) Get(ctx context.Context, ownerID string) (models.Settings, error) {
	st, err := s.repomanager.Settings(s.db).Get(ctx, ownerID)
	if err != nil {
		return models.Settings{}, fmt.Errorf("error reading settings: %w", err)
	}
	return st, nil
}

// Flag reads a single flag by name. Unknown names yield a ConfigurationError.
func (s *SettingsStore) Flag(ctx context.Context, ownerID, name string) (bool, error) {
	f, err := models.ParseFlag(name)
	if err != nil {
		return false, err
	}
	st, err := s.Get(ctx, ownerID)
	if err != nil {
		return false, err
	}
	return st.Get(f)
}

// Set updates one flag and returns the resulting settings.
func (s *SettingsStore) Set(ctx context.Context, ownerID, name string, value bool) (models.Settings, error) {
	f, err := models.ParseFlag(name)
	if err != nil {
		return models.Settings{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var st models.Settings
	err = dbx.RunInTx(ctx, s.db, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Settings(tx)
		var err error
		if st, err = repo.Get(ctx, ownerID); err != nil {
			return err
		}
		if err = st.Set(f, value); err != nil {
			return err
		}
		return repo.Save(ctx, ownerID, st)
	})
	if err != nil {
		return models.Settings{}, fmt.Errorf("error saving settings: %w", err)
	}
	return st, nil
}
