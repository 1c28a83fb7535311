package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/safewalk/internal/dbx"
	"github.com/dmitrijs2005/safewalk/internal/server/repositories/contacts"
	"github.com/dmitrijs2005/safewalk/internal/server/repositories/reports"
	"github.com/dmitrijs2005/safewalk/internal/server/repositories/settings"
)

// MemoryRepositoryManager hands out the same in-process repositories
// regardless of the db argument. Used when no DSN is configured.
type MemoryRepositoryManager struct {
	contacts *contacts.MemoryRepository
	reports  *reports.MemoryRepository
	settings *settings.MemoryRepository
}

func NewMemoryRepositoryManager() *MemoryRepositoryManager {
	return &MemoryRepositoryManager{
		contacts: contacts.NewMemoryRepository(),
		reports:  reports.NewMemoryRepository(),
		settings: settings.NewMemoryRepository(),
	}
}

// RunMigrations is a no-op; there is no schema.
func (m *MemoryRepositoryManager) RunMigrations(context.Context, *sql.DB) error { return nil }

func (m *MemoryRepositoryManager) Contacts(dbx.DBTX) contacts.Repository { return m.contacts }

func (m *MemoryRepositoryManager) Reports(dbx.DBTX) reports.Repository { return m.reports }

func (m *MemoryRepositoryManager) Settings(dbx.DBTX) settings.Repository { return m.settings }
