// Package repomanager vends the repositories a service needs, bound to a
// database handle or transaction.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/safewalk/internal/dbx"
	"github.com/dmitrijs2005/safewalk/internal/server/repositories/contacts"
	"github.com/dmitrijs2005/safewalk/internal/server/repositories/reports"
	"github.com/dmitrijs2005/safewalk/internal/server/repositories/settings"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Contacts(db dbx.DBTX) contacts.Repository
	Reports(db dbx.DBTX) reports.Repository
	Settings(db dbx.DBTX) settings.Repository
}
