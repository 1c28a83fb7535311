package reports

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/safewalk/internal/common"
	"github.com/dmitrijs2005/safewalk/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgresRepository(db), mock
}

var columns = []string{"id", "owner_id", "category", "description", "location", "created_at"}

func TestPostgresCreate_DefaultTimestamp(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	now := time.Now()

	q := `(?s)^INSERT\s+INTO\s+reports\s*\(owner_id,\s*category,\s*description,\s*location\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4\)\s*RETURNING\s+id,\s*created_at$`
	mock.ExpectQuery(q).
		WithArgs("o", "poor-lighting", "dark", "Main St").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(3), now))

	rep, err := repo.Create(context.Background(), &models.Report{OwnerID: "o", Category: models.CategoryPoorLighting, Description: "dark", Location: "Main St"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), rep.ID)
	assert.Equal(t, now, rep.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresCreate_ExplicitTimestamp(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	at := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`(?s)INSERT\s+INTO\s+reports\s*\(owner_id,\s*category,\s*description,\s*location,\s*created_at\)`).
		WithArgs("o", "safe-area", "ok", "", at).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(1), at))

	rep, err := repo.Create(context.Background(), &models.Report{OwnerID: "o", Category: models.CategorySafeArea, Description: "ok", CreatedAt: at})
	require.NoError(t, err)
	assert.Equal(t, at, rep.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresList_Ordering(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	now := time.Now()

	q := `(?s)^SELECT\s+id,\s*owner_id,\s*category,\s*description,\s*location,\s*created_at\s+FROM\s+reports\s+WHERE\s+owner_id\s*=\s*\$1\s+ORDER\s+BY\s+created_at\s+DESC,\s*id\s+DESC$`
	mock.ExpectQuery(q).
		WithArgs("o").
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(int64(2), "o", "harassment", "b", "", now).
			AddRow(int64(1), "o", "safe-area", "a", "Park", now.Add(-time.Hour)))

	list, err := repo.List(context.Background(), "o")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, models.CategoryHarassment, list[0].Category)
	assert.Equal(t, models.SeverityHigh, list[0].Severity())
	assert.Equal(t, "Park", list[1].Location)
}

func TestPostgresList_QueryError(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`SELECT .* FROM reports`).WillReturnError(errors.New("down"))

	_, err := repo.List(context.Background(), "o")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db error")
}

func TestPostgresGet(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	now := time.Now()

	q := `SELECT .* FROM reports\s+WHERE owner_id = \$1 AND id = \$2`
	mock.ExpectQuery(q).WithArgs("o", int64(1)).
		WillReturnRows(sqlmock.NewRows(columns).AddRow(int64(1), "o", "safe-area", "a", "", now))
	mock.ExpectQuery(q).WithArgs("o", int64(2)).WillReturnError(sql.ErrNoRows)

	rep, err := repo.Get(context.Background(), "o", 1)
	require.NoError(t, err)
	assert.Equal(t, models.CategorySafeArea, rep.Category)

	_, err = repo.Get(context.Background(), "o", 2)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestPostgresDelete(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	q := `(?s)^DELETE\s+FROM\s+reports\s+WHERE\s+owner_id\s*=\s*\$1\s+AND\s+id\s*=\s*\$2$`
	mock.ExpectExec(q).WithArgs("o", int64(1)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(q).WithArgs("o", int64(9)).WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Delete(context.Background(), "o", 1))
	assert.ErrorIs(t, repo.Delete(context.Background(), "o", 9), common.ErrorNotFound)
}
