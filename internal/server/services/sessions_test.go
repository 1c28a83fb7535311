package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/safewalk/internal/common"
	"github.com/dmitrijs2005/safewalk/internal/server/config"
	"github.com/dmitrijs2005/safewalk/internal/server/models"
	"github.com/dmitrijs2005/safewalk/internal/server/repositories/repomanager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSessionsConfig(seed bool) *config.Config {
	return &config.Config{
		SecretKey:                   "k",
		AccessTokenValidityDuration: time.Hour,
		SeedDemoData:                seed,
	}
}

func TestSessions_OpenAndResolve(t *testing.T) {
	rm := repomanager.NewMemoryRepositoryManager()
	s, err := NewSessions(nil, rm, newSessionsConfig(false))
	require.NoError(t, err)

	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	sess, err := s.Open(context.Background(), " terminal ")
	require.NoError(t, err)
	assert.NotEmpty(t, sess.OwnerID)
	assert.Equal(t, "terminal", sess.Device)
	assert.Equal(t, now.Add(time.Hour), sess.ExpiresAt)

	owner, err := s.OwnerID(sess.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, sess.OwnerID, owner)

	other, _ := s.Open(context.Background(), "")
	assert.NotEqual(t, sess.OwnerID, other.OwnerID)

	list, _ := rm.Contacts(nil).List(context.Background(), sess.OwnerID)
	assert.Empty(t, list)
}

func TestSessions_RejectsForeignToken(t *testing.T) {
	rm := repomanager.NewMemoryRepositoryManager()
	a, _ := NewSessions(nil, rm, newSessionsConfig(false))
	cfg := newSessionsConfig(false)
	cfg.SecretKey = "other"
	b, _ := NewSessions(nil, rm, cfg)

	sess, err := a.Open(context.Background(), "")
	require.NoError(t, err)

	_, err = b.OwnerID(sess.AccessToken)
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestNewSessions_EmptySecret(t *testing.T) {
	cfg := newSessionsConfig(false)
	cfg.SecretKey = ""
	_, err := NewSessions(nil, repomanager.NewMemoryRepositoryManager(), cfg)
	assert.Error(t, err)
}

func TestSessions_SeedDemoData(t *testing.T) {
	rm := repomanager.NewMemoryRepositoryManager()
	s, err := NewSessions(nil, rm, newSessionsConfig(true))
	require.NoError(t, err)

	sess, err := s.Open(context.Background(), "")
	require.NoError(t, err)

	contacts, _ := rm.Contacts(nil).List(context.Background(), sess.OwnerID)
	require.Len(t, contacts, 3)
	assert.Equal(t, "Mom", contacts[0].Name)
	assert.Equal(t, models.RelationshipFamily, contacts[0].Relationship)
	assert.Equal(t, "Sarah (Roommate)", contacts[1].Name)
	assert.Equal(t, models.RelationshipSecurity, contacts[2].Relationship)

	reports, _ := rm.Reports(nil).List(context.Background(), sess.OwnerID)
	require.Len(t, reports, 3)
	assert.Equal(t, "Main St & 5th Ave", reports[0].Location)
	assert.Equal(t, models.SeverityMedium, reports[0].Severity())
	assert.Equal(t, "Park Avenue", reports[1].Location)
	assert.Equal(t, "University District", reports[2].Location)
}

func TestSessions_SeedRollsBackOnError(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO contacts`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(1), time.Now()))
	mock.ExpectQuery(`INSERT INTO contacts`).WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	s, err := NewSessions(db, repomanager.NewPostgresRepositoryManager(), newSessionsConfig(true))
	require.NoError(t, err)

	_, err = s.Open(context.Background(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	require.NoError(t, mock.ExpectationsWereMet())
}
