package server

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/safewalk/internal/logging"
	"github.com/dmitrijs2005/safewalk/internal/server/config"
	"github.com/dmitrijs2005/safewalk/internal/server/repositories/repomanager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	c := &config.Config{}
	c.LoadDefaults()
	c.EndpointAddrGRPC = "127.0.0.1:0"
	return c
}

func TestNewApp_InMemory(t *testing.T) {
	app, err := NewApp(context.Background(), testConfig())
	require.NoError(t, err)
	assert.Nil(t, app.db)
	assert.NotNil(t, app.services.Sessions)
	assert.NotNil(t, app.services.Alerts)
}

func TestNewApp_EmptySecretFails(t *testing.T) {
	c := testConfig()
	c.SecretKey = ""
	_, err := NewApp(context.Background(), c)
	assert.Error(t, err)
}

func TestInitStorage_OpenError(t *testing.T) {
	orig := openDB
	t.Cleanup(func() { openDB = orig })
	openDB = func(string) (*sql.DB, error) { return nil, errors.New("bad dsn") }

	c := testConfig()
	c.DatabaseDSN = "postgres://nowhere"
	_, _, err := initStorage(context.Background(), c, logging.Nop{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad dsn")
}

func TestInitStorage_Memory(t *testing.T) {
	db, rm, err := initStorage(context.Background(), testConfig(), logging.Nop{})
	require.NoError(t, err)
	assert.Nil(t, db)
	assert.IsType(t, &repomanager.MemoryRepositoryManager{}, rm)
}

func TestInitStorage_MigrationErrorClosesDB(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	mock.ExpectClose()

	orig := openDB
	t.Cleanup(func() { openDB = orig })
	openDB = func(string) (*sql.DB, error) { return db, nil }

	c := testConfig()
	c.DatabaseDSN = "postgres://x"
	_, _, err = initStorage(context.Background(), c, logging.Nop{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db migration error")
}

func TestNewApp_ClosesDBOnLaterInitError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	mock.ExpectClose()

	orig := setupStorage
	t.Cleanup(func() { setupStorage = orig })
	setupStorage = func(context.Context, *config.Config, logging.Logger) (*sql.DB, repomanager.RepositoryManager, error) {
		return db, repomanager.NewMemoryRepositoryManager(), nil
	}

	c := testConfig()
	c.SecretKey = ""
	_, err = NewApp(context.Background(), c)
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestNewApp_S3ArchiveSelected(t *testing.T) {
	c := testConfig()
	c.S3Bucket = "alerts"
	c.S3BaseEndpoint = "http://127.0.0.1:9000"

	app, err := NewApp(context.Background(), c)
	require.NoError(t, err)
	assert.NotNil(t, app.services.Alerts)
}

func TestRun_StopsOnCancel(t *testing.T) {
	app, err := NewApp(context.Background(), testConfig())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		app.Run(ctx)
		close(done)
	}()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("app did not stop after cancel")
	}
}
