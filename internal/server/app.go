// Package server wires configuration, storage, notification and archive
// backends into the SafeWalk gRPC server and runs it until a shutdown signal.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/safewalk/internal/logging"
	"github.com/dmitrijs2005/safewalk/internal/server/archive"
	"github.com/dmitrijs2005/safewalk/internal/server/config"
	"github.com/dmitrijs2005/safewalk/internal/server/notify"
	"github.com/dmitrijs2005/safewalk/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/safewalk/internal/server/services"

	gs "github.com/dmitrijs2005/safewalk/internal/server/grpc"
)

type App struct {
	config   *config.Config
	logger   logging.Logger
	db       *sql.DB
	services gs.Services
}

// openDB is a seam for tests.
var openDB = func(dsn string) (*sql.DB, error) {
	return sql.Open("pgx", dsn)
}

// setupStorage is a seam for tests.
var setupStorage = initStorage

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewJSONLogger(os.Stdout, slog.LevelInfo)

	db, rm, err := setupStorage(ctx, c, logger)
	if err != nil {
		return nil, err
	}
	closeDB := func() {
		if db != nil {
			_ = db.Close()
		}
	}

	var notifier services.Notifier = notify.NewLogNotifier(logger)
	if c.NotifierWebhookURL != "" {
		notifier = notify.NewWebhookNotifier(c.NotifierWebhookURL)
	}

	var alertArchive services.AlertArchive = archive.Nop{}
	if c.S3Bucket != "" {
		a, err := archive.NewS3Archive(ctx, c)
		if err != nil {
			closeDB()
			return nil, fmt.Errorf("archive init error: %w", err)
		}
		alertArchive = a
	}

	sessions, err := services.NewSessions(db, rm, c)
	if err != nil {
		closeDB()
		return nil, err
	}
	contacts := services.NewContactBook(db, rm)
	settings := services.NewSettingsStore(db, rm)
	alerts := services.NewEmergencyAlerts(contacts, settings, notifier, alertArchive, services.PolicyFromConfig(c), logger)

	return &App{
		config: c,
		logger: logger,
		db:     db,
		services: gs.Services{
			Sessions: sessions,
			Contacts: contacts,
			Reports:  services.NewReportLog(db, rm),
			Settings: settings,
			Alerts:   alerts,
		},
	}, nil
}

// initStorage returns in-memory repositories when no DSN is configured, and
// a migrated PostgreSQL database otherwise.
func initStorage(ctx context.Context, c *config.Config, logger logging.Logger) (*sql.DB, repomanager.RepositoryManager, error) {
	if c.DatabaseDSN == "" {
		logger.Warn(ctx, "No database DSN configured, state is kept in memory")
		return nil, repomanager.NewMemoryRepositoryManager(), nil
	}

	db, err := openDB(c.DatabaseDSN)
	if err != nil {
		return nil, nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("db migration error: %w", err)
	}

	return db, rm, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.services)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error(ctx, "db close error", "error", err)
		}
	}
	app.logger.Info(ctx, "App stopped")
}
