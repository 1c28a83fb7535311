// Package services contains application services for the SafeWalk client.
// This file defines the session service: restoring the session persisted in
// the local state file, opening a new one when needed, and resetting it.
package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmitrijs2005/safewalk/internal/client/client"
	"github.com/dmitrijs2005/safewalk/internal/client/models"
	"github.com/dmitrijs2005/safewalk/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/safewalk/internal/dbx"
)

// SessionService manages the client's session.
//
//   - Ensure: reuse the saved session, or open and save a new one.
//   - Reset: forget the saved session and open a new one. State owned by
//     the old session stays on the server but is no longer reachable.
//   - Ping: check server liveness.
//   - Close: release underlying client resources.
type SessionService interface {
	Ensure(ctx context.Context, device string) (models.Session, error)
	Reset(ctx context.Context, device string) (models.Session, error)
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

type sessionService struct {
	client client.Client
	db     *sql.DB
	now    func() time.Time
}

func NewSessionService(client client.Client, db *sql.DB) SessionService {
	return &sessionService{client: client, db: db, now: time.Now}
}

func (s *sessionService) Ensure(ctx context.Context, device string) (models.Session, error) {
	saved, ok, err := s.load(ctx)
	if err != nil {
		return models.Session{}, fmt.Errorf("load session error: %w", err)
	}
	if ok && !saved.Expired(s.now()) {
		s.client.SetAccessToken(saved.AccessToken)
		return saved, nil
	}
	return s.open(ctx, device)
}

// Reset keeps the saved session until the server has issued a new one.
func (s *sessionService) Reset(ctx context.Context, device string) (models.Session, error) {
	sess, err := s.client.OpenSession(ctx, device)
	if err != nil {
		return models.Session{}, fmt.Errorf("open session error: %w", err)
	}
	if err := s.save(ctx, sess, true); err != nil {
		return models.Session{}, fmt.Errorf("session saving error: %w", err)
	}
	s.client.SetAccessToken(sess.AccessToken)
	return sess, nil
}

func (s *sessionService) Ping(ctx context.Context) error {
	return s.client.Ping(ctx)
}

func (s *sessionService) Close(ctx context.Context) error {
	return s.client.Close()
}

func (s *sessionService) open(ctx context.Context, device string) (models.Session, error) {
	sess, err := s.client.OpenSession(ctx, device)
	if err != nil {
		return models.Session{}, fmt.Errorf("open session error: %w", err)
	}
	if err := s.save(ctx, sess, false); err != nil {
		return models.Session{}, fmt.Errorf("session saving error: %w", err)
	}
	s.client.SetAccessToken(sess.AccessToken)
	return sess, nil
}

// load returns the saved session; ok is false when no token is stored.
func (s *sessionService) load(ctx context.Context) (models.Session, bool, error) {
	repo := metadata.NewSQLiteRepository(s.db)

	values, err := repo.List(ctx)
	if err != nil {
		return models.Session{}, false, err
	}

	token := string(values[metadata.KeyAccessToken])
	if token == "" {
		return models.Session{}, false, nil
	}

	sess := models.Session{OwnerID: string(values[metadata.KeyOwnerID]), AccessToken: token}
	if raw := values[metadata.KeyExpiresAt]; len(raw) > 0 {
		exp, err := time.Parse(time.RFC3339, string(raw))
		if err != nil {
			return models.Session{}, false, nil
		}
		sess.ExpiresAt = exp
	}
	return sess, true, nil
}

// save stores the session keys in a single transaction. With clear set, all
// previously saved state is dropped in the same transaction.
func (s *sessionService) save(ctx context.Context, sess models.Session, clear bool) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if clear {
			if err := repo.Clear(ctx); err != nil {
				return err
			}
		}
		if err := repo.Set(ctx, metadata.KeyOwnerID, []byte(sess.OwnerID)); err != nil {
			return err
		}
		if err := repo.Set(ctx, metadata.KeyAccessToken, []byte(sess.AccessToken)); err != nil {
			return err
		}
		if sess.ExpiresAt.IsZero() {
			return repo.Delete(ctx, metadata.KeyExpiresAt)
		}
		return repo.Set(ctx, metadata.KeyExpiresAt, []byte(sess.ExpiresAt.UTC().Format(time.RFC3339)))
	})
}
