package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/safewalk/internal/common"
	"github.com/dmitrijs2005/safewalk/internal/dbx"
	"github.com/dmitrijs2005/safewalk/internal/server/auth"
	"github.com/dmitrijs2005/safewalk/internal/server/config"
	"github.com/dmitrijs2005/safewalk/internal/server/models"
	"github.com/dmitrijs2005/safewalk/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// Sessions opens sessions and resolves access tokens to owners.
type Sessions struct {
	db            *sql.DB
	repomanager   repomanager.RepositoryManager
	signingKey    []byte
	tokenValidity time.Duration
	seedDemoData  bool
	now           func() time.Time
	newOwnerID    func() string
}

// NewSessions derives the token signing key from cfg.SecretKey.
func NewSessions(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) (*Sessions, error) {
	key, err := auth.DeriveSigningKey(cfg.SecretKey)
	if err != nil {
		return nil, fmt.Errorf("error deriving signing key: %w", err)
	}
	return &Sessions{
		db:            db,
		repomanager:   m,
		signingKey:    key,
		tokenValidity: cfg.AccessTokenValidityDuration,
		seedDemoData:  cfg.SeedDemoData,
		now:           time.Now,
		newOwnerID:    uuid.NewString,
	}, nil
}

// Open creates a fresh owner and returns its session. With demo seeding
// enabled, the owner's book and log are pre-filled in one transaction.
func (s *Sessions) Open(ctx context.Context, device string) (*models.Session, error) {
	ownerID := s.newOwnerID()

	if s.seedDemoData {
		if err := s.seed(ctx, ownerID); err != nil {
			return nil, fmt.Errorf("error seeding session: %w", err)
		}
	}

	token, err := auth.GenerateToken(ownerID, s.signingKey, s.tokenValidity)
	if err != nil {
		return nil, common.ErrorInternal
	}

	return &models.Session{
		OwnerID:     ownerID,
		Device:      strings.TrimSpace(device),
		AccessToken: token,
		ExpiresAt:   s.now().Add(s.tokenValidity),
	}, nil
}

// OwnerID validates an access token and returns the owner it was issued to.
func (s *Sessions) OwnerID(token string) (string, error) {
	return auth.GetOwnerIDFromToken(token, s.signingKey)
}

func (s *Sessions) seed(ctx context.Context, ownerID string) error {
	now := s.now()
	return dbx.RunInTx(ctx, s.db, func(ctx context.Context, tx dbx.DBTX) error {
		contacts := s.repomanager.Contacts(tx)
		for _, c := range demoContacts {
			if _, err := contacts.Create(ctx, &models.Contact{
				OwnerID:      ownerID,
				Name:         c.name,
				Phone:        c.phone,
				Relationship: c.relationship,
				CreatedAt:    now,
			}); err != nil {
				return err
			}
		}

		reports := s.repomanager.Reports(tx)
		for _, r := range demoReports {
			if _, err := reports.Create(ctx, &models.Report{
				OwnerID:     ownerID,
				Category:    r.category,
				Description: r.description,
				Location:    r.location,
				CreatedAt:   now.Add(-r.age),
			}); err != nil {
				return err
			}
		}
		return nil
	})
}
