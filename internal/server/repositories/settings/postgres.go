package settings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/safewalk/internal/dbx"
	"github.com/dmitrijs2005/safewalk/internal/server/models"
)

// PostgresRepository keeps one settings row per owner.
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Get(ctx context.Context, ownerID string) (models.Settings, error) {
	query :=
		`SELECT notifications, location_sharing, night_mode, emergency_mode FROM settings
		 WHERE owner_id = $1`

	var s models.Settings
	err := r.db.QueryRowContext(ctx, query, ownerID).
		Scan(&s.Notifications, &s.LocationSharing, &s.NightMode, &s.EmergencyMode)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.DefaultSettings(), nil
		}
		return models.Settings{}, fmt.Errorf("db error: %w", err)
	}

	return s, nil
}

func (r *PostgresRepository) Save(ctx context.Context, ownerID string, s models.Settings) error {
	query :=
		`INSERT INTO settings (owner_id, notifications, location_sharing, night_mode, emergency_mode, updated_at)
		 VALUES ($1, $2, $3, $4, $5, now())
		 ON CONFLICT (owner_id) DO UPDATE SET
		   notifications = EXCLUDED.notifications,
		   location_sharing = EXCLUDED.location_sharing,
		   night_mode = EXCLUDED.night_mode,
		   emergency_mode = EXCLUDED.emergency_mode,
		   updated_at = now()`

	_, err := r.db.ExecContext(ctx, query, ownerID, s.Notifications, s.LocationSharing, s.NightMode, s.EmergencyMode)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
