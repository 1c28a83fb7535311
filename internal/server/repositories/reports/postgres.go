package reports

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/safewalk/internal/common"
	"github.com/dmitrijs2005/safewalk/internal/dbx"
	"github.com/dmitrijs2005/safewalk/internal/server/models"
)

// PostgresRepository implements report storage over a dbx.DBTX.
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, report *models.Report) (*models.Report, error) {
	rep := *report

	var row *sql.Row
	if rep.CreatedAt.IsZero() {
		query :=
			`INSERT INTO reports (owner_id, category, description, location)
			 VALUES ($1, $2, $3, $4)
			 RETURNING id, created_at`
		row = r.db.QueryRowContext(ctx, query, rep.OwnerID, string(rep.Category), rep.Description, rep.Location)
	} else {
		query :=
			`INSERT INTO reports (owner_id, category, description, location, created_at)
			 VALUES ($1, $2, $3, $4, $5)
			 RETURNING id, created_at`
		row = r.db.QueryRowContext(ctx, query, rep.OwnerID, string(rep.Category), rep.Description, rep.Location, rep.CreatedAt)
	}

	if err := row.Scan(&rep.ID, &rep.CreatedAt); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return &rep, nil
}

func (r *PostgresRepository) List(ctx context.Context, ownerID string) ([]models.Report, error) {
	query :=
		`SELECT id, owner_id, category, description, location, created_at FROM reports
		 WHERE owner_id = $1
		 ORDER BY created_at DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]models.Report, 0)
	for rows.Next() {
		rep, err := scanReport(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, *rep)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) Get(ctx context.Context, ownerID string, id int64) (*models.Report, error) {
	query :=
		`SELECT id, owner_id, category, description, location, created_at FROM reports
		 WHERE owner_id = $1 AND id = $2`

	rep, err := scanReport(r.db.QueryRowContext(ctx, query, ownerID, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return rep, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, ownerID string, id int64) error {
	query := `DELETE FROM reports WHERE owner_id = $1 AND id = $2`

	res, err := r.db.ExecContext(ctx, query, ownerID, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanReport(s scanner) (*models.Report, error) {
	var rep models.Report
	var cat string
	if err := s.Scan(&rep.ID, &rep.OwnerID, &cat, &rep.Description, &rep.Location, &rep.CreatedAt); err != nil {
		return nil, err
	}
	rep.Category = models.Category(cat)
	return &rep, nil
}
