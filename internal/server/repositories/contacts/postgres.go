package contacts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/safewalk/internal/common"
	"github.com/dmitrijs2005/safewalk/internal/dbx"
	"github.com/dmitrijs2005/safewalk/internal/server/models"
)

// PostgresRepository implements contact storage over a dbx.DBTX (*sql.DB or *sql.Tx).
// Identifiers come from a BIGSERIAL sequence.
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, contact *models.Contact) (*models.Contact, error) {
	query :=
		`INSERT INTO contacts (owner_id, name, phone, relationship)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`

	c := *contact
	err := r.db.QueryRowContext(ctx, query, c.OwnerID, c.Name, c.Phone, string(c.Relationship)).
		Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return &c, nil
}

func (r *PostgresRepository) List(ctx context.Context, ownerID string) ([]models.Contact, error) {
	query :=
		`SELECT id, owner_id, name, phone, relationship, created_at FROM contacts
		 WHERE owner_id = $1
		 ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]models.Contact, 0)
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) Get(ctx context.Context, ownerID string, id int64) (*models.Contact, error) {
	query :=
		`SELECT id, owner_id, name, phone, relationship, created_at FROM contacts
		 WHERE owner_id = $1 AND id = $2`

	c, err := scanContact(r.db.QueryRowContext(ctx, query, ownerID, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return c, nil
}

func (r *PostgresRepository) Update(ctx context.Context, contact *models.Contact) error {
	query :=
		`UPDATE contacts SET name = $3, phone = $4, relationship = $5
		 WHERE owner_id = $1 AND id = $2`

	res, err := r.db.ExecContext(ctx, query,
		contact.OwnerID, contact.ID, contact.Name, contact.Phone, string(contact.Relationship))
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return expectOneRow(res)
}

func (r *PostgresRepository) Delete(ctx context.Context, ownerID string, id int64) error {
	query := `DELETE FROM contacts WHERE owner_id = $1 AND id = $2`

	res, err := r.db.ExecContext(ctx, query, ownerID, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return expectOneRow(res)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanContact(s scanner) (*models.Contact, error) {
	var c models.Contact
	var rel string
	if err := s.Scan(&c.ID, &c.OwnerID, &c.Name, &c.Phone, &rel, &c.CreatedAt); err != nil {
		return nil, err
	}
	c.Relationship = models.Relationship(rel)
	return &c, nil
}

func expectOneRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	switch n {
	case 1:
		return nil
	case 0:
		return common.ErrorNotFound
	default:
		return fmt.Errorf("unexpected rows affected: %d", n)
	}
}
