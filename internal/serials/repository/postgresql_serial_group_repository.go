package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"github.com/allisson/serials/internal/database"
	apperrors "github.com/allisson/serials/internal/errors"
	"github.com/allisson/serials/internal/serials/domain"
)

// pgUniqueViolation is the SQLSTATE for unique_violation.
const pgUniqueViolation = "23505"

// PostgreSQLSerialGroupRepository implements SerialGroup persistence for PostgreSQL databases.
type PostgreSQLSerialGroupRepository struct {
	db *sql.DB
}

// Create inserts a new serial group into the PostgreSQL database.
func (p *PostgreSQLSerialGroupRepository) Create(ctx context.Context, group *domain.SerialGroup) error {
	querier := database.GetTx(ctx, p.db)

	serials, err := encodeSerials(group.Serials)
	if err != nil {
		return err
	}

	query := `INSERT INTO serial_groups (id, name, serials, created_at) 
			  VALUES ($1, $2, $3, $4)`

	_, err = querier.ExecContext(ctx, query, group.ID, group.Name, serials, group.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation {
			return domain.ErrSerialGroupAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create serial group")
	}
	return nil
}

// GetByName retrieves a serial group by its unique name.
func (p *PostgreSQLSerialGroupRepository) GetByName(ctx context.Context, name string) (*domain.SerialGroup, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT ` + selectColumns + ` FROM serial_groups WHERE name = $1`

	var group domain.SerialGroup
	var serials []byte
	err := querier.QueryRowContext(ctx, query, name).Scan(
		&group.ID,
		&group.Name,
		&serials,
		&group.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSerialGroupNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get serial group by name")
	}

	if group.Serials, err = decodeSerials(serials); err != nil {
		return nil, err
	}
	return &group, nil
}

// List retrieves serial groups ordered by name ascending with pagination.
func (p *PostgreSQLSerialGroupRepository) List(
	ctx context.Context,
	offset, limit int,
) ([]*domain.SerialGroup, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT ` + selectColumns + ` FROM serial_groups 
			  ORDER BY name ASC 
			  LIMIT $1 OFFSET $2`

	rows, err := querier.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list serial groups")
	}
	return scanGroups(rows)
}

// Delete removes a serial group by name.
func (p *PostgreSQLSerialGroupRepository) Delete(ctx context.Context, name string) error {
	querier := database.GetTx(ctx, p.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM serial_groups WHERE name = $1`, name)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete serial group")
	}
	return checkDeleted(result)
}

// NewPostgreSQLSerialGroupRepository creates a new PostgreSQL SerialGroup repository instance.
func NewPostgreSQLSerialGroupRepository(db *sql.DB) *PostgreSQLSerialGroupRepository {
	return &PostgreSQLSerialGroupRepository{db: db}
}
