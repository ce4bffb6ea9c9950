package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/mattn/go-sqlite3"

	"github.com/allisson/serials/internal/database"
	apperrors "github.com/allisson/serials/internal/errors"
	"github.com/allisson/serials/internal/serials/domain"
)

// SQLiteSerialGroupRepository implements SerialGroup persistence for SQLite databases.
// IDs are stored as their canonical text form.
type SQLiteSerialGroupRepository struct {
	db *sql.DB
}

// Create inserts a new serial group into the SQLite database.
func (s *SQLiteSerialGroupRepository) Create(ctx context.Context, group *domain.SerialGroup) error {
	querier := database.GetTx(ctx, s.db)

	serials, err := encodeSerials(group.Serials)
	if err != nil {
		return err
	}

	query := `INSERT INTO serial_groups (id, name, serials, created_at) 
			  VALUES (?, ?, ?, ?)`

	_, err = querier.ExecContext(ctx, query, group.ID.String(), group.Name, serials, group.CreatedAt)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return domain.ErrSerialGroupAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create serial group")
	}
	return nil
}

// GetByName retrieves a serial group by its unique name.
func (s *SQLiteSerialGroupRepository) GetByName(ctx context.Context, name string) (*domain.SerialGroup, error) {
	querier := database.GetTx(ctx, s.db)

	query := `SELECT ` + selectColumns + ` FROM serial_groups WHERE name = ?`

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
func (s *SQLiteSerialGroupRepository) List(
	ctx context.Context,
	offset, limit int,
) ([]*domain.SerialGroup, error) {
	querier := database.GetTx(ctx, s.db)

	query := `SELECT ` + selectColumns + ` FROM serial_groups 
			  ORDER BY name ASC 
			  LIMIT ? OFFSET ?`

	rows, err := querier.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list serial groups")
	}
	return scanGroups(rows)
}

// Delete removes a serial group by name.
func (s *SQLiteSerialGroupRepository) Delete(ctx context.Context, name string) error {
	querier := database.GetTx(ctx, s.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM serial_groups WHERE name = ?`, name)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete serial group")
	}
	return checkDeleted(result)
}

// NewSQLiteSerialGroupRepository creates a new SQLite SerialGroup repository instance.
func NewSQLiteSerialGroupRepository(db *sql.DB) *SQLiteSerialGroupRepository {
	return &SQLiteSerialGroupRepository{db: db}
}
