package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-sql-driver/mysql"

	"github.com/allisson/serials/internal/database"
	apperrors "github.com/allisson/serials/internal/errors"
	"github.com/allisson/serials/internal/serials/domain"
)

// mysqlDuplicateEntry is ER_DUP_ENTRY.
const mysqlDuplicateEntry = 1062

// MySQLSerialGroupRepository implements SerialGroup persistence for MySQL databases.
// IDs are stored as BINARY(16).
type MySQLSerialGroupRepository struct {
	db *sql.DB
}

// Create inserts a new serial group into the MySQL database.
func (m *MySQLSerialGroupRepository) Create(ctx context.Context, group *domain.SerialGroup) error {
	querier := database.GetTx(ctx, m.db)

	id, err := group.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal serial group id")
	}

	serials, err := encodeSerials(group.Serials)
	if err != nil {
		return err
	}

	query := `INSERT INTO serial_groups (id, name, serials, created_at) 
			  VALUES (?, ?, ?, ?)`

	_, err = querier.ExecContext(ctx, query, id, group.Name, serials, group.CreatedAt)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry {
			return domain.ErrSerialGroupAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create serial group")
	}
	return nil
}

// GetByName retrieves a serial group by its unique name.
func (m *MySQLSerialGroupRepository) GetByName(ctx context.Context, name string) (*domain.SerialGroup, error) {
	querier := database.GetTx(ctx, m.db)

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
func (m *MySQLSerialGroupRepository) List(
	ctx context.Context,
	offset, limit int,
) ([]*domain.SerialGroup, error) {
	querier := database.GetTx(ctx, m.db)

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
func (m *MySQLSerialGroupRepository) Delete(ctx context.Context, name string) error {
	querier := database.GetTx(ctx, m.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM serial_groups WHERE name = ?`, name)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete serial group")
	}
	return checkDeleted(result)
}

// NewMySQLSerialGroupRepository creates a new MySQL SerialGroup repository instance.
func NewMySQLSerialGroupRepository(db *sql.DB) *MySQLSerialGroupRepository {
	return &MySQLSerialGroupRepository{db: db}
}
