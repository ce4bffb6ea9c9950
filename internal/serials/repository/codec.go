// Package repository implements data persistence for serial groups.
// PostgreSQL, MySQL and SQLite are supported. Serials are stored as a JSON array of strings.
package repository

import (
	"database/sql"
	"encoding/json"

	apperrors "github.com/allisson/serials/internal/errors"
	"github.com/allisson/serials/internal/serials/domain"
)

const selectColumns = `id, name, serials, created_at`

func encodeSerials(serials []domain.Serial) (string, error) {
	data, err := json.Marshal(domain.SerialsToStrings(serials))
	if err != nil {
		return "", apperrors.Wrap(err, "failed to encode serials")
	}
	return string(data), nil
}

func decodeSerials(data []byte) ([]domain.Serial, error) {
	var values []string
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, apperrors.Wrap(err, "failed to decode serials")
	}
	return domain.StringsToSerials(values), nil
}

// scanGroups reads rows of selectColumns into groups and closes rows.
// An empty result is returned as an empty, non-nil slice.
func scanGroups(rows *sql.Rows) ([]*domain.SerialGroup, error) {
	defer func() {
		_ = rows.Close()
	}()

	groups := make([]*domain.SerialGroup, 0)
	for rows.Next() {
		var group domain.SerialGroup
		var serials []byte

		if err := rows.Scan(&group.ID, &group.Name, &serials, &group.CreatedAt); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan serial group")
		}

		decoded, err := decodeSerials(serials)
		if err != nil {
			return nil, err
		}
		group.Serials = decoded
		groups = append(groups, &group)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "error iterating serial groups")
	}
	return groups, nil
}

// checkDeleted maps a delete that touched no rows to ErrSerialGroupNotFound.
func checkDeleted(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get affected rows")
	}
	if affected == 0 {
		return domain.ErrSerialGroupNotFound
	}
	return nil
}
