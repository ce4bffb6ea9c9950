package repository

import (
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/serials/internal/serials/domain"
)

func newSerialGroup(name string, serials ...domain.Serial) *domain.SerialGroup {
	return &domain.SerialGroup{
		ID:        uuid.Must(uuid.NewV7()),
		Name:      name,
		Serials:   serials,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}
}

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})
	return db, mock
}

func binaryID(t *testing.T, id uuid.UUID) []byte {
	t.Helper()
	b, err := id.MarshalBinary()
	require.NoError(t, err)
	return b
}
