package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnect_Error(t *testing.T) {
	cfg := Config{
		Driver:             "invalid",
		ConnectionString:   "invalid",
		MaxOpenConnections: 10,
		MaxIdleConnections: 5,
		ConnMaxLifetime:    time.Hour,
	}

	db, err := Connect(cfg)
	assert.Error(t, err)
	assert.Nil(t, db)
	assert.Contains(t, err.Error(), "sql: unknown driver")
}

func TestConnect_SQLiteInMemory(t *testing.T) {
	cfg := Config{
		Driver:             "sqlite3",
		ConnectionString:   "file:connect-test?mode=memory&cache=shared",
		MaxOpenConnections: 1,
		MaxIdleConnections: 1,
		ConnMaxLifetime:    time.Minute,
	}

	db, err := Connect(cfg)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	assert.Equal(t, 1, db.Stats().MaxOpenConnections)
}
