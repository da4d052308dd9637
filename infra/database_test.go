package infra

import (
	"testing"

	"github.com/autoconnect/backend/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDBConnection_SQLite(t *testing.T) {
	db, err := NewDBConnection(&config.DB{
		Driver:       "sqlite",
		Url:          "file::memory:",
		MaxOpenConns: 1,
		MaxIdleConns: 1,
	}, "test")
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	assert.NoError(t, sqlDB.Ping())
	assert.Equal(t, 1, sqlDB.Stats().MaxOpenConnections)

	require.NoError(t, AutoMigrate(db))
	for _, table := range []string{"users", "bank_accounts", "categories"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
}

func TestNewDBConnection_Errors(t *testing.T) {
	_, err := NewDBConnection(&config.DB{Driver: "sqlite"}, "test")
	assert.EqualError(t, err, "DATABASE_URL is not set")

	_, err = NewDBConnection(&config.DB{Driver: "oracle", Url: "x"}, "test")
	assert.ErrorContains(t, err, "unsupported sql driver")

	_, err = NewMongoDatabase(t.Context(), nil)
	assert.Error(t, err)
}
