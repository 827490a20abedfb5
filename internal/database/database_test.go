package database

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"

	"github.com/grazy/inventoryapp/internal/contract"
)

// setupTestDB creates a fresh test database
func setupTestDB(t *testing.T) (*Database, func()) {
	t.Helper()
	dbPath := "./test_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
	db, err := NewDatabase(dbPath, logger.Silent)
	require.NoError(t, err)

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}
	return db, cleanup
}

func TestNewDatabase_CreatesBooksTable(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	assert.True(t, db.DB.Migrator().HasTable(contract.TableName))
	assert.NoError(t, db.Ping())
}

func TestDatabase_Columns(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	cols, err := db.Columns()
	require.NoError(t, err)

	names := make([]string, 0, len(cols))
	types := make(map[string]string)
	for _, c := range cols {
		names = append(names, c.Name)
		types[c.Name] = strings.ToUpper(c.Type)
	}

	assert.ElementsMatch(t, contract.Columns(), names)
	assert.Equal(t, "DOUBLE", types[contract.ColumnQuantity])
	assert.Equal(t, "INTEGER", types[contract.ColumnPrice])
	assert.Equal(t, "TEXT", types[contract.ColumnSupplierPhoneNumber])
}

func TestNewDatabase_ReopenIsIdempotent(t *testing.T) {
	dbPath := "./test_reopen.db"
	defer os.Remove(dbPath)

	db, err := NewDatabase(dbPath, logger.Silent)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db, err = NewDatabase(dbPath, logger.Silent)
	require.NoError(t, err)
	defer db.Close()

	cols, err := db.Columns()
	require.NoError(t, err)
	assert.Len(t, cols, 6)
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, logger.Silent, ParseLogLevel("silent"))
	assert.Equal(t, logger.Error, ParseLogLevel("ERROR"))
	assert.Equal(t, logger.Info, ParseLogLevel(" info "))
	assert.Equal(t, logger.Warn, ParseLogLevel("warn"))
	assert.Equal(t, logger.Warn, ParseLogLevel("bogus"))
}
