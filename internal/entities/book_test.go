package entities

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grazy/inventoryapp/internal/contract"
)

func TestBook_TableName(t *testing.T) {
	assert.Equal(t, contract.TableName, Book{}.TableName())
}

func TestBook_JSONKeysMatchColumns(t *testing.T) {
	data, err := json.Marshal(Book{ID: 1, ProductName: "Dune", SupplierPhoneNumber: "+0044 123"})
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(data, &fields))

	assert.Len(t, fields, len(contract.Columns()))
	for _, col := range contract.Columns() {
		assert.Contains(t, fields, col)
	}
	assert.Equal(t, "+0044 123", fields[contract.ColumnSupplierPhoneNumber])
}
