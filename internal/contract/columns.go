package contract

import (
	"fmt"
	"strings"
)

// SQLType is a column type as declared in the books table DDL.
type SQLType string

const (
	TypeInteger SQLType = "INTEGER"
	TypeText    SQLType = "TEXT"
	TypeDouble  SQLType = "DOUBLE"
)

// ColumnSpec describes one column of the books table.
type ColumnSpec struct {
	Name          string  `json:"name"`
	Type          SQLType `json:"type"`
	PrimaryKey    bool    `json:"primary_key,omitempty"`
	AutoIncrement bool    `json:"auto_increment,omitempty"`
	NotNull       bool    `json:"not_null,omitempty"`
}

// Quantity is declared DOUBLE and price INTEGER, exactly as the app's
// table was created. Existing databases depend on these affinities.
var columnSpecs = [...]ColumnSpec{
	{Name: ColumnID, Type: TypeInteger, PrimaryKey: true, AutoIncrement: true},
	{Name: ColumnProductName, Type: TypeText, NotNull: true},
	{Name: ColumnQuantity, Type: TypeDouble},
	{Name: ColumnPrice, Type: TypeInteger},
	{Name: ColumnSupplierName, Type: TypeText},
	{Name: ColumnSupplierPhoneNumber, Type: TypeText},
}

// ColumnSpecs returns the books table columns in declaration order.
func ColumnSpecs() []ColumnSpec {
	specs := make([]ColumnSpec, len(columnSpecs))
	copy(specs, columnSpecs[:])
	return specs
}

// Columns returns the books table column names in declaration order.
func Columns() []string {
	names := make([]string, len(columnSpecs))
	for i, spec := range columnSpecs {
		names[i] = spec.Name
	}
	return names
}

// LookupColumn returns the spec for the named column.
func LookupColumn(name string) (ColumnSpec, bool) {
	for _, spec := range columnSpecs {
		if spec.Name == name {
			return spec, true
		}
	}
	return ColumnSpec{}, false
}

// Definition renders the column as it appears inside CREATE TABLE.
func (c ColumnSpec) Definition() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s", c.Name, c.Type)
	if c.PrimaryKey {
		b.WriteString(" PRIMARY KEY")
	}
	if c.AutoIncrement {
		b.WriteString(" AUTOINCREMENT")
	}
	if c.NotNull {
		b.WriteString(" NOT NULL")
	}
	return b.String()
}

// CreateTableSQL renders the statement that creates the books table.
func CreateTableSQL() string {
	defs := make([]string, len(columnSpecs))
	for i, spec := range columnSpecs {
		defs[i] = spec.Definition()
	}
	return fmt.Sprintf("CREATE TABLE %s (%s);", TableName, strings.Join(defs, ", "))
}
