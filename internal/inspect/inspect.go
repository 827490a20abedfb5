// Package inspect checks an existing SQLite file against the books contract.
//
// The file is opened read-only, so databases pulled from a device or a
// backup can be checked without being modified.
package inspect

import (
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/grazy/inventoryapp/internal/contract"
)

// ErrDatabaseNotFound indicates the database file does not exist
var ErrDatabaseNotFound = errors.New("database file not found")

// ErrTableMissing indicates the database has no books table
var ErrTableMissing = errors.New("books table not found")

// Column is one row of PRAGMA table_info.
type Column struct {
	Name       string `json:"name"`
	Type       string `json:"type"`
	NotNull    bool   `json:"not_null"`
	PrimaryKey bool   `json:"primary_key"`
}

// TypeDiff records a column whose declared type differs from the contract.
type TypeDiff struct {
	Column   string `json:"column"`
	Expected string `json:"expected"`
	Actual   string `json:"actual"`
}

// Constraint names reported in ConstraintDiff.
const (
	ConstraintPrimaryKey = "PRIMARY KEY"
	ConstraintNotNull    = "NOT NULL"
)

// ConstraintDiff records a column whose PRIMARY KEY or NOT NULL flag
// differs from the contract.
type ConstraintDiff struct {
	Column     string `json:"column"`
	Constraint string `json:"constraint"`
	Expected   bool   `json:"expected"`
	Actual     bool   `json:"actual"`
}

// MismatchError lists every difference between a database and the contract.
type MismatchError struct {
	Path        string           `json:"path"`
	Missing     []string         `json:"missing,omitempty"`
	Unexpected  []string         `json:"unexpected,omitempty"`
	Types       []TypeDiff       `json:"types,omitempty"`
	Constraints []ConstraintDiff `json:"constraints,omitempty"`
}

func (e *MismatchError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, "missing columns: "+strings.Join(e.Missing, ", "))
	}
	if len(e.Unexpected) > 0 {
		parts = append(parts, "unexpected columns: "+strings.Join(e.Unexpected, ", "))
	}
	for _, d := range e.Types {
		parts = append(parts, fmt.Sprintf("%s is %s, want %s", d.Column, d.Actual, d.Expected))
	}
	for _, d := range e.Constraints {
		parts = append(parts, d.String())
	}
	return fmt.Sprintf("%s does not match the books contract: %s", e.Path, strings.Join(parts, "; "))
}

func (d ConstraintDiff) String() string {
	if d.Expected {
		return fmt.Sprintf("%s is not %s", d.Column, d.Constraint)
	}
	return fmt.Sprintf("%s is %s, want no %s", d.Column, d.Constraint, d.Constraint)
}

// readOnlyDSN builds a SQLite URI for path. The path is escaped so names
// containing '#', '?' or '%' address the file itself.
func readOnlyDSN(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	p := filepath.ToSlash(abs)
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	u := &url.URL{Scheme: "file", Path: p, RawQuery: "mode=ro"}
	return u.String(), nil
}

// Inspect returns the columns of the books table in path.
func Inspect(path string) ([]Column, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrDatabaseNotFound, path)
	}

	dsn, err := readOnlyDSN(path)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	rows, err := db.Query(fmt.Sprintf("PRAGMA table_info(%s)", contract.TableName))
	if err != nil {
		return nil, fmt.Errorf("failed to read table info: %w", err)
	}
	defer rows.Close()

	var cols []Column
	for rows.Next() {
		var (
			cid       int
			col       Column
			notNull   int
			dfltValue sql.NullString
			pk        int
		)
		if err := rows.Scan(&cid, &col.Name, &col.Type, &notNull, &dfltValue, &pk); err != nil {
			return nil, fmt.Errorf("failed to scan table info: %w", err)
		}
		col.NotNull = notNull != 0
		col.PrimaryKey = pk != 0
		cols = append(cols, col)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read table info: %w", err)
	}

	// table_info returns no rows for a table that does not exist
	if len(cols) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrTableMissing, path)
	}
	return cols, nil
}

// Verify checks the books table in path against contract.ColumnSpecs. A
// mismatch is reported as *MismatchError.
func Verify(path string) error {
	cols, err := Inspect(path)
	if err != nil {
		return err
	}
	return Compare(path, cols)
}

// Compare checks observed columns against the contract. Type names are
// compared case-insensitively; PRIMARY KEY and NOT NULL must match exactly.
func Compare(path string, cols []Column) error {
	observed := make(map[string]Column, len(cols))
	for _, c := range cols {
		observed[c.Name] = c
	}

	mismatch := &MismatchError{Path: path}
	for _, spec := range contract.ColumnSpecs() {
		col, ok := observed[spec.Name]
		if !ok {
			mismatch.Missing = append(mismatch.Missing, spec.Name)
			continue
		}
		if !strings.EqualFold(col.Type, string(spec.Type)) {
			mismatch.Types = append(mismatch.Types, TypeDiff{
				Column:   spec.Name,
				Expected: string(spec.Type),
				Actual:   col.Type,
			})
		}
		if col.PrimaryKey != spec.PrimaryKey {
			mismatch.Constraints = append(mismatch.Constraints, ConstraintDiff{
				Column:     spec.Name,
				Constraint: ConstraintPrimaryKey,
				Expected:   spec.PrimaryKey,
				Actual:     col.PrimaryKey,
			})
		}
		if col.NotNull != spec.NotNull {
			mismatch.Constraints = append(mismatch.Constraints, ConstraintDiff{
				Column:     spec.Name,
				Constraint: ConstraintNotNull,
				Expected:   spec.NotNull,
				Actual:     col.NotNull,
			})
		}
		delete(observed, spec.Name)
	}
	for name := range observed {
		mismatch.Unexpected = append(mismatch.Unexpected, name)
	}
	sort.Strings(mismatch.Unexpected)

	if len(mismatch.Missing) == 0 && len(mismatch.Unexpected) == 0 &&
		len(mismatch.Types) == 0 && len(mismatch.Constraints) == 0 {
		return nil
	}
	return mismatch
}
