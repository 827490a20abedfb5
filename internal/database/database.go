package database

import (
	"fmt"
	"log"
	"strings"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/grazy/inventoryapp/internal/entities"
)

// Database owns the SQLite connection holding the books table.
type Database struct {
	DB   *gorm.DB
	Path string
}

// ObservedColumn is a column as reported by the live database.
type ObservedColumn struct {
	Name string
	Type string
}

// ParseLogLevel maps a config value to a gorm log level. Unknown values fall
// back to warn.
func ParseLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}

// NewDatabase opens dbPath and makes sure the books table exists.
func NewDatabase(dbPath string, logLevel logger.LogLevel) (*Database, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&entities.Book{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	log.Printf("Database initialized successfully at %s", dbPath)

	return &Database{DB: db, Path: dbPath}, nil
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (d *Database) Ping() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// Columns reads the books table columns back from the database.
func (d *Database) Columns() ([]ObservedColumn, error) {
	types, err := d.DB.Migrator().ColumnTypes(&entities.Book{})
	if err != nil {
		return nil, fmt.Errorf("failed to read column types: %w", err)
	}

	cols := make([]ObservedColumn, 0, len(types))
	for _, ct := range types {
		cols = append(cols, ObservedColumn{Name: ct.Name(), Type: ct.DatabaseTypeName()})
	}
	return cols, nil
}
