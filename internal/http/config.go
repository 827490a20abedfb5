package http

import (
	"github.com/grazy/inventoryapp/internal/database"
)

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router.
type RouterConfig struct {
	Database    *database.Database
	SchemaCheck SchemaCheckReporter

	// DatabasePath is verified by the contract endpoint; it may point at
	// a database other than the one held open in Database.
	DatabasePath string

	Version string
}
