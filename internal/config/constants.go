package config

const (
	// DefaultDatabasePath is the default path for the inventory database
	DefaultDatabasePath = "./inventory.db"

	// DefaultSchemaCheckSchedule runs the drift check every 30 minutes
	DefaultSchemaCheckSchedule = "*/30 * * * *"
)
