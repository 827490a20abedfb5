package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/grazy/inventoryapp/internal/database"
	"github.com/grazy/inventoryapp/internal/scheduler"
)

type HealthResponse struct {
	Status  string            `json:"status"`
	Time    string            `json:"time"`
	Version string            `json:"version,omitempty"`
	Checks  map[string]string `json:"checks"`
}

// SchemaCheckReporter exposes the last scheduled drift check.
type SchemaCheckReporter interface {
	LastResult() *scheduler.CheckResult
}

type HealthController struct {
	db          *database.Database
	schemaCheck SchemaCheckReporter
	version     string
}

func NewHealthController(db *database.Database, schemaCheck SchemaCheckReporter, version string) *HealthController {
	return &HealthController{
		db:          db,
		schemaCheck: schemaCheck,
		version:     version,
	}
}

func (h *HealthController) Status(c *gin.Context) {
	checks := make(map[string]string)
	status := "healthy"

	if h.db != nil {
		if err := h.db.Ping(); err != nil {
			checks["database"] = "error: " + err.Error()
			status = "unhealthy"
		} else {
			checks["database"] = "ok"
		}
	} else {
		checks["database"] = "not configured"
	}

	// Schema drift is reported but does not make the service unhealthy
	if h.schemaCheck != nil {
		switch result := h.schemaCheck.LastResult(); {
		case result == nil:
			checks["schema"] = "pending"
		case result.OK:
			checks["schema"] = "ok"
		default:
			checks["schema"] = "drift: " + result.Error
		}
	}

	health := HealthResponse{
		Status:  status,
		Time:    time.Now().Format(time.RFC3339),
		Version: h.version,
		Checks:  checks,
	}

	statusCode := http.StatusOK
	if status != "healthy" {
		statusCode = http.StatusServiceUnavailable
	}

	c.IndentedJSON(statusCode, health)
}
