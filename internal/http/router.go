package http

import (
	"github.com/gin-gonic/gin"
)

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	health := NewHealthController(cfg.Database, cfg.SchemaCheck, cfg.Version)
	contractController := NewContractController(cfg.DatabasePath)

	router.GET("/health", health.Status)

	api := router.Group("/api/contract")
	{
		api.GET("", contractController.Describe)
		api.GET("/columns", contractController.Columns)
		api.GET("/type", contractController.Type)
		api.GET("/schema", contractController.Schema)
		api.GET("/verify", contractController.Verify)
	}

	return router
}
