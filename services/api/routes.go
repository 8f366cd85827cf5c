// Package api serves the format parser and brand matcher over HTTP.
package api

import (
	"github.com/gin-gonic/gin"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(production bool, handler *Handler) *gin.Engine {
	if production {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(LoggerMiddleware())

	router.GET("/health", handler.HealthCheck)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/formats", handler.ParseFormat)
		v1.POST("/formats", handler.ParseFormats)
		v1.POST("/brands", handler.MatchBrands)
	}

	return router
}
