package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SetupRoutes registers every endpoint on the router.
// metrics may be nil when the /metrics endpoint is not wanted.
func SetupRoutes(router *gin.Engine, researchHandler *ResearchHandler, metrics http.Handler) {
	router.Use(RequestID())

	router.GET("/", Root)
	router.GET("/health", Health)
	if metrics != nil {
		router.GET("/metrics", gin.WrapH(metrics))
	}

	api := router.Group("/api")
	{
		api.GET("/research", researchHandler.Research)
	}
}
