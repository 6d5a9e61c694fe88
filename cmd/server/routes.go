package main

import (
	"codeberg.org/algopatterns/apierrors/api/rest/health"
	"codeberg.org/algopatterns/apierrors/api/rest/probe"
	"github.com/gin-gonic/gin"
)

// sets up all API routes
func RegisterRoutes(router *gin.Engine, server *Server) {
	router.GET("/health", health.Handler(server.config.Environment, server.config.ExposeErrors))

	v1 := router.Group("/api/v1")

	{
		v1.GET("/ping", health.PingHandler)

		probe.RegisterRoutes(v1, server.auth)
	}
}
