package main

import (
	"errors"
	"time"

	"codeberg.org/algopatterns/apierrors/api/rest/errorhandler"
	"codeberg.org/algopatterns/apierrors/internal/auth"
	"codeberg.org/algopatterns/apierrors/internal/config"
	"codeberg.org/algopatterns/apierrors/internal/logger"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// how long browsers may cache a preflight response
const corsMaxAge = 12 * time.Hour

// creates and configures a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// report a wrong method as a request error instead of a missing route
	router.HandleMethodNotAllowed = true

	server := &Server{
		config: cfg,
		auth:   auth.New(cfg.JWTSecret),
		router: router,
	}

	opts := server.errorOptions()

	router.Use(
		cors.New(corsConfig(cfg.CORSOrigins)),
		errorhandler.Recovery(opts),
		errorhandler.Middleware(opts),
	)

	router.NoRoute(errorhandler.NoRoute())
	router.NoMethod(errorhandler.NoMethod())

	RegisterRoutes(router, server)

	logger.Info("server configured",
		"environment", cfg.Environment,
		"expose_errors", cfg.ExposeErrors,
		"cors_origins", cfg.CORSOrigins,
	)

	return server, nil
}

func corsConfig(origins []string) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        corsMaxAge,
	}

	for _, origin := range origins {
		if origin == "*" {
			c.AllowAllOrigins = true
			return c
		}
	}

	// credentials are only allowed with an explicit origin list
	c.AllowOrigins = origins
	c.AllowCredentials = true

	return c
}
