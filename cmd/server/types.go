package main

import (
	"codeberg.org/algopatterns/apierrors/apierr"
	"codeberg.org/algopatterns/apierrors/internal/auth"
	"codeberg.org/algopatterns/apierrors/internal/config"
	"github.com/gin-gonic/gin"
)

// holds all dependencies and state for the API server
type Server struct {
	config *config.Config
	auth   *auth.Authenticator
	router *gin.Engine
}

// disclosure options every rendered error goes through
func (s *Server) errorOptions() apierr.Options {
	return apierr.Options{ExposeErrors: s.config.ExposeErrors}
}
