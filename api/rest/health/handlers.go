package health

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	serviceName    = "apierrors"
	serviceVersion = "1.0.0"
)

// Handler godoc
// @Summary Service health
// @Description Reports liveness and whether error detail is exposed to callers
// @Tags health
// @Produce json
// @Success 200 {object} Response
// @Router /health [get]
func Handler(environment string, exposeErrors bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, Response{
			Status:       "healthy",
			Service:      serviceName,
			Version:      serviceVersion,
			Environment:  environment,
			ExposeErrors: exposeErrors,
		})
	}
}

// responds with pong for testing
func PingHandler(c *gin.Context) {
	c.JSON(http.StatusOK, PingResponse{Message: "pong"})
}
