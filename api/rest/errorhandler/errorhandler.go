// Package errorhandler is the single place where errors leave the service.
//
// Handlers record failures with Abort (or c.Error); Middleware classifies the
// last recorded error, logs its full detail, sets the response status from
// the error kind and writes the formatted body. Recovery turns panics into
// ImplementationErrors rendered the same way.
package errorhandler

import (
	"fmt"
	"io"

	"codeberg.org/algopatterns/apierrors/apierr"
	"codeberg.org/algopatterns/apierrors/internal/auth"
	"codeberg.org/algopatterns/apierrors/internal/errors"
	"codeberg.org/algopatterns/apierrors/internal/logger"
	"github.com/gin-gonic/gin"
)

// records err on the context and stops the handler chain
func Abort(c *gin.Context, err error) {
	if err == nil {
		err = apierr.NewImplementationError("handler aborted without an error")
	}

	_ = c.Error(err)
	c.Abort()
}

// renders the last error recorded on the context, if nothing was written yet
func Middleware(opts apierr.Options) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		render(c, errors.Classify(c.Errors.Last().Err), opts)
	}
}

// converts panics into ImplementationErrors
func Recovery(opts apierr.Options) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered any) {
		err, ok := recovered.(error)
		if !ok {
			err = fmt.Errorf("%v", recovered)
		}

		apiErr, ok := apierr.As(err)
		if !ok {
			apiErr = apierr.NewImplementationErrorf("panic: %v", recovered)
		}

		render(c, apiErr, opts)
	})
}

// renders a 404 for unknown routes through the same path as every other error
func NoRoute() gin.HandlerFunc {
	return func(c *gin.Context) {
		Abort(c, apierr.NewNotFoundErrorf("route %s %s not found", c.Request.Method, c.Request.URL.Path))
	}
}

// renders a 405 as a request error since the taxonomy has no dedicated kind
func NoMethod() gin.HandlerFunc {
	return func(c *gin.Context) {
		Abort(c, apierr.NewRequestErrorf("method %s not allowed on %s", c.Request.Method, c.Request.URL.Path))
	}
}

func render(c *gin.Context, err *apierr.Error, opts apierr.Options) {
	logger.APIError(c.Request.Context(), err, "request failed",
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
		"user_id", c.GetString(auth.ContextUserID),
	)

	c.AbortWithStatusJSON(err.StatusCode(), apierr.Format(err, opts))
}
