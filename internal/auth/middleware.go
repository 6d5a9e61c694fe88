package auth

import (
	"strings"

	"codeberg.org/algopatterns/apierrors/apierr"
	"github.com/gin-gonic/gin"
)

// validates JWT tokens and adds user info to context.
// failures are recorded on the gin context for the error middleware to render.
func (a *Authenticator) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abort(c, apierr.NewAuthenticationError("authorization header required"))
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			abort(c, apierr.NewAuthenticationError("invalid authorization header format"))
			return
		}

		claims, err := a.ValidateJWT(parts[1])
		if err != nil {
			abort(c, apierr.NewAuthenticationError("invalid or expired token").
				WithInfo(map[string]any{"reason": err.Error()}))
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextEmail, claims.Email)
		c.Set(ContextIsAdmin, claims.IsAdmin)

		c.Next()
	}
}

// requires an authenticated admin; must run after Middleware
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := GetUserID(c); !ok {
			abort(c, apierr.NewAuthenticationError("authentication required"))
			return
		}

		if !c.GetBool(ContextIsAdmin) {
			abort(c, apierr.NewAuthorizationError("admin access required"))
			return
		}

		c.Next()
	}
}

// extracts user_id from context after Middleware
func GetUserID(c *gin.Context) (string, bool) {
	userID := c.GetString(ContextUserID)
	return userID, userID != ""
}

func abort(c *gin.Context, err *apierr.Error) {
	_ = c.Error(err)
	c.Abort()
}
