package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// how long issued tokens stay valid
const defaultTokenTTL = 7 * 24 * time.Hour

// gin context keys set by Middleware
const (
	ContextUserID  = "user_id"
	ContextEmail   = "user_email"
	ContextIsAdmin = "user_is_admin"
)

// represents JWT claims
type Claims struct {
	UserID  string `json:"user_id"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
	jwt.RegisteredClaims
}

// issues and validates HS256 tokens for one secret
type Authenticator struct {
	secret []byte
	ttl    time.Duration
}
