package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// creates an authenticator signing with the given secret
func New(secret string) *Authenticator {
	return &Authenticator{secret: []byte(secret), ttl: defaultTokenTTL}
}

// creates a JWT token for the user
func (a *Authenticator) GenerateJWT(userID, email string, isAdmin bool) (string, error) {
	if len(a.secret) == 0 {
		return "", fmt.Errorf("JWT secret not set")
	}

	now := time.Now()
	claims := Claims{
		UserID:  userID,
		Email:   email,
		IsAdmin: isAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(a.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(a.secret)
}

// validates a JWT token and returns the claims
func (a *Authenticator) ValidateJWT(tokenString string) (*Claims, error) {
	if len(a.secret) == 0 {
		return nil, fmt.Errorf("JWT secret not set")
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}

		return a.secret, nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}
