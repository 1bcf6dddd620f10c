package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// TokenTTL is how long an issued session token stays valid.
const TokenTTL = 24 * time.Hour

var (
	ErrMissingSecret = errors.New("signing secret is not configured")

	// ErrInvalidToken is returned for every verification failure.
	// Malformed, expired and badly signed tokens are deliberately not
	// distinguished to the caller.
	ErrInvalidToken = errors.New("invalid or expired token")
)

type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// IssueToken signs a session token carrying the given email claim.
func IssueToken(email string, secret []byte, ttl time.Duration) (string, error) {
	if len(secret) == 0 {
		return "", ErrMissingSecret
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		Email: email,
	})

	return token.SignedString(secret)
}

// ParseToken verifies a session token and returns the email claim.
func ParseToken(tokenString string, secret []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	return claims.Email, nil
}
