package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims for access tokens. UserID mirrors the
// registered subject claim.
type Claims struct {
	UserID uuid.UUID `json:"-"`
	Roles  []string  `json:"roles,omitempty"`
	Type   string    `json:"type,omitempty"`
	jwt.RegisteredClaims
}

// TokenService issues and validates access tokens. Tokens are minted by the
// identity subsystem; issuing here serves operator tooling and tests.
type TokenService interface {
	// GenerateAccessToken creates an access token for a party with the given roles.
	GenerateAccessToken(userID uuid.UUID, roles []string, ttl time.Duration) (string, error)

	// ValidateToken checks the validity of a token string.
	ValidateToken(tokenString string) (*Claims, error)
}
