package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by organizer access tokens.
type Claims struct {
	ProfileID uuid.UUID `json:"profileId"`
	Role      string    `json:"role"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating the JWTs
// that protect the admin surface.
type TokenService interface {
	// GenerateAccessToken creates a signed access token for a profile.
	GenerateAccessToken(profileID uuid.UUID, role string) (string, error)

	// ValidateToken checks the validity of a token string and returns its claims.
	ValidateToken(tokenString string) (*Claims, error)
}
