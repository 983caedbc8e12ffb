package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenService abstracts issuing and validating the bearer tokens used by
// the dashboard. Access tokens carry the user ID as subject plus the shop ID
// claim; refresh tokens carry only the subject.
type TokenService interface {
	// GenerateTokens creates a new access and refresh token pair.
	GenerateTokens(userID, shopID uuid.UUID) (accessToken string, refreshToken string, err error)

	// ValidateToken checks the validity of a token string against a secret.
	ValidateToken(tokenString string, secret string) (*jwt.Token, error)

	// GetRefreshTokenDuration returns the configured refresh token lifetime.
	GetRefreshTokenDuration() time.Duration
}
