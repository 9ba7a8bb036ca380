// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TokenClaims represents the claims extracted from a validated access token.
type TokenClaims struct {
	UserID    uuid.UUID
	Email     string
	Nome      string
	ExpiresAt time.Time
}

// TokenService validates access tokens issued by the external identity
// provider. This service never issues tokens itself.
type TokenService interface {
	// ValidateAccessToken validates an access token and returns its claims.
	ValidateAccessToken(ctx context.Context, token string) (*TokenClaims, error)
}
