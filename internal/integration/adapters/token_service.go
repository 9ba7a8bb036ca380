// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/mallow/backend/internal/application/adapter"
	domainerror "github.com/mallow/backend/internal/domain/error"
)

// CustomClaims represents the claims carried by access tokens from the
// identity provider. The subject is the user ID.
type CustomClaims struct {
	Email string `json:"email"`
	Nome  string `json:"nome"`
	jwt.RegisteredClaims
}

// tokenService implements the adapter.TokenService interface. It only
// validates tokens; issuance belongs to the identity provider, which shares
// the HS256 secret with this service.
type tokenService struct {
	secret []byte
}

// NewTokenService creates a new token service instance.
func NewTokenService(secret string) adapter.TokenService {
	return &tokenService{
		secret: []byte(secret),
	}
}

// ValidateAccessToken validates an access token and returns its claims.
func (s *tokenService) ValidateAccessToken(ctx context.Context, tokenString string) (*adapter.TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domainerror.NewAuthError(
				domainerror.ErrCodeExpiredToken,
				"token has expired",
				domainerror.ErrExpiredToken,
			)
		}
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidToken,
			"failed to parse token",
			domainerror.ErrInvalidToken,
		)
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidToken,
			"invalid token claims",
			domainerror.ErrInvalidToken,
		)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidToken,
			"invalid user ID in token subject",
			domainerror.ErrInvalidToken,
		)
	}

	tokenClaims := &adapter.TokenClaims{
		UserID: userID,
		Email:  claims.Email,
		Nome:   claims.Nome,
	}
	if claims.ExpiresAt != nil {
		tokenClaims.ExpiresAt = claims.ExpiresAt.Time
	}

	return tokenClaims, nil
}
