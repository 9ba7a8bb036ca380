// Package user contains user profile use cases.
package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/mallow/backend/internal/application/adapter"
	"github.com/mallow/backend/internal/domain/entity"
	domainerror "github.com/mallow/backend/internal/domain/error"
)

// EnsureUserInput carries the identity claims of the authenticated caller.
type EnsureUserInput struct {
	UserID uuid.UUID
	Email  string
	Nome   string
}

// EnsureUserOutput represents the output of the profile lookup.
type EnsureUserOutput struct {
	User *entity.User
}

// EnsureUserUseCase returns the caller's profile, creating it on first
// contact. Identity lives with the external provider, so a valid token is
// all it takes to materialize the local profile row.
type EnsureUserUseCase struct {
	userRepo adapter.UserRepository
}

// NewEnsureUserUseCase creates a new EnsureUserUseCase instance.
func NewEnsureUserUseCase(userRepo adapter.UserRepository) *EnsureUserUseCase {
	return &EnsureUserUseCase{
		userRepo: userRepo,
	}
}

// Execute performs the get-or-create profile lookup.
func (uc *EnsureUserUseCase) Execute(ctx context.Context, input EnsureUserInput) (*EnsureUserOutput, error) {
	existing, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err == nil {
		return &EnsureUserOutput{User: existing}, nil
	}
	if !errors.Is(err, domainerror.ErrUserNotFound) {
		return nil, err
	}

	created := entity.NewUser(input.UserID, input.Nome, input.Email)
	if err := uc.userRepo.Create(ctx, created); err != nil {
		return nil, fmt.Errorf("failed to create user profile: %w", err)
	}

	return &EnsureUserOutput{User: created}, nil
}
