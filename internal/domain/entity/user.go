// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents a Mallow account holder. Identity is provisioned by the
// external identity provider; the ID comes from the validated token subject.
type User struct {
	ID        uuid.UUID
	Nome      string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewUser creates a new User entity for a provider-issued identity.
func NewUser(id uuid.UUID, nome, email string) *User {
	now := time.Now().UTC()

	return &User{
		ID:        id,
		Nome:      nome,
		Email:     email,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
