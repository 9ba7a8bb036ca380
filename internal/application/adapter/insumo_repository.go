// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/mallow/backend/internal/domain/entity"
)

// InsumoRepository defines the interface for insumo persistence operations.
// Every lookup is scoped by the owning user; a row belonging to another user
// behaves as if it did not exist.
type InsumoRepository interface {
	// Create creates a new insumo in the database.
	Create(ctx context.Context, insumo *entity.Insumo) error

	// FindByID retrieves an insumo by ID within the user's scope.
	FindByID(ctx context.Context, userID, id uuid.UUID) (*entity.Insumo, error)

	// FindByUser retrieves all of a user's insumos ordered by name.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Insumo, error)

	// Update updates an existing insumo within the user's scope.
	Update(ctx context.Context, insumo *entity.Insumo) error

	// Delete removes an insumo within the user's scope. Recipe lines that
	// reference it are removed by the store's cascade.
	Delete(ctx context.Context, userID, id uuid.UUID) error
}
