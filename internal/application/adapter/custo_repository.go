// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/mallow/backend/internal/domain/entity"
)

// CustoRepository defines the interface for custo global persistence
// operations, scoped by the owning user.
type CustoRepository interface {
	// Create creates a new cost entry in the database.
	Create(ctx context.Context, custo *entity.CustoGlobal) error

	// FindByID retrieves a cost entry by ID within the user's scope.
	FindByID(ctx context.Context, userID, id uuid.UUID) (*entity.CustoGlobal, error)

	// FindByUser retrieves all of a user's cost entries ordered by name.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.CustoGlobal, error)

	// FindActiveByUser retrieves the user's cost entries with the active flag
	// set, ordered by name.
	FindActiveByUser(ctx context.Context, userID uuid.UUID) ([]*entity.CustoGlobal, error)

	// Update updates an existing cost entry within the user's scope.
	Update(ctx context.Context, custo *entity.CustoGlobal) error

	// Delete removes a cost entry within the user's scope.
	Delete(ctx context.Context, userID, id uuid.UUID) error
}
