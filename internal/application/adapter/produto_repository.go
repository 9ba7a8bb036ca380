// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/mallow/backend/internal/domain/entity"
)

// ProdutoRepository defines the interface for produto and recipe-line
// persistence operations, scoped by the owning user.
type ProdutoRepository interface {
	// Create creates a new product header in the database.
	Create(ctx context.Context, produto *entity.Produto) error

	// FindByID retrieves a product by ID within the user's scope.
	FindByID(ctx context.Context, userID, id uuid.UUID) (*entity.Produto, error)

	// FindByUser retrieves all of a user's products ordered by name.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Produto, error)

	// Update updates an existing product header within the user's scope.
	Update(ctx context.Context, produto *entity.Produto) error

	// Delete removes a product within the user's scope. Its recipe lines are
	// removed by the store's cascade.
	Delete(ctx context.Context, userID, id uuid.UUID) error

	// FindRecipe retrieves the recipe lines of one product.
	FindRecipe(ctx context.Context, produtoID uuid.UUID) ([]*entity.ProdutoInsumo, error)

	// FindRecipeByUser retrieves every recipe line belonging to the user's
	// products, for the catalog projection.
	FindRecipeByUser(ctx context.Context, userID uuid.UUID) ([]*entity.ProdutoInsumo, error)

	// ReplaceRecipe replaces a product's recipe wholesale: all existing lines
	// are deleted and the given lines inserted. There is no diff/merge.
	ReplaceRecipe(ctx context.Context, produtoID uuid.UUID, linhas []*entity.ProdutoInsumo) error
}
