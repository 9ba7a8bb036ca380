// Package produto contains product and recipe use cases.
package produto

import (
	"context"

	"github.com/google/uuid"

	"github.com/mallow/backend/internal/application/adapter"
)

// DeleteProdutoInput represents the input for product deletion.
type DeleteProdutoInput struct {
	UserID    uuid.UUID
	ProdutoID uuid.UUID
}

// DeleteProdutoOutput represents the output of product deletion.
type DeleteProdutoOutput struct{}

// DeleteProdutoUseCase handles product deletion logic. Recipe lines go with
// the product via the store's cascade.
type DeleteProdutoUseCase struct {
	produtoRepo adapter.ProdutoRepository
}

// NewDeleteProdutoUseCase creates a new DeleteProdutoUseCase instance.
func NewDeleteProdutoUseCase(produtoRepo adapter.ProdutoRepository) *DeleteProdutoUseCase {
	return &DeleteProdutoUseCase{
		produtoRepo: produtoRepo,
	}
}

// Execute performs the product deletion.
func (uc *DeleteProdutoUseCase) Execute(ctx context.Context, input DeleteProdutoInput) (*DeleteProdutoOutput, error) {
	if err := uc.produtoRepo.Delete(ctx, input.UserID, input.ProdutoID); err != nil {
		return nil, err
	}

	return &DeleteProdutoOutput{}, nil
}
