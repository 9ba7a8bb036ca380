// Package produto contains product and recipe use cases.
package produto

import (
	"context"

	"github.com/google/uuid"

	"github.com/mallow/backend/internal/application/adapter"
	"github.com/mallow/backend/internal/domain/entity"
)

// GetProdutoInput represents the input for fetching one product.
type GetProdutoInput struct {
	UserID    uuid.UUID
	ProdutoID uuid.UUID
}

// GetProdutoOutput represents the output of fetching one product, recipe
// included.
type GetProdutoOutput struct {
	Produto *entity.Produto
	Receita []*entity.ProdutoInsumo
}

// GetProdutoUseCase handles single-product lookup logic.
type GetProdutoUseCase struct {
	produtoRepo adapter.ProdutoRepository
}

// NewGetProdutoUseCase creates a new GetProdutoUseCase instance.
func NewGetProdutoUseCase(produtoRepo adapter.ProdutoRepository) *GetProdutoUseCase {
	return &GetProdutoUseCase{
		produtoRepo: produtoRepo,
	}
}

// Execute performs the product lookup.
func (uc *GetProdutoUseCase) Execute(ctx context.Context, input GetProdutoInput) (*GetProdutoOutput, error) {
	produto, err := uc.produtoRepo.FindByID(ctx, input.UserID, input.ProdutoID)
	if err != nil {
		return nil, err
	}

	receita, err := uc.produtoRepo.FindRecipe(ctx, produto.ID)
	if err != nil {
		return nil, err
	}

	return &GetProdutoOutput{
		Produto: produto,
		Receita: receita,
	}, nil
}
