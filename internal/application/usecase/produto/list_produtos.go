// Package produto contains product and recipe use cases.
package produto

import (
	"context"

	"github.com/google/uuid"

	"github.com/mallow/backend/internal/application/adapter"
	"github.com/mallow/backend/internal/domain/entity"
)

// ListProdutosInput represents the input for listing products.
type ListProdutosInput struct {
	UserID uuid.UUID
}

// ListProdutosOutput represents the output of listing products.
type ListProdutosOutput struct {
	Produtos []*entity.Produto
}

// ListProdutosUseCase handles listing product headers. For the priced
// catalog, see the precificacao use cases.
type ListProdutosUseCase struct {
	produtoRepo adapter.ProdutoRepository
}

// NewListProdutosUseCase creates a new ListProdutosUseCase instance.
func NewListProdutosUseCase(produtoRepo adapter.ProdutoRepository) *ListProdutosUseCase {
	return &ListProdutosUseCase{
		produtoRepo: produtoRepo,
	}
}

// Execute performs the product listing.
func (uc *ListProdutosUseCase) Execute(ctx context.Context, input ListProdutosInput) (*ListProdutosOutput, error) {
	produtos, err := uc.produtoRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	return &ListProdutosOutput{
		Produtos: produtos,
	}, nil
}
