// Package produto contains product and recipe use cases.
package produto

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mallow/backend/internal/application/adapter"
	"github.com/mallow/backend/internal/domain/entity"
	domainerror "github.com/mallow/backend/internal/domain/error"
)

// UpdateProdutoInput represents the input for product update. The recipe
// submitted here replaces the stored one wholesale.
type UpdateProdutoInput struct {
	UserID        uuid.UUID
	ProdutoID     uuid.UUID
	Nome          string
	Rendimento    float64
	MargemLucro   float64
	PrecoManual   *decimal.Decimal
	TempoProducao *float64
	Receita       []RecipeLineInput
}

// UpdateProdutoOutput represents the output of product update.
type UpdateProdutoOutput struct {
	Produto *entity.Produto
	Receita []*entity.ProdutoInsumo
}

// UpdateProdutoUseCase handles product update logic.
//
// The header update and the recipe replacement are two store calls, not one
// transaction. A failure between them leaves the new header with the old
// recipe; the next successful update converges.
type UpdateProdutoUseCase struct {
	produtoRepo adapter.ProdutoRepository
	insumoRepo  adapter.InsumoRepository
}

// NewUpdateProdutoUseCase creates a new UpdateProdutoUseCase instance.
func NewUpdateProdutoUseCase(produtoRepo adapter.ProdutoRepository, insumoRepo adapter.InsumoRepository) *UpdateProdutoUseCase {
	return &UpdateProdutoUseCase{
		produtoRepo: produtoRepo,
		insumoRepo:  insumoRepo,
	}
}

// Execute performs the product update.
func (uc *UpdateProdutoUseCase) Execute(ctx context.Context, input UpdateProdutoInput) (*UpdateProdutoOutput, error) {
	if strings.TrimSpace(input.Nome) == "" {
		return nil, domainerror.NewProdutoError(
			domainerror.ErrCodeProdutoNameRequired,
			"produto name is required",
			domainerror.ErrProdutoNameRequired,
		)
	}

	produto, err := uc.produtoRepo.FindByID(ctx, input.UserID, input.ProdutoID)
	if err != nil {
		return nil, err
	}

	linhas, err := buildRecipeLines(ctx, uc.insumoRepo, input.UserID, produto.ID, input.Receita)
	if err != nil {
		return nil, err
	}

	produto.Nome = input.Nome
	produto.Rendimento = input.Rendimento
	produto.MargemLucro = input.MargemLucro
	produto.PrecoManual = input.PrecoManual
	produto.TempoProducao = input.TempoProducao
	produto.UpdatedAt = time.Now().UTC()

	if err := uc.produtoRepo.Update(ctx, produto); err != nil {
		return nil, fmt.Errorf("failed to update produto: %w", err)
	}
	if err := uc.produtoRepo.ReplaceRecipe(ctx, produto.ID, linhas); err != nil {
		return nil, fmt.Errorf("failed to replace recipe: %w", err)
	}

	return &UpdateProdutoOutput{
		Produto: produto,
		Receita: linhas,
	}, nil
}
