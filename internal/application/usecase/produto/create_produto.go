// Package produto contains product and recipe use cases.
package produto

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mallow/backend/internal/application/adapter"
	"github.com/mallow/backend/internal/domain/entity"
	domainerror "github.com/mallow/backend/internal/domain/error"
)

// RecipeLineInput is one recipe line as submitted by the client.
type RecipeLineInput struct {
	InsumoID        uuid.UUID
	QuantidadeUsada float64
}

// CreateProdutoInput represents the input for product creation. The recipe is
// carried along with the header and stored in the same call.
type CreateProdutoInput struct {
	UserID        uuid.UUID
	Nome          string
	Rendimento    float64
	MargemLucro   float64
	PrecoManual   *decimal.Decimal
	TempoProducao *float64
	Receita       []RecipeLineInput
}

// CreateProdutoOutput represents the output of product creation.
type CreateProdutoOutput struct {
	Produto *entity.Produto
	Receita []*entity.ProdutoInsumo
}

// CreateProdutoUseCase handles product creation logic.
type CreateProdutoUseCase struct {
	produtoRepo adapter.ProdutoRepository
	insumoRepo  adapter.InsumoRepository
}

// NewCreateProdutoUseCase creates a new CreateProdutoUseCase instance.
func NewCreateProdutoUseCase(produtoRepo adapter.ProdutoRepository, insumoRepo adapter.InsumoRepository) *CreateProdutoUseCase {
	return &CreateProdutoUseCase{
		produtoRepo: produtoRepo,
		insumoRepo:  insumoRepo,
	}
}

// Execute performs the product creation. Every recipe line must reference an
// insumo owned by the user; the whole request is rejected otherwise.
func (uc *CreateProdutoUseCase) Execute(ctx context.Context, input CreateProdutoInput) (*CreateProdutoOutput, error) {
	if strings.TrimSpace(input.Nome) == "" {
		return nil, domainerror.NewProdutoError(
			domainerror.ErrCodeProdutoNameRequired,
			"produto name is required",
			domainerror.ErrProdutoNameRequired,
		)
	}

	produto := entity.NewProduto(input.UserID, input.Nome, input.Rendimento, input.MargemLucro)
	produto.PrecoManual = input.PrecoManual
	produto.TempoProducao = input.TempoProducao

	linhas, err := buildRecipeLines(ctx, uc.insumoRepo, input.UserID, produto.ID, input.Receita)
	if err != nil {
		return nil, err
	}

	if err := uc.produtoRepo.Create(ctx, produto); err != nil {
		return nil, fmt.Errorf("failed to create produto: %w", err)
	}
	if err := uc.produtoRepo.ReplaceRecipe(ctx, produto.ID, linhas); err != nil {
		return nil, fmt.Errorf("failed to store recipe: %w", err)
	}

	return &CreateProdutoOutput{
		Produto: produto,
		Receita: linhas,
	}, nil
}

// buildRecipeLines validates recipe line ownership and converts the input
// lines into entities bound to the product.
func buildRecipeLines(ctx context.Context, insumoRepo adapter.InsumoRepository, userID, produtoID uuid.UUID, receita []RecipeLineInput) ([]*entity.ProdutoInsumo, error) {
	if len(receita) == 0 {
		return nil, nil
	}

	insumos, err := insumoRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	owned := make(map[uuid.UUID]struct{}, len(insumos))
	for _, ins := range insumos {
		owned[ins.ID] = struct{}{}
	}

	linhas := make([]*entity.ProdutoInsumo, 0, len(receita))
	for _, linha := range receita {
		if _, ok := owned[linha.InsumoID]; !ok {
			return nil, domainerror.NewProdutoError(
				domainerror.ErrCodeRecipeInsumoNotFound,
				fmt.Sprintf("recipe references unknown insumo %s", linha.InsumoID),
				domainerror.ErrRecipeInsumoNotFound,
			)
		}
		linhas = append(linhas, &entity.ProdutoInsumo{
			ProdutoID:       produtoID,
			InsumoID:        linha.InsumoID,
			QuantidadeUsada: linha.QuantidadeUsada,
		})
	}

	return linhas, nil
}
