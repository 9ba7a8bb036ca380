// Package precificacao assembles the derived pricing views.
package precificacao

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/mallow/backend/internal/application/adapter"
	"github.com/mallow/backend/internal/domain/entity"
	"github.com/mallow/backend/internal/domain/pricing"
)

// GetProdutoCompletoInput represents the input for pricing one product.
type GetProdutoCompletoInput struct {
	UserID    uuid.UUID
	ProdutoID uuid.UUID
}

// GetProdutoCompletoOutput represents the derived view of one product.
type GetProdutoCompletoOutput struct {
	Produto *entity.ProdutoCompleto
}

// GetProdutoCompletoUseCase prices a single product on demand.
type GetProdutoCompletoUseCase struct {
	produtoRepo adapter.ProdutoRepository
	insumoRepo  adapter.InsumoRepository
	custoRepo   adapter.CustoRepository
}

// NewGetProdutoCompletoUseCase creates a new GetProdutoCompletoUseCase instance.
func NewGetProdutoCompletoUseCase(
	produtoRepo adapter.ProdutoRepository,
	insumoRepo adapter.InsumoRepository,
	custoRepo adapter.CustoRepository,
) *GetProdutoCompletoUseCase {
	return &GetProdutoCompletoUseCase{
		produtoRepo: produtoRepo,
		insumoRepo:  insumoRepo,
		custoRepo:   custoRepo,
	}
}

// Execute builds the derived view for one product. The product lookup runs
// first so an unknown ID fails fast; the supporting reads run concurrently.
func (uc *GetProdutoCompletoUseCase) Execute(ctx context.Context, input GetProdutoCompletoInput) (*GetProdutoCompletoOutput, error) {
	produto, err := uc.produtoRepo.FindByID(ctx, input.UserID, input.ProdutoID)
	if err != nil {
		return nil, err
	}

	var (
		linhas  []*entity.ProdutoInsumo
		insumos []*entity.Insumo
		custos  []*entity.CustoGlobal
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		linhas, err = uc.produtoRepo.FindRecipe(gctx, produto.ID)
		return err
	})
	g.Go(func() error {
		var err error
		insumos, err = uc.insumoRepo.FindByUser(gctx, input.UserID)
		return err
	})
	g.Go(func() error {
		var err error
		custos, err = uc.custoRepo.FindActiveByUser(gctx, input.UserID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	insumosPorID := make(map[uuid.UUID]*entity.Insumo, len(insumos))
	for _, ins := range insumos {
		insumosPorID[ins.ID] = ins
	}

	completo := pricing.MontarCompleto(produto, linhas, insumosPorID, pricing.CustoHora(custos))

	return &GetProdutoCompletoOutput{
		Produto: completo,
	}, nil
}
