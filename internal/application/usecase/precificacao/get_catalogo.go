// Package precificacao assembles the derived pricing views. The views are
// pure projections: rebuilt from stored data on every query, never persisted.
package precificacao

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/mallow/backend/internal/application/adapter"
	"github.com/mallow/backend/internal/domain/entity"
	"github.com/mallow/backend/internal/domain/pricing"
)

// GetCatalogoInput represents the input for the priced catalog.
type GetCatalogoInput struct {
	UserID uuid.UUID
}

// GetCatalogoOutput represents the priced catalog of a user.
type GetCatalogoOutput struct {
	Produtos []*entity.ProdutoCompleto
}

// GetCatalogoUseCase builds the priced catalog: every product of the user
// enriched with its cost breakdown and suggested price. The four reads are
// independent and run concurrently; pricing only starts after all complete,
// so every product in one response is priced against the same hourly rate.
type GetCatalogoUseCase struct {
	produtoRepo adapter.ProdutoRepository
	insumoRepo  adapter.InsumoRepository
	custoRepo   adapter.CustoRepository
}

// NewGetCatalogoUseCase creates a new GetCatalogoUseCase instance.
func NewGetCatalogoUseCase(
	produtoRepo adapter.ProdutoRepository,
	insumoRepo adapter.InsumoRepository,
	custoRepo adapter.CustoRepository,
) *GetCatalogoUseCase {
	return &GetCatalogoUseCase{
		produtoRepo: produtoRepo,
		insumoRepo:  insumoRepo,
		custoRepo:   custoRepo,
	}
}

// Execute builds the priced catalog ordered by product name.
func (uc *GetCatalogoUseCase) Execute(ctx context.Context, input GetCatalogoInput) (*GetCatalogoOutput, error) {
	var (
		produtos []*entity.Produto
		linhas   []*entity.ProdutoInsumo
		insumos  []*entity.Insumo
		custos   []*entity.CustoGlobal
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		produtos, err = uc.produtoRepo.FindByUser(gctx, input.UserID)
		return err
	})
	g.Go(func() error {
		var err error
		linhas, err = uc.produtoRepo.FindRecipeByUser(gctx, input.UserID)
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
	linhasPorProduto := make(map[uuid.UUID][]*entity.ProdutoInsumo, len(produtos))
	for _, linha := range linhas {
		linhasPorProduto[linha.ProdutoID] = append(linhasPorProduto[linha.ProdutoID], linha)
	}

	custoHora := pricing.CustoHora(custos)

	completos := make([]*entity.ProdutoCompleto, 0, len(produtos))
	for _, p := range produtos {
		completos = append(completos, pricing.MontarCompleto(p, linhasPorProduto[p.ID], insumosPorID, custoHora))
	}

	OrdenarPorNome(completos)

	return &GetCatalogoOutput{
		Produtos: completos,
	}, nil
}

// OrdenarPorNome sorts the catalog by product name using pt-BR collation,
// case-insensitive, so accented names land where a Brazilian user expects.
func OrdenarPorNome(completos []*entity.ProdutoCompleto) {
	cl := collate.New(language.BrazilianPortuguese, collate.IgnoreCase)
	sort.SliceStable(completos, func(i, j int) bool {
		return cl.CompareString(completos[i].Produto.Nome, completos[j].Produto.Nome) < 0
	})
}
