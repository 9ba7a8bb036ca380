// Package precificacao assembles the derived pricing views.
package precificacao

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mallow/backend/internal/domain/entity"
	domainerror "github.com/mallow/backend/internal/domain/error"
)

type fakeProdutoRepo struct {
	produtos []*entity.Produto
	linhas   []*entity.ProdutoInsumo
}

func (f *fakeProdutoRepo) Create(ctx context.Context, produto *entity.Produto) error {
	f.produtos = append(f.produtos, produto)
	return nil
}

func (f *fakeProdutoRepo) FindByID(ctx context.Context, userID, id uuid.UUID) (*entity.Produto, error) {
	for _, p := range f.produtos {
		if p.ID == id && p.UserID == userID {
			return p, nil
		}
	}
	return nil, domainerror.NewProdutoError(domainerror.ErrCodeProdutoNotFound, "produto not found", domainerror.ErrProdutoNotFound)
}

func (f *fakeProdutoRepo) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Produto, error) {
	var out []*entity.Produto
	for _, p := range f.produtos {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProdutoRepo) Update(ctx context.Context, produto *entity.Produto) error { return nil }

func (f *fakeProdutoRepo) Delete(ctx context.Context, userID, id uuid.UUID) error { return nil }

func (f *fakeProdutoRepo) FindRecipe(ctx context.Context, produtoID uuid.UUID) ([]*entity.ProdutoInsumo, error) {
	var out []*entity.ProdutoInsumo
	for _, l := range f.linhas {
		if l.ProdutoID == produtoID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeProdutoRepo) FindRecipeByUser(ctx context.Context, userID uuid.UUID) ([]*entity.ProdutoInsumo, error) {
	return f.linhas, nil
}

func (f *fakeProdutoRepo) ReplaceRecipe(ctx context.Context, produtoID uuid.UUID, linhas []*entity.ProdutoInsumo) error {
	return nil
}

type fakeInsumoRepo struct {
	insumos []*entity.Insumo
}

func (f *fakeInsumoRepo) Create(ctx context.Context, insumo *entity.Insumo) error {
	f.insumos = append(f.insumos, insumo)
	return nil
}

func (f *fakeInsumoRepo) FindByID(ctx context.Context, userID, id uuid.UUID) (*entity.Insumo, error) {
	for _, ins := range f.insumos {
		if ins.ID == id && ins.UserID == userID {
			return ins, nil
		}
	}
	return nil, domainerror.NewInsumoError(domainerror.ErrCodeInsumoNotFound, "insumo not found", domainerror.ErrInsumoNotFound)
}

func (f *fakeInsumoRepo) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Insumo, error) {
	var out []*entity.Insumo
	for _, ins := range f.insumos {
		if ins.UserID == userID {
			out = append(out, ins)
		}
	}
	return out, nil
}

func (f *fakeInsumoRepo) Update(ctx context.Context, insumo *entity.Insumo) error { return nil }

func (f *fakeInsumoRepo) Delete(ctx context.Context, userID, id uuid.UUID) error { return nil }

type fakeCustoRepo struct {
	custos []*entity.CustoGlobal
}

func (f *fakeCustoRepo) Create(ctx context.Context, custo *entity.CustoGlobal) error {
	f.custos = append(f.custos, custo)
	return nil
}

func (f *fakeCustoRepo) FindByID(ctx context.Context, userID, id uuid.UUID) (*entity.CustoGlobal, error) {
	for _, c := range f.custos {
		if c.ID == id && c.UserID == userID {
			return c, nil
		}
	}
	return nil, domainerror.NewCustoError(domainerror.ErrCodeCustoNotFound, "custo not found", domainerror.ErrCustoNotFound)
}

func (f *fakeCustoRepo) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.CustoGlobal, error) {
	var out []*entity.CustoGlobal
	for _, c := range f.custos {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCustoRepo) FindActiveByUser(ctx context.Context, userID uuid.UUID) ([]*entity.CustoGlobal, error) {
	var out []*entity.CustoGlobal
	for _, c := range f.custos {
		if c.UserID == userID && c.Ativo {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCustoRepo) Update(ctx context.Context, custo *entity.CustoGlobal) error { return nil }

func (f *fakeCustoRepo) Delete(ctx context.Context, userID, id uuid.UUID) error { return nil }

func minutos(v float64) *float64 { return &v }

// assertApprox compares within a small tolerance since decimal division
// rounds at a fixed precision.
func assertApprox(t *testing.T, name string, got decimal.Decimal, want float64) {
	t.Helper()
	diff := got.Sub(decimal.NewFromFloat(want)).Abs()
	if diff.GreaterThan(decimal.NewFromFloat(1e-9)) {
		t.Errorf("%s: expected %v, got %s", name, want, got)
	}
}

func TestGetCatalogoUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	farinha := entity.NewInsumo(userID, "Farinha", "kg", 2, decimal.NewFromInt(3))
	chocolate := entity.NewInsumo(userID, "Chocolate", "kg", 1, decimal.NewFromInt(2))

	// 1600/month over 160h gives a 10.00 hourly rate.
	aluguel := entity.NewCustoGlobal(userID, "Aluguel", entity.TipoCustoFixo, decimal.NewFromInt(1600), true)
	inativo := entity.NewCustoGlobal(userID, "Assinatura", entity.TipoCustoFixo, decimal.NewFromInt(9999), false)

	zebra := entity.NewProduto(userID, "Zebra", 10, 100)
	zebra.TempoProducao = minutos(30)
	ana := entity.NewProduto(userID, "ana", 10, 100)
	ana.TempoProducao = minutos(30)
	maca := entity.NewProduto(userID, "Maçã", 10, 100)
	maca.TempoProducao = minutos(30)

	produtoRepo := &fakeProdutoRepo{
		produtos: []*entity.Produto{zebra, ana, maca},
		linhas: []*entity.ProdutoInsumo{
			{ProdutoID: zebra.ID, InsumoID: farinha.ID, QuantidadeUsada: 4},
			{ProdutoID: zebra.ID, InsumoID: chocolate.ID, QuantidadeUsada: 1.5},
			{ProdutoID: ana.ID, InsumoID: farinha.ID, QuantidadeUsada: 6},
		},
	}
	insumoRepo := &fakeInsumoRepo{insumos: []*entity.Insumo{farinha, chocolate}}
	custoRepo := &fakeCustoRepo{custos: []*entity.CustoGlobal{aluguel, inativo}}

	uc := NewGetCatalogoUseCase(produtoRepo, insumoRepo, custoRepo)

	out, err := uc.Execute(ctx, GetCatalogoInput{UserID: userID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Produtos) != 3 {
		t.Fatalf("expected 3 produtos, got %d", len(out.Produtos))
	}

	t.Run("orders by name with pt-BR collation", func(t *testing.T) {
		got := []string{out.Produtos[0].Produto.Nome, out.Produtos[1].Produto.Nome, out.Produtos[2].Produto.Nome}
		want := []string{"ana", "Maçã", "Zebra"}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("expected order %v, got %v", want, got)
			}
		}
	})

	t.Run("all products share the same hourly rate", func(t *testing.T) {
		// 30 min at 10.00/h is a 5.00 fixed share for every product,
		// the inactive cost notwithstanding.
		for _, pc := range out.Produtos {
			assertApprox(t, "fixed share of "+pc.Produto.Nome, pc.CustoFixoTotal, 5)
		}
	})

	t.Run("aggregates recipe costs per product", func(t *testing.T) {
		byName := make(map[string]*entity.ProdutoCompleto, len(out.Produtos))
		for _, pc := range out.Produtos {
			byName[pc.Produto.Nome] = pc
		}

		// Zebra: 4 x 1.50 + 1.5 x 2.00 = 9.00 materials, +5.00 fixed = 14.00,
		// /10 units = 1.40, +100% margin = 2.80.
		zebraView := byName["Zebra"]
		assertApprox(t, "material cost", zebraView.CustoInsumos, 9)
		assertApprox(t, "total cost", zebraView.CustoTotalReceita, 14)
		assertApprox(t, "suggested price", zebraView.PrecoFinalSugerido, 2.8)
		if len(zebraView.Insumos) != 2 {
			t.Errorf("expected 2 recipe lines, got %d", len(zebraView.Insumos))
		}

		// Maçã has no recipe: only the fixed share remains.
		macaView := byName["Maçã"]
		if !macaView.CustoInsumos.Equal(decimal.Zero) {
			t.Errorf("expected zero material cost, got %s", macaView.CustoInsumos)
		}
		assertApprox(t, "total cost", macaView.CustoTotalReceita, 5)
	})

	t.Run("catalog of another user is empty", func(t *testing.T) {
		other, err := uc.Execute(ctx, GetCatalogoInput{UserID: uuid.New()})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(other.Produtos) != 0 {
			t.Fatalf("expected empty catalog, got %d produtos", len(other.Produtos))
		}
	})
}

func TestGetProdutoCompletoUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	farinha := entity.NewInsumo(userID, "Farinha", "kg", 2, decimal.NewFromInt(3))
	bolo := entity.NewProduto(userID, "Bolo", 8, 50)
	bolo.TempoProducao = minutos(60)

	produtoRepo := &fakeProdutoRepo{
		produtos: []*entity.Produto{bolo},
		linhas: []*entity.ProdutoInsumo{
			{ProdutoID: bolo.ID, InsumoID: farinha.ID, QuantidadeUsada: 2},
		},
	}
	insumoRepo := &fakeInsumoRepo{insumos: []*entity.Insumo{farinha}}
	custoRepo := &fakeCustoRepo{custos: []*entity.CustoGlobal{
		entity.NewCustoGlobal(userID, "Energia", entity.TipoCustoFixo, decimal.NewFromInt(800), true),
	}}

	uc := NewGetProdutoCompletoUseCase(produtoRepo, insumoRepo, custoRepo)

	t.Run("prices an existing product", func(t *testing.T) {
		out, err := uc.Execute(ctx, GetProdutoCompletoInput{UserID: userID, ProdutoID: bolo.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// Materials 2 x 1.50 = 3.00; 60 min at 5.00/h adds 5.00; total 8.00,
		// /8 units = 1.00, +50% margin = 1.50.
		view := out.Produto
		assertApprox(t, "material cost", view.CustoInsumos, 3)
		assertApprox(t, "fixed share", view.CustoFixoTotal, 5)
		assertApprox(t, "unit cost", view.CustoUnitario, 1)
		assertApprox(t, "suggested price", view.PrecoFinalSugerido, 1.5)
	})

	t.Run("manual price overrides only the final price", func(t *testing.T) {
		manual := decimal.NewFromInt(12)
		bolo.PrecoManual = &manual
		defer func() { bolo.PrecoManual = nil }()

		out, err := uc.Execute(ctx, GetProdutoCompletoInput{UserID: userID, ProdutoID: bolo.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Produto.PrecoFinalSugerido.Equal(manual) {
			t.Errorf("expected manual price 12, got %s", out.Produto.PrecoFinalSugerido)
		}
		assertApprox(t, "unit cost", out.Produto.CustoUnitario, 1)
	})

	t.Run("unknown product returns not found", func(t *testing.T) {
		_, err := uc.Execute(ctx, GetProdutoCompletoInput{UserID: userID, ProdutoID: uuid.New()})
		if !errors.Is(err, domainerror.ErrProdutoNotFound) {
			t.Fatalf("expected ErrProdutoNotFound, got %v", err)
		}
	})

	t.Run("product of another user is not visible", func(t *testing.T) {
		_, err := uc.Execute(ctx, GetProdutoCompletoInput{UserID: uuid.New(), ProdutoID: bolo.ID})
		if !errors.Is(err, domainerror.ErrProdutoNotFound) {
			t.Fatalf("expected ErrProdutoNotFound, got %v", err)
		}
	})
}
