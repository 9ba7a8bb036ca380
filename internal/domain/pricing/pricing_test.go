package pricing

import (
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mallow/backend/internal/domain/entity"
)

// approxEqual compares a decimal against an expected value within a tolerance
// appropriate for currency-scale reals.
func approxEqual(t *testing.T, name string, got decimal.Decimal, want float64) {
	t.Helper()
	diff := got.Sub(decimal.NewFromFloat(want)).Abs()
	if diff.GreaterThan(decimal.NewFromFloat(1e-9)) {
		t.Errorf("%s: expected %v, got %s", name, want, got.String())
	}
}

func newInsumo(userID uuid.UUID, nome string, quantidade float64, preco float64) *entity.Insumo {
	return entity.NewInsumo(userID, nome, "kg", quantidade, decimal.NewFromFloat(preco))
}

func TestCustoUnitario(t *testing.T) {
	t.Run("divides price by purchase quantity", func(t *testing.T) {
		got := CustoUnitario(decimal.NewFromFloat(3.00), 2)
		approxEqual(t, "unit cost", got, 1.50)
	})

	t.Run("zero purchase quantity yields zero", func(t *testing.T) {
		got := CustoUnitario(decimal.NewFromFloat(10.00), 0)
		if !got.IsZero() {
			t.Errorf("expected zero unit cost, got %s", got.String())
		}
	})

	t.Run("negative purchase quantity yields zero", func(t *testing.T) {
		got := CustoUnitario(decimal.NewFromFloat(10.00), -3)
		if !got.IsZero() {
			t.Errorf("expected zero unit cost, got %s", got.String())
		}
	})

	t.Run("NaN purchase quantity yields zero", func(t *testing.T) {
		got := CustoUnitario(decimal.NewFromFloat(10.00), math.NaN())
		if !got.IsZero() {
			t.Errorf("expected zero unit cost, got %s", got.String())
		}
	})
}

func TestCustoHora(t *testing.T) {
	userID := uuid.New()

	custo := func(nome string, tipo entity.TipoCusto, valor float64, ativo bool) *entity.CustoGlobal {
		return entity.NewCustoGlobal(userID, nome, tipo, decimal.NewFromFloat(valor), ativo)
	}

	t.Run("sums active costs over standard monthly hours", func(t *testing.T) {
		custos := []*entity.CustoGlobal{
			custo("Aluguel", entity.TipoCustoFixo, 1000, true),
			custo("Energia", entity.TipoCustoFixo, 600, true),
		}
		approxEqual(t, "hourly rate", CustoHora(custos), 10.00)
	})

	t.Run("inactive costs never contribute", func(t *testing.T) {
		custos := []*entity.CustoGlobal{
			custo("Aluguel", entity.TipoCustoFixo, 1600, true),
			custo("Software", entity.TipoCustoFixo, 99999, false),
		}
		approxEqual(t, "hourly rate", CustoHora(custos), 10.00)
	})

	t.Run("toggling the active flag is idempotent on a fixed snapshot", func(t *testing.T) {
		custos := []*entity.CustoGlobal{
			custo("Aluguel", entity.TipoCustoFixo, 1600, true),
			custo("Embalagem", entity.TipoCustoVariavel, 400, true),
		}
		before := CustoHora(custos)

		custos[1].Ativo = false
		approxEqual(t, "hourly rate without second cost", CustoHora(custos), 10.00)

		custos[1].Ativo = true
		after := CustoHora(custos)
		if !before.Equal(after) {
			t.Errorf("expected rate %s after re-activating, got %s", before.String(), after.String())
		}
	})

	t.Run("no costs yields zero rate", func(t *testing.T) {
		if got := CustoHora(nil); !got.IsZero() {
			t.Errorf("expected zero rate, got %s", got.String())
		}
	})
}

func TestAgregarReceita(t *testing.T) {
	userID := uuid.New()

	t.Run("sums per-line contributions", func(t *testing.T) {
		// Unit costs: farinha 1.50, chocolate 2.00.
		farinha := newInsumo(userID, "Farinha", 2, 3.00)
		chocolate := newInsumo(userID, "Chocolate", 1, 2.00)

		insumos := map[uuid.UUID]*entity.Insumo{
			farinha.ID:   farinha,
			chocolate.ID: chocolate,
		}
		linhas := []*entity.ProdutoInsumo{
			{InsumoID: farinha.ID, QuantidadeUsada: 2},
			{InsumoID: chocolate.ID, QuantidadeUsada: 3},
		}

		custo, enriquecidos := AgregarReceita(linhas, insumos)
		approxEqual(t, "material cost", custo, 9.00)

		if len(enriquecidos) != 2 {
			t.Fatalf("expected 2 enriched lines, got %d", len(enriquecidos))
		}
		approxEqual(t, "first line cost", enriquecidos[0].Custo, 3.00)
		approxEqual(t, "second line cost", enriquecidos[1].Custo, 6.00)
	})

	t.Run("missing insumo is skipped and omitted", func(t *testing.T) {
		farinha := newInsumo(userID, "Farinha", 2, 3.00)
		insumos := map[uuid.UUID]*entity.Insumo{farinha.ID: farinha}

		linhas := []*entity.ProdutoInsumo{
			{InsumoID: farinha.ID, QuantidadeUsada: 2},
			{InsumoID: uuid.New(), QuantidadeUsada: 5}, // deleted out-of-band
		}

		custo, enriquecidos := AgregarReceita(linhas, insumos)
		approxEqual(t, "material cost", custo, 3.00)
		if len(enriquecidos) != 1 {
			t.Errorf("expected missing insumo omitted from enriched lines, got %d lines", len(enriquecidos))
		}
	})

	t.Run("degenerate purchase quantity keeps the line at zero cost", func(t *testing.T) {
		quebrado := newInsumo(userID, "Fermento", 0, 12.00)
		insumos := map[uuid.UUID]*entity.Insumo{quebrado.ID: quebrado}
		linhas := []*entity.ProdutoInsumo{{InsumoID: quebrado.ID, QuantidadeUsada: 4}}

		custo, enriquecidos := AgregarReceita(linhas, insumos)
		if !custo.IsZero() {
			t.Errorf("expected zero material cost, got %s", custo.String())
		}
		if len(enriquecidos) != 1 {
			t.Fatalf("expected the degenerate line kept in the list, got %d lines", len(enriquecidos))
		}
		if !enriquecidos[0].Custo.IsZero() {
			t.Errorf("expected zero line cost, got %s", enriquecidos[0].Custo.String())
		}
	})

	t.Run("empty recipe yields zero", func(t *testing.T) {
		custo, enriquecidos := AgregarReceita(nil, nil)
		if !custo.IsZero() {
			t.Errorf("expected zero material cost, got %s", custo.String())
		}
		if len(enriquecidos) != 0 {
			t.Errorf("expected no enriched lines, got %d", len(enriquecidos))
		}
	})
}

func TestPrecificar(t *testing.T) {
	userID := uuid.New()

	t.Run("full scenario", func(t *testing.T) {
		// materialCost 9.00, 30 min at 10.00/h => overhead 5.00, total 14.00,
		// yield 10 => unit 1.40, margin 100% => suggested 2.80.
		produto := entity.NewProduto(userID, "Bolo de pote", 10, 100)
		tempo := 30.0
		produto.TempoProducao = &tempo

		r := Precificar(produto, decimal.NewFromFloat(9.00), decimal.NewFromFloat(10.00))

		approxEqual(t, "custo fixo total", r.CustoFixoTotal, 5.00)
		approxEqual(t, "custo total receita", r.CustoTotalReceita, 14.00)
		approxEqual(t, "custo unitario", r.CustoUnitario, 1.40)
		approxEqual(t, "preco final sugerido", r.PrecoFinalSugerido, 2.80)
	})

	t.Run("manual price overrides only the final price", func(t *testing.T) {
		produto := entity.NewProduto(userID, "Bolo de pote", 10, 100)
		tempo := 30.0
		produto.TempoProducao = &tempo
		manual := decimal.NewFromFloat(5.00)
		produto.PrecoManual = &manual

		r := Precificar(produto, decimal.NewFromFloat(9.00), decimal.NewFromFloat(10.00))

		approxEqual(t, "preco final sugerido", r.PrecoFinalSugerido, 5.00)
		approxEqual(t, "custo insumos", r.CustoInsumos, 9.00)
		approxEqual(t, "custo total receita", r.CustoTotalReceita, 14.00)
		approxEqual(t, "custo unitario", r.CustoUnitario, 1.40)
	})

	t.Run("zero yield degrades unit cost to zero", func(t *testing.T) {
		produto := entity.NewProduto(userID, "Degenerado", 0, 50)

		r := Precificar(produto, decimal.NewFromFloat(9.00), decimal.Zero)

		if !r.CustoUnitario.IsZero() {
			t.Errorf("expected zero unit cost, got %s", r.CustoUnitario.String())
		}
		if !r.PrecoFinalSugerido.IsZero() {
			t.Errorf("expected zero suggested price, got %s", r.PrecoFinalSugerido.String())
		}
		approxEqual(t, "custo total receita", r.CustoTotalReceita, 9.00)
	})

	t.Run("absent production time allocates no overhead", func(t *testing.T) {
		produto := entity.NewProduto(userID, "Sem tempo", 5, 0)

		r := Precificar(produto, decimal.NewFromFloat(10.00), decimal.NewFromFloat(25.00))

		if !r.CustoFixoTotal.IsZero() {
			t.Errorf("expected zero overhead share, got %s", r.CustoFixoTotal.String())
		}
		approxEqual(t, "custo unitario", r.CustoUnitario, 2.00)
		approxEqual(t, "preco final sugerido", r.PrecoFinalSugerido, 2.00)
	})

	t.Run("NaN margin is coerced to zero", func(t *testing.T) {
		produto := entity.NewProduto(userID, "Ruim", 2, math.NaN())

		r := Precificar(produto, decimal.NewFromFloat(4.00), decimal.Zero)

		approxEqual(t, "preco final sugerido", r.PrecoFinalSugerido, 2.00)
	})
}

func TestMontarCompleto(t *testing.T) {
	userID := uuid.New()

	farinha := newInsumo(userID, "Farinha", 2, 3.00)
	chocolate := newInsumo(userID, "Chocolate", 1, 2.00)
	insumos := map[uuid.UUID]*entity.Insumo{
		farinha.ID:   farinha,
		chocolate.ID: chocolate,
	}

	produto := entity.NewProduto(userID, "Bolo de pote", 10, 100)
	tempo := 30.0
	produto.TempoProducao = &tempo

	linhas := []*entity.ProdutoInsumo{
		{ProdutoID: produto.ID, InsumoID: farinha.ID, QuantidadeUsada: 2},
		{ProdutoID: produto.ID, InsumoID: chocolate.ID, QuantidadeUsada: 3},
	}

	completo := MontarCompleto(produto, linhas, insumos, decimal.NewFromFloat(10.00))

	approxEqual(t, "custo insumos", completo.CustoInsumos, 9.00)
	approxEqual(t, "custo fixo total", completo.CustoFixoTotal, 5.00)
	approxEqual(t, "custo total receita", completo.CustoTotalReceita, 14.00)
	approxEqual(t, "custo unitario", completo.CustoUnitario, 1.40)
	approxEqual(t, "preco final sugerido", completo.PrecoFinalSugerido, 2.80)

	if len(completo.Insumos) != 2 {
		t.Fatalf("expected 2 enriched lines, got %d", len(completo.Insumos))
	}
}
