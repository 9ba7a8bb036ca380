// Package pricing implements the cost aggregation and price derivation rules
// for products: per-unit material costs, monthly overhead allocation, recipe
// cost aggregation and the suggested sale price. All functions are pure and
// perform no I/O; degenerate inputs degrade to zero instead of failing, since
// the output is an advisory estimate rather than a ledger entry.
package pricing

import (
	"math"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mallow/backend/internal/domain/entity"
)

// HorasTrabalhoMes is the standard number of monthly work hours used to
// amortize fixed costs into an hourly overhead rate.
const HorasTrabalhoMes = 160

var (
	sixty   = decimal.NewFromInt(60)
	hundred = decimal.NewFromInt(100)
	one     = decimal.NewFromInt(1)
)

// normalizeReal coerces absent or invalid reals (NaN, ±Inf) to 0 so that
// incomplete user data degrades the estimate instead of poisoning it. This is
// the single normalization point before any arithmetic.
func normalizeReal(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// CustoUnitario derives the per-purchase-unit cost of an insumo from its
// purchase price and purchase quantity. A quantity of zero or less yields a
// unit cost of 0: the line contributes nothing but does not abort the rest
// of the aggregation.
func CustoUnitario(precoCompra decimal.Decimal, quantidadeCompra float64) decimal.Decimal {
	q := normalizeReal(quantidadeCompra)
	if q <= 0 {
		return decimal.Zero
	}
	return precoCompra.Div(decimal.NewFromFloat(q))
}

// CustoHora aggregates the user's active cost entries into a monthly total
// and derives the hourly overhead rate. Inactive entries never contribute,
// regardless of value or kind. The rate is recomputed on every pass so it
// always reflects the latest active set.
func CustoHora(custos []*entity.CustoGlobal) decimal.Decimal {
	total := decimal.Zero
	for _, c := range custos {
		if c.Ativo {
			total = total.Add(c.Valor)
		}
	}
	return total.Div(decimal.NewFromInt(HorasTrabalhoMes))
}

// AgregarReceita sums the cost contribution of each recipe line given the
// user's insumos indexed by ID. Lines referencing a missing insumo are
// skipped and omitted from the enriched list; lines whose insumo has a
// degenerate purchase quantity stay in the list with a cost of 0.
func AgregarReceita(linhas []*entity.ProdutoInsumo, insumos map[uuid.UUID]*entity.Insumo) (decimal.Decimal, []entity.InsumoDaReceita) {
	custoInsumos := decimal.Zero
	enriquecidos := make([]entity.InsumoDaReceita, 0, len(linhas))

	for _, linha := range linhas {
		insumo, ok := insumos[linha.InsumoID]
		if !ok {
			continue
		}

		quantidade := normalizeReal(linha.QuantidadeUsada)
		custo := CustoUnitario(insumo.PrecoCompra, insumo.QuantidadeCompra).Mul(decimal.NewFromFloat(quantidade))
		custoInsumos = custoInsumos.Add(custo)

		enriquecidos = append(enriquecidos, entity.InsumoDaReceita{
			Insumo:          insumo,
			QuantidadeUsada: linha.QuantidadeUsada,
			Custo:           custo,
		})
	}

	return custoInsumos, enriquecidos
}

// Resultado holds the derived pricing figures for one product.
type Resultado struct {
	CustoInsumos       decimal.Decimal
	CustoFixoTotal     decimal.Decimal
	CustoTotalReceita  decimal.Decimal
	CustoUnitario      decimal.Decimal
	PrecoFinalSugerido decimal.Decimal
}

// Precificar combines the recipe material cost with the overhead share
// allocated by production time, then derives the per-unit cost and suggested
// price. A manual price, when set, replaces only the final price; the cost
// breakdown is always computed for transparency. A yield of zero or less
// yields a unit cost of 0.
func Precificar(produto *entity.Produto, custoInsumos, custoHora decimal.Decimal) Resultado {
	tempoProducao := 0.0
	if produto.TempoProducao != nil {
		tempoProducao = normalizeReal(*produto.TempoProducao)
	}

	custoFixoTotal := custoHora.Div(sixty).Mul(decimal.NewFromFloat(tempoProducao))
	custoTotalReceita := custoInsumos.Add(custoFixoTotal)

	custoUnitario := decimal.Zero
	if rendimento := normalizeReal(produto.Rendimento); rendimento > 0 {
		custoUnitario = custoTotalReceita.Div(decimal.NewFromFloat(rendimento))
	}

	margem := decimal.NewFromFloat(normalizeReal(produto.MargemLucro))
	precoSugerido := custoUnitario.Mul(one.Add(margem.Div(hundred)))

	precoFinal := precoSugerido
	if produto.PrecoManual != nil {
		precoFinal = *produto.PrecoManual
	}

	return Resultado{
		CustoInsumos:       custoInsumos,
		CustoFixoTotal:     custoFixoTotal,
		CustoTotalReceita:  custoTotalReceita,
		CustoUnitario:      custoUnitario,
		PrecoFinalSugerido: precoFinal,
	}
}

// MontarCompleto builds the full derived view for one product from its recipe
// lines, the user's insumos and the shared hourly overhead rate.
func MontarCompleto(produto *entity.Produto, linhas []*entity.ProdutoInsumo, insumos map[uuid.UUID]*entity.Insumo, custoHora decimal.Decimal) *entity.ProdutoCompleto {
	custoInsumos, enriquecidos := AgregarReceita(linhas, insumos)
	resultado := Precificar(produto, custoInsumos, custoHora)

	return &entity.ProdutoCompleto{
		Produto:            produto,
		CustoInsumos:       resultado.CustoInsumos,
		CustoFixoTotal:     resultado.CustoFixoTotal,
		CustoTotalReceita:  resultado.CustoTotalReceita,
		CustoUnitario:      resultado.CustoUnitario,
		PrecoFinalSugerido: resultado.PrecoFinalSugerido,
		Insumos:            enriquecidos,
	}
}
