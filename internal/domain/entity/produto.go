// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Produto represents a sellable product defined by a recipe and a per-batch
// yield (Rendimento). PrecoManual, when set, overrides the suggested price
// for display without altering the computed cost breakdown.
type Produto struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Nome          string
	Rendimento    float64
	MargemLucro   float64
	PrecoManual   *decimal.Decimal
	TempoProducao *float64 // minutes
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewProduto creates a new Produto entity.
func NewProduto(userID uuid.UUID, nome string, rendimento, margemLucro float64) *Produto {
	now := time.Now().UTC()

	return &Produto{
		ID:          uuid.New(),
		UserID:      userID,
		Nome:        nome,
		Rendimento:  rendimento,
		MargemLucro: margemLucro,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// ProdutoInsumo is one recipe line: how much of an insumo a batch of the
// product consumes. Keyed by (ProdutoID, InsumoID).
type ProdutoInsumo struct {
	ProdutoID       uuid.UUID
	InsumoID        uuid.UUID
	QuantidadeUsada float64
}

// InsumoDaReceita is a recipe line enriched with the insumo snapshot and its
// computed cost contribution.
type InsumoDaReceita struct {
	Insumo          *Insumo
	QuantidadeUsada float64
	Custo           decimal.Decimal
}

// ProdutoCompleto is a Produto enriched with the derived pricing figures.
// It is a pure projection rebuilt on every query and never persisted.
type ProdutoCompleto struct {
	Produto            *Produto
	CustoInsumos       decimal.Decimal
	CustoFixoTotal     decimal.Decimal
	CustoTotalReceita  decimal.Decimal
	CustoUnitario      decimal.Decimal
	PrecoFinalSugerido decimal.Decimal
	Insumos            []InsumoDaReceita
}
