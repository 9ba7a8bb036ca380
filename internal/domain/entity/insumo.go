// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Insumo represents a purchased raw material consumed by product recipes.
// QuantidadeCompra is the amount bought and PrecoCompra what that purchase
// cost; the per-unit cost is derived from the two at pricing time.
type Insumo struct {
	ID                     uuid.UUID
	UserID                 uuid.UUID
	Nome                   string
	Categoria              *string
	UnidadeCompra          string
	QuantidadeCompra       float64
	PrecoCompra            decimal.Decimal
	DataCompra             *time.Time
	QuantidadePorEmbalagem *float64
	Fornecedor             *string
	Observacoes            *string
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// NewInsumo creates a new Insumo entity. Optional descriptive fields are set
// by the caller after construction.
func NewInsumo(
	userID uuid.UUID,
	nome string,
	unidadeCompra string,
	quantidadeCompra float64,
	precoCompra decimal.Decimal,
) *Insumo {
	now := time.Now().UTC()

	return &Insumo{
		ID:               uuid.New(),
		UserID:           userID,
		Nome:             nome,
		UnidadeCompra:    unidadeCompra,
		QuantidadeCompra: quantidadeCompra,
		PrecoCompra:      precoCompra,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}
