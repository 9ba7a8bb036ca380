// Package insumo contains insumo-related use cases.
package insumo

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

// CreateInsumoInput represents the input for insumo creation.
type CreateInsumoInput struct {
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
}

// CreateInsumoOutput represents the output of insumo creation.
type CreateInsumoOutput struct {
	Insumo *entity.Insumo
}

// CreateInsumoUseCase handles insumo creation logic.
type CreateInsumoUseCase struct {
	insumoRepo adapter.InsumoRepository
}

// NewCreateInsumoUseCase creates a new CreateInsumoUseCase instance.
func NewCreateInsumoUseCase(insumoRepo adapter.InsumoRepository) *CreateInsumoUseCase {
	return &CreateInsumoUseCase{
		insumoRepo: insumoRepo,
	}
}

// Execute performs the insumo creation. A degenerate purchase quantity is
// accepted and stored; it degrades to a zero unit cost at pricing time.
func (uc *CreateInsumoUseCase) Execute(ctx context.Context, input CreateInsumoInput) (*CreateInsumoOutput, error) {
	if strings.TrimSpace(input.Nome) == "" {
		return nil, domainerror.NewInsumoError(
			domainerror.ErrCodeInsumoNameRequired,
			"insumo name is required",
			domainerror.ErrInsumoNameRequired,
		)
	}

	insumo := entity.NewInsumo(
		input.UserID,
		input.Nome,
		input.UnidadeCompra,
		input.QuantidadeCompra,
		input.PrecoCompra,
	)
	insumo.Categoria = input.Categoria
	insumo.DataCompra = input.DataCompra
	insumo.QuantidadePorEmbalagem = input.QuantidadePorEmbalagem
	insumo.Fornecedor = input.Fornecedor
	insumo.Observacoes = input.Observacoes

	if err := uc.insumoRepo.Create(ctx, insumo); err != nil {
		return nil, fmt.Errorf("failed to create insumo: %w", err)
	}

	return &CreateInsumoOutput{
		Insumo: insumo,
	}, nil
}
