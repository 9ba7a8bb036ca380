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

// UpdateInsumoInput represents the input for insumo update. The update is a
// full replacement of the editable fields, matching the edit form.
type UpdateInsumoInput struct {
	UserID                 uuid.UUID
	InsumoID               uuid.UUID
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

// UpdateInsumoOutput represents the output of insumo update.
type UpdateInsumoOutput struct {
	Insumo *entity.Insumo
}

// UpdateInsumoUseCase handles insumo update logic.
type UpdateInsumoUseCase struct {
	insumoRepo adapter.InsumoRepository
}

// NewUpdateInsumoUseCase creates a new UpdateInsumoUseCase instance.
func NewUpdateInsumoUseCase(insumoRepo adapter.InsumoRepository) *UpdateInsumoUseCase {
	return &UpdateInsumoUseCase{
		insumoRepo: insumoRepo,
	}
}

// Execute performs the insumo update.
func (uc *UpdateInsumoUseCase) Execute(ctx context.Context, input UpdateInsumoInput) (*UpdateInsumoOutput, error) {
	if strings.TrimSpace(input.Nome) == "" {
		return nil, domainerror.NewInsumoError(
			domainerror.ErrCodeInsumoNameRequired,
			"insumo name is required",
			domainerror.ErrInsumoNameRequired,
		)
	}

	insumo, err := uc.insumoRepo.FindByID(ctx, input.UserID, input.InsumoID)
	if err != nil {
		return nil, err
	}

	insumo.Nome = input.Nome
	insumo.Categoria = input.Categoria
	insumo.UnidadeCompra = input.UnidadeCompra
	insumo.QuantidadeCompra = input.QuantidadeCompra
	insumo.PrecoCompra = input.PrecoCompra
	insumo.DataCompra = input.DataCompra
	insumo.QuantidadePorEmbalagem = input.QuantidadePorEmbalagem
	insumo.Fornecedor = input.Fornecedor
	insumo.Observacoes = input.Observacoes
	insumo.UpdatedAt = time.Now().UTC()

	if err := uc.insumoRepo.Update(ctx, insumo); err != nil {
		return nil, fmt.Errorf("failed to update insumo: %w", err)
	}

	return &UpdateInsumoOutput{
		Insumo: insumo,
	}, nil
}
