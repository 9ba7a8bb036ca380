// Package insumo contains insumo-related use cases.
package insumo

import (
	"context"

	"github.com/google/uuid"

	"github.com/mallow/backend/internal/application/adapter"
	"github.com/mallow/backend/internal/domain/entity"
)

// GetInsumoInput represents the input for fetching one insumo.
type GetInsumoInput struct {
	UserID   uuid.UUID
	InsumoID uuid.UUID
}

// GetInsumoOutput represents the output of fetching one insumo.
type GetInsumoOutput struct {
	Insumo *entity.Insumo
}

// GetInsumoUseCase handles single-insumo lookup logic.
type GetInsumoUseCase struct {
	insumoRepo adapter.InsumoRepository
}

// NewGetInsumoUseCase creates a new GetInsumoUseCase instance.
func NewGetInsumoUseCase(insumoRepo adapter.InsumoRepository) *GetInsumoUseCase {
	return &GetInsumoUseCase{
		insumoRepo: insumoRepo,
	}
}

// Execute performs the insumo lookup.
func (uc *GetInsumoUseCase) Execute(ctx context.Context, input GetInsumoInput) (*GetInsumoOutput, error) {
	insumo, err := uc.insumoRepo.FindByID(ctx, input.UserID, input.InsumoID)
	if err != nil {
		return nil, err
	}

	return &GetInsumoOutput{
		Insumo: insumo,
	}, nil
}
