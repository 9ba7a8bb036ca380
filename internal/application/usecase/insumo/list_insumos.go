// Package insumo contains insumo-related use cases.
package insumo

import (
	"context"

	"github.com/google/uuid"

	"github.com/mallow/backend/internal/application/adapter"
	"github.com/mallow/backend/internal/domain/entity"
)

// ListInsumosInput represents the input for listing insumos.
type ListInsumosInput struct {
	UserID uuid.UUID
}

// ListInsumosOutput represents the output of listing insumos.
type ListInsumosOutput struct {
	Insumos []*entity.Insumo
}

// ListInsumosUseCase handles listing insumos logic.
type ListInsumosUseCase struct {
	insumoRepo adapter.InsumoRepository
}

// NewListInsumosUseCase creates a new ListInsumosUseCase instance.
func NewListInsumosUseCase(insumoRepo adapter.InsumoRepository) *ListInsumosUseCase {
	return &ListInsumosUseCase{
		insumoRepo: insumoRepo,
	}
}

// Execute performs the insumo listing.
func (uc *ListInsumosUseCase) Execute(ctx context.Context, input ListInsumosInput) (*ListInsumosOutput, error) {
	insumos, err := uc.insumoRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	return &ListInsumosOutput{
		Insumos: insumos,
	}, nil
}
