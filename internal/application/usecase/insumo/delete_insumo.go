// Package insumo contains insumo-related use cases.
package insumo

import (
	"context"

	"github.com/google/uuid"

	"github.com/mallow/backend/internal/application/adapter"
)

// DeleteInsumoInput represents the input for insumo deletion.
type DeleteInsumoInput struct {
	UserID   uuid.UUID
	InsumoID uuid.UUID
}

// DeleteInsumoOutput represents the output of insumo deletion.
type DeleteInsumoOutput struct{}

// DeleteInsumoUseCase handles insumo deletion logic. Recipe lines referencing
// the insumo are removed by the store's cascade.
type DeleteInsumoUseCase struct {
	insumoRepo adapter.InsumoRepository
}

// NewDeleteInsumoUseCase creates a new DeleteInsumoUseCase instance.
func NewDeleteInsumoUseCase(insumoRepo adapter.InsumoRepository) *DeleteInsumoUseCase {
	return &DeleteInsumoUseCase{
		insumoRepo: insumoRepo,
	}
}

// Execute performs the insumo deletion.
func (uc *DeleteInsumoUseCase) Execute(ctx context.Context, input DeleteInsumoInput) (*DeleteInsumoOutput, error) {
	if err := uc.insumoRepo.Delete(ctx, input.UserID, input.InsumoID); err != nil {
		return nil, err
	}

	return &DeleteInsumoOutput{}, nil
}
