// Package custo contains global-cost use cases.
package custo

import (
	"context"

	"github.com/google/uuid"

	"github.com/mallow/backend/internal/application/adapter"
)

// DeleteCustoInput represents the input for global-cost deletion.
type DeleteCustoInput struct {
	UserID  uuid.UUID
	CustoID uuid.UUID
}

// DeleteCustoOutput represents the output of global-cost deletion.
type DeleteCustoOutput struct{}

// DeleteCustoUseCase handles global-cost deletion logic.
type DeleteCustoUseCase struct {
	custoRepo adapter.CustoRepository
}

// NewDeleteCustoUseCase creates a new DeleteCustoUseCase instance.
func NewDeleteCustoUseCase(custoRepo adapter.CustoRepository) *DeleteCustoUseCase {
	return &DeleteCustoUseCase{
		custoRepo: custoRepo,
	}
}

// Execute performs the global-cost deletion.
func (uc *DeleteCustoUseCase) Execute(ctx context.Context, input DeleteCustoInput) (*DeleteCustoOutput, error) {
	if err := uc.custoRepo.Delete(ctx, input.UserID, input.CustoID); err != nil {
		return nil, err
	}

	return &DeleteCustoOutput{}, nil
}
