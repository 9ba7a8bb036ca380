// Package custo contains global-cost use cases.
package custo

import (
	"context"

	"github.com/google/uuid"

	"github.com/mallow/backend/internal/application/adapter"
	"github.com/mallow/backend/internal/domain/entity"
)

// GetCustoInput represents the input for fetching one global cost.
type GetCustoInput struct {
	UserID  uuid.UUID
	CustoID uuid.UUID
}

// GetCustoOutput represents the output of fetching one global cost.
type GetCustoOutput struct {
	Custo *entity.CustoGlobal
}

// GetCustoUseCase handles single global-cost lookup logic.
type GetCustoUseCase struct {
	custoRepo adapter.CustoRepository
}

// NewGetCustoUseCase creates a new GetCustoUseCase instance.
func NewGetCustoUseCase(custoRepo adapter.CustoRepository) *GetCustoUseCase {
	return &GetCustoUseCase{
		custoRepo: custoRepo,
	}
}

// Execute performs the global-cost lookup.
func (uc *GetCustoUseCase) Execute(ctx context.Context, input GetCustoInput) (*GetCustoOutput, error) {
	custo, err := uc.custoRepo.FindByID(ctx, input.UserID, input.CustoID)
	if err != nil {
		return nil, err
	}

	return &GetCustoOutput{
		Custo: custo,
	}, nil
}
