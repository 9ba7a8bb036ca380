// Package custo contains global-cost use cases.
package custo

import (
	"context"

	"github.com/google/uuid"

	"github.com/mallow/backend/internal/application/adapter"
	"github.com/mallow/backend/internal/domain/entity"
)

// ListCustosInput represents the input for listing global costs.
type ListCustosInput struct {
	UserID uuid.UUID
	// ApenasAtivos limits the listing to active entries when true.
	ApenasAtivos bool
}

// ListCustosOutput represents the output of listing global costs.
type ListCustosOutput struct {
	Custos []*entity.CustoGlobal
}

// ListCustosUseCase handles listing global costs logic.
type ListCustosUseCase struct {
	custoRepo adapter.CustoRepository
}

// NewListCustosUseCase creates a new ListCustosUseCase instance.
func NewListCustosUseCase(custoRepo adapter.CustoRepository) *ListCustosUseCase {
	return &ListCustosUseCase{
		custoRepo: custoRepo,
	}
}

// Execute performs the global-cost listing.
func (uc *ListCustosUseCase) Execute(ctx context.Context, input ListCustosInput) (*ListCustosOutput, error) {
	var (
		custos []*entity.CustoGlobal
		err    error
	)
	if input.ApenasAtivos {
		custos, err = uc.custoRepo.FindActiveByUser(ctx, input.UserID)
	} else {
		custos, err = uc.custoRepo.FindByUser(ctx, input.UserID)
	}
	if err != nil {
		return nil, err
	}

	return &ListCustosOutput{
		Custos: custos,
	}, nil
}
