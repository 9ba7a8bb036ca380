// Package custo contains global-cost use cases.
package custo

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mallow/backend/internal/application/adapter"
	"github.com/mallow/backend/internal/domain/entity"
	domainerror "github.com/mallow/backend/internal/domain/error"
)

// CreateCustoInput represents the input for global-cost creation.
type CreateCustoInput struct {
	UserID uuid.UUID
	Nome   string
	Tipo   entity.TipoCusto
	Valor  decimal.Decimal
	Ativo  bool
}

// CreateCustoOutput represents the output of global-cost creation.
type CreateCustoOutput struct {
	Custo *entity.CustoGlobal
}

// CreateCustoUseCase handles global-cost creation logic.
type CreateCustoUseCase struct {
	custoRepo adapter.CustoRepository
}

// NewCreateCustoUseCase creates a new CreateCustoUseCase instance.
func NewCreateCustoUseCase(custoRepo adapter.CustoRepository) *CreateCustoUseCase {
	return &CreateCustoUseCase{
		custoRepo: custoRepo,
	}
}

// Execute performs the global-cost creation.
func (uc *CreateCustoUseCase) Execute(ctx context.Context, input CreateCustoInput) (*CreateCustoOutput, error) {
	if strings.TrimSpace(input.Nome) == "" {
		return nil, domainerror.NewCustoError(
			domainerror.ErrCodeMissingCustoFields,
			"cost name is required",
			domainerror.ErrCustoNameRequired,
		)
	}
	if input.Tipo != entity.TipoCustoFixo && input.Tipo != entity.TipoCustoVariavel {
		return nil, domainerror.NewCustoError(
			domainerror.ErrCodeInvalidTipoCusto,
			fmt.Sprintf("invalid cost type: %s", input.Tipo),
			domainerror.ErrInvalidTipoCusto,
		)
	}

	custo := entity.NewCustoGlobal(input.UserID, input.Nome, input.Tipo, input.Valor, input.Ativo)

	if err := uc.custoRepo.Create(ctx, custo); err != nil {
		return nil, fmt.Errorf("failed to create cost: %w", err)
	}

	return &CreateCustoOutput{
		Custo: custo,
	}, nil
}
