// Package custo contains global-cost use cases.
package custo

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

// UpdateCustoInput represents the input for global-cost update. Toggling
// Ativo is the common path; the other fields are replaced as well.
type UpdateCustoInput struct {
	UserID  uuid.UUID
	CustoID uuid.UUID
	Nome    string
	Tipo    entity.TipoCusto
	Valor   decimal.Decimal
	Ativo   bool
}

// UpdateCustoOutput represents the output of global-cost update.
type UpdateCustoOutput struct {
	Custo *entity.CustoGlobal
}

// UpdateCustoUseCase handles global-cost update logic.
type UpdateCustoUseCase struct {
	custoRepo adapter.CustoRepository
}

// NewUpdateCustoUseCase creates a new UpdateCustoUseCase instance.
func NewUpdateCustoUseCase(custoRepo adapter.CustoRepository) *UpdateCustoUseCase {
	return &UpdateCustoUseCase{
		custoRepo: custoRepo,
	}
}

// Execute performs the global-cost update.
func (uc *UpdateCustoUseCase) Execute(ctx context.Context, input UpdateCustoInput) (*UpdateCustoOutput, error) {
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

	custo, err := uc.custoRepo.FindByID(ctx, input.UserID, input.CustoID)
	if err != nil {
		return nil, err
	}

	custo.Nome = input.Nome
	custo.Tipo = input.Tipo
	custo.Valor = input.Valor
	custo.Ativo = input.Ativo
	custo.UpdatedAt = time.Now().UTC()

	if err := uc.custoRepo.Update(ctx, custo); err != nil {
		return nil, fmt.Errorf("failed to update cost: %w", err)
	}

	return &UpdateCustoOutput{
		Custo: custo,
	}, nil
}
