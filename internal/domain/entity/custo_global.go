// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TipoCusto represents the kind of a recurring cost entry.
type TipoCusto string

const (
	TipoCustoFixo     TipoCusto = "Fixo"
	TipoCustoVariavel TipoCusto = "Variável"
)

// CustoGlobal represents a recurring monthly cost. Only entries marked Ativo
// participate in overhead allocation; the flag is a user toggle independent
// of Tipo.
type CustoGlobal struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Nome      string
	Tipo      TipoCusto
	Valor     decimal.Decimal
	Ativo     bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCustoGlobal creates a new CustoGlobal entity.
func NewCustoGlobal(userID uuid.UUID, nome string, tipo TipoCusto, valor decimal.Decimal, ativo bool) *CustoGlobal {
	now := time.Now().UTC()

	return &CustoGlobal{
		ID:        uuid.New(),
		UserID:    userID,
		Nome:      nome,
		Tipo:      tipo,
		Valor:     valor,
		Ativo:     ativo,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
