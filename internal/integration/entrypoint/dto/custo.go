// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mallow/backend/internal/domain/entity"
)

// CreateCustoRequest represents the request body for cost creation.
type CreateCustoRequest struct {
	Nome  string          `json:"nome" binding:"required,min=1,max=100"`
	Tipo  string          `json:"tipo" binding:"required,oneof=Fixo Variável"`
	Valor decimal.Decimal `json:"valor"`
	Ativo *bool           `json:"ativo,omitempty"`
}

// UpdateCustoRequest represents the request body for cost update.
type UpdateCustoRequest struct {
	Nome  string          `json:"nome" binding:"required,min=1,max=100"`
	Tipo  string          `json:"tipo" binding:"required,oneof=Fixo Variável"`
	Valor decimal.Decimal `json:"valor"`
	Ativo bool            `json:"ativo"`
}

// CustoResponse represents a single cost entry in API responses.
type CustoResponse struct {
	ID        string    `json:"id"`
	Nome      string    `json:"nome"`
	Tipo      string    `json:"tipo"`
	Valor     string    `json:"valor"`
	Ativo     bool      `json:"ativo"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CustoListResponse represents the response for listing cost entries.
type CustoListResponse struct {
	Custos []CustoResponse `json:"custos"`
}

// ToCustoResponse converts a domain CustoGlobal entity to a CustoResponse DTO.
func ToCustoResponse(custo *entity.CustoGlobal) CustoResponse {
	return CustoResponse{
		ID:        custo.ID.String(),
		Nome:      custo.Nome,
		Tipo:      string(custo.Tipo),
		Valor:     custo.Valor.String(),
		Ativo:     custo.Ativo,
		CreatedAt: custo.CreatedAt,
		UpdatedAt: custo.UpdatedAt,
	}
}

// ToCustoListResponse converts a list of CustoGlobal entities to CustoListResponse.
func ToCustoListResponse(custos []*entity.CustoGlobal) CustoListResponse {
	out := make([]CustoResponse, len(custos))
	for i, custo := range custos {
		out[i] = ToCustoResponse(custo)
	}
	return CustoListResponse{
		Custos: out,
	}
}
