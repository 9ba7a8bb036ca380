// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mallow/backend/internal/domain/entity"
)

// CreateInsumoRequest represents the request body for insumo creation.
type CreateInsumoRequest struct {
	Nome                   string          `json:"nome" binding:"required,min=1,max=100"`
	Categoria              *string         `json:"categoria,omitempty"`
	UnidadeCompra          string          `json:"unidade_compra" binding:"required"`
	QuantidadeCompra       float64         `json:"quantidade_compra"`
	PrecoCompra            decimal.Decimal `json:"preco_compra"`
	DataCompra             *time.Time      `json:"data_compra,omitempty"`
	QuantidadePorEmbalagem *float64        `json:"quantidade_por_embalagem,omitempty"`
	Fornecedor             *string         `json:"fornecedor,omitempty"`
	Observacoes            *string         `json:"observacoes,omitempty"`
}

// UpdateInsumoRequest represents the request body for insumo update.
type UpdateInsumoRequest struct {
	Nome                   string          `json:"nome" binding:"required,min=1,max=100"`
	Categoria              *string         `json:"categoria,omitempty"`
	UnidadeCompra          string          `json:"unidade_compra" binding:"required"`
	QuantidadeCompra       float64         `json:"quantidade_compra"`
	PrecoCompra            decimal.Decimal `json:"preco_compra"`
	DataCompra             *time.Time      `json:"data_compra,omitempty"`
	QuantidadePorEmbalagem *float64        `json:"quantidade_por_embalagem,omitempty"`
	Fornecedor             *string         `json:"fornecedor,omitempty"`
	Observacoes            *string         `json:"observacoes,omitempty"`
}

// InsumoResponse represents a single insumo in API responses.
type InsumoResponse struct {
	ID                     string     `json:"id"`
	Nome                   string     `json:"nome"`
	Categoria              *string    `json:"categoria,omitempty"`
	UnidadeCompra          string     `json:"unidade_compra"`
	QuantidadeCompra       float64    `json:"quantidade_compra"`
	PrecoCompra            string     `json:"preco_compra"`
	DataCompra             *time.Time `json:"data_compra,omitempty"`
	QuantidadePorEmbalagem *float64   `json:"quantidade_por_embalagem,omitempty"`
	Fornecedor             *string    `json:"fornecedor,omitempty"`
	Observacoes            *string    `json:"observacoes,omitempty"`
	CreatedAt              time.Time  `json:"created_at"`
	UpdatedAt              time.Time  `json:"updated_at"`
}

// InsumoListResponse represents the response for listing insumos.
type InsumoListResponse struct {
	Insumos []InsumoResponse `json:"insumos"`
}

// ToInsumoResponse converts a domain Insumo entity to an InsumoResponse DTO.
func ToInsumoResponse(insumo *entity.Insumo) InsumoResponse {
	return InsumoResponse{
		ID:                     insumo.ID.String(),
		Nome:                   insumo.Nome,
		Categoria:              insumo.Categoria,
		UnidadeCompra:          insumo.UnidadeCompra,
		QuantidadeCompra:       insumo.QuantidadeCompra,
		PrecoCompra:            insumo.PrecoCompra.String(),
		DataCompra:             insumo.DataCompra,
		QuantidadePorEmbalagem: insumo.QuantidadePorEmbalagem,
		Fornecedor:             insumo.Fornecedor,
		Observacoes:            insumo.Observacoes,
		CreatedAt:              insumo.CreatedAt,
		UpdatedAt:              insumo.UpdatedAt,
	}
}

// ToInsumoListResponse converts a list of Insumo entities to InsumoListResponse.
func ToInsumoListResponse(insumos []*entity.Insumo) InsumoListResponse {
	out := make([]InsumoResponse, len(insumos))
	for i, insumo := range insumos {
		out[i] = ToInsumoResponse(insumo)
	}
	return InsumoListResponse{
		Insumos: out,
	}
}
