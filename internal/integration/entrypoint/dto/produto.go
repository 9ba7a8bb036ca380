// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mallow/backend/internal/application/usecase/produto"
	"github.com/mallow/backend/internal/domain/entity"
)

// RecipeLineRequest represents one recipe line in product requests.
type RecipeLineRequest struct {
	InsumoID        string  `json:"insumo_id" binding:"required,uuid"`
	QuantidadeUsada float64 `json:"quantidade_usada"`
}

// CreateProdutoRequest represents the request body for product creation.
type CreateProdutoRequest struct {
	Nome          string              `json:"nome" binding:"required,min=1,max=100"`
	Rendimento    float64             `json:"rendimento"`
	MargemLucro   float64             `json:"margem_lucro"`
	PrecoManual   *decimal.Decimal    `json:"preco_manual,omitempty"`
	TempoProducao *float64            `json:"tempo_producao,omitempty"`
	Insumos       []RecipeLineRequest `json:"insumos"`
}

// UpdateProdutoRequest represents the request body for product update. The
// submitted recipe replaces the stored one wholesale.
type UpdateProdutoRequest struct {
	Nome          string              `json:"nome" binding:"required,min=1,max=100"`
	Rendimento    float64             `json:"rendimento"`
	MargemLucro   float64             `json:"margem_lucro"`
	PrecoManual   *decimal.Decimal    `json:"preco_manual,omitempty"`
	TempoProducao *float64            `json:"tempo_producao,omitempty"`
	Insumos       []RecipeLineRequest `json:"insumos"`
}

// RecipeLineResponse represents one stored recipe line.
type RecipeLineResponse struct {
	InsumoID        string  `json:"insumo_id"`
	QuantidadeUsada float64 `json:"quantidade_usada"`
}

// ProdutoResponse represents a product header with its recipe.
type ProdutoResponse struct {
	ID            string               `json:"id"`
	Nome          string               `json:"nome"`
	Rendimento    float64              `json:"rendimento"`
	MargemLucro   float64              `json:"margem_lucro"`
	PrecoManual   *string              `json:"preco_manual,omitempty"`
	TempoProducao *float64             `json:"tempo_producao,omitempty"`
	Insumos       []RecipeLineResponse `json:"insumos"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
}

// ProdutoListResponse represents the response for listing product headers.
type ProdutoListResponse struct {
	Produtos []ProdutoResponse `json:"produtos"`
}

// ToRecipeLines converts request recipe lines into use case inputs. Invalid
// UUIDs are rejected by binding before this runs.
func ToRecipeLines(lines []RecipeLineRequest) []produto.RecipeLineInput {
	out := make([]produto.RecipeLineInput, len(lines))
	for i, l := range lines {
		id, _ := uuid.Parse(l.InsumoID)
		out[i] = produto.RecipeLineInput{
			InsumoID:        id,
			QuantidadeUsada: l.QuantidadeUsada,
		}
	}
	return out
}

// ToProdutoResponse converts a product and its recipe lines to a ProdutoResponse.
func ToProdutoResponse(p *entity.Produto, receita []*entity.ProdutoInsumo) ProdutoResponse {
	var precoManual *string
	if p.PrecoManual != nil {
		v := p.PrecoManual.String()
		precoManual = &v
	}

	linhas := make([]RecipeLineResponse, len(receita))
	for i, l := range receita {
		linhas[i] = RecipeLineResponse{
			InsumoID:        l.InsumoID.String(),
			QuantidadeUsada: l.QuantidadeUsada,
		}
	}

	return ProdutoResponse{
		ID:            p.ID.String(),
		Nome:          p.Nome,
		Rendimento:    p.Rendimento,
		MargemLucro:   p.MargemLucro,
		PrecoManual:   precoManual,
		TempoProducao: p.TempoProducao,
		Insumos:       linhas,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
