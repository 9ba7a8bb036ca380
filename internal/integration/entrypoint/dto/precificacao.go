// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/mallow/backend/internal/domain/entity"
)

// InsumoDaReceitaResponse is one recipe line enriched with the insumo
// snapshot and its cost contribution.
type InsumoDaReceitaResponse struct {
	Insumo          InsumoResponse `json:"insumo"`
	QuantidadeUsada float64        `json:"quantidade_usada"`
	Custo           string         `json:"custo"`
}

// ProdutoCompletoResponse is a product enriched with its derived pricing
// figures. All monetary figures are decimal strings.
type ProdutoCompletoResponse struct {
	ID                 string                    `json:"id"`
	Nome               string                    `json:"nome"`
	Rendimento         float64                   `json:"rendimento"`
	MargemLucro        float64                   `json:"margem_lucro"`
	PrecoManual        *string                   `json:"preco_manual,omitempty"`
	TempoProducao      *float64                  `json:"tempo_producao,omitempty"`
	CustoInsumos       string                    `json:"custo_insumos"`
	CustoFixoTotal     string                    `json:"custo_fixo_total"`
	CustoTotalReceita  string                    `json:"custo_total_receita"`
	CustoUnitario      string                    `json:"custo_unitario"`
	PrecoFinalSugerido string                    `json:"preco_final_sugerido"`
	Insumos            []InsumoDaReceitaResponse `json:"insumos"`
}

// CatalogoResponse represents the priced catalog of the user's products.
type CatalogoResponse struct {
	Produtos []ProdutoCompletoResponse `json:"produtos"`
}

// ToProdutoCompletoResponse converts a derived product view to its DTO.
func ToProdutoCompletoResponse(pc *entity.ProdutoCompleto) ProdutoCompletoResponse {
	var precoManual *string
	if pc.Produto.PrecoManual != nil {
		v := pc.Produto.PrecoManual.String()
		precoManual = &v
	}

	linhas := make([]InsumoDaReceitaResponse, len(pc.Insumos))
	for i, l := range pc.Insumos {
		linhas[i] = InsumoDaReceitaResponse{
			Insumo:          ToInsumoResponse(l.Insumo),
			QuantidadeUsada: l.QuantidadeUsada,
			Custo:           l.Custo.String(),
		}
	}

	return ProdutoCompletoResponse{
		ID:                 pc.Produto.ID.String(),
		Nome:               pc.Produto.Nome,
		Rendimento:         pc.Produto.Rendimento,
		MargemLucro:        pc.Produto.MargemLucro,
		PrecoManual:        precoManual,
		TempoProducao:      pc.Produto.TempoProducao,
		CustoInsumos:       pc.CustoInsumos.String(),
		CustoFixoTotal:     pc.CustoFixoTotal.String(),
		CustoTotalReceita:  pc.CustoTotalReceita.String(),
		CustoUnitario:      pc.CustoUnitario.String(),
		PrecoFinalSugerido: pc.PrecoFinalSugerido.String(),
		Insumos:            linhas,
	}
}

// ToCatalogoResponse converts the priced catalog to its DTO.
func ToCatalogoResponse(produtos []*entity.ProdutoCompleto) CatalogoResponse {
	out := make([]ProdutoCompletoResponse, len(produtos))
	for i, pc := range produtos {
		out[i] = ToProdutoCompletoResponse(pc)
	}
	return CatalogoResponse{
		Produtos: out,
	}
}
