// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mallow/backend/internal/application/usecase/precificacao"
	domainerror "github.com/mallow/backend/internal/domain/error"
	"github.com/mallow/backend/internal/integration/entrypoint/dto"
	"github.com/mallow/backend/internal/integration/entrypoint/middleware"
)

// PrecificacaoController handles the derived pricing endpoints.
type PrecificacaoController struct {
	catalogoUseCase *precificacao.GetCatalogoUseCase
	produtoUseCase  *precificacao.GetProdutoCompletoUseCase
}

// NewPrecificacaoController creates a new precificacao controller instance.
func NewPrecificacaoController(
	catalogoUseCase *precificacao.GetCatalogoUseCase,
	produtoUseCase *precificacao.GetProdutoCompletoUseCase,
) *PrecificacaoController {
	return &PrecificacaoController{
		catalogoUseCase: catalogoUseCase,
		produtoUseCase:  produtoUseCase,
	}
}

// Catalogo handles GET /precificacao requests: the user's full priced catalog.
func (c *PrecificacaoController) Catalogo(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.catalogoUseCase.Execute(ctx.Request.Context(), precificacao.GetCatalogoInput{
		UserID: userID,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to build priced catalog",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCatalogoResponse(output.Produtos))
}

// ProdutoCompleto handles GET /precificacao/:id requests: one product priced
// on demand.
func (c *PrecificacaoController) ProdutoCompleto(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	produtoID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid produto ID format",
		})
		return
	}

	output, err := c.produtoUseCase.Execute(ctx.Request.Context(), precificacao.GetProdutoCompletoInput{
		UserID:    userID,
		ProdutoID: produtoID,
	})
	if err != nil {
		var prodErr *domainerror.ProdutoError
		if errors.As(err, &prodErr) && prodErr.Code == domainerror.ErrCodeProdutoNotFound {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
				Error: prodErr.Message,
				Code:  string(prodErr.Code),
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to price produto",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProdutoCompletoResponse(output.Produto))
}
