// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mallow/backend/internal/application/usecase/produto"
	domainerror "github.com/mallow/backend/internal/domain/error"
	"github.com/mallow/backend/internal/integration/entrypoint/dto"
	"github.com/mallow/backend/internal/integration/entrypoint/middleware"
)

// ProdutoController handles product endpoints.
type ProdutoController struct {
	createUseCase *produto.CreateProdutoUseCase
	listUseCase   *produto.ListProdutosUseCase
	getUseCase    *produto.GetProdutoUseCase
	updateUseCase *produto.UpdateProdutoUseCase
	deleteUseCase *produto.DeleteProdutoUseCase
}

// NewProdutoController creates a new produto controller instance.
func NewProdutoController(
	createUseCase *produto.CreateProdutoUseCase,
	listUseCase *produto.ListProdutosUseCase,
	getUseCase *produto.GetProdutoUseCase,
	updateUseCase *produto.UpdateProdutoUseCase,
	deleteUseCase *produto.DeleteProdutoUseCase,
) *ProdutoController {
	return &ProdutoController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		getUseCase:    getUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /produtos requests. The recipe travels with the header.
func (c *ProdutoController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CreateProdutoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingProdutoFields),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), produto.CreateProdutoInput{
		UserID:        userID,
		Nome:          req.Nome,
		Rendimento:    req.Rendimento,
		MargemLucro:   req.MargemLucro,
		PrecoManual:   req.PrecoManual,
		TempoProducao: req.TempoProducao,
		Receita:       dto.ToRecipeLines(req.Insumos),
	})
	if err != nil {
		c.handleProdutoError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToProdutoResponse(output.Produto, output.Receita))
}

// List handles GET /produtos requests.
func (c *ProdutoController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), produto.ListProdutosInput{
		UserID: userID,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve produtos",
		})
		return
	}

	produtos := make([]dto.ProdutoResponse, len(output.Produtos))
	for i, p := range output.Produtos {
		produtos[i] = dto.ToProdutoResponse(p, nil)
	}
	ctx.JSON(http.StatusOK, dto.ProdutoListResponse{Produtos: produtos})
}

// Get handles GET /produtos/:id requests.
func (c *ProdutoController) Get(ctx *gin.Context) {
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

	output, err := c.getUseCase.Execute(ctx.Request.Context(), produto.GetProdutoInput{
		UserID:    userID,
		ProdutoID: produtoID,
	})
	if err != nil {
		c.handleProdutoError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProdutoResponse(output.Produto, output.Receita))
}

// Update handles PUT /produtos/:id requests. The submitted recipe replaces
// the stored one.
func (c *ProdutoController) Update(ctx *gin.Context) {
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

	var req dto.UpdateProdutoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingProdutoFields),
		})
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), produto.UpdateProdutoInput{
		UserID:        userID,
		ProdutoID:     produtoID,
		Nome:          req.Nome,
		Rendimento:    req.Rendimento,
		MargemLucro:   req.MargemLucro,
		PrecoManual:   req.PrecoManual,
		TempoProducao: req.TempoProducao,
		Receita:       dto.ToRecipeLines(req.Insumos),
	})
	if err != nil {
		c.handleProdutoError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProdutoResponse(output.Produto, output.Receita))
}

// Delete handles DELETE /produtos/:id requests.
func (c *ProdutoController) Delete(ctx *gin.Context) {
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

	_, err = c.deleteUseCase.Execute(ctx.Request.Context(), produto.DeleteProdutoInput{
		UserID:    userID,
		ProdutoID: produtoID,
	})
	if err != nil {
		c.handleProdutoError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleProdutoError handles produto errors and returns appropriate HTTP responses.
func (c *ProdutoController) handleProdutoError(ctx *gin.Context, err error) {
	var prodErr *domainerror.ProdutoError
	if errors.As(err, &prodErr) {
		ctx.JSON(c.getStatusCodeForProdutoError(prodErr.Code), dto.ErrorResponse{
			Error: prodErr.Message,
			Code:  string(prodErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForProdutoError maps produto error codes to HTTP status codes.
func (c *ProdutoController) getStatusCodeForProdutoError(code domainerror.ProdutoErrorCode) int {
	switch code {
	case domainerror.ErrCodeProdutoNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeProdutoNameRequired,
		domainerror.ErrCodeMissingProdutoFields,
		domainerror.ErrCodeRecipeInsumoNotFound:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
