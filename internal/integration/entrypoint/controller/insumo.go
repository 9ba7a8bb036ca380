// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mallow/backend/internal/application/usecase/insumo"
	domainerror "github.com/mallow/backend/internal/domain/error"
	"github.com/mallow/backend/internal/integration/entrypoint/dto"
	"github.com/mallow/backend/internal/integration/entrypoint/middleware"
)

// InsumoController handles insumo endpoints.
type InsumoController struct {
	createUseCase *insumo.CreateInsumoUseCase
	listUseCase   *insumo.ListInsumosUseCase
	getUseCase    *insumo.GetInsumoUseCase
	updateUseCase *insumo.UpdateInsumoUseCase
	deleteUseCase *insumo.DeleteInsumoUseCase
}

// NewInsumoController creates a new insumo controller instance.
func NewInsumoController(
	createUseCase *insumo.CreateInsumoUseCase,
	listUseCase *insumo.ListInsumosUseCase,
	getUseCase *insumo.GetInsumoUseCase,
	updateUseCase *insumo.UpdateInsumoUseCase,
	deleteUseCase *insumo.DeleteInsumoUseCase,
) *InsumoController {
	return &InsumoController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		getUseCase:    getUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /insumos requests.
func (c *InsumoController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CreateInsumoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingInsumoFields),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), insumo.CreateInsumoInput{
		UserID:                 userID,
		Nome:                   req.Nome,
		Categoria:              req.Categoria,
		UnidadeCompra:          req.UnidadeCompra,
		QuantidadeCompra:       req.QuantidadeCompra,
		PrecoCompra:            req.PrecoCompra,
		DataCompra:             req.DataCompra,
		QuantidadePorEmbalagem: req.QuantidadePorEmbalagem,
		Fornecedor:             req.Fornecedor,
		Observacoes:            req.Observacoes,
	})
	if err != nil {
		c.handleInsumoError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToInsumoResponse(output.Insumo))
}

// List handles GET /insumos requests.
func (c *InsumoController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), insumo.ListInsumosInput{
		UserID: userID,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve insumos",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInsumoListResponse(output.Insumos))
}

// Get handles GET /insumos/:id requests.
func (c *InsumoController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	insumoID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid insumo ID format",
		})
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), insumo.GetInsumoInput{
		UserID:   userID,
		InsumoID: insumoID,
	})
	if err != nil {
		c.handleInsumoError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInsumoResponse(output.Insumo))
}

// Update handles PUT /insumos/:id requests.
func (c *InsumoController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	insumoID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid insumo ID format",
		})
		return
	}

	var req dto.UpdateInsumoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingInsumoFields),
		})
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), insumo.UpdateInsumoInput{
		UserID:                 userID,
		InsumoID:               insumoID,
		Nome:                   req.Nome,
		Categoria:              req.Categoria,
		UnidadeCompra:          req.UnidadeCompra,
		QuantidadeCompra:       req.QuantidadeCompra,
		PrecoCompra:            req.PrecoCompra,
		DataCompra:             req.DataCompra,
		QuantidadePorEmbalagem: req.QuantidadePorEmbalagem,
		Fornecedor:             req.Fornecedor,
		Observacoes:            req.Observacoes,
	})
	if err != nil {
		c.handleInsumoError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInsumoResponse(output.Insumo))
}

// Delete handles DELETE /insumos/:id requests.
func (c *InsumoController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	insumoID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid insumo ID format",
		})
		return
	}

	_, err = c.deleteUseCase.Execute(ctx.Request.Context(), insumo.DeleteInsumoInput{
		UserID:   userID,
		InsumoID: insumoID,
	})
	if err != nil {
		c.handleInsumoError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleInsumoError handles insumo errors and returns appropriate HTTP responses.
func (c *InsumoController) handleInsumoError(ctx *gin.Context, err error) {
	var insErr *domainerror.InsumoError
	if errors.As(err, &insErr) {
		ctx.JSON(c.getStatusCodeForInsumoError(insErr.Code), dto.ErrorResponse{
			Error: insErr.Message,
			Code:  string(insErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForInsumoError maps insumo error codes to HTTP status codes.
func (c *InsumoController) getStatusCodeForInsumoError(code domainerror.InsumoErrorCode) int {
	switch code {
	case domainerror.ErrCodeInsumoNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInsumoNameRequired,
		domainerror.ErrCodeMissingInsumoFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
