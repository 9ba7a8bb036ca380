// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mallow/backend/internal/application/usecase/custo"
	"github.com/mallow/backend/internal/domain/entity"
	domainerror "github.com/mallow/backend/internal/domain/error"
	"github.com/mallow/backend/internal/integration/entrypoint/dto"
	"github.com/mallow/backend/internal/integration/entrypoint/middleware"
)

// CustoController handles global-cost endpoints.
type CustoController struct {
	createUseCase *custo.CreateCustoUseCase
	listUseCase   *custo.ListCustosUseCase
	getUseCase    *custo.GetCustoUseCase
	updateUseCase *custo.UpdateCustoUseCase
	deleteUseCase *custo.DeleteCustoUseCase
}

// NewCustoController creates a new custo controller instance.
func NewCustoController(
	createUseCase *custo.CreateCustoUseCase,
	listUseCase *custo.ListCustosUseCase,
	getUseCase *custo.GetCustoUseCase,
	updateUseCase *custo.UpdateCustoUseCase,
	deleteUseCase *custo.DeleteCustoUseCase,
) *CustoController {
	return &CustoController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		getUseCase:    getUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /custos requests.
func (c *CustoController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CreateCustoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingCustoFields),
		})
		return
	}

	// New entries default to active unless the client says otherwise.
	ativo := true
	if req.Ativo != nil {
		ativo = *req.Ativo
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), custo.CreateCustoInput{
		UserID: userID,
		Nome:   req.Nome,
		Tipo:   entity.TipoCusto(req.Tipo),
		Valor:  req.Valor,
		Ativo:  ativo,
	})
	if err != nil {
		c.handleCustoError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCustoResponse(output.Custo))
}

// List handles GET /custos requests. The ativo=true query keeps only the
// entries that feed the hourly rate.
func (c *CustoController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), custo.ListCustosInput{
		UserID:       userID,
		ApenasAtivos: ctx.Query("ativo") == "true",
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve costs",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCustoListResponse(output.Custos))
}

// Get handles GET /custos/:id requests.
func (c *CustoController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	custoID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid custo ID format",
		})
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), custo.GetCustoInput{
		UserID:  userID,
		CustoID: custoID,
	})
	if err != nil {
		c.handleCustoError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCustoResponse(output.Custo))
}

// Update handles PUT /custos/:id requests.
func (c *CustoController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	custoID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid custo ID format",
		})
		return
	}

	var req dto.UpdateCustoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingCustoFields),
		})
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), custo.UpdateCustoInput{
		UserID:  userID,
		CustoID: custoID,
		Nome:    req.Nome,
		Tipo:    entity.TipoCusto(req.Tipo),
		Valor:   req.Valor,
		Ativo:   req.Ativo,
	})
	if err != nil {
		c.handleCustoError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCustoResponse(output.Custo))
}

// Delete handles DELETE /custos/:id requests.
func (c *CustoController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	custoID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid custo ID format",
		})
		return
	}

	_, err = c.deleteUseCase.Execute(ctx.Request.Context(), custo.DeleteCustoInput{
		UserID:  userID,
		CustoID: custoID,
	})
	if err != nil {
		c.handleCustoError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleCustoError handles custo errors and returns appropriate HTTP responses.
func (c *CustoController) handleCustoError(ctx *gin.Context, err error) {
	var custoErr *domainerror.CustoError
	if errors.As(err, &custoErr) {
		ctx.JSON(c.getStatusCodeForCustoError(custoErr.Code), dto.ErrorResponse{
			Error: custoErr.Message,
			Code:  string(custoErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForCustoError maps custo error codes to HTTP status codes.
func (c *CustoController) getStatusCodeForCustoError(code domainerror.CustoErrorCode) int {
	switch code {
	case domainerror.ErrCodeCustoNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidTipoCusto,
		domainerror.ErrCodeMissingCustoFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
