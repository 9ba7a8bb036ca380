// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mallow/backend/internal/application/usecase/user"
	domainerror "github.com/mallow/backend/internal/domain/error"
	"github.com/mallow/backend/internal/integration/entrypoint/dto"
	"github.com/mallow/backend/internal/integration/entrypoint/middleware"
)

// UserController handles user profile endpoints.
type UserController struct {
	ensureUseCase *user.EnsureUserUseCase
}

// NewUserController creates a new user controller instance.
func NewUserController(ensureUseCase *user.EnsureUserUseCase) *UserController {
	return &UserController{
		ensureUseCase: ensureUseCase,
	}
}

// Me handles GET /users/me requests. The profile row is created on first
// contact from the token claims.
func (c *UserController) Me(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}
	email, _ := middleware.GetUserEmailFromContext(ctx)
	nome, _ := middleware.GetUserNomeFromContext(ctx)

	output, err := c.ensureUseCase.Execute(ctx.Request.Context(), user.EnsureUserInput{
		UserID: userID,
		Email:  email,
		Nome:   nome,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to load user profile",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserResponse(output.User))
}
