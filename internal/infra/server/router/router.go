// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/mallow/backend/internal/integration/entrypoint/controller"
	"github.com/mallow/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                 *gin.Engine
	healthController       *controller.HealthController
	userController         *controller.UserController
	insumoController       *controller.InsumoController
	custoController        *controller.CustoController
	produtoController      *controller.ProdutoController
	precificacaoController *controller.PrecificacaoController
	rateLimiter            *middleware.RateLimiter
	authMiddleware         *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies. The rate
// limiter may be nil when disabled.
func NewRouter(
	healthController *controller.HealthController,
	userController *controller.UserController,
	insumoController *controller.InsumoController,
	custoController *controller.CustoController,
	produtoController *controller.ProdutoController,
	precificacaoController *controller.PrecificacaoController,
	rateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:       healthController,
		userController:         userController,
		insumoController:       insumoController,
		custoController:        custoController,
		produtoController:      produtoController,
		precificacaoController: precificacaoController,
		rateLimiter:            rateLimiter,
		authMiddleware:         authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes. Everything under /api/v1
// requires a valid access token.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	if r.rateLimiter != nil {
		v1.Use(r.rateLimiter.Middleware())
	}
	v1.Use(r.authMiddleware.Authenticate())
	{
		users := v1.Group("/users")
		{
			users.GET("/me", r.userController.Me)
		}

		insumos := v1.Group("/insumos")
		{
			insumos.GET("", r.insumoController.List)
			insumos.POST("", r.insumoController.Create)
			insumos.GET("/:id", r.insumoController.Get)
			insumos.PUT("/:id", r.insumoController.Update)
			insumos.DELETE("/:id", r.insumoController.Delete)
		}

		custos := v1.Group("/custos")
		{
			custos.GET("", r.custoController.List)
			custos.POST("", r.custoController.Create)
			custos.GET("/:id", r.custoController.Get)
			custos.PUT("/:id", r.custoController.Update)
			custos.DELETE("/:id", r.custoController.Delete)
		}

		produtos := v1.Group("/produtos")
		{
			produtos.GET("", r.produtoController.List)
			produtos.POST("", r.produtoController.Create)
			produtos.GET("/:id", r.produtoController.Get)
			produtos.PUT("/:id", r.produtoController.Update)
			produtos.DELETE("/:id", r.produtoController.Delete)
		}

		precificacao := v1.Group("/precificacao")
		{
			precificacao.GET("", r.precificacaoController.Catalogo)
			precificacao.GET("/:id", r.precificacaoController.ProdutoCompleto)
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
