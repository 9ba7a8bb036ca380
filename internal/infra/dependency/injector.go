// Package dependency provides dependency injection for the application.
package dependency

import (
	redisclient "github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/mallow/backend/config"
	"github.com/mallow/backend/internal/application/usecase/custo"
	"github.com/mallow/backend/internal/application/usecase/insumo"
	"github.com/mallow/backend/internal/application/usecase/precificacao"
	"github.com/mallow/backend/internal/application/usecase/produto"
	"github.com/mallow/backend/internal/application/usecase/user"
	"github.com/mallow/backend/internal/infra/server/router"
	"github.com/mallow/backend/internal/integration/adapters"
	"github.com/mallow/backend/internal/integration/entrypoint/controller"
	"github.com/mallow/backend/internal/integration/entrypoint/middleware"
	"github.com/mallow/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
// The redis client may be nil, which disables rate limiting.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redisclient.Client) *Injector {
	// Repositories
	userRepo := persistence.NewUserRepository(db)
	insumoRepo := persistence.NewInsumoRepository(db)
	custoRepo := persistence.NewCustoRepository(db)
	produtoRepo := persistence.NewProdutoRepository(db)

	// Services
	tokenService := adapters.NewTokenService(cfg.Auth.JWTSecret)

	// User use cases
	ensureUserUseCase := user.NewEnsureUserUseCase(userRepo)

	// Insumo use cases
	createInsumoUseCase := insumo.NewCreateInsumoUseCase(insumoRepo)
	listInsumosUseCase := insumo.NewListInsumosUseCase(insumoRepo)
	getInsumoUseCase := insumo.NewGetInsumoUseCase(insumoRepo)
	updateInsumoUseCase := insumo.NewUpdateInsumoUseCase(insumoRepo)
	deleteInsumoUseCase := insumo.NewDeleteInsumoUseCase(insumoRepo)

	// Custo use cases
	createCustoUseCase := custo.NewCreateCustoUseCase(custoRepo)
	listCustosUseCase := custo.NewListCustosUseCase(custoRepo)
	getCustoUseCase := custo.NewGetCustoUseCase(custoRepo)
	updateCustoUseCase := custo.NewUpdateCustoUseCase(custoRepo)
	deleteCustoUseCase := custo.NewDeleteCustoUseCase(custoRepo)

	// Produto use cases
	createProdutoUseCase := produto.NewCreateProdutoUseCase(produtoRepo, insumoRepo)
	listProdutosUseCase := produto.NewListProdutosUseCase(produtoRepo)
	getProdutoUseCase := produto.NewGetProdutoUseCase(produtoRepo)
	updateProdutoUseCase := produto.NewUpdateProdutoUseCase(produtoRepo, insumoRepo)
	deleteProdutoUseCase := produto.NewDeleteProdutoUseCase(produtoRepo)

	// Precificacao use cases
	getCatalogoUseCase := precificacao.NewGetCatalogoUseCase(produtoRepo, insumoRepo, custoRepo)
	getProdutoCompletoUseCase := precificacao.NewGetProdutoCompletoUseCase(produtoRepo, insumoRepo, custoRepo)

	// Controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	userController := controller.NewUserController(ensureUserUseCase)

	insumoController := controller.NewInsumoController(
		createInsumoUseCase,
		listInsumosUseCase,
		getInsumoUseCase,
		updateInsumoUseCase,
		deleteInsumoUseCase,
	)

	custoController := controller.NewCustoController(
		createCustoUseCase,
		listCustosUseCase,
		getCustoUseCase,
		updateCustoUseCase,
		deleteCustoUseCase,
	)

	produtoController := controller.NewProdutoController(
		createProdutoUseCase,
		listProdutosUseCase,
		getProdutoUseCase,
		updateProdutoUseCase,
		deleteProdutoUseCase,
	)

	precificacaoController := controller.NewPrecificacaoController(
		getCatalogoUseCase,
		getProdutoCompletoUseCase,
	)

	// Middleware
	var rateLimiter *middleware.RateLimiter
	if redisClient != nil {
		rateLimiter = middleware.NewRateLimiter(redisClient)
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	r := router.NewRouter(
		healthController,
		userController,
		insumoController,
		custoController,
		produtoController,
		precificacaoController,
		rateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
	}
}
