// Package steps contains the step definitions for the integration suite.
package steps

import (
	"context"
	"net/http/httptest"

	"github.com/cucumber/godog"

	"github.com/mallow/backend/config"
	"github.com/mallow/backend/internal/infra/dependency"
	"github.com/mallow/backend/test/integration/mock"
)

const testJWTSecret = "integration-test-secret"

// TestContext carries the state shared by the steps of one scenario.
type TestContext struct {
	server      *httptest.Server
	closeRedis  func()
	accessToken string

	lastStatus int
	lastBody   []byte

	insumoIDs  map[string]string
	custoIDs   map[string]string
	produtoIDs map[string]string

	pendingProduto *produtoPayload
}

// InitializeTestSuite configures suite-level hooks.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {}

// InitializeScenario wires a fresh application instance per scenario and
// registers every step definition.
func InitializeScenario(ctx *godog.ScenarioContext) {
	tc := &TestContext{}

	ctx.Before(func(c context.Context, sc *godog.Scenario) (context.Context, error) {
		tc.setup()
		return c, nil
	})

	ctx.After(func(c context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		tc.teardown()
		return c, nil
	})

	registerAPISteps(ctx, tc)
	registerDomainSteps(ctx, tc)
}

func (tc *TestContext) setup() {
	cfg := config.Load()
	cfg.Server.Environment = "test"
	cfg.Auth.JWTSecret = testJWTSecret

	db := mock.NewDb()
	redisClient, closeRedis := mock.NewRedis()
	tc.closeRedis = closeRedis

	injector := dependency.NewInjector(cfg, db, redisClient)
	engine := injector.Router.Setup(cfg.Server.Environment)
	tc.server = httptest.NewServer(engine)

	tc.accessToken = ""
	tc.lastStatus = 0
	tc.lastBody = nil
	tc.insumoIDs = make(map[string]string)
	tc.custoIDs = make(map[string]string)
	tc.produtoIDs = make(map[string]string)
	tc.pendingProduto = nil
}

func (tc *TestContext) teardown() {
	if tc.server != nil {
		tc.server.Close()
	}
	if tc.closeRedis != nil {
		tc.closeRedis()
	}
}
