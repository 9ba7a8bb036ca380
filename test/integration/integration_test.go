//go:build integration

package integration

import (
	"testing"

	"github.com/cucumber/godog"

	"github.com/mallow/backend/test/integration/steps"
)

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		Name:                 "mallow-api",
		TestSuiteInitializer: steps.InitializeTestSuite,
		ScenarioInitializer:  steps.InitializeScenario,
		Options: &godog.Options{
			Format:      "pretty",
			Paths:       []string{"features"},
			Concurrency: 1,
			Strict:      true,
			TestingT:    t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("integration test suite failed")
	}
}
