// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"

	"github.com/mysavings/backend/config"
	"github.com/mysavings/backend/internal/infra/dependency"
	"github.com/mysavings/backend/test/integration/mock"
)

const redisTag = "@redis"

// TestContext holds the test state for each scenario.
type TestContext struct {
	// HTTP
	server       *httptest.Server
	response     *http.Response
	responseBody []byte

	// App
	cfg      *config.Config
	injector *dependency.Injector

	// Mocks
	db     *mock.Db
	resend *mock.ApiMock
	clock  *mock.Time

	// goal IDs by name, as created in the scenario
	goals map[string]string
}

// contextKey is used to store TestContext in context.Context.
type contextKey struct{}

// GetTestContext retrieves the TestContext from context.
func GetTestContext(ctx context.Context) *TestContext {
	if tc, ok := ctx.Value(contextKey{}).(*TestContext); ok {
		return tc
	}
	return nil
}

// SetTestContext stores the TestContext in context.
func SetTestContext(ctx context.Context, tc *TestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
		mock.NewRedis()
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		db, err := mock.NewDb()
		if err != nil {
			return ctx, err
		}

		resend := mock.NewApiServer()
		resend.Start()
		resend.SetResponse(http.MethodPost, "/emails", http.StatusOK, map[string]any{"id": "email_test"})

		tc := &TestContext{
			db:     db,
			resend: resend,
			clock:  mock.NewTime(),
			goals:  make(map[string]string),
		}
		tc.cfg = scenarioConfig(db, resend)

		for _, tag := range sc.Tags {
			if tag.Name == redisTag {
				mock.ClearRedis()
				tc.cfg.Ledger.Store = config.LedgerStoreRedis
			}
		}

		if err := tc.start(ctx); err != nil {
			return ctx, err
		}
		return SetTestContext(ctx, tc), nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		tc := GetTestContext(ctx)
		if tc == nil {
			return ctx, nil
		}
		tc.stop()
		tc.resend.Close()
		_ = tc.db.Remove()
		return ctx, nil
	})

	registerAppSteps(ctx)
	registerAPISteps(ctx)
	registerResponseSteps(ctx)
	registerReminderSteps(ctx)
}

func scenarioConfig(db *mock.Db, resend *mock.ApiMock) *config.Config {
	cfg := config.Load()
	cfg.Server.Environment = "test"
	cfg.Database.URL = db.URL()
	cfg.Ledger.Store = config.LedgerStoreSQL
	cfg.Redis.URL = mock.RedisURL()
	cfg.Redis.KeyPrefix = "bdd"
	cfg.Chat.ReplyDelay = 0
	cfg.Chat.GeminiAPIKey = ""
	cfg.Email.ResendAPIKey = "re_test_key"
	cfg.Email.ResendBaseURL = resend.GetUrl()
	cfg.Email.AppBaseURL = "http://mysavings.test"
	cfg.Reminder.Location = "UTC"
	return cfg
}

// start builds the app from the scenario config and serves it.
func (tc *TestContext) start(ctx context.Context) error {
	inj, err := dependency.NewInjector(ctx, tc.cfg)
	if err != nil {
		return fmt.Errorf("failed to start app: %w", err)
	}
	tc.injector = inj
	tc.server = httptest.NewServer(inj.Router.Setup(tc.cfg.Server.Environment))
	return nil
}

func (tc *TestContext) stop() {
	if tc.server != nil {
		tc.server.Close()
		tc.server = nil
	}
	if tc.injector != nil {
		tc.injector.Close()
		tc.injector.ChatSession.Wait()
		tc.injector = nil
	}
}
