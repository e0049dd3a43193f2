package dependency

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	"github.com/mysavings/backend/config"
	entitlementuc "github.com/mysavings/backend/internal/application/usecase/entitlement"
	"github.com/mysavings/backend/internal/application/usecase/goal"
	"github.com/mysavings/backend/internal/domain/entity"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	t.Setenv("DATABASE_URL", "file:"+t.Name()+"?mode=memory&cache=shared")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("RESEND_API_KEY", "")
	t.Setenv("CHAT_REPLY_DELAY", "0s")
	t.Setenv("REMINDER_TIMEZONE", "UTC")
	return config.Load()
}

func TestNewInjector_SQLStore(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t)

	inj, err := NewInjector(ctx, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer inj.Close()

	if inj.Redis != nil {
		t.Error("sql store should not open redis")
	}
	if inj.Gate.Plan() != entity.PlanFree {
		t.Errorf("expected free plan, got %s", inj.Gate.Plan())
	}

	_, err = inj.UseCases.CreateGoal.Execute(ctx, goal.CreateGoalInput{
		Name: "Laptop", TargetAmount: "80000", DurationMonths: "8",
	})
	if err != nil {
		t.Fatalf("create goal: %v", err)
	}
	if inj.ChatLimiter == nil {
		t.Error("expected the chat rate limiter to be exposed for its cleanup loop")
	}
	if inj.Router.Setup("test") == nil {
		t.Fatal("expected an engine")
	}
}

func TestNewInjector_LogsLedgerLoadOnce(t *testing.T) {
	var buf bytes.Buffer
	previous := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, nil)))
	defer slog.SetDefault(previous)

	inj, err := NewInjector(context.Background(), testConfig(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer inj.Close()

	if n := strings.Count(buf.String(), `"msg":"Ledger loaded"`); n != 1 {
		t.Errorf("expected one ledger load line, got %d:\n%s", n, buf.String())
	}
	if !strings.Contains(buf.String(), `"store":"sql"`) {
		t.Errorf("expected the load line to name the store, got:\n%s", buf.String())
	}
}

func TestNewInjector_RedisStoreReloadsState(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	cfg := testConfig(t)
	cfg.Ledger.Store = config.LedgerStoreRedis
	cfg.Redis.URL = "redis://" + mr.Addr() + "/0"

	first, err := NewInjector(ctx, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := first.UseCases.Upgrade.Execute(ctx, entitlementuc.UpgradeInput{}); err != nil {
		t.Fatalf("upgrade: %v", err)
	}
	first.Close()

	second, err := NewInjector(ctx, cfg)
	if err != nil {
		t.Fatalf("unexpected error on reload: %v", err)
	}
	defer second.Close()

	if !second.Gate.IsPremium() {
		t.Error("expected premium plan to survive a restart")
	}
}

func TestNewInjector_UnknownStore(t *testing.T) {
	cfg := testConfig(t)
	cfg.Ledger.Store = "dynamo"

	if _, err := NewInjector(context.Background(), cfg); err == nil {
		t.Error("expected error for unknown store")
	}
}

func TestReminderLocation(t *testing.T) {
	if loc := reminderLocation("Not/AZone"); loc != time.UTC {
		t.Errorf("expected UTC fallback, got %s", loc)
	}
}
