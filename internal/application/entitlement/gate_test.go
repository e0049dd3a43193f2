package entitlement

import (
	"context"
	"errors"
	"testing"

	"github.com/mysavings/backend/internal/domain/entity"
	domainerror "github.com/mysavings/backend/internal/domain/error"
)

type fakeEntitlementRepo struct {
	plan    entity.Plan
	saveErr error
	saves   int
}

func (f *fakeEntitlementRepo) GetPlan(ctx context.Context) (entity.Plan, error) {
	if f.plan == "" {
		return entity.PlanFree, nil
	}
	return f.plan, nil
}

func (f *fakeEntitlementRepo) SavePlan(ctx context.Context, plan entity.Plan) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saves++
	f.plan = plan
	return nil
}

func TestGate_CanCreateGoal(t *testing.T) {
	gate := NewGate(nil)

	t.Run("free plan allows the first goal", func(t *testing.T) {
		if !gate.CanCreateGoal(0) {
			t.Error("expected first goal to be allowed")
		}
	})

	t.Run("free plan refuses a second goal", func(t *testing.T) {
		if gate.CanCreateGoal(1) {
			t.Error("expected second goal to be refused")
		}
	})

	t.Run("premium plan allows any count", func(t *testing.T) {
		if err := gate.Upgrade(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, count := range []int{0, 1, 2, 50} {
			if !gate.CanCreateGoal(count) {
				t.Errorf("expected goal %d to be allowed on premium", count+1)
			}
		}
	})
}

func TestGate_Upgrade(t *testing.T) {
	t.Run("starts free", func(t *testing.T) {
		gate := NewGate(nil)
		if gate.IsPremium() {
			t.Error("expected a new gate to be free")
		}
		if gate.Plan() != entity.PlanFree {
			t.Errorf("expected plan free, got %s", gate.Plan())
		}
	})

	t.Run("is idempotent and persisted once", func(t *testing.T) {
		repo := &fakeEntitlementRepo{}
		gate := NewGate(repo)

		for i := 0; i < 3; i++ {
			if err := gate.Upgrade(context.Background()); err != nil {
				t.Fatalf("upgrade %d failed: %v", i, err)
			}
		}

		if !gate.IsPremium() {
			t.Error("expected premium after upgrade")
		}
		if repo.saves != 1 {
			t.Errorf("expected 1 save, got %d", repo.saves)
		}
	})

	t.Run("stays free when persistence fails", func(t *testing.T) {
		repo := &fakeEntitlementRepo{saveErr: errors.New("disk full")}
		gate := NewGate(repo)

		err := gate.Upgrade(context.Background())

		var entErr *domainerror.EntitlementError
		if !errors.As(err, &entErr) {
			t.Fatalf("expected EntitlementError, got %v", err)
		}
		if gate.IsPremium() {
			t.Error("gate must not become premium when the upgrade was not saved")
		}
	})
}

func TestGate_Load(t *testing.T) {
	repo := &fakeEntitlementRepo{plan: entity.PlanPremium}
	gate := NewGate(repo)

	if err := gate.Load(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !gate.IsPremium() {
		t.Error("expected stored premium plan to be restored")
	}

	repo.plan = entity.Plan("gold")
	if err := gate.Load(context.Background()); !errors.Is(err, domainerror.ErrInvalidPlan) {
		t.Errorf("expected ErrInvalidPlan, got %v", err)
	}
	if !gate.IsPremium() {
		t.Error("a failed load must not downgrade the gate")
	}
}
