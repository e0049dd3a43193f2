// Package redisstore keeps the ledger, plan and profile in Redis.
//
// Layout under the configured prefix:
//
//	<prefix>:goals        list of goal ids in creation order
//	<prefix>:goal:<id>    JSON document of one goal with its entries
//	<prefix>:plan         "free" or "premium"
//	<prefix>:profile      JSON document of the profile
package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/mysavings/backend/internal/domain/entity"
	domainerror "github.com/mysavings/backend/internal/domain/error"
)

// Store implements the goal, entitlement and profile repositories on Redis.
type Store struct {
	rdb    *redis.Client
	prefix string
}

// NewStore creates a Store. An empty prefix defaults to "mysavings".
func NewStore(rdb *redis.Client, prefix string) *Store {
	if prefix == "" {
		prefix = "mysavings"
	}
	return &Store{rdb: rdb, prefix: prefix}
}

func (s *Store) goalsKey() string         { return s.prefix + ":goals" }
func (s *Store) goalKey(id string) string { return s.prefix + ":goal:" + id }
func (s *Store) planKey() string          { return s.prefix + ":plan" }
func (s *Store) profileKey() string       { return s.prefix + ":profile" }

// LoadAll returns every goal in creation order.
func (s *Store) LoadAll(ctx context.Context) ([]*entity.Goal, error) {
	ids, err := s.rdb.LRange(ctx, s.goalsKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list goal ids: %w", err)
	}
	if len(ids) == 0 {
		return []*entity.Goal{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = s.goalKey(id)
	}

	values, err := s.rdb.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read goals: %w", err)
	}

	goals := make([]*entity.Goal, 0, len(values))
	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("goal %s is listed but missing: %w", ids[i], domainerror.ErrCorruptLedger)
		}
		var rec goalRecord
		if err := json.Unmarshal([]byte(raw), &rec); err != nil {
			return nil, fmt.Errorf("failed to decode goal %s: %w", ids[i], err)
		}
		goals = append(goals, rec.toEntity())
	}
	return goals, nil
}

// Create stores goal and appends it to the id list atomically.
func (s *Store) Create(ctx context.Context, goal *entity.Goal) error {
	payload, err := json.Marshal(goalRecordFromEntity(goal))
	if err != nil {
		return fmt.Errorf("failed to encode goal: %w", err)
	}

	id := goal.ID.String()
	_, err = s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, s.goalKey(id), payload, 0)
		pipe.RPush(ctx, s.goalsKey(), id)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to store goal: %w", err)
	}
	return nil
}

// AppendEntry overwrites the goal document with its post-append state.
// The write is rejected when the goal does not exist.
func (s *Store) AppendEntry(ctx context.Context, goal *entity.Goal, entry entity.SavingEntry) error {
	payload, err := json.Marshal(goalRecordFromEntity(goal))
	if err != nil {
		return fmt.Errorf("failed to encode goal: %w", err)
	}

	key := s.goalKey(goal.ID.String())
	return s.rdb.Watch(ctx, func(tx *redis.Tx) error {
		n, err := tx.Exists(ctx, key).Result()
		if err != nil {
			return err
		}
		if n == 0 {
			return domainerror.ErrGoalNotFound
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, payload, 0)
			return nil
		})
		return err
	}, key)
}

// GetPlan returns the stored plan, or the free plan when none is stored.
func (s *Store) GetPlan(ctx context.Context) (entity.Plan, error) {
	v, err := s.rdb.Get(ctx, s.planKey()).Result()
	if errors.Is(err, redis.Nil) {
		return entity.PlanFree, nil
	}
	if err != nil {
		return "", err
	}
	return entity.Plan(v), nil
}

// SavePlan stores the plan.
func (s *Store) SavePlan(ctx context.Context, plan entity.Plan) error {
	return s.rdb.Set(ctx, s.planKey(), string(plan), 0).Err()
}

// Get returns the stored profile or nil.
func (s *Store) Get(ctx context.Context) (*entity.Profile, error) {
	raw, err := s.rdb.Get(ctx, s.profileKey()).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var rec profileRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("failed to decode profile: %w", err)
	}
	return &entity.Profile{Name: rec.Name, Email: rec.Email, UpdatedAt: rec.UpdatedAt}, nil
}

// Save stores the profile.
func (s *Store) Save(ctx context.Context, profile *entity.Profile) error {
	payload, err := json.Marshal(profileRecord{
		Name:      profile.Name,
		Email:     profile.Email,
		UpdatedAt: profile.UpdatedAt,
	})
	if err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}
	return s.rdb.Set(ctx, s.profileKey(), payload, 0).Err()
}
