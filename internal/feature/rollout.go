package feature

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strconv"

	"go.uber.org/zap"

	"github.com/brokerguard/dbp/internal/logger"
)

const rolloutKey = "feature.rollout.roll"

// KeyValueStore persists small values that outlive the user's data
type KeyValueStore interface {
	GetKeyValue(ctx context.Context, key string) (*string, error)
	SetKeyValue(ctx context.Context, key string, value string) error
}

// Rollout places this install in a percentage rollout.
// The roll happens once and is kept for the life of the install, so raising
// the percentage only ever adds installs.
type Rollout struct {
	kv   KeyValueStore
	roll func() int
}

// NewRollout creates a rollout backed by the key value store
func NewRollout(kv KeyValueStore) *Rollout {
	return &Rollout{
		kv:   kv,
		roll: func() int { return rand.IntN(100) + 1 },
	}
}

// NewRolloutWithRoll creates a rollout with a custom roll source
func NewRolloutWithRoll(kv KeyValueStore, roll func() int) *Rollout {
	return &Rollout{kv: kv, roll: roll}
}

// IsIn reports whether this install falls within percent
func (r *Rollout) IsIn(ctx context.Context, percent int) (bool, error) {
	roll, err := r.Roll(ctx)
	if err != nil {
		return false, err
	}
	return roll <= percent, nil
}

// Roll returns the install's roll in 1..100, rolling on first use
func (r *Rollout) Roll(ctx context.Context) (int, error) {
	stored, err := r.kv.GetKeyValue(ctx, rolloutKey)
	if err != nil {
		return 0, fmt.Errorf("failed to read rollout roll: %w", err)
	}
	if stored != nil {
		roll, err := strconv.Atoi(*stored)
		if err == nil && roll >= 1 && roll <= 100 {
			return roll, nil
		}
		logger.WarnCtx(ctx, "Discarding invalid rollout roll", zap.String("value", *stored))
	}

	roll := r.roll()
	if err := r.kv.SetKeyValue(ctx, rolloutKey, strconv.Itoa(roll)); err != nil {
		return 0, fmt.Errorf("failed to store rollout roll: %w", err)
	}
	logger.InfoCtx(ctx, "Rolled feature rollout", zap.Int("roll", roll))
	return roll, nil
}
