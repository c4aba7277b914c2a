package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/emberhollow/revenant/pkg/game"
)

// AllocateStats spends banked stat points on skills. The allocation is
// all-or-nothing: any unknown skill or overspend rejects the whole
// request and leaves the character untouched.
func (e *Engine) AllocateStats(ctx context.Context, id uuid.UUID, allocations map[string]int) (*game.Snapshot, error) {
	snap, err := e.store.GetSnapshot(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("loading snapshot: %w", err)
	}
	if snap == nil {
		return nil, ErrCharacterNotFound
	}

	if err := snap.Character.SpendStatPoints(allocations); err != nil {
		return nil, err
	}
	snap.Character.UpdatedAt = time.Now().UTC()

	if err := e.store.SaveSnapshot(ctx, snap); err != nil {
		return nil, fmt.Errorf("saving snapshot: %w", err)
	}
	return snap, nil
}
