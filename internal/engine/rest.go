package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/emberhollow/revenant/pkg/game"
)

// ambushAction is the forced turn injected when a rest is interrupted.
const ambushAction = "I was ambushed while trying to rest!"

// RestOutcome reports a rest attempt. When the rest was ambushed,
// Encounter holds the forced combat turn and the recovery fields of
// Rest are zero.
type RestOutcome struct {
	Rest      game.RestResult     `json:"rest"`
	Encounter *ActionResult       `json:"encounter,omitempty"`
	Snapshot  *game.Snapshot      `json:"snapshot"`
	Statuses  []game.StatusEffect `json:"statuses"`
}

// Rest attempts a rest in the character's current zone. Safe zones
// always rest undisturbed; dangerous zones risk an ambush. An ambush
// skips recovery and plays out as a normal narrated turn, even if the
// character has no stamina left.
func (e *Engine) Rest(ctx context.Context, id uuid.UUID) (*RestOutcome, error) {
	snap, err := e.store.GetSnapshot(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("loading snapshot: %w", err)
	}
	if snap == nil {
		return nil, ErrCharacterNotFound
	}

	zone, ok := game.ZoneByID(snap.Character.CurrentZone)
	if !ok {
		e.logger.Warn("character in unknown zone, resting as if in the tavern",
			"character_id", id, "zone", snap.Character.CurrentZone)
		zone, _ = game.ZoneByID(game.ZoneTavern)
	}

	roll, err := e.roller.Roll(1, 100)
	if err != nil {
		return nil, fmt.Errorf("rolling ambush check: %w", err)
	}

	result := game.ResolveRest(snap.Character, zone, roll)
	if result.Ambushed {
		d20, err := e.roller.Roll(1, 20)
		if err != nil {
			return nil, fmt.Errorf("rolling d20: %w", err)
		}
		encounter, err := e.narrateAndApply(ctx, snap, ambushAction, game.Classification{}, d20)
		if err != nil {
			return nil, err
		}
		return &RestOutcome{
			Rest:      result,
			Encounter: encounter,
			Snapshot:  encounter.Snapshot,
			Statuses:  encounter.Statuses,
		}, nil
	}

	snap.Character.UpdatedAt = time.Now().UTC()
	if err := e.store.SaveSnapshot(ctx, snap); err != nil {
		return nil, fmt.Errorf("saving snapshot: %w", err)
	}

	fresh, err := e.store.GetSnapshot(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("reloading snapshot: %w", err)
	}
	if fresh == nil {
		fresh = snap
	}

	return &RestOutcome{
		Rest:     result,
		Snapshot: fresh,
		Statuses: game.DeriveStatusEffects(fresh.Character),
	}, nil
}
