package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/emberhollow/revenant/pkg/chat"
	"github.com/emberhollow/revenant/pkg/game"
	"github.com/emberhollow/revenant/pkg/prompts"
)

// ActionResult is what one processed action returns to the caller.
type ActionResult struct {
	Narrative      string              `json:"narrative"`
	Classification game.Classification `json:"classification"`
	DiceRoll       int                 `json:"dice_roll,omitempty"`
	Snapshot       *game.Snapshot      `json:"snapshot"`
	Statuses       []game.StatusEffect `json:"statuses"`
	Applied        *game.ApplyResult   `json:"applied,omitempty"`
}

// ProcessAction runs one turn of the story loop for the character.
// Free actions bypass the stamina gate; paid actions with no stamina
// left are rejected before the narrator is called. When the client did
// not roll, paid actions get a server-side d20.
func (e *Engine) ProcessAction(ctx context.Context, id uuid.UUID, req *chat.ActionRequest) (*ActionResult, error) {
	snap, err := e.store.GetSnapshot(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("loading snapshot: %w", err)
	}
	if snap == nil {
		return nil, ErrCharacterNotFound
	}

	class := game.ClassifyAction(req.Action)
	if !class.Free && snap.Character.Stamina <= 0 {
		return nil, ErrExhausted
	}

	roll := req.DiceRoll
	if roll == 0 && !class.Free {
		roll, err = e.roller.Roll(1, 20)
		if err != nil {
			return nil, fmt.Errorf("rolling d20: %w", err)
		}
	}

	return e.narrateAndApply(ctx, snap, req.Action, class, roll)
}

// narrateAndApply is the shared back half of the loop: prompt, narrate,
// parse, apply to a copy, persist, re-read. The caller has already
// gated the action and fixed its classification and dice roll.
func (e *Engine) narrateAndApply(ctx context.Context, snap *game.Snapshot, action string, class game.Classification, roll int) (*ActionResult, error) {
	id := snap.Character.ID

	history, err := e.store.GetRecentMessages(ctx, id, historyWindow)
	if err != nil {
		return nil, fmt.Errorf("loading history: %w", err)
	}

	messages, err := prompts.New().
		WithSnapshot(snap).
		WithStatuses(game.DeriveStatusEffects(snap.Character)).
		WithAction(action, class).
		WithDiceRoll(roll).
		WithHistory(history).
		WithHistoryLimit(historyWindow).
		Build()
	if err != nil {
		return nil, fmt.Errorf("building prompt: %w", err)
	}

	raw, err := e.narrator.Narrate(ctx, messages)
	if err != nil {
		return nil, fmt.Errorf("narrating action: %w", err)
	}

	narrative, delta := game.ParseNarration(raw)
	if delta == nil {
		e.logger.Warn("narration carried no usable change-set", "character_id", id)
	}

	gains, err := e.skillGains(action, class)
	if err != nil {
		return nil, err
	}

	applied := snap.DeepCopy()
	result := game.NewApplier(applied, delta, e.logger).
		WithClassification(class).
		WithSkillGains(gains).
		Apply()

	// The snapshot is written first so a failed state write leaves the
	// chat log untouched and the turn can be retried cleanly.
	if err := e.store.SaveSnapshot(ctx, applied); err != nil {
		return nil, fmt.Errorf("saving snapshot: %w", err)
	}
	now := time.Now().UTC()
	if err := e.store.AddMessage(ctx, id, chat.Message{Role: chat.RoleUser, Content: action, CreatedAt: now}); err != nil {
		return nil, fmt.Errorf("saving player message: %w", err)
	}
	if err := e.store.AddMessage(ctx, id, chat.Message{Role: chat.RoleAssistant, Content: narrative, CreatedAt: now}); err != nil {
		return nil, fmt.Errorf("saving narration: %w", err)
	}

	fresh, err := e.store.GetSnapshot(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("reloading snapshot: %w", err)
	}
	if fresh == nil {
		fresh = applied
	}

	return &ActionResult{
		Narrative:      narrative,
		Classification: class,
		DiceRoll:       roll,
		Snapshot:       fresh,
		Statuses:       game.DeriveStatusEffects(fresh.Character),
		Applied:        result,
	}, nil
}

// skillGains rolls 1d3 practice XP for each skill the action exercised.
// Free actions train nothing.
func (e *Engine) skillGains(action string, class game.Classification) (map[string]int, error) {
	if class.Free {
		return nil, nil
	}
	skills := game.DetectSkillUsage(action)
	if len(skills) == 0 {
		return nil, nil
	}
	gains := make(map[string]int, len(skills))
	for _, skill := range skills {
		xp, err := e.roller.Roll(1, 3)
		if err != nil {
			return nil, fmt.Errorf("rolling skill xp: %w", err)
		}
		gains[skill] = xp
	}
	return gains, nil
}
