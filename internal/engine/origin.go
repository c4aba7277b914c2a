package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/emberhollow/revenant/pkg/chat"
	"github.com/emberhollow/revenant/pkg/game"
	"github.com/emberhollow/revenant/pkg/prompts"
)

const (
	maxBonusItems = 3
	minSkillBoost = 5
	maxSkillBoost = 15
)

// defaultIntro opens the story when origin generation is unavailable.
const defaultIntro = `You wake on cold stone with dirt in your mouth and a grave's worth of ` +
	`silence pressing down on you. The wound that killed you has closed into a pale scar, ` +
	`but the memory of the blade has not. Someone you trusted put it there.

Old Greg's Tavern glows at the edge of the village, the only warm light for miles. ` +
	`Your hands remember how to make fists. Start there.`

// origin is the narrator-authored starting situation for a new
// character.
type origin struct {
	StartingZone   string         `json:"startingZone"`
	IntroNarrative string         `json:"introNarrative"`
	BonusItems     []game.NewItem `json:"bonusItems"`
	SkillBoosts    map[string]int `json:"skillBoosts"`
}

// CreateResult is a newly created character with its opening narration.
type CreateResult struct {
	Narrative string              `json:"narrative"`
	Snapshot  *game.Snapshot      `json:"snapshot"`
	Statuses  []game.StatusEffect `json:"statuses"`
}

// CreateCharacter builds a level-one character, asks the narrator for a
// backstory-driven opening, and persists both. Origin generation is
// best-effort: if the narrator is down or answers garbage, the
// character starts in the tavern with stock gear and a stock opening.
func (e *Engine) CreateCharacter(ctx context.Context, req *chat.CreateCharacterRequest) (*CreateResult, error) {
	class := game.ClassByID(req.ClassID)
	if class == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownClass, req.ClassID)
	}

	c := game.NewCharacter(req.UserID, req.Name, class, req.Backstory)
	snap := &game.Snapshot{
		Character: c,
		Inventory: game.StartingItems(),
	}

	o := e.generateOrigin(ctx, req.Name, req.ClassID, req.Backstory)
	e.applyOrigin(snap, o)

	if err := e.store.CreateCharacter(ctx, snap); err != nil {
		return nil, err
	}
	if err := e.store.AddMessage(ctx, c.ID, chat.Message{
		Role:      chat.RoleAssistant,
		Content:   o.IntroNarrative,
		CreatedAt: time.Now().UTC(),
	}); err != nil {
		return nil, fmt.Errorf("saving opening narration: %w", err)
	}

	return &CreateResult{
		Narrative: o.IntroNarrative,
		Snapshot:  snap,
		Statuses:  game.DeriveStatusEffects(c),
	}, nil
}

// generateOrigin asks the narrator for a starting situation and falls
// back to stock defaults on any failure.
func (e *Engine) generateOrigin(ctx context.Context, name, classID, backstory string) origin {
	fallback := origin{StartingZone: game.ZoneTavern, IntroNarrative: defaultIntro}

	raw, err := e.narrator.Narrate(ctx, prompts.BuildOriginMessages(name, classID, backstory))
	if err != nil {
		e.logger.Warn("origin generation failed, using defaults", "error", err)
		return fallback
	}

	var o origin
	if err := json.Unmarshal([]byte(stripFences(raw)), &o); err != nil {
		e.logger.Warn("origin response was not valid json, using defaults", "error", err)
		return fallback
	}
	if o.IntroNarrative == "" {
		o.IntroNarrative = defaultIntro
	}
	if _, ok := game.ZoneByID(o.StartingZone); !ok {
		if o.StartingZone != "" {
			e.logger.Warn("origin named unknown zone, starting in the tavern", "zone", o.StartingZone)
		}
		o.StartingZone = game.ZoneTavern
	}
	return o
}

// applyOrigin folds a validated origin into a freshly built snapshot.
func (e *Engine) applyOrigin(snap *game.Snapshot, o origin) {
	snap.Character.CurrentZone = game.NormalizeKey(o.StartingZone)

	items := o.BonusItems
	if len(items) > maxBonusItems {
		items = items[:maxBonusItems]
	}
	for _, it := range items {
		if it.Name == "" {
			continue
		}
		snap.Inventory = game.AddItem(snap.Inventory, it.Name, it.Description, it.Icon, it.ItemType, it.Quantity)
	}

	for skill, boost := range o.SkillBoosts {
		if boost < minSkillBoost {
			boost = minSkillBoost
		} else if boost > maxSkillBoost {
			boost = maxSkillBoost
		}
		if !snap.Character.AdjustSkill(skill, boost) {
			e.logger.Warn("origin boosted unknown skill", "skill", skill)
		}
	}
}

// stripFences tolerates narrators that wrap the requested bare JSON in
// a markdown code fence anyway.
func stripFences(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
