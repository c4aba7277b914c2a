package game

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
)

const defendStaminaRegen = 10

// ApplyResult summarizes what a change-set actually did after
// validation and clamping.
type ApplyResult struct {
	LevelsGained     int            `json:"levels_gained,omitempty"`
	SkillsRaised     map[string]int `json:"skills_raised,omitempty"`
	ItemsAdded       []string       `json:"items_added,omitempty"`
	ItemsRemoved     []string       `json:"items_removed,omitempty"`
	TrustChanged     map[string]int `json:"trust_changed,omitempty"`
	CompanionJoined  string         `json:"companion_joined,omitempty"`
	ZoneChanged      string         `json:"zone_changed,omitempty"`
	BetrayerDefeated string         `json:"betrayer_defeated,omitempty"`
	JournalWritten   bool           `json:"journal_written,omitempty"`
}

// Applier folds a narrator change-set into a snapshot. It never
// errors: invalid values are clamped, unknown names are ignored and
// logged. Callers apply to a copy, persist, and re-read.
type Applier struct {
	snap       *Snapshot
	delta      *ChangeSet
	class      *Class
	action     Classification
	skillGains map[string]int
	logger     *slog.Logger
}

// NewApplier creates an applier for one snapshot and change-set. Either
// may carry no changes; Apply still runs action-derived effects such as
// defend regeneration.
func NewApplier(snap *Snapshot, delta *ChangeSet, logger *slog.Logger) *Applier {
	if logger == nil {
		logger = slog.Default()
	}
	return &Applier{
		snap:   snap,
		delta:  delta,
		class:  ClassByID(snap.Character.ClassID),
		logger: logger,
	}
}

// WithClassification sets how the triggering action was classified.
// Free actions never lose stamina to the change-set, and defend actions
// restore a little.
func (a *Applier) WithClassification(c Classification) *Applier {
	a.action = c
	return a
}

// WithSkillGains sets per-skill XP earned by the action.
func (a *Applier) WithSkillGains(gains map[string]int) *Applier {
	a.skillGains = gains
	return a
}

// Apply mutates the snapshot in a fixed order: vitals, gold, XP and
// level-ups, zone, items, trust, recruitment, journal. The order
// matters: level-up refills happen before zone and roster bookkeeping
// so a killing blow that levels the character leaves them at full.
func (a *Applier) Apply() *ApplyResult {
	res := &ApplyResult{}
	c := a.snap.Character

	delta := a.delta
	if delta == nil {
		delta = &ChangeSet{}
	}

	c.AdjustHP(delta.HPChange)

	staminaChange := delta.StaminaChange
	if a.action.Free && staminaChange < 0 {
		staminaChange = 0
	}
	if a.action.Defend {
		staminaChange += defendStaminaRegen
	}
	c.AdjustStamina(staminaChange)

	c.AdjustMana(delta.ManaChange)
	c.AdjustGold(delta.GoldChange)

	if delta.XPGain > 0 {
		res.LevelsGained = c.GainXP(delta.XPGain, a.class)
	}

	for skill, xp := range a.skillGains {
		if !c.AdjustSkill(skill, xp) {
			a.logger.Warn("ignoring unknown skill", "skill", skill)
			continue
		}
		if res.SkillsRaised == nil {
			res.SkillsRaised = make(map[string]int)
		}
		res.SkillsRaised[skill] += xp
	}

	if delta.ZoneChange != "" {
		if z, ok := ZoneByID(delta.ZoneChange); ok {
			c.CurrentZone = z.ID
			res.ZoneChanged = z.ID
		} else {
			a.logger.Warn("ignoring unknown zone", "zone", delta.ZoneChange)
		}
	}

	for _, it := range delta.NewItems {
		a.snap.Inventory = AddItem(a.snap.Inventory, it.Name, it.Description, it.Icon, it.ItemType, it.Quantity)
		res.ItemsAdded = append(res.ItemsAdded, it.Name)
	}
	for _, name := range delta.RemoveItems {
		inv, removed := RemoveItem(a.snap.Inventory, name)
		a.snap.Inventory = inv
		if removed {
			res.ItemsRemoved = append(res.ItemsRemoved, name)
		} else {
			a.logger.Warn("ignoring removal of unknown item", "item", name)
		}
	}

	for _, tc := range delta.TrustChanges {
		comp := FindCompanion(a.snap.Companions, tc.Name)
		if comp == nil {
			a.logger.Warn("ignoring trust change for unknown companion", "companion", tc.Name)
			continue
		}
		comp.AdjustTrust(tc.Change)
		if res.TrustChanged == nil {
			res.TrustChanged = make(map[string]int)
		}
		res.TrustChanged[comp.Name] = comp.Trust
	}

	if nc := delta.NewCompanion; nc != nil {
		if FindCompanion(a.snap.Companions, nc.Name) != nil {
			a.logger.Warn("ignoring duplicate companion", "companion", nc.Name)
		} else {
			comp := NewCompanion(nc.Name, nc.Personality, nc.Icon, nc.Description, c.Level)
			if nc.MaxHP > 0 {
				comp.MaxHP = nc.MaxHP
				comp.HP = nc.MaxHP
			}
			if nc.HP > 0 {
				comp.HP = clamp(nc.HP, 1, comp.MaxHP)
			}
			a.snap.Companions = append(a.snap.Companions, comp)
			res.CompanionJoined = comp.Name
		}
	}

	if delta.DefeatedBetrayer != "" && c.DefeatBetrayer(delta.DefeatedBetrayer) {
		res.BetrayerDefeated = delta.DefeatedBetrayer
	}
	if delta.StoryPhase != "" && !c.AdvanceStoryPhase(delta.StoryPhase) {
		a.logger.Warn("ignoring story phase change", "phase", delta.StoryPhase, "current", c.StoryPhase)
	}

	if je := delta.JournalEntry; je != nil {
		a.snap.JournalCount++
		a.snap.PendingJournal = append(a.snap.PendingJournal, JournalEntry{
			ID:          uuid.New(),
			EntryNumber: a.snap.JournalCount,
			Title:       je.Title,
			Content:     je.Content,
			CreatedAt:   time.Now().UTC(),
		})
		res.JournalWritten = true
	}

	c.UpdatedAt = time.Now().UTC()
	return res
}
