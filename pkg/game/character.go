package game

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// StoryPhases are the acts of the revenge arc, in order. The narrator
// may advance the phase through a change-set but never invent a new one.
var StoryPhases = []string{
	"awakening",
	"first_blood",
	"gathering_strength",
	"the_hunt",
	"reckoning",
	"aftermath",
}

// SkillKeys is the canonical skill vector. Narrator-supplied skill names
// outside this list are ignored.
var SkillKeys = []string{
	// physical
	"brawling", "one_handed", "two_handed", "acrobatics",
	"climbing", "stealth", "sleight_of_hand", "aim",
	// magical
	"bloodmancy", "necromancy", "soulbinding", "destruction",
	"alteration", "illusion", "regeneration",
	// social
	"persuasion", "intimidation", "seduction",
	"investigation", "bartering", "beastmastery",
}

// ReputationKeys are the axes that track how the world sees the
// character. Reputation is unclamped; it can go as negative as the
// story takes it.
var ReputationKeys = []string{
	"bravery", "mercy", "honor", "infamy", "justice", "loyalty", "malice",
}

// Character is the persistent player record. All mutation goes through
// the clamped setters below so invariants hold no matter what the
// narrator sends back.
type Character struct {
	ID        uuid.UUID `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	ClassID   string    `json:"class_id"`
	Backstory string    `json:"backstory,omitempty"`

	HP         int `json:"hp"`
	MaxHP      int `json:"max_hp"`
	Stamina    int `json:"stamina"`
	MaxStamina int `json:"max_stamina"`
	Mana       int `json:"mana"`
	MaxMana    int `json:"max_mana"`

	Gold       int `json:"gold"`
	XP         int `json:"xp"`
	Level      int `json:"level"`
	StatPoints int `json:"stat_points"`

	Offense int `json:"offense"`
	Defense int `json:"defense"`
	Magic   int `json:"magic"`

	Skills     map[string]int `json:"skills"`
	Reputation map[string]int `json:"reputation"`

	CurrentZone       string   `json:"current_zone"`
	StoryPhase        string   `json:"story_phase"`
	BetrayersDefeated []string `json:"betrayers_defeated,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewCharacter builds a level-1 character from a class definition.
func NewCharacter(userID, name string, class *Class, backstory string) *Character {
	c := &Character{
		ID:          uuid.New(),
		UserID:      userID,
		Name:        name,
		ClassID:     class.ID,
		Backstory:   backstory,
		HP:          100,
		MaxHP:       100,
		Stamina:     class.MaxStamina,
		MaxStamina:  class.MaxStamina,
		Mana:        class.MaxMana,
		MaxMana:     class.MaxMana,
		Gold:        50,
		XP:          0,
		Level:       1,
		Offense:     class.Offense,
		Defense:     class.Defense,
		Magic:       class.Magic,
		Skills:      make(map[string]int, len(SkillKeys)),
		Reputation:  make(map[string]int, len(ReputationKeys)),
		CurrentZone: ZoneTavern,
		StoryPhase:  StoryPhases[0],
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}
	for _, k := range SkillKeys {
		c.Skills[k] = 0
	}
	for _, k := range ReputationKeys {
		c.Reputation[k] = 0
	}
	// Class default stats span both maps; route each key to whichever
	// vector knows it.
	for k, v := range class.DefaultStats {
		if _, ok := c.Skills[k]; ok {
			c.Skills[k] = clamp(v, 0, 100)
		} else if _, ok := c.Reputation[k]; ok {
			c.Reputation[k] = v
		}
	}
	return c
}

// XPForNextLevel returns the XP required to advance past the given level.
func XPForNextLevel(level int) int {
	return level * 100
}

// AdjustHP applies a signed delta, clamped to [0, MaxHP].
func (c *Character) AdjustHP(delta int) {
	c.HP = clamp(c.HP+delta, 0, c.MaxHP)
}

// AdjustStamina applies a signed delta, clamped to [0, MaxStamina].
func (c *Character) AdjustStamina(delta int) {
	c.Stamina = clamp(c.Stamina+delta, 0, c.MaxStamina)
}

// AdjustMana applies a signed delta, clamped to [0, MaxMana].
func (c *Character) AdjustMana(delta int) {
	c.Mana = clamp(c.Mana+delta, 0, c.MaxMana)
}

// AdjustGold applies a signed delta. Gold never goes below zero.
func (c *Character) AdjustGold(delta int) {
	c.Gold += delta
	if c.Gold < 0 {
		c.Gold = 0
	}
}

// AdjustSkill applies a signed delta to a known skill, clamped to [0, 100].
// Unknown skill names are ignored and reported as false.
func (c *Character) AdjustSkill(name string, delta int) bool {
	key := NormalizeKey(name)
	if _, ok := c.Skills[key]; !ok {
		return false
	}
	c.Skills[key] = clamp(c.Skills[key]+delta, 0, 100)
	return true
}

// AdjustReputation applies a signed delta to a known faction. Unclamped.
func (c *Character) AdjustReputation(faction string, delta int) bool {
	key := NormalizeKey(faction)
	if _, ok := c.Reputation[key]; !ok {
		return false
	}
	c.Reputation[key] += delta
	return true
}

// GainXP adds XP and runs the level-up loop. Each level grants +10 max HP,
// +5% of the class's base stamina and mana pools (minimum handled by the
// class lookup fallback), refills all three resources to the new max, and
// banks 3 stat points. Returns the number of levels gained.
func (c *Character) GainXP(amount int, class *Class) int {
	if amount < 0 {
		amount = 0
	}
	c.XP += amount
	levels := 0
	for c.XP >= XPForNextLevel(c.Level) {
		c.XP -= XPForNextLevel(c.Level)
		c.Level++
		levels++

		staminaGain, manaGain := 5, 5
		if class != nil {
			staminaGain = roundedPercent(class.MaxStamina, 5)
			manaGain = roundedPercent(class.MaxMana, 5)
		}
		c.MaxHP += 10
		c.MaxStamina += staminaGain
		c.MaxMana += manaGain
		c.HP = c.MaxHP
		c.Stamina = c.MaxStamina
		c.Mana = c.MaxMana
		c.StatPoints += 3
	}
	return levels
}

// DefeatBetrayer records a defeated betrayer once. The list only grows.
func (c *Character) DefeatBetrayer(name string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}
	for _, b := range c.BetrayersDefeated {
		if strings.EqualFold(b, name) {
			return false
		}
	}
	c.BetrayersDefeated = append(c.BetrayersDefeated, name)
	return true
}

// AdvanceStoryPhase moves to a named phase if it is a known phase at or
// after the current one. The story never moves backwards.
func (c *Character) AdvanceStoryPhase(phase string) bool {
	key := NormalizeKey(phase)
	cur, next := -1, -1
	for i, p := range StoryPhases {
		if p == c.StoryPhase {
			cur = i
		}
		if p == key {
			next = i
		}
	}
	if next < 0 || next <= cur {
		return false
	}
	c.StoryPhase = key
	return true
}

// SpendStatPoints converts banked stat points into skill points, one for
// one. Allocations to unknown skills or beyond the banked total fail
// without partial application.
func (c *Character) SpendStatPoints(allocations map[string]int) error {
	total := 0
	for name, pts := range allocations {
		if pts < 0 {
			return fmt.Errorf("negative allocation for %q", name)
		}
		if _, ok := c.Skills[NormalizeKey(name)]; !ok {
			return fmt.Errorf("unknown skill %q", name)
		}
		total += pts
	}
	if total == 0 {
		return fmt.Errorf("no points allocated")
	}
	if total > c.StatPoints {
		return fmt.Errorf("allocated %d points but only %d available", total, c.StatPoints)
	}
	for name, pts := range allocations {
		key := NormalizeKey(name)
		c.Skills[key] = clamp(c.Skills[key]+pts, 0, 100)
	}
	c.StatPoints -= total
	return nil
}

// DeepCopy returns an independent copy of the character.
func (c *Character) DeepCopy() *Character {
	cp := *c
	cp.Skills = make(map[string]int, len(c.Skills))
	for k, v := range c.Skills {
		cp.Skills[k] = v
	}
	cp.Reputation = make(map[string]int, len(c.Reputation))
	for k, v := range c.Reputation {
		cp.Reputation[k] = v
	}
	cp.BetrayersDefeated = append([]string(nil), c.BetrayersDefeated...)
	return &cp
}

// NormalizeKey lowercases and snake_cases a narrator-supplied key so
// "Mages Guild" and "mages_guild" address the same entry.
func NormalizeKey(s string) string {
	s = strings.TrimSpace(strings.ToLower(s))
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "-", "_")
	return s
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// roundedPercent returns pct% of base, rounded half away from zero.
func roundedPercent(base, pct int) int {
	return (base*pct + 50) / 100
}
