package game

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const defaultCompanionTrust = 50

// Companion is a recruited party member. Trust governs loyalty; 70+
// grants bonuses, below 40 risks betrayal or desertion.
type Companion struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Personality string    `json:"personality"`
	Icon        string    `json:"icon,omitempty"`
	HP          int       `json:"hp"`
	MaxHP       int       `json:"max_hp"`
	Trust       int       `json:"trust"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewCompanion builds a companion scaled to the recruiting character's
// level. HP is max(80, 50+level*10) so late recruits are not made of
// paper.
func NewCompanion(name, personality, icon, description string, level int) Companion {
	hp := 50 + level*10
	if hp < 80 {
		hp = 80
	}
	return Companion{
		ID:          uuid.New(),
		Name:        titleCaser.String(strings.TrimSpace(name)),
		Description: description,
		Personality: personality,
		Icon:        icon,
		HP:          hp,
		MaxHP:       hp,
		Trust:       defaultCompanionTrust,
		IsActive:    true,
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}
}

// FindCompanion returns the companion with the given name, any casing,
// or nil.
func FindCompanion(roster []Companion, name string) *Companion {
	for i := range roster {
		if strings.EqualFold(roster[i].Name, strings.TrimSpace(name)) {
			return &roster[i]
		}
	}
	return nil
}

// AdjustTrust applies a signed delta to a companion's trust, clamped to
// [0, 100].
func (c *Companion) AdjustTrust(delta int) {
	c.Trust = clamp(c.Trust+delta, 0, 100)
	c.UpdatedAt = time.Now().UTC()
}
