package game

// Status effect ids.
const (
	StatusExhausted     = "exhausted"
	StatusFatigued      = "fatigued"
	StatusWinded        = "winded"
	StatusManaDeficient = "mana_deficient"
	StatusDrained       = "drained"
	StatusNearDeath     = "near_death"
	StatusWounded       = "wounded"
	StatusFresh         = "fresh"
	StatusInDanger      = "in_danger"
)

// StatusEffect is a derived condition shown to the player and fed to
// the narrator. Effects are never stored; they are recomputed from the
// character every time.
type StatusEffect struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

// DeriveStatusEffects computes the character's current conditions.
// Each resource track contributes at most one effect, but tracks are
// independent, so several effects can be active at once.
func DeriveStatusEffects(c *Character) []StatusEffect {
	effects := make([]StatusEffect, 0, 4)

	staminaPct := ratio(c.Stamina, c.MaxStamina)
	switch {
	case c.Stamina <= 0:
		effects = append(effects, StatusEffect{ID: StatusExhausted, Label: "Exhausted", Description: "No stamina left. Rest or defend to recover."})
	case staminaPct <= 0.2:
		effects = append(effects, StatusEffect{ID: StatusFatigued, Label: "Fatigued", Description: "Very low stamina. Actions cost more effort."})
	case staminaPct <= 0.4:
		effects = append(effects, StatusEffect{ID: StatusWinded, Label: "Winded", Description: "Low stamina. Desperation damage boost active (x1.8)."})
	}

	if c.MaxMana > 0 {
		switch {
		case c.Mana <= 0:
			effects = append(effects, StatusEffect{ID: StatusManaDeficient, Label: "Mana Deficient", Description: "Shaking! Next spell will cause fainting."})
		case ratio(c.Mana, c.MaxMana) <= 0.2:
			effects = append(effects, StatusEffect{ID: StatusDrained, Label: "Drained", Description: "Mana dangerously low."})
		}
	}

	hpPct := ratio(c.HP, c.MaxHP)
	switch {
	case hpPct <= 0.15:
		effects = append(effects, StatusEffect{ID: StatusNearDeath, Label: "Near Death", Description: "One hit from death. Find healing immediately!"})
	case hpPct <= 0.35:
		effects = append(effects, StatusEffect{ID: StatusWounded, Label: "Wounded", Description: "Badly hurt. Seek healing or rest."})
	}

	if staminaPct >= 0.8 && c.Stamina > 0 {
		effects = append(effects, StatusEffect{ID: StatusFresh, Label: "Fresh", Description: "Full energy! Solid guard and x1.2 damage bonus."})
	}

	if hostileZones[c.CurrentZone] {
		effects = append(effects, StatusEffect{ID: StatusInDanger, Label: "In Danger", Description: "Dangerous zone. High ambush chance, low rest recovery."})
	}

	return effects
}

func ratio(v, max int) float64 {
	if max <= 0 {
		return 0
	}
	return float64(v) / float64(max)
}
