package game

import "testing"

func hasStatus(effects []StatusEffect, id string) bool {
	for _, e := range effects {
		if e.ID == id {
			return true
		}
	}
	return false
}

func TestDeriveStatusEffects(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Character)
		want    []string
		notWant []string
	}{
		{
			name:   "fresh at full resources",
			mutate: func(c *Character) {},
			want:   []string{StatusFresh},
		},
		{
			name:   "exhausted at zero stamina",
			mutate: func(c *Character) { c.Stamina = 0 },
			want:   []string{StatusExhausted},
			notWant: []string{StatusFatigued, StatusFresh},
		},
		{
			name:   "fatigued at 20 percent",
			mutate: func(c *Character) { c.Stamina = c.MaxStamina / 5 },
			want:   []string{StatusFatigued},
			notWant: []string{StatusExhausted, StatusWinded},
		},
		{
			name:   "winded at 40 percent",
			mutate: func(c *Character) { c.Stamina = c.MaxStamina * 2 / 5 },
			want:   []string{StatusWinded},
		},
		{
			name:   "mana deficient at zero mana",
			mutate: func(c *Character) { c.Mana = 0 },
			want:   []string{StatusManaDeficient},
			notWant: []string{StatusDrained},
		},
		{
			name:   "drained at low mana",
			mutate: func(c *Character) { c.Mana = c.MaxMana / 5 },
			want:   []string{StatusDrained},
		},
		{
			name: "zero max mana never mana deficient",
			mutate: func(c *Character) {
				c.MaxMana = 0
				c.Mana = 0
			},
			notWant: []string{StatusManaDeficient, StatusDrained},
		},
		{
			name:   "near death at 15 percent hp",
			mutate: func(c *Character) { c.HP = 15 },
			want:   []string{StatusNearDeath},
			notWant: []string{StatusWounded},
		},
		{
			name:   "wounded at 35 percent hp",
			mutate: func(c *Character) { c.HP = 35 },
			want:   []string{StatusWounded},
		},
		{
			name: "near death and fresh coexist",
			mutate: func(c *Character) {
				c.HP = 10
				c.Stamina = c.MaxStamina * 9 / 10
			},
			want: []string{StatusNearDeath, StatusFresh},
		},
		{
			name:   "in danger in the abyss",
			mutate: func(c *Character) { c.CurrentZone = ZoneAbyss },
			want:   []string{StatusInDanger},
		},
		{
			name:    "forest is dangerous but not hostile",
			mutate:  func(c *Character) { c.CurrentZone = ZoneForest },
			notWant: []string{StatusInDanger},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCharacter("u1", "Test", testClass(), "")
			tt.mutate(c)
			effects := DeriveStatusEffects(c)
			for _, id := range tt.want {
				if !hasStatus(effects, id) {
					t.Errorf("missing status %q in %v", id, effects)
				}
			}
			for _, id := range tt.notWant {
				if hasStatus(effects, id) {
					t.Errorf("unexpected status %q in %v", id, effects)
				}
			}
		})
	}
}
