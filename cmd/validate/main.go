// Command validate sanity-checks the static world catalogs: class
// default stats must name known skills or reputation axes, zone tables
// must agree with each other, and skill trigger words must belong to
// real skills. Run it in CI after editing the catalogs.
package main

import (
	"fmt"
	"os"

	"github.com/emberhollow/revenant/pkg/game"
)

func main() {
	v := &catalogValidator{}

	v.checkClasses()
	v.checkZones()
	v.checkSkillKeywords()

	if len(v.errors) > 0 {
		fmt.Fprintf(os.Stderr, "Catalog validation failed with %d error(s):\n", len(v.errors))
		for _, e := range v.errors {
			fmt.Fprintf(os.Stderr, "  - %s\n", e)
		}
		os.Exit(1)
	}

	fmt.Printf("Catalogs are valid: %d classes, %d zones, %d skills.\n",
		len(game.Classes), len(game.Zones), len(game.SkillKeys))
}

type catalogValidator struct {
	errors []string
}

func (v *catalogValidator) errorf(format string, args ...any) {
	v.errors = append(v.errors, fmt.Sprintf(format, args...))
}

func (v *catalogValidator) checkClasses() {
	skills := make(map[string]bool, len(game.SkillKeys))
	for _, k := range game.SkillKeys {
		skills[k] = true
	}
	reputation := make(map[string]bool, len(game.ReputationKeys))
	for _, k := range game.ReputationKeys {
		reputation[k] = true
	}

	seen := make(map[string]bool, len(game.Classes))
	for _, c := range game.Classes {
		if c.ID == "" || c.ID != game.NormalizeKey(c.ID) {
			v.errorf("class %q: id must be lowercase snake_case", c.ID)
		}
		if seen[c.ID] {
			v.errorf("class %q: duplicate id", c.ID)
		}
		seen[c.ID] = true

		if c.MaxStamina <= 0 {
			v.errorf("class %q: max stamina must be positive", c.ID)
		}
		if c.MaxMana < 0 {
			v.errorf("class %q: max mana must not be negative", c.ID)
		}
		for stat, value := range c.DefaultStats {
			if !skills[stat] && !reputation[stat] {
				v.errorf("class %q: default stat %q is neither a skill nor a reputation axis", c.ID, stat)
			}
			if skills[stat] && (value < 0 || value > 100) {
				v.errorf("class %q: skill %q default %d is outside [0, 100]", c.ID, stat, value)
			}
		}
	}
}

func (v *catalogValidator) checkZones() {
	if len(game.ZoneIDs) != len(game.Zones) {
		v.errorf("zone order lists %d zones but the map has %d", len(game.ZoneIDs), len(game.Zones))
	}
	for _, id := range game.ZoneIDs {
		z, ok := game.ZoneByID(id)
		if !ok {
			v.errorf("zone %q: listed in order but missing from the map", id)
			continue
		}
		if z.ID != id {
			v.errorf("zone %q: map entry carries mismatched id %q", id, z.ID)
		}
		if z.RestRecovery < 0 || z.RestRecovery > 100 {
			v.errorf("zone %q: rest recovery %d is outside [0, 100]", id, z.RestRecovery)
		}
		if z.AmbushChance < 0 || z.AmbushChance > 100 {
			v.errorf("zone %q: ambush chance %d is outside [0, 100]", id, z.AmbushChance)
		}
	}
}

func (v *catalogValidator) checkSkillKeywords() {
	for _, skill := range game.SkillKeys {
		if len(game.SkillKeywords(skill)) == 0 {
			v.errorf("skill %q: no trigger words, actions can never train it", skill)
		}
	}
}
