package game

// RestResult reports what a rest attempt did.
type RestResult struct {
	Ambushed         bool `json:"ambushed"`
	StaminaRecovered int  `json:"stamina_recovered"`
	ManaRecovered    int  `json:"mana_recovered"`
}

// ResolveRest attempts a rest in a zone. ambushRoll is a d100 result in
// [1,100]; in a dangerous zone a roll at or under the zone's ambush
// chance interrupts the rest with zero recovery. Safe zones never roll
// for ambush. An uninterrupted rest recovers stamina and mana by
// ceil(max * recovery% / 100), clamped as usual.
func ResolveRest(c *Character, z Zone, ambushRoll int) RestResult {
	if z.Dangerous && ambushRoll <= z.AmbushChance {
		return RestResult{Ambushed: true}
	}

	staminaGain := ceilPercent(c.MaxStamina, z.RestRecovery)
	manaGain := ceilPercent(c.MaxMana, z.RestRecovery)

	before := *c
	c.AdjustStamina(staminaGain)
	c.AdjustMana(manaGain)

	return RestResult{
		StaminaRecovered: c.Stamina - before.Stamina,
		ManaRecovered:    c.Mana - before.Mana,
	}
}

// ceilPercent returns pct% of base, rounded up.
func ceilPercent(base, pct int) int {
	return (base*pct + 99) / 100
}
