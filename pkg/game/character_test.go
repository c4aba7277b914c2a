package game

import "testing"

func testClass() *Class {
	return ClassByID("monk") // 100 stamina, 60 mana
}

func TestXPForNextLevel(t *testing.T) {
	tests := []struct {
		level int
		want  int
	}{
		{1, 100},
		{2, 200},
		{5, 500},
		{10, 1000},
	}
	for _, tt := range tests {
		if got := XPForNextLevel(tt.level); got != tt.want {
			t.Errorf("XPForNextLevel(%d) = %d, want %d", tt.level, got, tt.want)
		}
	}
}

func TestAdjustVitalsClamp(t *testing.T) {
	c := NewCharacter("u1", "Test", testClass(), "")

	c.AdjustHP(-9999)
	if c.HP != 0 {
		t.Errorf("HP = %d, want 0", c.HP)
	}
	c.AdjustHP(9999)
	if c.HP != c.MaxHP {
		t.Errorf("HP = %d, want %d", c.HP, c.MaxHP)
	}

	c.AdjustStamina(-9999)
	if c.Stamina != 0 {
		t.Errorf("Stamina = %d, want 0", c.Stamina)
	}
	c.AdjustMana(50)
	if c.Mana != c.MaxMana {
		t.Errorf("Mana = %d, want %d", c.Mana, c.MaxMana)
	}
}

func TestAdjustGoldFloor(t *testing.T) {
	c := NewCharacter("u1", "Test", testClass(), "")
	c.Gold = 10
	c.AdjustGold(-25)
	if c.Gold != 0 {
		t.Errorf("Gold = %d, want 0", c.Gold)
	}
	c.AdjustGold(40)
	if c.Gold != 40 {
		t.Errorf("Gold = %d, want 40", c.Gold)
	}
}

func TestGainXPSingleLevel(t *testing.T) {
	class := testClass()
	c := NewCharacter("u1", "Test", class, "")
	c.HP = 40
	c.Stamina = 10
	c.Mana = 5

	levels := c.GainXP(250, class)

	if levels != 1 {
		t.Fatalf("levels gained = %d, want 1", levels)
	}
	if c.Level != 2 {
		t.Errorf("Level = %d, want 2", c.Level)
	}
	if c.XP != 150 {
		t.Errorf("XP = %d, want 150", c.XP)
	}
	if c.StatPoints != 3 {
		t.Errorf("StatPoints = %d, want 3", c.StatPoints)
	}
	if c.MaxHP != 110 {
		t.Errorf("MaxHP = %d, want 110", c.MaxHP)
	}
	// monk: 5% of 100 stamina and 60 mana
	if c.MaxStamina != 105 {
		t.Errorf("MaxStamina = %d, want 105", c.MaxStamina)
	}
	if c.MaxMana != 63 {
		t.Errorf("MaxMana = %d, want 63", c.MaxMana)
	}
	// full refill to the new max
	if c.HP != c.MaxHP || c.Stamina != c.MaxStamina || c.Mana != c.MaxMana {
		t.Errorf("resources not refilled: hp %d/%d stamina %d/%d mana %d/%d",
			c.HP, c.MaxHP, c.Stamina, c.MaxStamina, c.Mana, c.MaxMana)
	}
}

func TestGainXPMultiLevel(t *testing.T) {
	class := testClass()
	c := NewCharacter("u1", "Test", class, "")

	// 100 + 200 + 50 leftover
	levels := c.GainXP(350, class)

	if levels != 2 {
		t.Errorf("levels gained = %d, want 2", levels)
	}
	if c.Level != 3 {
		t.Errorf("Level = %d, want 3", c.Level)
	}
	if c.XP != 50 {
		t.Errorf("XP = %d, want 50", c.XP)
	}
	if c.StatPoints != 6 {
		t.Errorf("StatPoints = %d, want 6", c.StatPoints)
	}
}

func TestGainXPNilClassFallback(t *testing.T) {
	c := NewCharacter("u1", "Test", testClass(), "")
	baseStamina, baseMana := c.MaxStamina, c.MaxMana

	c.GainXP(100, nil)

	if c.MaxStamina != baseStamina+5 {
		t.Errorf("MaxStamina = %d, want %d", c.MaxStamina, baseStamina+5)
	}
	if c.MaxMana != baseMana+5 {
		t.Errorf("MaxMana = %d, want %d", c.MaxMana, baseMana+5)
	}
}

func TestAdjustSkill(t *testing.T) {
	c := NewCharacter("u1", "Test", testClass(), "")

	if !c.AdjustSkill("stealth", 150) {
		t.Fatal("expected stealth to be a known skill")
	}
	if c.Skills["stealth"] != 100 {
		t.Errorf("stealth = %d, want 100 (clamped)", c.Skills["stealth"])
	}
	if c.AdjustSkill("basket_weaving", 5) {
		t.Error("expected unknown skill to be rejected")
	}
	if !c.AdjustSkill("Sleight of Hand", 3) {
		t.Error("expected display-form skill name to normalize")
	}
}

func TestAdjustReputationUnclamped(t *testing.T) {
	c := NewCharacter("u1", "Test", testClass(), "")
	c.AdjustReputation("infamy", -500)
	if c.Reputation["infamy"] >= 0 {
		t.Errorf("infamy = %d, want negative", c.Reputation["infamy"])
	}
}

func TestSpendStatPoints(t *testing.T) {
	c := NewCharacter("u1", "Test", testClass(), "")
	c.StatPoints = 5
	base := c.Skills["stealth"]

	if err := c.SpendStatPoints(map[string]int{"stealth": 3}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Skills["stealth"] != base+3 {
		t.Errorf("stealth = %d, want %d", c.Skills["stealth"], base+3)
	}
	if c.StatPoints != 2 {
		t.Errorf("StatPoints = %d, want 2", c.StatPoints)
	}

	if err := c.SpendStatPoints(map[string]int{"stealth": 5}); err == nil {
		t.Error("expected error for overspend")
	}
	if err := c.SpendStatPoints(map[string]int{"basket_weaving": 1}); err == nil {
		t.Error("expected error for unknown skill")
	}
	if c.StatPoints != 2 {
		t.Errorf("failed spends must not consume points, StatPoints = %d", c.StatPoints)
	}
}

func TestDefeatBetrayer(t *testing.T) {
	c := NewCharacter("u1", "Test", testClass(), "")

	if !c.DefeatBetrayer("Aldric the Betrayer") {
		t.Error("first defeat should record")
	}
	if c.DefeatBetrayer("aldric the betrayer") {
		t.Error("duplicate defeat (any casing) should not record")
	}
	if len(c.BetrayersDefeated) != 1 {
		t.Errorf("BetrayersDefeated = %v, want one entry", c.BetrayersDefeated)
	}
}

func TestAdvanceStoryPhase(t *testing.T) {
	c := NewCharacter("u1", "Test", testClass(), "")

	if !c.AdvanceStoryPhase("the_hunt") {
		t.Error("forward phase change should apply")
	}
	if c.AdvanceStoryPhase("awakening") {
		t.Error("backward phase change should be rejected")
	}
	if c.AdvanceStoryPhase("epilogue_of_doom") {
		t.Error("unknown phase should be rejected")
	}
	if c.StoryPhase != "the_hunt" {
		t.Errorf("StoryPhase = %q, want the_hunt", c.StoryPhase)
	}
}

func TestNewCharacterDefaults(t *testing.T) {
	class := ClassByID("lich")
	c := NewCharacter("u1", "Morbus", class, "betrayed")

	if c.Level != 1 || c.HP != 100 || c.MaxHP != 100 {
		t.Errorf("unexpected creation vitals: level %d hp %d/%d", c.Level, c.HP, c.MaxHP)
	}
	if c.Stamina != class.MaxStamina || c.Mana != class.MaxMana {
		t.Errorf("resources should start full: %d/%d stamina, %d/%d mana",
			c.Stamina, class.MaxStamina, c.Mana, class.MaxMana)
	}
	if c.Skills["necromancy"] != 25 {
		t.Errorf("necromancy = %d, want 25 from class defaults", c.Skills["necromancy"])
	}
	if c.Reputation["infamy"] != 15 {
		t.Errorf("infamy = %d, want 15 from class defaults", c.Reputation["infamy"])
	}
	if c.CurrentZone != ZoneTavern {
		t.Errorf("CurrentZone = %q, want tavern", c.CurrentZone)
	}
	if c.StoryPhase != "awakening" {
		t.Errorf("StoryPhase = %q, want awakening", c.StoryPhase)
	}
}
