package game

import "testing"

func TestResolveRestSafeZone(t *testing.T) {
	c := NewCharacter("u1", "Test", testClass(), "")
	c.Stamina = 10
	c.Mana = 5

	res := ResolveRest(c, Zones[ZoneTavern], 100)

	if res.Ambushed {
		t.Fatal("tavern rest must never be ambushed")
	}
	if c.Stamina != c.MaxStamina || c.Mana != c.MaxMana {
		t.Errorf("full recovery expected: stamina %d/%d mana %d/%d",
			c.Stamina, c.MaxStamina, c.Mana, c.MaxMana)
	}
}

func TestResolveRestSafeZoneIgnoresAmbushChance(t *testing.T) {
	c := NewCharacter("u1", "Test", testClass(), "")
	c.Stamina = 10
	c.Mana = 5

	// village carries a nonzero ambush chance but is not dangerous,
	// so even a roll under it must not interrupt the rest
	res := ResolveRest(c, Zones[ZoneVillage], 3)

	if res.Ambushed {
		t.Fatal("rest in a safe zone must never be ambushed")
	}
	if c.Stamina != c.MaxStamina || c.Mana != c.MaxMana {
		t.Errorf("full recovery expected: stamina %d/%d mana %d/%d",
			c.Stamina, c.MaxStamina, c.Mana, c.MaxMana)
	}
}

func TestResolveRestPartialRecoveryRoundsUp(t *testing.T) {
	c := NewCharacter("u1", "Test", testClass(), "")
	c.Stamina = 0
	c.Mana = 0

	// abyss: 15% of 100 stamina = 15, 15% of 60 mana = 9
	res := ResolveRest(c, Zones[ZoneAbyss], 100)

	if res.Ambushed {
		t.Fatal("roll 100 against 85% chance should not ambush")
	}
	if res.StaminaRecovered != 15 {
		t.Errorf("StaminaRecovered = %d, want 15", res.StaminaRecovered)
	}
	if res.ManaRecovered != 9 {
		t.Errorf("ManaRecovered = %d, want 9", res.ManaRecovered)
	}
}

func TestResolveRestAmbush(t *testing.T) {
	c := NewCharacter("u1", "Test", testClass(), "")
	c.Stamina = 1

	res := ResolveRest(c, Zones[ZoneAbyss], 85)

	if !res.Ambushed {
		t.Fatal("roll at the ambush chance should interrupt")
	}
	if res.StaminaRecovered != 0 || c.Stamina != 1 {
		t.Error("ambushed rest must recover nothing")
	}
}

func TestResolveRestRecoveryClamped(t *testing.T) {
	c := NewCharacter("u1", "Test", testClass(), "")
	c.Stamina = c.MaxStamina - 3

	res := ResolveRest(c, Zones[ZoneVillage], 100)

	if res.StaminaRecovered != 3 {
		t.Errorf("StaminaRecovered = %d, want 3 (clamped)", res.StaminaRecovered)
	}
}

func TestZoneByID(t *testing.T) {
	if _, ok := ZoneByID("Dungeon"); !ok {
		t.Error("zone lookup should be case-insensitive")
	}
	if _, ok := ZoneByID("atlantis"); ok {
		t.Error("unknown zone should not resolve")
	}
}
