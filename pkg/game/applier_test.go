package game

import (
	"log/slog"
	"testing"
)

func testSnapshot() *Snapshot {
	return &Snapshot{
		Character: NewCharacter("u1", "Test", testClass(), ""),
		Inventory: StartingItems(),
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestApplierFullChangeSet(t *testing.T) {
	snap := testSnapshot()
	snap.Character.HP = 80
	snap.Companions = []Companion{NewCompanion("Kira", "cunning", "", "", 1)}

	delta := &ChangeSet{
		HPChange:      -30,
		StaminaChange: -20,
		ManaChange:    -10,
		GoldChange:    15,
		XPGain:        50,
		ZoneChange:    "forest",
		NewItems:      []NewItem{{Name: "Wolf Pelt", Quantity: 2}},
		RemoveItems:   []string{"Torch"},
		TrustChanges:  []TrustChange{{Name: "kira", Change: 10}},
		JournalEntry:  &JournalInput{Title: "Into the Forest", Content: "The hunt begins."},
	}

	res := NewApplier(snap, delta, discardLogger()).Apply()

	c := snap.Character
	if c.HP != 50 {
		t.Errorf("HP = %d, want 50", c.HP)
	}
	if c.Stamina != c.MaxStamina-20 {
		t.Errorf("Stamina = %d, want %d", c.Stamina, c.MaxStamina-20)
	}
	if c.Gold != 65 {
		t.Errorf("Gold = %d, want 65", c.Gold)
	}
	if c.XP != 50 || c.Level != 1 {
		t.Errorf("XP/Level = %d/%d, want 50/1", c.XP, c.Level)
	}
	if c.CurrentZone != ZoneForest {
		t.Errorf("CurrentZone = %q, want forest", c.CurrentZone)
	}
	if FindItem(snap.Inventory, "Wolf Pelt") == nil {
		t.Error("Wolf Pelt not added")
	}
	if it := FindItem(snap.Inventory, "Torch"); it == nil || it.Quantity != 2 {
		t.Errorf("Torch should decrement to 2, got %+v", it)
	}
	if snap.Companions[0].Trust != 60 {
		t.Errorf("trust = %d, want 60", snap.Companions[0].Trust)
	}
	if len(snap.PendingJournal) != 1 || snap.PendingJournal[0].EntryNumber != 1 {
		t.Errorf("pending journal = %+v", snap.PendingJournal)
	}
	if !res.JournalWritten || res.ZoneChanged != ZoneForest {
		t.Errorf("result = %+v", res)
	}
}

func TestApplierLevelUpRefills(t *testing.T) {
	snap := testSnapshot()
	snap.Character.HP = 20
	snap.Character.Stamina = 5
	snap.Character.XP = 90

	res := NewApplier(snap, &ChangeSet{HPChange: -5, XPGain: 10}, discardLogger()).Apply()

	c := snap.Character
	if res.LevelsGained != 1 || c.Level != 2 {
		t.Fatalf("expected a level, got %+v level %d", res, c.Level)
	}
	if c.HP != c.MaxHP || c.Stamina != c.MaxStamina || c.Mana != c.MaxMana {
		t.Errorf("level-up must refill after damage applies: hp %d/%d stamina %d/%d",
			c.HP, c.MaxHP, c.Stamina, c.MaxStamina)
	}
}

func TestApplierFreeActionKeepsStamina(t *testing.T) {
	snap := testSnapshot()
	before := snap.Character.Stamina

	NewApplier(snap, &ChangeSet{StaminaChange: -15}, discardLogger()).
		WithClassification(Classification{Free: true}).
		Apply()

	if snap.Character.Stamina != before {
		t.Errorf("free action lost stamina: %d -> %d", before, snap.Character.Stamina)
	}
}

func TestApplierDefendRegeneratesStamina(t *testing.T) {
	snap := testSnapshot()
	snap.Character.Stamina = 40

	NewApplier(snap, nil, discardLogger()).
		WithClassification(Classification{Free: true, Defend: true}).
		Apply()

	if snap.Character.Stamina != 50 {
		t.Errorf("Stamina = %d, want 50", snap.Character.Stamina)
	}
}

func TestApplierUnknownNamesIgnored(t *testing.T) {
	snap := testSnapshot()

	delta := &ChangeSet{
		ZoneChange:   "narnia",
		RemoveItems:  []string{"Excalibur"},
		TrustChanges: []TrustChange{{Name: "Nobody", Change: 5}},
	}
	res := NewApplier(snap, delta, discardLogger()).Apply()

	if snap.Character.CurrentZone != ZoneTavern {
		t.Errorf("unknown zone applied: %q", snap.Character.CurrentZone)
	}
	if len(res.ItemsRemoved) != 0 {
		t.Errorf("unknown item removed: %v", res.ItemsRemoved)
	}
	if len(res.TrustChanged) != 0 {
		t.Errorf("unknown companion trust changed: %v", res.TrustChanged)
	}
}

func TestApplierDuplicateCompanionRejected(t *testing.T) {
	snap := testSnapshot()
	existing := NewCompanion("Kira", "cunning", "", "", 1)
	existing.Trust = 80
	snap.Companions = []Companion{existing}

	res := NewApplier(snap, &ChangeSet{
		NewCompanion: &NewCompanionInput{Name: "KIRA", Personality: "brave"},
	}, discardLogger()).Apply()

	if res.CompanionJoined != "" {
		t.Errorf("duplicate recruit accepted: %q", res.CompanionJoined)
	}
	if len(snap.Companions) != 1 || snap.Companions[0].Trust != 80 {
		t.Errorf("roster mutated: %+v", snap.Companions)
	}
}

func TestApplierCompanionScalesWithLevel(t *testing.T) {
	snap := testSnapshot()
	snap.Character.Level = 7

	NewApplier(snap, &ChangeSet{
		NewCompanion: &NewCompanionInput{Name: "Brom", Personality: "brave"},
	}, discardLogger()).Apply()

	if len(snap.Companions) != 1 {
		t.Fatal("companion not recruited")
	}
	if snap.Companions[0].MaxHP != 120 {
		t.Errorf("MaxHP = %d, want 120 (50 + 7*10)", snap.Companions[0].MaxHP)
	}
	if snap.Companions[0].Trust != 50 {
		t.Errorf("Trust = %d, want default 50", snap.Companions[0].Trust)
	}
}

func TestApplierCompanionSuppliedVitals(t *testing.T) {
	snap := testSnapshot()

	NewApplier(snap, &ChangeSet{
		NewCompanion: &NewCompanionInput{Name: "Grix", Personality: "gruff", HP: 30, MaxHP: 40},
	}, discardLogger()).Apply()

	if len(snap.Companions) != 1 {
		t.Fatal("companion not recruited")
	}
	if snap.Companions[0].MaxHP != 40 || snap.Companions[0].HP != 30 {
		t.Errorf("vitals = %d/%d, want 30/40", snap.Companions[0].HP, snap.Companions[0].MaxHP)
	}
}

func TestApplierCompanionHPClampedToMax(t *testing.T) {
	snap := testSnapshot()

	NewApplier(snap, &ChangeSet{
		NewCompanion: &NewCompanionInput{Name: "Grix", Personality: "gruff", HP: 500, MaxHP: 40},
	}, discardLogger()).Apply()

	if snap.Companions[0].HP != 40 {
		t.Errorf("HP = %d, want clamped to 40", snap.Companions[0].HP)
	}
}

func TestApplierBetrayerAndPhase(t *testing.T) {
	snap := testSnapshot()

	res := NewApplier(snap, &ChangeSet{
		DefeatedBetrayer: "Kira Shadowstep",
		StoryPhase:       "first_blood",
	}, discardLogger()).Apply()

	if res.BetrayerDefeated != "Kira Shadowstep" {
		t.Errorf("betrayer not recorded: %+v", res)
	}
	if snap.Character.StoryPhase != "first_blood" {
		t.Errorf("StoryPhase = %q", snap.Character.StoryPhase)
	}
}
