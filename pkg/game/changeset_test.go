package game

import (
	"strings"
	"testing"
)

func TestParseNarrationWithChanges(t *testing.T) {
	raw := "The troll falls with a final roar.\n\n```json\n" +
		`{"hpChange": -12, "goldChange": 30, "xpGain": 50, "newItems": [{"name": "Troll Hide", "quantity": 1}], "removeItems": ["Torch"]}` +
		"\n```"

	narrative, cs := ParseNarration(raw)

	if narrative != "The troll falls with a final roar." {
		t.Errorf("narrative = %q", narrative)
	}
	if cs == nil {
		t.Fatal("expected a change-set")
	}
	if cs.HPChange != -12 || cs.GoldChange != 30 || cs.XPGain != 50 {
		t.Errorf("numeric fields wrong: %+v", cs)
	}
	if len(cs.NewItems) != 1 || cs.NewItems[0].Name != "Troll Hide" {
		t.Errorf("NewItems = %v", cs.NewItems)
	}
	if len(cs.RemoveItems) != 1 || cs.RemoveItems[0] != "Torch" {
		t.Errorf("RemoveItems = %v", cs.RemoveItems)
	}
}

func TestParseNarrationNoBlock(t *testing.T) {
	narrative, cs := ParseNarration("You chat with the bartender.  ")
	if narrative != "You chat with the bartender." {
		t.Errorf("narrative = %q", narrative)
	}
	if cs != nil {
		t.Errorf("expected nil change-set, got %+v", cs)
	}
}

func TestParseNarrationMalformedBlock(t *testing.T) {
	raw := "Something stirs in the dark.\n```json\n{not valid json\n```"
	narrative, cs := ParseNarration(raw)
	if !strings.Contains(narrative, "Something stirs") {
		t.Errorf("narrative lost: %q", narrative)
	}
	if cs != nil {
		t.Errorf("malformed block must yield nil change-set, got %+v", cs)
	}
}

func TestParseNarrationCoercesFloats(t *testing.T) {
	raw := "Hit.\n```json\n" +
		`{"hpChange": -7.6, "xpGain": 10.2, "trustChanges": [{"name": "Kira", "change": 4.5}]}` +
		"\n```"
	_, cs := ParseNarration(raw)
	if cs == nil {
		t.Fatal("expected a change-set")
	}
	if cs.HPChange != -8 {
		t.Errorf("HPChange = %d, want -8", cs.HPChange)
	}
	if cs.XPGain != 10 {
		t.Errorf("XPGain = %d, want 10", cs.XPGain)
	}
	if len(cs.TrustChanges) != 1 || cs.TrustChanges[0].Change != 5 {
		t.Errorf("TrustChanges = %v", cs.TrustChanges)
	}
}

func TestParseNarrationCompanionVitals(t *testing.T) {
	raw := "A scarred mercenary joins you.\n```json\n" +
		`{"newCompanion": {"name": "Grix", "personality": "gruff", "hp": 35.6, "max_hp": 40}}` +
		"\n```"
	_, cs := ParseNarration(raw)
	if cs == nil || cs.NewCompanion == nil {
		t.Fatal("expected a companion")
	}
	if cs.NewCompanion.HP != 36 || cs.NewCompanion.MaxHP != 40 {
		t.Errorf("vitals = %d/%d, want 36/40", cs.NewCompanion.HP, cs.NewCompanion.MaxHP)
	}
}

func TestParseNarrationIgnoresUnknownKeys(t *testing.T) {
	raw := "Fine.\n```json\n" +
		`{"hpChange": 5, "frobnicate": true, "wibble": {"deep": 1}}` +
		"\n```"
	_, cs := ParseNarration(raw)
	if cs == nil || cs.HPChange != 5 {
		t.Errorf("unknown keys must not break parsing: %+v", cs)
	}
}

func TestParseNarrationDropsBlankEntries(t *testing.T) {
	raw := "Ok.\n```json\n" +
		`{"newItems": [{"name": "  "}], "newCompanion": {"name": ""}, "journalEntry": {"title": "", "content": ""}}` +
		"\n```"
	_, cs := ParseNarration(raw)
	if cs == nil {
		t.Fatal("expected a change-set")
	}
	if len(cs.NewItems) != 0 {
		t.Errorf("blank item kept: %v", cs.NewItems)
	}
	if cs.NewCompanion != nil {
		t.Errorf("nameless companion kept: %v", cs.NewCompanion)
	}
	if cs.JournalEntry != nil {
		t.Errorf("empty journal entry kept: %v", cs.JournalEntry)
	}
	if !cs.IsEmpty() {
		t.Error("change-set should be empty after sanitizing")
	}
}
