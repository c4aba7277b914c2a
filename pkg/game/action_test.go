package game

import (
	"reflect"
	"testing"
)

func TestClassifyAction(t *testing.T) {
	tests := []struct {
		input string
		free  bool
	}{
		{"I look around the room", true},
		{"look at the bartender", true},
		{"I attack the guard", false},
		{"attack the guard", false},
		{"What is in my pouch?", true},
		{"Where does this tunnel lead?", true},
		{"open the chest?", false},
		{"I want to talk to Old Greg", true},
		{"i check my inventory", true},
		{"sprint across the bridge", false},
		{"I defend myself", true},
		{"rest by the fire", true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ClassifyAction(tt.input); got.Free != tt.free {
				t.Errorf("ClassifyAction(%q).Free = %v, want %v", tt.input, got.Free, tt.free)
			}
		})
	}
}

func TestClassifyActionDefend(t *testing.T) {
	c := ClassifyAction("I raise my shield to block the blow")
	if !c.Defend {
		t.Error("expected defend classification")
	}
	if !c.Free {
		t.Error("defend actions are free")
	}
	if ClassifyAction("I attack the guard").Defend {
		t.Error("attack must not classify as defend")
	}
}

func TestClassifyActionSpell(t *testing.T) {
	c := ClassifyAction("I cast fireball at the troll")
	if !c.Spell {
		t.Error("expected spell classification")
	}
	if ClassifyAction("I ask about the fireball spell").Spell {
		t.Error("free actions are never flagged as spells")
	}
}

func TestDetectSkillUsage(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"I slash at the bandit with my sword", []string{"one_handed"}},
		{"I sneak past and pickpocket the merchant", []string{"stealth", "sleight_of_hand"}},
		{"I cast fireball", []string{"destruction"}},
		{"I walk to the door", nil},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := DetectSkillUsage(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("DetectSkillUsage(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestDetectSkillUsageOncePerSkill(t *testing.T) {
	got := DetectSkillUsage("I slash and stab with my blade")
	if len(got) != 1 || got[0] != "one_handed" {
		t.Errorf("DetectSkillUsage = %v, want single one_handed", got)
	}
}
