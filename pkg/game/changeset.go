package game

import (
	"encoding/json"
	"math"
	"regexp"
	"strings"
)

// ChangeSet is the structured state delta the narrator may attach to a
// response. Every field is optional; unknown keys are ignored. The
// narrator is untrusted, so all values are validated and clamped when
// applied.
type ChangeSet struct {
	HPChange         int                `json:"hpChange"`
	StaminaChange    int                `json:"staminaChange"`
	ManaChange       int                `json:"manaChange"`
	GoldChange       int                `json:"goldChange"`
	XPGain           int                `json:"xpGain"`
	ZoneChange       string             `json:"zoneChange,omitempty"`
	StoryPhase       string             `json:"storyPhase,omitempty"`
	DefeatedBetrayer string             `json:"defeatedBetrayer,omitempty"`
	NewItems         []NewItem          `json:"newItems,omitempty"`
	RemoveItems      []string           `json:"removeItems,omitempty"`
	TrustChanges     []TrustChange      `json:"trustChanges,omitempty"`
	NewCompanion     *NewCompanionInput `json:"newCompanion,omitempty"`
	JournalEntry     *JournalInput      `json:"journalEntry,omitempty"`
}

// NewItem is a narrator-granted item.
type NewItem struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
	Quantity    int    `json:"quantity,omitempty"`
	ItemType    string `json:"item_type,omitempty"`
}

// TrustChange adjusts a named companion's trust.
type TrustChange struct {
	Name   string `json:"name"`
	Change int    `json:"change"`
}

// NewCompanionInput recruits a companion. HP and MaxHP are optional;
// when absent the recruit gets the level-scaled default.
type NewCompanionInput struct {
	Name        string `json:"name"`
	Personality string `json:"personality"`
	Icon        string `json:"icon,omitempty"`
	Description string `json:"description,omitempty"`
	HP          int    `json:"hp,omitempty"`
	MaxHP       int    `json:"max_hp,omitempty"`
}

// JournalInput records a story beat.
type JournalInput struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// IsEmpty reports whether the change-set would not modify anything.
func (cs *ChangeSet) IsEmpty() bool {
	if cs == nil {
		return true
	}
	return cs.HPChange == 0 && cs.StaminaChange == 0 && cs.ManaChange == 0 &&
		cs.GoldChange == 0 && cs.XPGain == 0 && cs.ZoneChange == "" &&
		cs.StoryPhase == "" && cs.DefeatedBetrayer == "" &&
		len(cs.NewItems) == 0 && len(cs.RemoveItems) == 0 &&
		len(cs.TrustChanges) == 0 && cs.NewCompanion == nil && cs.JournalEntry == nil
}

var jsonBlockRe = regexp.MustCompile("(?s)```json\\s*(.*?)\\s*```")

// ParseNarration splits a raw narrator response into prose and an
// optional change-set carried in a fenced json block. A malformed block
// is dropped; the prose is always returned.
func ParseNarration(raw string) (narrative string, cs *ChangeSet) {
	m := jsonBlockRe.FindStringSubmatchIndex(raw)
	if m == nil {
		return strings.TrimSpace(raw), nil
	}
	narrative = strings.TrimSpace(raw[:m[0]] + raw[m[1]:])
	cs = decodeChangeSet(raw[m[2]:m[3]])
	return narrative, cs
}

// wireChangeSet tolerates the numeric sloppiness of model output:
// floats where ints belong and null where arrays belong.
type wireChangeSet struct {
	HPChange         float64           `json:"hpChange"`
	StaminaChange    float64           `json:"staminaChange"`
	ManaChange       float64           `json:"manaChange"`
	GoldChange       float64           `json:"goldChange"`
	XPGain           float64           `json:"xpGain"`
	ZoneChange       string            `json:"zoneChange"`
	StoryPhase       string            `json:"storyPhase"`
	DefeatedBetrayer string            `json:"defeatedBetrayer"`
	NewItems         []wireNewItem     `json:"newItems"`
	RemoveItems      []string          `json:"removeItems"`
	TrustChanges     []wireTrustChange `json:"trustChanges"`
	NewCompanion     *wireNewCompanion `json:"newCompanion"`
	JournalEntry     *JournalInput     `json:"journalEntry"`
}

type wireNewItem struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
	Quantity    float64 `json:"quantity"`
	ItemType    string  `json:"item_type"`
}

type wireTrustChange struct {
	Name   string  `json:"name"`
	Change float64 `json:"change"`
}

type wireNewCompanion struct {
	Name        string  `json:"name"`
	Personality string  `json:"personality"`
	Icon        string  `json:"icon"`
	Description string  `json:"description"`
	HP          float64 `json:"hp"`
	MaxHP       float64 `json:"max_hp"`
}

func decodeChangeSet(block string) *ChangeSet {
	var w wireChangeSet
	if err := json.Unmarshal([]byte(block), &w); err != nil {
		return nil
	}
	cs := &ChangeSet{
		HPChange:         roundToInt(w.HPChange),
		StaminaChange:    roundToInt(w.StaminaChange),
		ManaChange:       roundToInt(w.ManaChange),
		GoldChange:       roundToInt(w.GoldChange),
		XPGain:           roundToInt(w.XPGain),
		ZoneChange:       strings.TrimSpace(w.ZoneChange),
		StoryPhase:       strings.TrimSpace(w.StoryPhase),
		DefeatedBetrayer: strings.TrimSpace(w.DefeatedBetrayer),
		RemoveItems:      w.RemoveItems,
		JournalEntry:     w.JournalEntry,
	}
	if nc := w.NewCompanion; nc != nil && strings.TrimSpace(nc.Name) != "" {
		cs.NewCompanion = &NewCompanionInput{
			Name:        nc.Name,
			Personality: nc.Personality,
			Icon:        nc.Icon,
			Description: nc.Description,
			HP:          roundToInt(nc.HP),
			MaxHP:       roundToInt(nc.MaxHP),
		}
	}
	for _, it := range w.NewItems {
		if strings.TrimSpace(it.Name) == "" {
			continue
		}
		cs.NewItems = append(cs.NewItems, NewItem{
			Name:        it.Name,
			Description: it.Description,
			Icon:        it.Icon,
			Quantity:    roundToInt(it.Quantity),
			ItemType:    it.ItemType,
		})
	}
	for _, tc := range w.TrustChanges {
		if strings.TrimSpace(tc.Name) == "" {
			continue
		}
		cs.TrustChanges = append(cs.TrustChanges, TrustChange{
			Name:   tc.Name,
			Change: roundToInt(tc.Change),
		})
	}
	if cs.JournalEntry != nil && strings.TrimSpace(cs.JournalEntry.Title) == "" && strings.TrimSpace(cs.JournalEntry.Content) == "" {
		cs.JournalEntry = nil
	}
	return cs
}

func roundToInt(f float64) int {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return int(math.Round(f))
}
