package game

import "strings"

// freeActionKeywords mark actions that cost no stamina: conversation,
// observation, checking gear, defending, thinking, and resting.
var freeActionKeywords = []string{
	"talk", "speak", "say", "ask", "tell", "greet", "chat",
	"look", "observe", "examine", "inspect", "check", "see", "watch",
	"inventory", "items", "bag", "pouch",
	"defend", "defensive", "guard", "block",
	"think", "ponder", "consider", "remember",
	"rest", "sit", "wait",
}

var defendKeywords = []string{"defend", "defensive", "guard", "block"}

var spellKeywords = []string{
	"cast", "spell", "magic", "summon", "conjure", "enchant",
	"heal", "fireball", "lightning", "necromancy", "bloodmancy",
	"illusion", "alteration",
}

// Classification describes how the engine should treat a player action.
type Classification struct {
	Free   bool `json:"free"`
	Defend bool `json:"defend"`
	Spell  bool `json:"spell"`
}

// ClassifyAction inspects the raw action text. An action is free when it
// starts with a free keyword, contains "i <keyword>" or "to <keyword>",
// or is an interrogative ending in "?". Spells are only flagged on paid
// actions.
func ClassifyAction(input string) Classification {
	lower := strings.ToLower(strings.TrimSpace(input))

	var c Classification
	for _, kw := range freeActionKeywords {
		if strings.HasPrefix(lower, kw) || strings.Contains(lower, "i "+kw) || strings.Contains(lower, "to "+kw) {
			c.Free = true
			break
		}
	}
	if !c.Free && strings.HasSuffix(lower, "?") {
		for _, w := range []string{"what", "who", "where", "how"} {
			if strings.Contains(lower, w) {
				c.Free = true
				break
			}
		}
	}

	for _, kw := range defendKeywords {
		if strings.HasPrefix(lower, kw) || strings.Contains(lower, "i "+kw) || strings.Contains(lower, "to "+kw) {
			c.Defend = true
			break
		}
	}

	if !c.Free {
		for _, kw := range spellKeywords {
			if strings.Contains(lower, kw) {
				c.Spell = true
				break
			}
		}
	}

	return c
}

// skillKeywords map exercised skills to trigger words in action text.
var skillKeywords = map[string][]string{
	"brawling":        {"punch", "fist", "brawl", "unarmed", "kick", "headbutt", "grapple"},
	"one_handed":      {"sword", "dagger", "blade", "slash", "stab", "rapier"},
	"two_handed":      {"greatsword", "axe", "hammer", "mace", "cleave", "swing"},
	"acrobatics":      {"dodge", "flip", "jump", "evade", "roll", "tumble", "leap"},
	"climbing":        {"climb", "scale", "ascend", "clamber"},
	"stealth":         {"sneak", "hide", "invisible", "stealth", "lurk", "shadow"},
	"sleight_of_hand": {"pickpocket", "steal", "pilfer", "disarm trap", "lockpick"},
	"aim":             {"shoot", "arrow", "bow", "crossbow", "aim", "fire"},
	"bloodmancy":      {"blood magic", "bloodmancy", "life drain", "blood spell"},
	"necromancy":      {"raise dead", "necromancy", "undead", "skeleton", "zombie"},
	"soulbinding":     {"soul bind", "spirit", "soulbinding", "bind soul"},
	"destruction":     {"fireball", "lightning", "explosion", "destruction", "burn", "zap"},
	"alteration":      {"transform", "alter", "change", "transmute", "morph"},
	"illusion":        {"illusion", "decoy", "mirage", "disguise", "phantom"},
	"regeneration":    {"heal", "restore", "regenerate", "cure", "mend"},
	"persuasion":      {"persuade", "convince", "reason", "negotiate", "plead"},
	"intimidation":    {"threaten", "intimidate", "scare", "menace", "terrify"},
	"seduction":       {"seduce", "charm", "flirt", "entice", "allure"},
	"investigation":   {"investigate", "search", "examine", "inspect", "study"},
	"bartering":       {"barter", "haggle", "negotiate price", "trade", "deal"},
	"beastmastery":    {"tame", "command animal", "beast", "creature control"},
}

// SkillKeywords returns the trigger words for a skill.
func SkillKeywords(skill string) []string {
	return skillKeywords[skill]
}

// DetectSkillUsage returns the skills exercised by an action, each at
// most once, in the canonical SkillKeys order.
func DetectSkillUsage(action string) []string {
	lower := strings.ToLower(action)
	var used []string
	for _, skill := range SkillKeys {
		for _, kw := range skillKeywords[skill] {
			if strings.Contains(lower, kw) {
				used = append(used, skill)
				break
			}
		}
	}
	return used
}
