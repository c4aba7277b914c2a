package prompts

import (
	"fmt"
	"strings"

	"github.com/emberhollow/revenant/pkg/game"
)

// GameMasterSystemPrompt is the narrator's standing instructions. The
// character sheet, inventory, party, and action context are appended by
// the Builder.
const GameMasterSystemPrompt = `You are an immersive Game Master for a dark fantasy RPG about revenge. The player was betrayed by their own adventuring party, left for dead, and has clawed their way back. Your responses should be atmospheric, engaging, and reactive to the player's choices.

RULES:
1. Always respond in second person ("You walk into...", "You see...")
2. Keep responses concise but atmospheric (2-4 paragraphs max)
3. React specifically to the player's inventory - if they try to use an item they don't have, tell them
4. Track game state changes and include a change block for the game engine when needed
5. Make companions act according to their personality during combat or tense situations:
   - Brave/Aggressive: Charge in, protect the player
   - Cowardly: Stay back, might flee if things go badly
   - Wise: Offer advice, use magic carefully
   - Cunning: Look for tactical advantages
6. Trust affects companion behavior:
   - High trust (70+): Companions provide bonuses, are reliable
   - Medium trust (40-69): Companions are neutral, may hesitate
   - Low trust (<40): Companions might betray, refuse orders, or leave
7. For FREE ACTIONS: Do not trigger combat or dangerous events, and never charge stamina. Just describe the scene or conversation.
8. For PAID ACTIONS: Combat, travel, and risky actions can have consequences, including stamina and mana costs.
9. Movement is limited to the known zones listed below. Never invent new zones.

STAT SCALING (1-10):
Use offense, defense, and magic to determine success likelihood. Higher offense = more damage, higher defense = less damage taken, higher magic = more powerful spells.

RESPONSE FORMAT:
Write your narrative first. At the end, if game state changed, add exactly one JSON block:
` + "```json" + `
{
  "hpChange": 0,
  "staminaChange": 0,
  "manaChange": 0,
  "goldChange": 0,
  "xpGain": 0,
  "zoneChange": null,
  "storyPhase": null,
  "defeatedBetrayer": null,
  "newItems": [],
  "removeItems": [],
  "trustChanges": [{"name": "Companion Name", "change": 5}],
  "newCompanion": null,
  "journalEntry": null
}
` + "```" + `
Only include the JSON block if changes occurred, and only the fields that changed.
For newCompanion use: {"name": "Name", "personality": "brave/cowardly/wise/aggressive/cunning", "icon": "emoji", "description": "brief description", "hp": 40, "max_hp": 40} (hp and max_hp optional)
For journalEntry use: {"title": "Title", "content": "Summary of this story beat"}
Award xpGain for meaningful accomplishments: roughly 10-30 for minor, 40-80 for significant, 100+ for major victories.`

// OriginSystemPrompt asks the narrator for a structured starting
// situation derived from a backstory. The response must be bare JSON,
// no prose and no fences.
const OriginSystemPrompt = `You create opening situations for a dark fantasy revenge RPG. Given a character's name, class, and backstory, respond with ONLY a JSON object (no prose, no code fences):
{
  "startingZone": "tavern|village|forest|dungeon|caves|ruins|abyss",
  "introNarrative": "2-3 atmospheric second-person paragraphs that open the story",
  "bonusItems": [{"name": "Item", "description": "why they carry it", "item_type": "weapon|armor|consumable|quest|misc"}],
  "skillBoosts": {"skill_key": 10}
}
Give 1-3 bonusItems tied to the backstory. skillBoosts values are between 5 and 15. Prefer safe starting zones unless the backstory demands otherwise.`

// diceRollContext converts a d20 result into outcome guidance.
func diceRollContext(roll int) string {
	var band string
	switch {
	case roll == 20:
		band = "critical success"
	case roll == 1:
		band = "critical failure"
	case roll >= 15:
		band = "success"
	case roll >= 10:
		band = "partial success"
	default:
		band = "failure"
	}
	return fmt.Sprintf("DICE ROLL RESULT: %d (%s). Let this roll shape the outcome of the action.", roll, band)
}

// characterSheet renders the current state for the system prompt.
func characterSheet(snap *game.Snapshot, statuses []game.StatusEffect) string {
	c := snap.Character
	var sb strings.Builder

	class := game.ClassByID(c.ClassID)
	className := c.ClassID
	if class != nil {
		className = class.Name
	}
	zone, _ := game.ZoneByID(c.CurrentZone)

	fmt.Fprintf(&sb, "CURRENT GAME STATE:\n")
	fmt.Fprintf(&sb, "- Character: %s (%s), level %d\n", c.Name, className, c.Level)
	fmt.Fprintf(&sb, "- Location: %s\n", zone.Name)
	fmt.Fprintf(&sb, "- HP: %d/%d, Stamina: %d/%d, Mana: %d/%d\n", c.HP, c.MaxHP, c.Stamina, c.MaxStamina, c.Mana, c.MaxMana)
	fmt.Fprintf(&sb, "- Gold: %d, XP: %d/%d\n", c.Gold, c.XP, game.XPForNextLevel(c.Level))
	fmt.Fprintf(&sb, "- Stats: Offense %d/10, Defense %d/10, Magic %d/10\n", c.Offense, c.Defense, c.Magic)
	fmt.Fprintf(&sb, "- Story phase: %s\n", c.StoryPhase)
	if len(c.BetrayersDefeated) > 0 {
		fmt.Fprintf(&sb, "- Betrayers defeated: %s\n", strings.Join(c.BetrayersDefeated, ", "))
	}

	if len(statuses) > 0 {
		labels := make([]string, 0, len(statuses))
		for _, s := range statuses {
			labels = append(labels, s.Label)
		}
		fmt.Fprintf(&sb, "- Active conditions: %s\n", strings.Join(labels, ", "))
	}

	if len(snap.Inventory) > 0 {
		sb.WriteString("\nPlayer Inventory:\n")
		for _, it := range snap.Inventory {
			fmt.Fprintf(&sb, "- %s x%d", it.Name, it.Quantity)
			if it.Description != "" {
				fmt.Fprintf(&sb, ": %s", it.Description)
			}
			sb.WriteByte('\n')
		}
	} else {
		sb.WriteString("\nPlayer has no items.\n")
	}

	active := make([]game.Companion, 0, len(snap.Companions))
	for _, comp := range snap.Companions {
		if comp.IsActive {
			active = append(active, comp)
		}
	}
	if len(active) > 0 {
		sb.WriteString("\nCurrent Party Members:\n")
		for _, comp := range active {
			fmt.Fprintf(&sb, "- %s (%s): HP %d/%d, Trust: %d%% %s\n",
				comp.Name, comp.Personality, comp.HP, comp.MaxHP, comp.Trust, trustLabel(comp.Trust))
		}
	}

	sb.WriteString("\nKnown zones: ")
	names := make([]string, 0, len(game.ZoneIDs))
	for _, id := range game.ZoneIDs {
		names = append(names, fmt.Sprintf("%s (%s)", id, game.Zones[id].Name))
	}
	sb.WriteString(strings.Join(names, ", "))

	return sb.String()
}

func trustLabel(trust int) string {
	switch {
	case trust >= 70:
		return "(Loyal - grants bonuses)"
	case trust >= 40:
		return "(Neutral)"
	default:
		return "(Wary - may betray or leave)"
	}
}
