package prompts

import (
	"fmt"

	"github.com/emberhollow/revenant/pkg/chat"
	"github.com/emberhollow/revenant/pkg/game"
)

// Builder constructs the message array for one narrator call using a
// fluent interface. It keeps prompt assembly out of the engine.
type Builder struct {
	snap         *game.Snapshot
	statuses     []game.StatusEffect
	action       string
	class        game.Classification
	diceRoll     int
	history      []chat.Message
	historyLimit int
}

// New creates a prompt builder with default settings.
func New() *Builder {
	return &Builder{historyLimit: 10}
}

// WithSnapshot sets the game state to describe to the narrator.
func (b *Builder) WithSnapshot(snap *game.Snapshot) *Builder {
	b.snap = snap
	return b
}

// WithStatuses sets the derived conditions to surface.
func (b *Builder) WithStatuses(statuses []game.StatusEffect) *Builder {
	b.statuses = statuses
	return b
}

// WithAction sets the player's action and its classification.
func (b *Builder) WithAction(action string, class game.Classification) *Builder {
	b.action = action
	b.class = class
	return b
}

// WithDiceRoll forwards an optional d20 result. Zero means no roll.
func (b *Builder) WithDiceRoll(roll int) *Builder {
	b.diceRoll = roll
	return b
}

// WithHistory sets the chat history window.
func (b *Builder) WithHistory(history []chat.Message) *Builder {
	b.history = history
	return b
}

// WithHistoryLimit overrides the history window size.
func (b *Builder) WithHistoryLimit(limit int) *Builder {
	b.historyLimit = limit
	return b
}

// Build assembles the final message array: system prompt with state
// context, windowed history, then the player action.
func (b *Builder) Build() ([]chat.Message, error) {
	if b.snap == nil || b.snap.Character == nil {
		return nil, fmt.Errorf("snapshot is required")
	}
	if b.action == "" {
		return nil, fmt.Errorf("action is required")
	}

	system := GameMasterSystemPrompt + "\n\n" + characterSheet(b.snap, b.statuses)

	if b.class.Free {
		system += "\n\nACTION TYPE: FREE ACTION - This is a non-combat action (talking, looking, defending, resting). Do NOT charge stamina or trigger dangerous encounters."
	} else {
		system += "\n\nACTION TYPE: PAID ACTION - This action can cost stamina and mana and can trigger combat or dangerous events."
	}
	if b.class.Spell {
		system += "\nThe action appears to involve spellcasting; weigh the character's mana and magic stat."
	}
	if b.diceRoll > 0 {
		system += "\n\n" + diceRollContext(b.diceRoll)
	}

	messages := make([]chat.Message, 0, b.historyLimit+2)
	messages = append(messages, chat.Message{Role: chat.RoleSystem, Content: system})

	history := b.history
	if len(history) > b.historyLimit {
		history = history[len(history)-b.historyLimit:]
	}
	for _, m := range history {
		messages = append(messages, chat.Message{Role: m.Role, Content: m.Content})
	}

	messages = append(messages, chat.Message{Role: chat.RoleUser, Content: b.action})
	return messages, nil
}

// BuildOriginMessages assembles the one-shot origin generation request.
func BuildOriginMessages(name, classID, backstory string) []chat.Message {
	class := game.ClassByID(classID)
	className := classID
	if class != nil {
		className = class.Name
	}
	return []chat.Message{
		{Role: chat.RoleSystem, Content: OriginSystemPrompt},
		{Role: chat.RoleUser, Content: fmt.Sprintf("Name: %s\nClass: %s\nBackstory: %s", name, className, backstory)},
	}
}
