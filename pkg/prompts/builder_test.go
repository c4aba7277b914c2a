package prompts

import (
	"strings"
	"testing"

	"github.com/emberhollow/revenant/pkg/chat"
	"github.com/emberhollow/revenant/pkg/game"
)

func testSnapshot() *game.Snapshot {
	return &game.Snapshot{
		Character: game.NewCharacter("u1", "Vex", game.ClassByID("rogue"), ""),
		Inventory: game.StartingItems(),
	}
}

func TestBuildMessageShape(t *testing.T) {
	history := []chat.Message{
		{Role: chat.RoleUser, Content: "I enter the tavern"},
		{Role: chat.RoleAssistant, Content: "The door creaks open."},
	}

	messages, err := New().
		WithSnapshot(testSnapshot()).
		WithAction("I talk to the bartender", game.Classification{Free: true}).
		WithHistory(history).
		Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(messages) != 4 {
		t.Fatalf("message count = %d, want 4", len(messages))
	}
	if messages[0].Role != chat.RoleSystem {
		t.Errorf("first message role = %q, want system", messages[0].Role)
	}
	if messages[len(messages)-1].Content != "I talk to the bartender" {
		t.Errorf("last message = %q, want the action", messages[len(messages)-1].Content)
	}
}

func TestBuildSystemPromptContent(t *testing.T) {
	snap := testSnapshot()
	snap.Companions = []game.Companion{game.NewCompanion("Kira", "cunning", "", "", 1)}

	messages, err := New().
		WithSnapshot(snap).
		WithStatuses(game.DeriveStatusEffects(snap.Character)).
		WithAction("I look around", game.Classification{Free: true}).
		Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	system := messages[0].Content
	for _, want := range []string{
		"Vex", "Rogue", "FREE ACTION", "Rusty Sword x1", "Kira (cunning)", "Old Greg's Tavern",
	} {
		if !strings.Contains(system, want) {
			t.Errorf("system prompt missing %q", want)
		}
	}
	if strings.Contains(system, "PAID ACTION") {
		t.Error("free action prompt must not carry paid action context")
	}
}

func TestBuildPaidActionWithDiceRoll(t *testing.T) {
	messages, err := New().
		WithSnapshot(testSnapshot()).
		WithAction("I attack the guard", game.Classification{}).
		WithDiceRoll(20).
		Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	system := messages[0].Content
	if !strings.Contains(system, "PAID ACTION") {
		t.Error("missing paid action context")
	}
	if !strings.Contains(system, "DICE ROLL RESULT: 20 (critical success)") {
		t.Error("missing dice roll context")
	}
}

func TestBuildWindowsHistory(t *testing.T) {
	history := make([]chat.Message, 25)
	for i := range history {
		history[i] = chat.Message{Role: chat.RoleUser, Content: "turn"}
	}

	messages, err := New().
		WithSnapshot(testSnapshot()).
		WithAction("go north", game.Classification{}).
		WithHistory(history).
		WithHistoryLimit(10).
		Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// system + 10 history + action
	if len(messages) != 12 {
		t.Errorf("message count = %d, want 12", len(messages))
	}
}

func TestBuildRequiresSnapshotAndAction(t *testing.T) {
	if _, err := New().WithAction("hi", game.Classification{}).Build(); err == nil {
		t.Error("expected error without snapshot")
	}
	if _, err := New().WithSnapshot(testSnapshot()).Build(); err == nil {
		t.Error("expected error without action")
	}
}

func TestBuildOriginMessages(t *testing.T) {
	messages := BuildOriginMessages("Vex", "rogue", "left for dead in the abyss")
	if len(messages) != 2 {
		t.Fatalf("message count = %d, want 2", len(messages))
	}
	if messages[0].Role != chat.RoleSystem {
		t.Errorf("first role = %q, want system", messages[0].Role)
	}
	if !strings.Contains(messages[1].Content, "Rogue") {
		t.Error("user message should carry the class display name")
	}
}
