package chat

import (
	"fmt"
	"time"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

// Message is a single turn in the story log. The role/content shape is
// what OpenAI-compatible chat endpoints expect, so messages go to the
// narrator unmodified.
type Message struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// ActionRequest is a player action submitted to the api.
type ActionRequest struct {
	Action   string `json:"action"`
	DiceRoll int    `json:"dice_roll,omitempty"` // optional d20 result
}

// Validate checks request fields before any state is touched.
func (r *ActionRequest) Validate() error {
	if r.Action == "" {
		return fmt.Errorf("action cannot be empty")
	}
	if r.DiceRoll < 0 || r.DiceRoll > 20 {
		return fmt.Errorf("dice_roll must be between 1 and 20")
	}
	return nil
}

// CreateCharacterRequest starts a new story.
type CreateCharacterRequest struct {
	UserID    string `json:"user_id"`
	Name      string `json:"name"`
	ClassID   string `json:"class_id"`
	Backstory string `json:"backstory,omitempty"`
}

// Validate checks request fields.
func (r *CreateCharacterRequest) Validate() error {
	if r.UserID == "" {
		return fmt.Errorf("user_id cannot be empty")
	}
	if r.Name == "" {
		return fmt.Errorf("name cannot be empty")
	}
	if r.ClassID == "" {
		return fmt.Errorf("class_id cannot be empty")
	}
	return nil
}

// AllocateStatsRequest spends banked stat points on skills.
type AllocateStatsRequest struct {
	Allocations map[string]int `json:"allocations"`
}

// Validate checks request fields.
func (r *AllocateStatsRequest) Validate() error {
	if len(r.Allocations) == 0 {
		return fmt.Errorf("allocations cannot be empty")
	}
	return nil
}

// ErrorResponse is the uniform error body returned by the api.
type ErrorResponse struct {
	Error string `json:"error"`
}
