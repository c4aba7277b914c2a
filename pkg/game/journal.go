package game

import (
	"time"

	"github.com/google/uuid"
)

// JournalEntry is a numbered story beat recorded by the narrator.
type JournalEntry struct {
	ID          uuid.UUID `json:"id"`
	EntryNumber int       `json:"entry_number"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	CreatedAt   time.Time `json:"created_at"`
}
