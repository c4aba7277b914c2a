package storage

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/emberhollow/revenant/pkg/chat"
	"github.com/emberhollow/revenant/pkg/game"
)

// ErrCharacterExists is returned when a user who already has a living
// character tries to create another.
var ErrCharacterExists = errors.New("user already has a character")

// Storage persists character snapshots and their story logs.
// GetSnapshot returns (nil, nil) when the character does not exist.
type Storage interface {
	Ping(ctx context.Context) error
	Close() error

	CreateCharacter(ctx context.Context, snap *game.Snapshot) error
	GetSnapshot(ctx context.Context, id uuid.UUID) (*game.Snapshot, error)
	SaveSnapshot(ctx context.Context, snap *game.Snapshot) error
	DeleteCharacter(ctx context.Context, id uuid.UUID) error
	GetCharacterIDForUser(ctx context.Context, userID string) (uuid.UUID, error)

	AddMessage(ctx context.Context, id uuid.UUID, msg chat.Message) error
	GetRecentMessages(ctx context.Context, id uuid.UUID, limit int) ([]chat.Message, error)
	GetJournal(ctx context.Context, id uuid.UUID) ([]game.JournalEntry, error)
}
