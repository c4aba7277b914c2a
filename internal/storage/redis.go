package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/emberhollow/revenant/pkg/chat"
	"github.com/emberhollow/revenant/pkg/game"
)

const (
	characterKeyPrefix = "character:"
	userKeyPrefix      = "user_character:"
)

// RedisStore implements Storage on Redis. The character record,
// inventory, and companion roster live in JSON values; messages and
// journal entries live in lists. All writes for one applied snapshot
// go through a single transactional pipeline.
type RedisStore struct {
	client *redis.Client
	logger *slog.Logger
}

var _ Storage = (*RedisStore)(nil)

// NewRedisStore creates a store from a redis:// URL.
func NewRedisStore(redisURL string, logger *slog.Logger) (*RedisStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	return &RedisStore{
		client: redis.NewClient(opts),
		logger: logger,
	}, nil
}

func (s *RedisStore) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

func (s *RedisStore) Close() error {
	if err := s.client.Close(); err != nil {
		s.logger.Error("Failed to close Redis connection", "error", err)
		return err
	}
	return nil
}

// WaitForConnection waits for Redis to become available during startup.
func (s *RedisStore) WaitForConnection(ctx context.Context) error {
	const maxRetries = 30
	const retryDelay = 2 * time.Second

	for i := 0; i < maxRetries; i++ {
		if err := s.Ping(ctx); err != nil {
			s.logger.Debug("Redis not ready yet", "error", err, "attempt", i+1)
			select {
			case <-ctx.Done():
				return fmt.Errorf("context cancelled while waiting for redis: %w", ctx.Err())
			case <-time.After(retryDelay):
			}
			continue
		}
		return nil
	}
	return fmt.Errorf("redis not available after %d attempts", maxRetries)
}

func characterKey(id uuid.UUID) string  { return characterKeyPrefix + id.String() }
func inventoryKey(id uuid.UUID) string  { return characterKey(id) + ":inventory" }
func companionsKey(id uuid.UUID) string { return characterKey(id) + ":companions" }
func messagesKey(id uuid.UUID) string   { return characterKey(id) + ":messages" }
func journalKey(id uuid.UUID) string    { return characterKey(id) + ":journal" }
func userKey(userID string) string      { return userKeyPrefix + userID }

// CreateCharacter persists a brand new snapshot and claims the user's
// character slot. A user gets one living character at a time.
func (s *RedisStore) CreateCharacter(ctx context.Context, snap *game.Snapshot) error {
	c := snap.Character
	ok, err := s.client.SetNX(ctx, userKey(c.UserID), c.ID.String(), 0).Result()
	if err != nil {
		return fmt.Errorf("failed to claim user slot: %w", err)
	}
	if !ok {
		return ErrCharacterExists
	}
	if err := s.SaveSnapshot(ctx, snap); err != nil {
		// Release the slot so creation can be retried.
		s.client.Del(ctx, userKey(c.UserID))
		return err
	}
	return nil
}

// SaveSnapshot writes the whole snapshot atomically: character record,
// inventory, companions, and any journal entries produced by the apply.
func (s *RedisStore) SaveSnapshot(ctx context.Context, snap *game.Snapshot) error {
	c := snap.Character

	charData, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal character: %w", err)
	}
	invData, err := json.Marshal(snap.Inventory)
	if err != nil {
		return fmt.Errorf("failed to marshal inventory: %w", err)
	}
	compData, err := json.Marshal(snap.Companions)
	if err != nil {
		return fmt.Errorf("failed to marshal companions: %w", err)
	}

	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, characterKey(c.ID), charData, 0)
		pipe.Set(ctx, inventoryKey(c.ID), invData, 0)
		pipe.Set(ctx, companionsKey(c.ID), compData, 0)
		for _, entry := range snap.PendingJournal {
			data, err := json.Marshal(entry)
			if err != nil {
				return fmt.Errorf("failed to marshal journal entry: %w", err)
			}
			pipe.RPush(ctx, journalKey(c.ID), data)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}

	snap.PendingJournal = nil
	return nil
}

// GetSnapshot loads the full game state for a character. Returns
// (nil, nil) when the character does not exist.
func (s *RedisStore) GetSnapshot(ctx context.Context, id uuid.UUID) (*game.Snapshot, error) {
	charData, err := s.client.Get(ctx, characterKey(id)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get character: %w", err)
	}

	var c game.Character
	if err := json.Unmarshal([]byte(charData), &c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal character: %w", err)
	}

	snap := &game.Snapshot{Character: &c}

	if data, err := s.client.Get(ctx, inventoryKey(id)).Result(); err == nil {
		if err := json.Unmarshal([]byte(data), &snap.Inventory); err != nil {
			return nil, fmt.Errorf("failed to unmarshal inventory: %w", err)
		}
	} else if !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to get inventory: %w", err)
	}

	if data, err := s.client.Get(ctx, companionsKey(id)).Result(); err == nil {
		if err := json.Unmarshal([]byte(data), &snap.Companions); err != nil {
			return nil, fmt.Errorf("failed to unmarshal companions: %w", err)
		}
	} else if !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to get companions: %w", err)
	}

	count, err := s.client.LLen(ctx, journalKey(id)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to count journal entries: %w", err)
	}
	snap.JournalCount = int(count)

	return snap, nil
}

// DeleteCharacter removes the character and all of its related keys,
// freeing the user's slot for a fresh start.
func (s *RedisStore) DeleteCharacter(ctx context.Context, id uuid.UUID) error {
	snap, err := s.GetSnapshot(ctx, id)
	if err != nil {
		return err
	}
	if snap == nil {
		return nil
	}

	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx,
			characterKey(id),
			inventoryKey(id),
			companionsKey(id),
			messagesKey(id),
			journalKey(id),
			userKey(snap.Character.UserID),
		)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete character: %w", err)
	}
	return nil
}

// GetCharacterIDForUser resolves a user's living character. Returns
// uuid.Nil when the user has none.
func (s *RedisStore) GetCharacterIDForUser(ctx context.Context, userID string) (uuid.UUID, error) {
	val, err := s.client.Get(ctx, userKey(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return uuid.Nil, nil
	}
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to get user character: %w", err)
	}
	id, err := uuid.Parse(val)
	if err != nil {
		return uuid.Nil, fmt.Errorf("corrupt user character index: %w", err)
	}
	return id, nil
}

// AddMessage appends a turn to the story log.
func (s *RedisStore) AddMessage(ctx context.Context, id uuid.UUID, msg chat.Message) error {
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now().UTC()
	}
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}
	if err := s.client.RPush(ctx, messagesKey(id), data).Err(); err != nil {
		return fmt.Errorf("failed to append message: %w", err)
	}
	return nil
}

// GetRecentMessages returns the last limit messages in order.
func (s *RedisStore) GetRecentMessages(ctx context.Context, id uuid.UUID, limit int) ([]chat.Message, error) {
	if limit <= 0 {
		limit = 10
	}
	raw, err := s.client.LRange(ctx, messagesKey(id), int64(-limit), -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read messages: %w", err)
	}
	messages := make([]chat.Message, 0, len(raw))
	for _, item := range raw {
		var msg chat.Message
		if err := json.Unmarshal([]byte(item), &msg); err != nil {
			s.logger.Warn("skipping corrupt message", "error", err)
			continue
		}
		messages = append(messages, msg)
	}
	return messages, nil
}

// GetJournal returns all journal entries in order.
func (s *RedisStore) GetJournal(ctx context.Context, id uuid.UUID) ([]game.JournalEntry, error) {
	raw, err := s.client.LRange(ctx, journalKey(id), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read journal: %w", err)
	}
	entries := make([]game.JournalEntry, 0, len(raw))
	for _, item := range raw {
		var entry game.JournalEntry
		if err := json.Unmarshal([]byte(item), &entry); err != nil {
			s.logger.Warn("skipping corrupt journal entry", "error", err)
			continue
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
