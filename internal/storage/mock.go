package storage

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/emberhollow/revenant/pkg/chat"
	"github.com/emberhollow/revenant/pkg/game"
)

// MockStorage is an in-memory Storage for tests. Behavior can be
// overridden per method with the injectable func fields.
type MockStorage struct {
	PingFunc                  func(ctx context.Context) error
	CreateCharacterFunc       func(ctx context.Context, snap *game.Snapshot) error
	GetSnapshotFunc           func(ctx context.Context, id uuid.UUID) (*game.Snapshot, error)
	SaveSnapshotFunc          func(ctx context.Context, snap *game.Snapshot) error
	DeleteCharacterFunc       func(ctx context.Context, id uuid.UUID) error
	GetCharacterIDForUserFunc func(ctx context.Context, userID string) (uuid.UUID, error)
	AddMessageFunc            func(ctx context.Context, id uuid.UUID, msg chat.Message) error
	GetRecentMessagesFunc     func(ctx context.Context, id uuid.UUID, limit int) ([]chat.Message, error)
	GetJournalFunc            func(ctx context.Context, id uuid.UUID) ([]game.JournalEntry, error)

	mu        sync.Mutex
	snapshots map[uuid.UUID]*game.Snapshot
	users     map[string]uuid.UUID
	messages  map[uuid.UUID][]chat.Message
	journals  map[uuid.UUID][]game.JournalEntry
}

var _ Storage = (*MockStorage)(nil)

// NewMockStorage creates an empty in-memory store.
func NewMockStorage() *MockStorage {
	return &MockStorage{
		snapshots: make(map[uuid.UUID]*game.Snapshot),
		users:     make(map[string]uuid.UUID),
		messages:  make(map[uuid.UUID][]chat.Message),
		journals:  make(map[uuid.UUID][]game.JournalEntry),
	}
}

func (m *MockStorage) Ping(ctx context.Context) error {
	if m.PingFunc != nil {
		return m.PingFunc(ctx)
	}
	return nil
}

func (m *MockStorage) Close() error { return nil }

func (m *MockStorage) CreateCharacter(ctx context.Context, snap *game.Snapshot) error {
	if m.CreateCharacterFunc != nil {
		return m.CreateCharacterFunc(ctx, snap)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[snap.Character.UserID]; ok {
		return ErrCharacterExists
	}
	m.users[snap.Character.UserID] = snap.Character.ID
	m.storeLocked(snap)
	return nil
}

func (m *MockStorage) GetSnapshot(ctx context.Context, id uuid.UUID) (*game.Snapshot, error) {
	if m.GetSnapshotFunc != nil {
		return m.GetSnapshotFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	snap, ok := m.snapshots[id]
	if !ok {
		return nil, nil
	}
	return snap.DeepCopy(), nil
}

func (m *MockStorage) SaveSnapshot(ctx context.Context, snap *game.Snapshot) error {
	if m.SaveSnapshotFunc != nil {
		return m.SaveSnapshotFunc(ctx, snap)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.storeLocked(snap)
	return nil
}

func (m *MockStorage) storeLocked(snap *game.Snapshot) {
	id := snap.Character.ID
	m.journals[id] = append(m.journals[id], snap.PendingJournal...)
	snap.PendingJournal = nil
	m.snapshots[id] = snap.DeepCopy()
}

func (m *MockStorage) DeleteCharacter(ctx context.Context, id uuid.UUID) error {
	if m.DeleteCharacterFunc != nil {
		return m.DeleteCharacterFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if snap, ok := m.snapshots[id]; ok {
		delete(m.users, snap.Character.UserID)
	}
	delete(m.snapshots, id)
	delete(m.messages, id)
	delete(m.journals, id)
	return nil
}

func (m *MockStorage) GetCharacterIDForUser(ctx context.Context, userID string) (uuid.UUID, error) {
	if m.GetCharacterIDForUserFunc != nil {
		return m.GetCharacterIDForUserFunc(ctx, userID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.users[userID], nil
}

func (m *MockStorage) AddMessage(ctx context.Context, id uuid.UUID, msg chat.Message) error {
	if m.AddMessageFunc != nil {
		return m.AddMessageFunc(ctx, id, msg)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages[id] = append(m.messages[id], msg)
	return nil
}

func (m *MockStorage) GetRecentMessages(ctx context.Context, id uuid.UUID, limit int) ([]chat.Message, error) {
	if m.GetRecentMessagesFunc != nil {
		return m.GetRecentMessagesFunc(ctx, id, limit)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	msgs := m.messages[id]
	if limit > 0 && len(msgs) > limit {
		msgs = msgs[len(msgs)-limit:]
	}
	out := make([]chat.Message, len(msgs))
	copy(out, msgs)
	return out, nil
}

func (m *MockStorage) GetJournal(ctx context.Context, id uuid.UUID) ([]game.JournalEntry, error) {
	if m.GetJournalFunc != nil {
		return m.GetJournalFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]game.JournalEntry, len(m.journals[id]))
	copy(out, m.journals[id])
	return out, nil
}
