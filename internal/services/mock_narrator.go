package services

import (
	"context"
	"sync"

	"github.com/emberhollow/revenant/pkg/chat"
)

// MockNarrator is a Narrator for tests with an injectable response
// func and call tracking.
type MockNarrator struct {
	NarrateFunc func(ctx context.Context, messages []chat.Message) (string, error)
	NameValue   string

	mu    sync.Mutex
	calls [][]chat.Message
}

var _ Narrator = (*MockNarrator)(nil)

// NewMockNarrator creates a mock that returns a canned response.
func NewMockNarrator() *MockNarrator {
	return &MockNarrator{NameValue: "mock"}
}

func (m *MockNarrator) Name() string {
	if m.NameValue == "" {
		return "mock"
	}
	return m.NameValue
}

func (m *MockNarrator) Narrate(ctx context.Context, messages []chat.Message) (string, error) {
	m.mu.Lock()
	m.calls = append(m.calls, messages)
	m.mu.Unlock()

	if m.NarrateFunc != nil {
		return m.NarrateFunc(ctx, messages)
	}
	return "Mock narration.", nil
}

// Calls returns a copy of all recorded message arrays.
func (m *MockNarrator) Calls() [][]chat.Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([][]chat.Message, len(m.calls))
	copy(out, m.calls)
	return out
}

// SetError makes every Narrate call fail.
func (m *MockNarrator) SetError(err error) {
	m.NarrateFunc = func(ctx context.Context, messages []chat.Message) (string, error) {
		return "", err
	}
}

// SetResponse makes every Narrate call return text.
func (m *MockNarrator) SetResponse(text string) {
	m.NarrateFunc = func(ctx context.Context, messages []chat.Message) (string, error) {
		return text, nil
	}
}
