package services

import (
	"context"
	"errors"

	"github.com/emberhollow/revenant/pkg/chat"
)

// ErrNoProviders is returned when every configured provider failed.
var ErrNoProviders = errors.New("no narrator provider available")

// Narrator generates a story response for a message array. The raw
// text may carry a fenced json change block; parsing it is the
// caller's concern.
type Narrator interface {
	// Name identifies the provider in logs.
	Name() string
	// Narrate returns the model's raw response text.
	Narrate(ctx context.Context, messages []chat.Message) (string, error)
}
