package engine

import (
	"errors"
	"log/slog"

	"github.com/emberhollow/revenant/internal/services"
	"github.com/emberhollow/revenant/internal/storage"
)

// historyWindow is how many recent story messages go to the narrator.
const historyWindow = 10

var (
	// ErrCharacterNotFound means no snapshot exists for the id.
	ErrCharacterNotFound = errors.New("character not found")
	// ErrExhausted means a paid action was attempted with no stamina.
	ErrExhausted = errors.New("not enough stamina for that action")
	// ErrUnknownClass means character creation named a class that does
	// not exist.
	ErrUnknownClass = errors.New("unknown character class")
)

// Engine runs the story loop: it classifies player actions, asks the
// narrator for prose and a change-set, folds validated changes into the
// snapshot, and persists the result.
type Engine struct {
	store    storage.Storage
	narrator services.Narrator
	roller   Roller
	logger   *slog.Logger
}

// New creates an engine. A nil logger falls back to slog.Default.
func New(store storage.Storage, narrator services.Narrator, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		store:    store,
		narrator: narrator,
		roller:   NewRoller(),
		logger:   logger,
	}
}

// WithRoller overrides the dice roller.
func (e *Engine) WithRoller(r Roller) *Engine {
	e.roller = r
	return e
}
