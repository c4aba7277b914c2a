package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/emberhollow/revenant/pkg/chat"
)

// FallbackNarrator tries providers in order until one answers. Rate
// limits and outages on one provider fail over to the next; the story
// never depends on which provider responded.
type FallbackNarrator struct {
	providers []Narrator
	logger    *slog.Logger
}

// NewFallbackNarrator builds a chain. The preferred provider, if
// present in the chain, is moved to the front.
func NewFallbackNarrator(providers []Narrator, preferred string, logger *slog.Logger) *FallbackNarrator {
	ordered := make([]Narrator, 0, len(providers))
	for _, p := range providers {
		if p.Name() == preferred {
			ordered = append([]Narrator{p}, ordered...)
		} else {
			ordered = append(ordered, p)
		}
	}
	return &FallbackNarrator{providers: ordered, logger: logger}
}

func (f *FallbackNarrator) Name() string { return "fallback" }

// Narrate walks the chain. Every provider error is logged and the next
// provider tried; only full exhaustion is an error.
func (f *FallbackNarrator) Narrate(ctx context.Context, messages []chat.Message) (string, error) {
	if len(f.providers) == 0 {
		return "", ErrNoProviders
	}

	var lastErr error
	for _, p := range f.providers {
		text, err := p.Narrate(ctx, messages)
		if err == nil {
			return text, nil
		}
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		f.logger.Warn("narrator provider failed, trying next", "provider", p.Name(), "error", err)
		lastErr = err
	}
	return "", fmt.Errorf("%w: %v", ErrNoProviders, lastErr)
}
