package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Backend selects which generative service answers prompts.
type Backend string

const (
	// BackendGoogle is the primary generative backend (Gemini).
	BackendGoogle Backend = "google"
	// BackendOpenAI is the chat-completion backend.
	BackendOpenAI Backend = "openai"
)

// ErrUnknownBackend is returned for any backend name outside the supported set.
var ErrUnknownBackend = errors.New("unknown ai backend")

// ParseBackend resolves a configured backend name.
func ParseBackend(name string) (Backend, error) {
	switch Backend(strings.ToLower(strings.TrimSpace(name))) {
	case BackendGoogle:
		return BackendGoogle, nil
	case BackendOpenAI:
		return BackendOpenAI, nil
	default:
		return "", fmt.Errorf("%w: %q (expected %q or %q)", ErrUnknownBackend, name, BackendGoogle, BackendOpenAI)
	}
}

// Generator sends a single prompt to a backend and returns its text.
type Generator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
	Model() string
}
