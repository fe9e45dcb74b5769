package session

import (
	"context"

	"card-consumption-assistant/internal/model"
)

// Store persists the ordered conversation history of each session.
// Appends for one session are kept in call order; concurrent turns on the
// same session may interleave.
type Store interface {
	Append(ctx context.Context, sessionID string, turns ...model.Turn) error
	// Read returns the turns oldest first. An unknown session has no turns.
	Read(ctx context.Context, sessionID string) ([]model.Turn, error)
}
