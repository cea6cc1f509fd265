package model

import (
	"context"
)

// SessionRepository checkpoints per-session state between turns so a
// coordinator can resume after the external voice runtime reconnects.
// Implementations must keep sessions isolated from one another.
type SessionRepository interface {
	// SaveState stores the session's state snapshot, replacing any previous one.
	SaveState(ctx context.Context, sessionID string, state any) error

	// LoadState reads the session's state snapshot into out. The boolean is
	// false when no snapshot exists.
	LoadState(ctx context.Context, sessionID string, out any) (bool, error)

	// ClearState removes the session's snapshot.
	ClearState(ctx context.Context, sessionID string) error
}
