package flows

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Voxform-core-poc-v1/server/internal/assistant/model"
	logx "github.com/Voxform-core-poc-v1/server/pkg/logger"
)

// Assistant is the lifecycle surface every conversation variant exposes.
// Start opens a session, Ingest handles one user turn, Finalize commits or
// reports the accumulated state, and Restart discards it for a fresh run.
type Assistant interface {
	Start(ctx context.Context, name string) (model.Response, error)
	Ingest(ctx context.Context, in model.Input) (model.Response, error)
	Finalize(ctx context.Context) (model.Response, error)
	Restart(ctx context.Context) (model.Response, error)
}

const stampLayout = "2006-01-02 15:04:05"

func stamp() string {
	return time.Now().Format(stampLayout)
}

func joinMissing(missing []string) string {
	return strings.Join(missing, ", ")
}

func progressText(missing []string) string {
	if len(missing) == 0 {
		return "I have everything I need. Say the word and I'll wrap this up."
	}
	return fmt.Sprintf("Got it. I still need: %s.", joinMissing(missing))
}

// sessionCheckpoint mirrors slot or cursor state into a session repository so
// a conversation can survive a process restart. All methods are no-ops when
// no repository is attached, and save/clear failures are logged rather than
// surfaced: losing a checkpoint must never fail the turn itself.
type sessionCheckpoint struct {
	sessions  model.SessionRepository
	sessionID string
}

func (c *sessionCheckpoint) enabled() bool {
	return c.sessions != nil && c.sessionID != ""
}

func (c *sessionCheckpoint) save(ctx context.Context, state any) {
	if !c.enabled() {
		return
	}
	if err := c.sessions.SaveState(ctx, c.sessionID, state); err != nil {
		logx.Warn().Err(err).Str("sessionID", c.sessionID).Msg("failed to save session checkpoint")
	}
}

func (c *sessionCheckpoint) load(ctx context.Context, out any) bool {
	if !c.enabled() {
		return false
	}
	found, err := c.sessions.LoadState(ctx, c.sessionID, out)
	if err != nil {
		logx.Warn().Err(err).Str("sessionID", c.sessionID).Msg("failed to load session checkpoint")
		return false
	}
	return found
}

func (c *sessionCheckpoint) clear(ctx context.Context) {
	if !c.enabled() {
		return
	}
	if err := c.sessions.ClearState(ctx, c.sessionID); err != nil {
		logx.Warn().Err(err).Str("sessionID", c.sessionID).Msg("failed to clear session checkpoint")
	}
}
