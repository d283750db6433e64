package chat

import (
	"context"
	"log/slog"

	"github.com/vmunix/chatarr/internal/nlu"
	"github.com/vmunix/chatarr/internal/session"
)

// Gate decides whether a message continues the user's pending session or
// switches topic. A detected switch clears the session as a side effect.
type Gate struct {
	sessions session.Store
	nlu      nlu.Service
	logger   *slog.Logger
}

// NewGate creates a topic-continuity gate.
func NewGate(sessions session.Store, nluSvc nlu.Service, logger *slog.Logger) *Gate {
	if logger == nil {
		logger = slog.Default()
	}
	return &Gate{sessions: sessions, nlu: nluSvc, logger: logger}
}

// ShouldContinue reports whether the pending session (if any) still applies.
// With no session it returns true without a classifier round-trip. A
// continuity-collaborator failure defaults to true and leaves the session
// intact: losing an in-progress operation is worse than missing a topic
// change.
func (g *Gate) ShouldContinue(ctx context.Context, userID, message string, history []nlu.Message) bool {
	exists, err := g.sessions.Exists(ctx, userID)
	if err != nil {
		g.logger.Error("session lookup failed", "user", userID, "error", err)
		return true
	}
	if !exists {
		return true
	}

	verdict, err := g.nlu.DetectTopicContinuity(ctx, message, history)
	if err != nil {
		g.logger.Warn("continuity check failed, assuming continuation", "user", userID, "error", err)
		return true
	}

	if verdict == nlu.ContinuitySwitch {
		if err := g.sessions.Clear(ctx, userID); err != nil {
			g.logger.Error("session clear failed after topic switch", "user", userID, "error", err)
		}
		return false
	}
	return true
}
