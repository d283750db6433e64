// Package session stores the per-user pending operation between chat turns.
package session

import (
	"context"
	"time"

	"github.com/vmunix/chatarr/internal/media"
	"github.com/vmunix/chatarr/internal/selection"
)

// OperationKind identifies which multi-turn operation a session belongs to.
// Browse and status checks are stateless and never persist a session.
type OperationKind string

const (
	OpMovieDownload  OperationKind = "movie-download"
	OpSeriesDownload OperationKind = "series-download"
	OpMovieDelete    OperationKind = "movie-delete"
	OpSeriesDelete   OperationKind = "series-delete"
)

// Valid reports whether k is a known operation kind.
func (k OperationKind) Valid() bool {
	switch k {
	case OpMovieDownload, OpSeriesDownload, OpMovieDelete, OpSeriesDelete:
		return true
	}
	return false
}

// Session is one user's in-progress, not-yet-executed operation. Candidates
// keeps the ordering that was shown to the user; ordinal selection depends
// on it staying unsorted. PendingRef and PendingParts carry selections the
// user supplied early, before the operation could complete.
type Session struct {
	Kind         OperationKind        `json:"kind"`
	Candidates   []media.Item         `json:"candidates"`
	Query        string               `json:"query"`
	CreatedAt    time.Time            `json:"created_at"`
	Active       bool                 `json:"active"`
	PendingRef   *selection.Reference `json:"pending_ref,omitempty"`
	PendingParts *selection.PartsSpec `json:"pending_parts,omitempty"`
}

// New creates an active session for a fresh search.
func New(kind OperationKind, candidates []media.Item, query string) *Session {
	return &Session{
		Kind:       kind,
		Candidates: candidates,
		Query:      query,
		CreatedAt:  time.Now(),
		Active:     true,
	}
}

// Store keeps at most one active session per user. Implementations treat
// sessions older than their TTL as absent, and Set unconditionally replaces
// whatever was there before.
type Store interface {
	// Get returns the user's active session, or nil when there is none.
	Get(ctx context.Context, userID string) (*Session, error)

	// Set replaces the user's session.
	Set(ctx context.Context, userID string, s *Session) error

	// Clear removes the user's session. Clearing a missing session is
	// not an error.
	Clear(ctx context.Context, userID string) error

	// Exists reports whether the user has an active, unexpired session.
	Exists(ctx context.Context, userID string) (bool, error)
}
