package chat

import (
	"context"
	"fmt"

	"github.com/vmunix/chatarr/internal/media"
	"github.com/vmunix/chatarr/internal/selection"
	"github.com/vmunix/chatarr/internal/session"
)

// SeriesDelete handles "delete this series" requests. It needs two answers
// before any mutation: which show (when more than one library match) and
// which parts (always - an explicit "entire series" counts, an unspecified
// scope never does). Either answer can arrive in either turn, in any order,
// so the resume path works from the merge of what this message supplies and
// what earlier turns banked.
type SeriesDelete struct {
	deps
}

// NewSeriesDelete creates the series-delete strategy.
func NewSeriesDelete(d deps) *SeriesDelete {
	return &SeriesDelete{deps: d}
}

// Execute runs one turn of the operation.
func (s *SeriesDelete) Execute(ctx context.Context, req Request, resume *session.Session) *Reply {
	if resume != nil {
		reply, err := s.resume(ctx, req, resume)
		if err != nil {
			s.failSafe(ctx, req.UserID, err)
			return genericApology()
		}
		return reply
	}
	return s.fresh(ctx, req)
}

func (s *SeriesDelete) fresh(ctx context.Context, req Request) *Reply {
	p := s.parseMessage(ctx, req.Message, true, true)
	if p.query == "" {
		return clarifyQuery()
	}

	items, err := s.media.SearchLibrary(ctx, media.KindSeries, p.query)
	if err != nil {
		s.logger.Error("series library search failed", "query", p.query, "error", err)
		return serviceUnavailable()
	}
	if len(items) == 0 {
		return noResults(p.query)
	}

	if len(items) == 1 {
		if selection.Ready(p.parts) {
			return s.execute(ctx, items[0], p.parts)
		}
		// One show matched but deleting needs an explicit scope.
		if err := s.store(ctx, req.UserID, items[:1], p.query, nil, nil); err != nil {
			s.logger.Error("session save failed", "user", req.UserID, "error", err)
		}
		return askParts(items[0].Title)
	}

	if p.ref != nil {
		item := selection.Resolve(p.ref, items)
		if selection.Ready(p.parts) {
			return s.execute(ctx, *item, p.parts)
		}
		if err := s.store(ctx, req.UserID, []media.Item{*item}, p.query, nil, nil); err != nil {
			s.logger.Error("session save failed", "user", req.UserID, "error", err)
		}
		return askParts(item.Title)
	}

	items = s.limit(items)
	if err := s.store(ctx, req.UserID, items, p.query, nil, p.parts); err != nil {
		s.logger.Error("session save failed", "user", req.UserID, "error", err)
	}
	return pickOne(items, "delete")
}

// resume enumerates the full matrix: {reference known, scope known} after
// merging this message with the pending fields, per candidate count.
func (s *SeriesDelete) resume(ctx context.Context, req Request, sc *session.Session) (*Reply, error) {
	if len(sc.Candidates) == 0 {
		return nil, fmt.Errorf("session for %q has no candidates", req.UserID)
	}

	p := s.parseMessage(ctx, req.Message, false, true)
	ref := p.ref
	if ref == nil {
		ref = sc.PendingRef
	}
	parts := p.parts
	if parts == nil {
		parts = sc.PendingParts
	}
	partsReady := selection.Ready(parts)

	if len(sc.Candidates) == 1 {
		// The show is settled; only the scope matters.
		if !partsReady {
			return askParts(sc.Candidates[0].Title), nil
		}
		if err := s.sessions.Clear(ctx, req.UserID); err != nil {
			return nil, fmt.Errorf("clear session: %w", err)
		}
		return s.executeDelete(ctx, sc.Candidates[0], parts)
	}

	switch {
	case ref == nil && !partsReady:
		// Neither answer yet: repeat the original prompt unchanged.
		return pickOne(sc.Candidates, "delete"), nil

	case ref == nil && partsReady:
		// Scope arrived before the pick; bank it and ask for the show.
		sc.PendingParts = parts
		if err := s.sessions.Set(ctx, req.UserID, sc); err != nil {
			return nil, fmt.Errorf("save session: %w", err)
		}
		return pickOne(sc.Candidates, "delete"), nil

	case ref != nil && !partsReady:
		// Show picked, scope still missing; bank the pick.
		item := selection.Resolve(ref, sc.Candidates)
		sc.PendingRef = ref
		if err := s.sessions.Set(ctx, req.UserID, sc); err != nil {
			return nil, fmt.Errorf("save session: %w", err)
		}
		return askParts(item.Title), nil

	default:
		// Both answers in hand: resolve, clear, execute.
		item := selection.Resolve(ref, sc.Candidates)
		if err := s.sessions.Clear(ctx, req.UserID); err != nil {
			return nil, fmt.Errorf("clear session: %w", err)
		}
		return s.executeDelete(ctx, *item, parts)
	}
}

func (s *SeriesDelete) store(ctx context.Context, userID string, items []media.Item, query string,
	ref *selection.Reference, parts *selection.PartsSpec) error {

	sc := session.New(session.OpSeriesDelete, items, query)
	sc.PendingRef = ref
	sc.PendingParts = parts
	return s.sessions.Set(ctx, userID, sc)
}

func (s *SeriesDelete) execute(ctx context.Context, item media.Item, parts *selection.PartsSpec) *Reply {
	reply, err := s.executeDelete(ctx, item, parts)
	if err != nil {
		s.logger.Error("series delete failed", "title", item.Title, "error", err)
		return apologyNamed(item.Title, "complete the deletion")
	}
	return reply
}
