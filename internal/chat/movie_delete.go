package chat

import (
	"context"
	"fmt"

	"github.com/vmunix/chatarr/internal/media"
	"github.com/vmunix/chatarr/internal/selection"
	"github.com/vmunix/chatarr/internal/session"
)

// MovieDelete handles "delete this movie" requests against the library.
// Like downloads, a sole library match executes immediately - there is no
// granular scope for movies.
type MovieDelete struct {
	deps
}

// NewMovieDelete creates the movie-delete strategy.
func NewMovieDelete(d deps) *MovieDelete {
	return &MovieDelete{deps: d}
}

// Execute runs one turn of the operation.
func (s *MovieDelete) Execute(ctx context.Context, req Request, resume *session.Session) *Reply {
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

func (s *MovieDelete) fresh(ctx context.Context, req Request) *Reply {
	p := s.parseMessage(ctx, req.Message, true, false)
	if p.query == "" {
		return clarifyQuery()
	}

	items, err := s.media.SearchLibrary(ctx, media.KindMovie, p.query)
	if err != nil {
		s.logger.Error("movie library search failed", "query", p.query, "error", err)
		return serviceUnavailable()
	}
	if len(items) == 0 {
		return noResults(p.query)
	}

	if len(items) == 1 {
		return s.execute(ctx, items[0])
	}
	if p.ref != nil {
		item := selection.Resolve(p.ref, items)
		return s.execute(ctx, *item)
	}

	items = s.limit(items)
	if err := s.sessions.Set(ctx, req.UserID, session.New(session.OpMovieDelete, items, p.query)); err != nil {
		s.logger.Error("session save failed", "user", req.UserID, "error", err)
	}
	return pickOne(items, "delete")
}

func (s *MovieDelete) resume(ctx context.Context, req Request, sc *session.Session) (*Reply, error) {
	if len(sc.Candidates) == 0 {
		return nil, fmt.Errorf("session for %q has no candidates", req.UserID)
	}

	p := s.parseMessage(ctx, req.Message, false, false)
	ref := p.ref
	if ref == nil {
		ref = sc.PendingRef
	}
	if ref == nil {
		return pickOne(sc.Candidates, "delete"), nil
	}

	item := selection.Resolve(ref, sc.Candidates)
	if err := s.sessions.Clear(ctx, req.UserID); err != nil {
		return nil, fmt.Errorf("clear session: %w", err)
	}
	return s.executeDelete(ctx, *item, nil)
}

func (s *MovieDelete) execute(ctx context.Context, item media.Item) *Reply {
	reply, err := s.executeDelete(ctx, item, nil)
	if err != nil {
		s.logger.Error("movie delete failed", "title", item.Title, "error", err)
		return apologyNamed(item.Title, "complete the deletion")
	}
	return reply
}
