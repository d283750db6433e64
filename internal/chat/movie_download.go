package chat

import (
	"context"
	"fmt"

	"github.com/vmunix/chatarr/internal/media"
	"github.com/vmunix/chatarr/internal/selection"
	"github.com/vmunix/chatarr/internal/session"
)

// MovieDownload handles "download this movie" requests. Movies have no
// parts scope, so a single search hit executes immediately.
type MovieDownload struct {
	deps
}

// NewMovieDownload creates the movie-download strategy.
func NewMovieDownload(d deps) *MovieDownload {
	return &MovieDownload{deps: d}
}

// Execute runs one turn of the operation.
func (s *MovieDownload) Execute(ctx context.Context, req Request, resume *session.Session) *Reply {
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

func (s *MovieDownload) fresh(ctx context.Context, req Request) *Reply {
	p := s.parseMessage(ctx, req.Message, true, false)
	if p.query == "" {
		return clarifyQuery()
	}

	items, err := s.media.SearchExternal(ctx, media.KindMovie, p.query)
	if err != nil {
		s.logger.Error("movie search failed", "query", p.query, "error", err)
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
	if err := s.sessions.Set(ctx, req.UserID, session.New(session.OpMovieDownload, items, p.query)); err != nil {
		s.logger.Error("session save failed", "user", req.UserID, "error", err)
	}
	return pickOne(items, "download")
}

func (s *MovieDownload) resume(ctx context.Context, req Request, sc *session.Session) (*Reply, error) {
	if len(sc.Candidates) == 0 {
		return nil, fmt.Errorf("session for %q has no candidates", req.UserID)
	}

	p := s.parseMessage(ctx, req.Message, false, false)
	ref := p.ref
	if ref == nil {
		ref = sc.PendingRef
	}
	if ref == nil {
		// Still no usable selection; repeat the prompt, keep the session.
		return pickOne(sc.Candidates, "download"), nil
	}

	item := selection.Resolve(ref, sc.Candidates)
	if err := s.sessions.Clear(ctx, req.UserID); err != nil {
		return nil, fmt.Errorf("clear session: %w", err)
	}
	return s.executeDownload(ctx, *item, nil)
}

// execute performs the mutation on the fresh path, where a transport error
// becomes a named apology rather than a session reset.
func (s *MovieDownload) execute(ctx context.Context, item media.Item) *Reply {
	reply, err := s.executeDownload(ctx, item, nil)
	if err != nil {
		s.logger.Error("movie download failed", "title", item.Title, "error", err)
		return apologyNamed(item.Title, "start the download")
	}
	return reply
}
