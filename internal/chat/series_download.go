package chat

import (
	"context"
	"fmt"

	"github.com/vmunix/chatarr/internal/media"
	"github.com/vmunix/chatarr/internal/selection"
	"github.com/vmunix/chatarr/internal/session"
)

// SeriesDownload handles "download this series" requests. Series always
// need a parts scope before executing: even a single search hit is not
// downloaded without the user saying which seasons (or "entire series"),
// unless that scope arrived in the same message.
type SeriesDownload struct {
	deps
}

// NewSeriesDownload creates the series-download strategy.
func NewSeriesDownload(d deps) *SeriesDownload {
	return &SeriesDownload{deps: d}
}

// Execute runs one turn of the operation.
func (s *SeriesDownload) Execute(ctx context.Context, req Request, resume *session.Session) *Reply {
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

func (s *SeriesDownload) fresh(ctx context.Context, req Request) *Reply {
	p := s.parseMessage(ctx, req.Message, true, true)
	if p.query == "" {
		return clarifyQuery()
	}

	items, err := s.media.SearchExternal(ctx, media.KindSeries, p.query)
	if err != nil {
		s.logger.Error("series search failed", "query", p.query, "error", err)
		return serviceUnavailable()
	}
	if len(items) == 0 {
		return noResults(p.query)
	}

	if len(items) == 1 {
		if selection.Ready(p.parts) {
			return s.execute(ctx, items[0], p.parts)
		}
		// A sole match still needs a scope; ask for parts only.
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
		// Item settled, scope missing: narrow the session to the pick.
		if err := s.store(ctx, req.UserID, []media.Item{*item}, p.query, nil, nil); err != nil {
			s.logger.Error("session save failed", "user", req.UserID, "error", err)
		}
		return askParts(item.Title)
	}

	// No reference yet; keep any early-supplied scope for later turns.
	items = s.limit(items)
	if err := s.store(ctx, req.UserID, items, p.query, nil, p.parts); err != nil {
		s.logger.Error("session save failed", "user", req.UserID, "error", err)
	}
	return pickOne(items, "download")
}

func (s *SeriesDownload) resume(ctx context.Context, req Request, sc *session.Session) (*Reply, error) {
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

	if len(sc.Candidates) > 1 && ref == nil {
		// Can't settle the item yet; bank whatever arrived and re-ask.
		sc.PendingParts = parts
		if err := s.sessions.Set(ctx, req.UserID, sc); err != nil {
			return nil, fmt.Errorf("save session: %w", err)
		}
		return pickOne(sc.Candidates, "download"), nil
	}

	var item *media.Item
	if len(sc.Candidates) == 1 {
		item = &sc.Candidates[0]
	} else {
		item = selection.Resolve(ref, sc.Candidates)
	}

	if !selection.Ready(parts) {
		sc.PendingRef = ref
		if err := s.sessions.Set(ctx, req.UserID, sc); err != nil {
			return nil, fmt.Errorf("save session: %w", err)
		}
		return askParts(item.Title), nil
	}

	if err := s.sessions.Clear(ctx, req.UserID); err != nil {
		return nil, fmt.Errorf("clear session: %w", err)
	}
	return s.executeDownload(ctx, *item, parts)
}

func (s *SeriesDownload) store(ctx context.Context, userID string, items []media.Item, query string,
	ref *selection.Reference, parts *selection.PartsSpec) error {

	sc := session.New(session.OpSeriesDownload, items, query)
	sc.PendingRef = ref
	sc.PendingParts = parts
	return s.sessions.Set(ctx, userID, sc)
}

func (s *SeriesDownload) execute(ctx context.Context, item media.Item, parts *selection.PartsSpec) *Reply {
	reply, err := s.executeDownload(ctx, item, parts)
	if err != nil {
		s.logger.Error("series download failed", "title", item.Title, "error", err)
		return apologyNamed(item.Title, "start the download")
	}
	return reply
}
