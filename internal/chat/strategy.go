package chat

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/vmunix/chatarr/internal/media"
	"github.com/vmunix/chatarr/internal/nlu"
	"github.com/vmunix/chatarr/internal/selection"
	"github.com/vmunix/chatarr/internal/session"
)

// deps bundles the collaborators every strategy needs.
type deps struct {
	nlu           nlu.Service
	media         media.Service
	sessions      session.Store
	logger        *slog.Logger
	maxCandidates int
}

// parsed is the result of reading a fresh message: any of the three pieces
// may be absent, in any combination.
type parsed struct {
	query string
	ref   *selection.Reference
	parts *selection.PartsSpec
}

// parseMessage extracts query, selection reference, and parts scope from one
// message. The three collaborator calls run concurrently and fail
// independently: one parser erroring never blocks the others, it just
// contributes an absent piece.
func (d *deps) parseMessage(ctx context.Context, message string, wantQuery, wantParts bool) parsed {
	var p parsed
	g, ctx := errgroup.WithContext(ctx)

	if wantQuery {
		g.Go(func() error {
			q, err := d.nlu.ExtractSearchQuery(ctx, message)
			if err != nil {
				d.logger.Warn("query extraction failed", "error", err)
				return nil
			}
			p.query = q
			return nil
		})
	}
	g.Go(func() error {
		ref, err := d.nlu.ParseSelectionReference(ctx, message)
		if err != nil {
			d.logger.Warn("selection parse failed", "error", err)
			return nil
		}
		p.ref = ref
		return nil
	})
	if wantParts {
		g.Go(func() error {
			parts, err := d.nlu.ParseParts(ctx, message)
			if err != nil {
				d.logger.Warn("parts parse failed", "error", err)
				return nil
			}
			p.parts = parts
			return nil
		})
	}

	_ = g.Wait() // goroutines only ever return nil
	return p
}

// limit bounds a candidate list to the configured maximum, preserving order.
func (d *deps) limit(items []media.Item) []media.Item {
	if d.maxCandidates > 0 && len(items) > d.maxCandidates {
		return items[:d.maxCandidates]
	}
	return items
}

// failSafe clears the user's session after an unexpected error so a broken
// operation can never resurface on the next turn.
func (d *deps) failSafe(ctx context.Context, userID string, err error) {
	d.logger.Error("strategy failed on resume path", "user", userID, "error", err)
	if cerr := d.sessions.Clear(ctx, userID); cerr != nil {
		d.logger.Error("session clear failed", "user", userID, "error", cerr)
	}
}

// executeDownload clears nothing and performs the mutation. A logical
// refusal from the manager becomes a named apology; a transport error is
// returned for the caller to absorb according to its path.
func (d *deps) executeDownload(ctx context.Context, item media.Item, parts *selection.PartsSpec) (*Reply, error) {
	var scope []media.SeasonSelector
	if parts != nil {
		scope = parts.Selectors
	}
	res, err := d.media.Download(ctx, item, scope)
	if err != nil {
		return nil, err
	}
	if !res.Success {
		d.logger.Warn("download refused", "title", item.Title, "reason", res.Message)
		return apologyNamed(item.Title, "start the download"), nil
	}
	return successDownload(item, parts), nil
}

// executeDelete mirrors executeDownload for delete mutations.
func (d *deps) executeDelete(ctx context.Context, item media.Item, parts *selection.PartsSpec) (*Reply, error) {
	var scope []media.SeasonSelector
	if parts != nil {
		scope = parts.Selectors
	}
	res, err := d.media.Delete(ctx, item, scope)
	if err != nil {
		return nil, err
	}
	if !res.Success {
		d.logger.Warn("delete refused", "title", item.Title, "reason", res.Message)
		return apologyNamed(item.Title, "complete the deletion"), nil
	}
	return successDelete(item, parts), nil
}
