package chat

import (
	"context"
	"log/slog"

	"github.com/vmunix/chatarr/internal/media"
	"github.com/vmunix/chatarr/internal/nlu"
	"github.com/vmunix/chatarr/internal/session"
)

const defaultMaxCandidates = 5

// Dispatcher is the entry point for every incoming message. It resumes a
// pending session when the continuity gate allows, otherwise classifies the
// message and routes it to a strategy. Every failure path degrades to a
// conversational default - a chat surface never hard-fails on one bad model
// response.
type Dispatcher struct {
	deps
	gate       *Gate
	strategies map[session.OperationKind]Strategy
	browse     Strategy
	status     Strategy
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithMaxCandidates bounds how many search results a session keeps.
func WithMaxCandidates(n int) Option {
	return func(d *Dispatcher) {
		d.maxCandidates = n
	}
}

// NewDispatcher wires the orchestration core.
func NewDispatcher(nluSvc nlu.Service, mediaSvc media.Service, sessions session.Store,
	logger *slog.Logger, opts ...Option) *Dispatcher {

	if logger == nil {
		logger = slog.Default()
	}
	d := &Dispatcher{
		deps: deps{
			nlu:           nluSvc,
			media:         mediaSvc,
			sessions:      sessions,
			logger:        logger,
			maxCandidates: defaultMaxCandidates,
		},
		gate: NewGate(sessions, nluSvc, logger.With("component", "gate")),
	}
	for _, opt := range opts {
		opt(d)
	}

	d.strategies = map[session.OperationKind]Strategy{
		session.OpMovieDownload:  NewMovieDownload(d.deps),
		session.OpSeriesDownload: NewSeriesDownload(d.deps),
		session.OpMovieDelete:    NewMovieDelete(d.deps),
		session.OpSeriesDelete:   NewSeriesDelete(d.deps),
	}
	d.browse = NewBrowse(d.deps)
	d.status = NewStatus(d.deps)
	return d
}

// Handle processes one message to a terminal Reply.
func (d *Dispatcher) Handle(ctx context.Context, req Request) *Reply {
	sc, err := d.sessions.Get(ctx, req.UserID)
	if err != nil {
		d.logger.Error("session read failed", "user", req.UserID, "error", err)
		sc = nil
	}

	if sc != nil && d.gate.ShouldContinue(ctx, req.UserID, req.Message, req.History) {
		if strat, ok := d.strategies[sc.Kind]; ok {
			return strat.Execute(ctx, req, sc)
		}
		// A session with an unknown kind can't be resumed; drop it and
		// treat the message as a fresh request.
		d.logger.Warn("unknown operation kind in session", "user", req.UserID, "kind", sc.Kind)
		if err := d.sessions.Clear(ctx, req.UserID); err != nil {
			d.logger.Error("session clear failed", "user", req.UserID, "error", err)
		}
	}

	intent, err := d.nlu.ClassifyIntent(ctx, req.Message)
	if err != nil {
		d.logger.Warn("intent classification failed, using default", "error", err)
		intent = nlu.DefaultIntent()
	}
	req.Intent = intent

	switch routeFor(req.Message, intent) {
	case routeStatus:
		return d.status.Execute(ctx, req, nil)
	case routeDownload:
		if d.resolveKind(ctx, req, intent) == media.KindMovie {
			return d.strategies[session.OpMovieDownload].Execute(ctx, req, nil)
		}
		return d.strategies[session.OpSeriesDownload].Execute(ctx, req, nil)
	case routeDelete:
		if d.resolveKind(ctx, req, intent) == media.KindMovie {
			return d.strategies[session.OpMovieDelete].Execute(ctx, req, nil)
		}
		return d.strategies[session.OpSeriesDelete].Execute(ctx, req, nil)
	default:
		return d.browse.Execute(ctx, req, nil)
	}
}

// resolveKind settles movie-vs-series for download/delete routing. An
// ambiguous classification gets one dedicated disambiguation call; if that
// also fails, movie wins.
func (d *Dispatcher) resolveKind(ctx context.Context, req Request, intent *nlu.Intent) media.Kind {
	if intent.Kind != media.KindEither {
		return intent.Kind
	}
	kind, err := d.nlu.ClassifyMediaKind(ctx, req.Message)
	if err != nil {
		d.logger.Warn("media kind disambiguation failed, defaulting to movie", "error", err)
		return media.KindMovie
	}
	return kind
}
