package media

import (
	"context"
	"fmt"
)

// Router implements Service by dispatching to the movie manager (Radarr) and
// the series manager (Sonarr) based on media kind. Either client may be nil
// when not configured; operations routed to a missing client fail with
// ErrUnsupportedKind.
type Router struct {
	movies *RadarrClient
	series *SonarrClient
}

// NewRouter creates a Router over the configured manager clients.
func NewRouter(movies *RadarrClient, series *SonarrClient) *Router {
	return &Router{movies: movies, series: series}
}

// SearchExternal looks up items via the manager for the given kind.
func (r *Router) SearchExternal(ctx context.Context, kind Kind, query string) ([]Item, error) {
	switch kind {
	case KindMovie:
		if r.movies == nil {
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedKind, kind)
		}
		return r.movies.Lookup(ctx, query)
	case KindSeries:
		if r.series == nil {
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedKind, kind)
		}
		return r.series.Lookup(ctx, query)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedKind, kind)
	}
}

// SearchLibrary looks up managed items via the manager for the given kind.
func (r *Router) SearchLibrary(ctx context.Context, kind Kind, query string) ([]Item, error) {
	switch kind {
	case KindMovie:
		if r.movies == nil {
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedKind, kind)
		}
		return r.movies.Library(ctx, query)
	case KindSeries:
		if r.series == nil {
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedKind, kind)
		}
		return r.series.Library(ctx, query)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedKind, kind)
	}
}

// Download routes an add/search mutation by the item's kind.
func (r *Router) Download(ctx context.Context, item Item, scope []SeasonSelector) (*Result, error) {
	switch item.Kind {
	case KindMovie:
		if r.movies == nil {
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedKind, item.Kind)
		}
		return r.movies.Add(ctx, item)
	case KindSeries:
		if r.series == nil {
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedKind, item.Kind)
		}
		return r.series.Add(ctx, item, scope)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedKind, item.Kind)
	}
}

// Delete routes a delete mutation by the item's kind.
func (r *Router) Delete(ctx context.Context, item Item, scope []SeasonSelector) (*Result, error) {
	switch item.Kind {
	case KindMovie:
		if r.movies == nil {
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedKind, item.Kind)
		}
		return r.movies.Delete(ctx, item)
	case KindSeries:
		if r.series == nil {
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedKind, item.Kind)
		}
		return r.series.Delete(ctx, item, scope)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedKind, item.Kind)
	}
}

// ActiveTransfers gathers in-progress downloads from both managers. A
// missing client contributes an empty list.
func (r *Router) ActiveTransfers(ctx context.Context) (*Transfers, error) {
	t := &Transfers{}
	if r.movies != nil {
		movies, err := r.movies.Queue(ctx)
		if err != nil {
			return nil, fmt.Errorf("movie transfers: %w", err)
		}
		t.Movies = movies
	}
	if r.series != nil {
		episodes, err := r.series.Queue(ctx)
		if err != nil {
			return nil, fmt.Errorf("series transfers: %w", err)
		}
		t.Episodes = episodes
	}
	return t, nil
}
