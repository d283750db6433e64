// Package media provides clients for the movie and series managers.
package media

import (
	"context"
	"errors"
	"time"
)

// ErrUnavailable is returned when a manager cannot be reached.
var ErrUnavailable = errors.New("media manager unavailable")

// ErrUnsupportedKind is returned when an operation is routed with a kind
// no configured client handles.
var ErrUnsupportedKind = errors.New("unsupported media kind")

// Kind identifies the media type of an item or request.
type Kind string

const (
	KindMovie  Kind = "movie"
	KindSeries Kind = "series"

	// KindEither marks an ambiguous classification. Clients only accept
	// movie or series; either must be disambiguated before routing.
	KindEither Kind = "either"
)

// Item is a movie or series record from a manager. ID is the manager's
// library id (zero when the item is not in the library yet); RemoteID is the
// stable external id (TMDB for movies, TVDB for series) used to add items.
type Item struct {
	ID       int64  `json:"id,omitempty"`
	RemoteID int64  `json:"remote_id"`
	Title    string `json:"title"`
	Year     int    `json:"year"`
	Kind     Kind   `json:"kind"`
	Overview string `json:"overview,omitempty"`
	Poster   string `json:"poster,omitempty"`
}

// SeasonSelector scopes a series operation to one season, optionally to
// specific episodes within it. An empty Episodes list means the whole season.
type SeasonSelector struct {
	Season   int   `json:"season"`
	Episodes []int `json:"episodes,omitempty"`
}

// Result reports the outcome of a mutation. Success false with no error
// means the manager accepted the call but refused the operation.
type Result struct {
	Success bool
	Message string
}

// Transfer is one in-progress download reported by a manager.
type Transfer struct {
	Title     string
	Progress  float64 // percent complete, 0-100
	SizeBytes int64
	TimeLeft  time.Duration
}

// Transfers is a snapshot of active downloads across both managers.
type Transfers struct {
	Movies   []Transfer
	Episodes []Transfer
}

// Service is the media-manager boundary consumed by the chat strategies.
// Scope is nil or empty for "entire series" and ignored for movies; by the
// time a mutation is issued an unspecified scope is no longer possible.
type Service interface {
	// SearchExternal looks up items not necessarily in the library.
	SearchExternal(ctx context.Context, kind Kind, query string) ([]Item, error)

	// SearchLibrary looks up items already managed.
	SearchLibrary(ctx context.Context, kind Kind, query string) ([]Item, error)

	// Download adds an item (and for series, the selected scope) to the
	// manager and triggers a search for it.
	Download(ctx context.Context, item Item, scope []SeasonSelector) (*Result, error)

	// Delete removes an item, or for a partial series scope just the
	// selected season/episode files.
	Delete(ctx context.Context, item Item, scope []SeasonSelector) (*Result, error)

	// ActiveTransfers returns in-progress downloads from both managers.
	ActiveTransfers(ctx context.Context) (*Transfers, error)
}
