package media

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/avast/retry-go/v4"
)

// SonarrClient talks to a Sonarr v3 instance (the series manager).
type SonarrClient struct {
	baseURL        string
	apiKey         string
	httpClient     *http.Client
	rootFolder     string
	qualityProfile int64
	retries        uint
}

// SonarrOption configures a SonarrClient.
type SonarrOption func(*SonarrClient)

// WithSonarrHTTPClient sets a custom HTTP client.
func WithSonarrHTTPClient(hc *http.Client) SonarrOption {
	return func(c *SonarrClient) {
		c.httpClient = hc
	}
}

// WithSonarrRootFolder sets the root folder used when adding series.
func WithSonarrRootFolder(path string) SonarrOption {
	return func(c *SonarrClient) {
		c.rootFolder = path
	}
}

// WithSonarrQualityProfile sets the quality profile id used when adding series.
func WithSonarrQualityProfile(id int64) SonarrOption {
	return func(c *SonarrClient) {
		c.qualityProfile = id
	}
}

// NewSonarrClient creates a new Sonarr client.
func NewSonarrClient(baseURL, apiKey string, opts ...SonarrOption) *SonarrClient {
	c := &SonarrClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		rootFolder:     "/tv",
		qualityProfile: 1,
		retries:        2,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type sonarrSeries struct {
	ID       int64  `json:"id"`
	TVDBID   int64  `json:"tvdbId"`
	Title    string `json:"title"`
	Year     int    `json:"year"`
	Overview string `json:"overview"`
	Images   []struct {
		CoverType string `json:"coverType"`
		RemoteURL string `json:"remoteUrl"`
	} `json:"images"`
	Seasons []sonarrSeason `json:"seasons"`
}

type sonarrSeason struct {
	SeasonNumber int  `json:"seasonNumber"`
	Monitored    bool `json:"monitored"`
}

func (s sonarrSeries) item() Item {
	it := Item{
		ID:       s.ID,
		RemoteID: s.TVDBID,
		Title:    s.Title,
		Year:     s.Year,
		Kind:     KindSeries,
		Overview: s.Overview,
	}
	for _, img := range s.Images {
		if img.CoverType == "poster" {
			it.Poster = img.RemoteURL
			break
		}
	}
	return it
}

// Lookup searches external series metadata through Sonarr.
func (c *SonarrClient) Lookup(ctx context.Context, query string) ([]Item, error) {
	var series []sonarrSeries
	path := "/api/v3/series/lookup?term=" + url.QueryEscape(query)
	if err := c.get(ctx, path, &series); err != nil {
		return nil, fmt.Errorf("series lookup: %w", err)
	}
	items := make([]Item, 0, len(series))
	for _, s := range series {
		items = append(items, s.item())
	}
	return items, nil
}

// Library returns managed series matching the query by fuzzy title.
func (c *SonarrClient) Library(ctx context.Context, query string) ([]Item, error) {
	var series []sonarrSeries
	if err := c.get(ctx, "/api/v3/series", &series); err != nil {
		return nil, fmt.Errorf("series library: %w", err)
	}
	items := make([]Item, 0, len(series))
	for _, s := range series {
		items = append(items, s.item())
	}
	return filterByTitle(items, query), nil
}

// Add sends a series to Sonarr and triggers a search. A non-empty scope
// monitors only the selected seasons; otherwise the whole series is
// monitored. For series already in the library it issues search commands
// instead of re-adding.
func (c *SonarrClient) Add(ctx context.Context, item Item, scope []SeasonSelector) (*Result, error) {
	if item.ID != 0 {
		return c.search(ctx, item, scope)
	}

	body := map[string]any{
		"tvdbId":           item.RemoteID,
		"title":            item.Title,
		"qualityProfileId": c.qualityProfile,
		"rootFolderPath":   c.rootFolder,
		"monitored":        true,
		"addOptions": map[string]any{
			"searchForMissingEpisodes": true,
		},
	}
	if len(scope) > 0 {
		seasons := make([]map[string]any, 0, len(scope))
		for _, sel := range scope {
			seasons = append(seasons, map[string]any{
				"seasonNumber": sel.Season,
				"monitored":    true,
			})
		}
		body["seasons"] = seasons
	}
	if err := c.post(ctx, "/api/v3/series", body); err != nil {
		return nil, fmt.Errorf("add series: %w", err)
	}
	return &Result{Success: true}, nil
}

// search issues SeasonSearch or SeriesSearch commands for a library series.
func (c *SonarrClient) search(ctx context.Context, item Item, scope []SeasonSelector) (*Result, error) {
	if len(scope) == 0 {
		body := map[string]any{"name": "SeriesSearch", "seriesId": item.ID}
		if err := c.post(ctx, "/api/v3/command", body); err != nil {
			return nil, fmt.Errorf("series search: %w", err)
		}
		return &Result{Success: true}, nil
	}
	for _, sel := range scope {
		body := map[string]any{
			"name":         "SeasonSearch",
			"seriesId":     item.ID,
			"seasonNumber": sel.Season,
		}
		if err := c.post(ctx, "/api/v3/command", body); err != nil {
			return nil, fmt.Errorf("season %d search: %w", sel.Season, err)
		}
	}
	return &Result{Success: true}, nil
}

// Delete removes a series, or with a non-empty scope just the selected
// season/episode files.
func (c *SonarrClient) Delete(ctx context.Context, item Item, scope []SeasonSelector) (*Result, error) {
	if item.ID == 0 {
		return &Result{Success: false, Message: "not in library"}, nil
	}
	if len(scope) == 0 {
		path := fmt.Sprintf("/api/v3/series/%d?deleteFiles=true", item.ID)
		if err := c.del(ctx, path); err != nil {
			return nil, fmt.Errorf("delete series: %w", err)
		}
		return &Result{Success: true}, nil
	}
	return c.deleteScoped(ctx, item, scope)
}

type sonarrEpisode struct {
	ID            int64 `json:"id"`
	SeasonNumber  int   `json:"seasonNumber"`
	EpisodeNumber int   `json:"episodeNumber"`
	EpisodeFileID int64 `json:"episodeFileId"`
}

// deleteScoped deletes the episode files covered by the selectors.
func (c *SonarrClient) deleteScoped(ctx context.Context, item Item, scope []SeasonSelector) (*Result, error) {
	var episodes []sonarrEpisode
	path := fmt.Sprintf("/api/v3/episode?seriesId=%d", item.ID)
	if err := c.get(ctx, path, &episodes); err != nil {
		return nil, fmt.Errorf("list episodes: %w", err)
	}

	deleted := 0
	for _, sel := range scope {
		for _, ep := range episodes {
			if ep.SeasonNumber != sel.Season || ep.EpisodeFileID == 0 {
				continue
			}
			if len(sel.Episodes) > 0 && !containsInt(sel.Episodes, ep.EpisodeNumber) {
				continue
			}
			filePath := fmt.Sprintf("/api/v3/episodefile/%d", ep.EpisodeFileID)
			if err := c.del(ctx, filePath); err != nil {
				return nil, fmt.Errorf("delete episode file %d: %w", ep.EpisodeFileID, err)
			}
			deleted++
		}
	}
	if deleted == 0 {
		return &Result{Success: false, Message: "no matching episode files"}, nil
	}
	return &Result{Success: true}, nil
}

// Queue returns the active download queue.
func (c *SonarrClient) Queue(ctx context.Context) ([]Transfer, error) {
	var queue struct {
		Records []struct {
			Title    string  `json:"title"`
			Size     float64 `json:"size"`
			SizeLeft float64 `json:"sizeleft"`
			TimeLeft string  `json:"timeleft"`
		} `json:"records"`
	}
	if err := c.get(ctx, "/api/v3/queue", &queue); err != nil {
		return nil, fmt.Errorf("series queue: %w", err)
	}
	transfers := make([]Transfer, 0, len(queue.Records))
	for _, r := range queue.Records {
		transfers = append(transfers, queueTransfer(r.Title, r.Size, r.SizeLeft, r.TimeLeft))
	}
	return transfers, nil
}

func containsInt(list []int, n int) bool {
	for _, v := range list {
		if v == n {
			return true
		}
	}
	return false
}

func (c *SonarrClient) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *SonarrClient) post(ctx context.Context, path string, body any) error {
	return c.do(ctx, http.MethodPost, path, body, nil)
}

func (c *SonarrClient) del(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func (c *SonarrClient) do(ctx context.Context, method, path string, body, out any) error {
	return retry.Do(
		func() error {
			return doRequest(ctx, c.httpClient, method, c.baseURL+path, c.apiKey, body, out)
		},
		retry.Attempts(c.retries+1),
		retry.Context(ctx),
		retry.LastErrorOnly(true),
		retry.RetryIf(isTransient),
	)
}
