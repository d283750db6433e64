package media

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/avast/retry-go/v4"
)

// RadarrClient talks to a Radarr v3 instance (the movie manager).
type RadarrClient struct {
	baseURL        string
	apiKey         string
	httpClient     *http.Client
	rootFolder     string
	qualityProfile int64
	retries        uint
}

// RadarrOption configures a RadarrClient.
type RadarrOption func(*RadarrClient)

// WithRadarrHTTPClient sets a custom HTTP client.
func WithRadarrHTTPClient(hc *http.Client) RadarrOption {
	return func(c *RadarrClient) {
		c.httpClient = hc
	}
}

// WithRadarrRootFolder sets the root folder used when adding movies.
func WithRadarrRootFolder(path string) RadarrOption {
	return func(c *RadarrClient) {
		c.rootFolder = path
	}
}

// WithRadarrQualityProfile sets the quality profile id used when adding movies.
func WithRadarrQualityProfile(id int64) RadarrOption {
	return func(c *RadarrClient) {
		c.qualityProfile = id
	}
}

// NewRadarrClient creates a new Radarr client.
func NewRadarrClient(baseURL, apiKey string, opts ...RadarrOption) *RadarrClient {
	c := &RadarrClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		rootFolder:     "/movies",
		qualityProfile: 1,
		retries:        2,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type radarrMovie struct {
	ID       int64  `json:"id"`
	TMDBID   int64  `json:"tmdbId"`
	Title    string `json:"title"`
	Year     int    `json:"year"`
	Overview string `json:"overview"`
	Images   []struct {
		CoverType string `json:"coverType"`
		RemoteURL string `json:"remoteUrl"`
	} `json:"images"`
}

func (m radarrMovie) item() Item {
	it := Item{
		ID:       m.ID,
		RemoteID: m.TMDBID,
		Title:    m.Title,
		Year:     m.Year,
		Kind:     KindMovie,
		Overview: m.Overview,
	}
	for _, img := range m.Images {
		if img.CoverType == "poster" {
			it.Poster = img.RemoteURL
			break
		}
	}
	return it
}

// Lookup searches external movie metadata through Radarr.
func (c *RadarrClient) Lookup(ctx context.Context, query string) ([]Item, error) {
	var movies []radarrMovie
	path := "/api/v3/movie/lookup?term=" + url.QueryEscape(query)
	if err := c.get(ctx, path, &movies); err != nil {
		return nil, fmt.Errorf("movie lookup: %w", err)
	}
	items := make([]Item, 0, len(movies))
	for _, m := range movies {
		items = append(items, m.item())
	}
	return items, nil
}

// Library returns managed movies matching the query by fuzzy title.
func (c *RadarrClient) Library(ctx context.Context, query string) ([]Item, error) {
	var movies []radarrMovie
	if err := c.get(ctx, "/api/v3/movie", &movies); err != nil {
		return nil, fmt.Errorf("movie library: %w", err)
	}
	items := make([]Item, 0, len(movies))
	for _, m := range movies {
		items = append(items, m.item())
	}
	return filterByTitle(items, query), nil
}

// Add sends a movie to Radarr and triggers a search for it.
func (c *RadarrClient) Add(ctx context.Context, item Item) (*Result, error) {
	body := map[string]any{
		"tmdbId":           item.RemoteID,
		"title":            item.Title,
		"year":             item.Year,
		"qualityProfileId": c.qualityProfile,
		"rootFolderPath":   c.rootFolder,
		"monitored":        true,
		"addOptions": map[string]any{
			"searchForMovie": true,
		},
	}
	if err := c.post(ctx, "/api/v3/movie", body); err != nil {
		return nil, fmt.Errorf("add movie: %w", err)
	}
	return &Result{Success: true}, nil
}

// Delete removes a movie and its files from Radarr.
func (c *RadarrClient) Delete(ctx context.Context, item Item) (*Result, error) {
	if item.ID == 0 {
		return &Result{Success: false, Message: "not in library"}, nil
	}
	path := fmt.Sprintf("/api/v3/movie/%d?deleteFiles=true", item.ID)
	if err := c.del(ctx, path); err != nil {
		return nil, fmt.Errorf("delete movie: %w", err)
	}
	return &Result{Success: true}, nil
}

type radarrQueueRecord struct {
	Title    string  `json:"title"`
	Size     float64 `json:"size"`
	SizeLeft float64 `json:"sizeleft"`
	TimeLeft string  `json:"timeleft"`
}

// Queue returns the active download queue.
func (c *RadarrClient) Queue(ctx context.Context) ([]Transfer, error) {
	var queue struct {
		Records []radarrQueueRecord `json:"records"`
	}
	if err := c.get(ctx, "/api/v3/queue", &queue); err != nil {
		return nil, fmt.Errorf("movie queue: %w", err)
	}
	transfers := make([]Transfer, 0, len(queue.Records))
	for _, r := range queue.Records {
		transfers = append(transfers, queueTransfer(r.Title, r.Size, r.SizeLeft, r.TimeLeft))
	}
	return transfers, nil
}

func (c *RadarrClient) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *RadarrClient) post(ctx context.Context, path string, body any) error {
	return c.do(ctx, http.MethodPost, path, body, nil)
}

func (c *RadarrClient) del(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func (c *RadarrClient) do(ctx context.Context, method, path string, body, out any) error {
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

// queueTransfer converts a queue record to a Transfer. Size fields come back
// as floats from both managers; timeleft is "hh:mm:ss".
func queueTransfer(title string, size, sizeLeft float64, timeLeft string) Transfer {
	t := Transfer{
		Title:     title,
		SizeBytes: int64(size),
	}
	if size > 0 {
		t.Progress = (size - sizeLeft) / size * 100
	}
	if d, err := parseTimeLeft(timeLeft); err == nil {
		t.TimeLeft = d
	}
	return t
}

func parseTimeLeft(s string) (time.Duration, error) {
	if s == "" {
		return 0, fmt.Errorf("empty timeleft")
	}
	var h, m, sec int
	if _, err := fmt.Sscanf(s, "%d:%d:%d", &h, &m, &sec); err != nil {
		return 0, fmt.Errorf("parse timeleft %q: %w", s, err)
	}
	return time.Duration(h)*time.Hour + time.Duration(m)*time.Minute + time.Duration(sec)*time.Second, nil
}

func doRequest(ctx context.Context, hc *http.Client, method, url, apiKey string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("X-Api-Key", apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := hc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 500 {
		return fmt.Errorf("%w: status %s", ErrUnavailable, resp.Status)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("manager API error: %s", resp.Status)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// isTransient reports whether a request error is worth retrying. 4xx
// responses are not; connection failures and 5xx are.
func isTransient(err error) bool {
	return errors.Is(err, ErrUnavailable)
}
