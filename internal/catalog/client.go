// Package catalog is a read-only client for the TMDB v3 movie API.
// Callers treat it as an opaque collaborator: errors degrade to empty screens
// and never enter the booking error taxonomy.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultBaseURL      = "https://api.themoviedb.org/3"
	DefaultImageBaseURL = "https://image.tmdb.org/t/p"

	// FallbackLanguage supplies overviews missing from the configured language.
	FallbackLanguage = "en-US"
)

// ErrNoAPIKey is returned by every call when no API key is configured.
var ErrNoAPIKey = errors.New("catalog API key not configured")

// StatusError is a non-2xx response from the API.
type StatusError struct {
	Status int
	Path   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("catalog %s: unexpected status %d", e.Path, e.Status)
}

type Config struct {
	APIKey       string
	BaseURL      string
	ImageBaseURL string
	Language     string
	Region       string
	Timeout      time.Duration
	CacheTTL     time.Duration
}

// Client issues GET requests and decodes JSON responses, consulting the cache first.
type Client struct {
	cfg   Config
	http  *http.Client
	cache Cache
}

// New creates a client. A nil cache disables caching.
func New(cfg Config, cache Cache) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.ImageBaseURL == "" {
		cfg.ImageBaseURL = DefaultImageBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = 5 * time.Minute
	}
	if cache == nil {
		cache = NopCache{}
	}
	return &Client{
		cfg:   cfg,
		http:  &http.Client{Timeout: cfg.Timeout},
		cache: cache,
	}
}

func (c *Client) NowPlaying(ctx context.Context) ([]Movie, error) {
	return c.list(ctx, "/movie/now_playing", nil)
}

func (c *Client) Upcoming(ctx context.Context) ([]Movie, error) {
	return c.list(ctx, "/movie/upcoming", nil)
}

func (c *Client) Popular(ctx context.Context) ([]Movie, error) {
	return c.list(ctx, "/movie/popular", nil)
}

// Search finds movies by title. A blank query returns nothing without a request.
func (c *Client) Search(ctx context.Context, query string) ([]Movie, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []Movie{}, nil
	}
	return c.list(ctx, "/search/movie", url.Values{"query": {query}})
}

// Details fetches one movie in the configured language. When its overview is
// empty and the language is not already the fallback, the fallback language
// overview is used instead.
func (c *Client) Details(ctx context.Context, id int64) (*MovieDetails, error) {
	var d MovieDetails
	if err := c.get(ctx, moviePath(id, ""), c.params(nil, false), &d); err != nil {
		return nil, err
	}
	if strings.TrimSpace(d.Overview) != "" || c.cfg.Language == "" || c.cfg.Language == FallbackLanguage {
		return &d, nil
	}

	var fb MovieDetails
	params := url.Values{"language": {FallbackLanguage}}
	if err := c.get(ctx, moviePath(id, ""), params, &fb); err != nil {
		slog.Debug("Fallback overview unavailable", "movie_id", id, "error", err)
		return &d, nil
	}
	d.Overview = fb.Overview
	return &d, nil
}

// Credits returns the cast of a movie.
func (c *Client) Credits(ctx context.Context, id int64) ([]CastMember, error) {
	var cr credits
	if err := c.get(ctx, moviePath(id, "/credits"), c.params(nil, false), &cr); err != nil {
		return nil, err
	}
	return cr.Cast, nil
}

// Videos lists trailers and clips, in any language.
func (c *Client) Videos(ctx context.Context, id int64) ([]Video, error) {
	var vs videos
	if err := c.get(ctx, moviePath(id, "/videos"), nil, &vs); err != nil {
		return nil, err
	}
	return vs.Results, nil
}

// ImageURL builds an image URL such as ".../w342/abc.jpg". Empty path yields "".
func (c *Client) ImageURL(size, path string) string {
	if path == "" {
		return ""
	}
	return strings.TrimRight(c.cfg.ImageBaseURL, "/") + "/" + size + path
}

func (c *Client) list(ctx context.Context, path string, extra url.Values) ([]Movie, error) {
	var p page
	if err := c.get(ctx, path, c.params(extra, true), &p); err != nil {
		return nil, err
	}
	if p.Results == nil {
		p.Results = []Movie{}
	}
	return p.Results, nil
}

func (c *Client) params(extra url.Values, withRegion bool) url.Values {
	v := url.Values{}
	for k, vals := range extra {
		v[k] = vals
	}
	if c.cfg.Language != "" {
		v.Set("language", c.cfg.Language)
	}
	if withRegion && c.cfg.Region != "" {
		v.Set("region", c.cfg.Region)
	}
	return v
}

func moviePath(id int64, suffix string) string {
	return "/movie/" + strconv.FormatInt(id, 10) + suffix
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	if c.cfg.APIKey == "" {
		return ErrNoAPIKey
	}
	if params == nil {
		params = url.Values{}
	}

	// The API key stays out of the cache key.
	cacheKey := path + "?" + params.Encode()
	if body, ok, err := c.cache.Get(ctx, cacheKey); err != nil {
		slog.Warn("Catalog cache read failed", "path", path, "error", err)
	} else if ok {
		if err := json.Unmarshal(body, out); err == nil {
			return nil
		}
	}

	q := url.Values{}
	for k, vals := range params {
		q[k] = vals
	}
	q.Set("api_key", c.cfg.APIKey)
	u := strings.TrimRight(c.cfg.BaseURL, "/") + path + "?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("build request %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("catalog %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Status: resp.StatusCode, Path: path}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}

	if err := c.cache.Set(ctx, cacheKey, body, c.cfg.CacheTTL); err != nil {
		slog.Warn("Catalog cache write failed", "path", path, "error", err)
	}
	return nil
}
