package fuel

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/inovacc/fuelr/internal/cache"
	"github.com/inovacc/fuelr/internal/model"
)

const (
	// DefaultBaseURL is the public Fuel server. Page URLs are formed by
	// appending "models?page=N", so any base URL must end with a slash.
	DefaultBaseURL = "https://fuel.gazebosim.org/1.0/"

	// tokenHeader is spelled the way the Fuel API documents it
	tokenHeader = "Private-token"
)

// ErrEmptyCatalog is returned by Refresh when not a single model record
// could be fetched.
var ErrEmptyCatalog = errors.New("no models fetched")

// Client pages through the Fuel model catalog and maintains an in-memory
// snapshot backed by the cache file.
type Client struct {
	baseURL   string
	token     string
	cachePath string
	transport Transport
	logger    *slog.Logger

	// models is the current snapshot; nil means no catalog is held
	models []model.FuelModel
}

// Options configures a Client. The zero value targets the public Fuel
// server with the default cache location and no token.
type Options struct {
	// BaseURL overrides DefaultBaseURL; must end with a slash
	BaseURL string

	// Token is sent as the Private-token header when non-empty
	Token string

	// CachePath overrides the default cache file location
	CachePath string

	// Transport overrides the default HTTP transport
	Transport Transport

	Logger *slog.Logger
}

// New creates a catalog client and silently loads any existing cache file
// into the snapshot.
func New(opts Options) *Client {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	cachePath := opts.CachePath
	if cachePath == "" {
		p, err := cache.DefaultPath()
		if err != nil {
			logger.Debug("no default cache path", "error", err)
		}

		cachePath = p
	}

	transport := opts.Transport
	if transport == nil {
		transport = NewHTTPTransport(TransportOptions{Logger: logger})
	}

	c := &Client{
		baseURL:   baseURL,
		token:     opts.Token,
		cachePath: cachePath,
		transport: transport,
		logger:    logger,
	}

	if models, err := cache.Load(cachePath); err != nil {
		logger.Debug("cache not loaded", "path", cachePath, "error", err)
	} else {
		c.models = models
		logger.Debug("cache loaded", "path", cachePath, "models", len(models))
	}

	return c
}

// CachePath returns the resolved cache file location; empty when none
// could be resolved.
func (c *Client) CachePath() string {
	return c.cachePath
}

// ShouldRefresh reports whether the cache wants refreshing. Without cache
// metadata (no path, missing file) it is always true; with metadata but no
// threshold it is always false; otherwise the cache age decides.
func (c *Client) ShouldRefresh(threshold *time.Duration) bool {
	mod, err := cache.LastModified(c.cachePath)
	if err != nil {
		return true
	}

	if threshold == nil {
		return false
	}

	return time.Since(mod) > *threshold
}

// RefreshOptions configures a single Refresh call.
type RefreshOptions struct {
	// WriteCache persists the new snapshot to the cache file on success
	WriteCache bool

	// Progress receives each fetched record, best-effort
	Progress ProgressSink
}

// RefreshResult describes a successful refresh.
type RefreshResult struct {
	// Models is the new snapshot in fetch order
	Models []model.FuelModel

	// Pages is how many pages contributed records
	Pages int

	// CacheErr is the cache persistence failure, if any; the in-memory
	// snapshot is good regardless
	CacheErr error
}

// Refresh fetches the catalog page by page and replaces the held snapshot.
// Pagination stops at the first fetch error, decode error or empty page
// and keeps everything accumulated up to that point; only an entirely
// empty result is an error, and then the held snapshot stays untouched.
// Cache persistence failures are reported in RefreshResult.CacheErr, never
// as the error return.
func (c *Client) Refresh(ctx context.Context, opts RefreshOptions) (*RefreshResult, error) {
	var (
		models []model.FuelModel
		pages  int
	)

	for page := 1; ; page++ {
		u := fmt.Sprintf("%smodels?page=%d", c.baseURL, page)

		body, err := c.transport.Get(ctx, u, c.header())
		if err != nil {
			c.logger.Debug("fetch failed, stopping pagination", "page", page, "error", err)
			break
		}

		var fetched []model.FuelModel
		if err := json.Unmarshal(body, &fetched); err != nil {
			c.logger.Debug("decode failed, stopping pagination", "page", page, "error", err)
			break
		}

		if len(fetched) == 0 {
			c.logger.Debug("empty page, stopping pagination", "page", page)
			break
		}

		for i := range fetched {
			notify(opts.Progress, fetched[i])
		}

		models = append(models, fetched...)
		pages++
	}

	if len(models) == 0 {
		return nil, ErrEmptyCatalog
	}

	c.models = models
	c.logger.Debug("catalog refreshed", "pages", pages, "models", len(models))

	result := &RefreshResult{
		Models: models,
		Pages:  pages,
	}

	if opts.WriteCache {
		if err := cache.Persist(c.cachePath, models); err != nil {
			c.logger.Debug("cache not persisted", "path", c.cachePath, "error", err)
			result.CacheErr = err
		}
	}

	return result, nil
}

// RefreshBlocking is Refresh with a background context.
func (c *Client) RefreshBlocking(opts RefreshOptions) (*RefreshResult, error) {
	return c.Refresh(context.Background(), opts)
}

func (c *Client) header() http.Header {
	header := http.Header{}
	if c.token != "" {
		// direct assignment, Header.Set would canonicalize the casing
		header[tokenHeader] = []string{c.token}
	}

	return header
}
