package fuel

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// Transport fetches raw catalog pages. Implementations return the response
// body on success and an error for any network or protocol failure.
type Transport interface {
	Get(ctx context.Context, url string, header http.Header) ([]byte, error)
}

// HTTPTransport is the default Transport on top of net/http.
type HTTPTransport struct {
	httpClient *http.Client
	logger     *slog.Logger
}

// TransportOptions configures an HTTPTransport.
type TransportOptions struct {
	// Timeout bounds a single page request; zero means 30 seconds
	Timeout time.Duration

	Logger *slog.Logger
}

// NewHTTPTransport creates the default HTTP transport.
func NewHTTPTransport(opts TransportOptions) *HTTPTransport {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	timeout := opts.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &HTTPTransport{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// Get performs a GET request and returns the response body.
func (t *HTTPTransport) Get(ctx context.Context, url string, header http.Header) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	// assigned directly so header casing reaches the wire untouched
	for key, values := range header {
		req.Header[key] = values
	}

	t.logger.Debug("fuel API request", "url", url)

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make request: %w", err)
	}

	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API returned %d: %s", resp.StatusCode, string(body))
	}

	return body, nil
}
