// Package searchapi is the HTTP client for the employee search service.
package searchapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/time/rate"

	"empsearch/internal/domain"
)

const (
	// maxBodyBytes bounds how much of a response body is read
	maxBodyBytes = 8 << 20
	userAgent    = "empsearch/1"
)

var (
	// ErrEmptyQuery is returned when Search is called with a blank query
	ErrEmptyQuery = errors.New("empty query")
	// ErrRequestFailed covers transport errors, non-2xx statuses and bodies
	// that do not decode as a search result
	ErrRequestFailed = errors.New("search request failed")
)

// StatusError reports a non-success HTTP status
type StatusError struct {
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: unexpected status %s", ErrRequestFailed, e.Status)
}

func (e *StatusError) Unwrap() error { return ErrRequestFailed }

// Searcher runs one query against the search service
type Searcher interface {
	Search(ctx context.Context, query string) (domain.SearchResult, error)
}

// Options configures a Client
type Options struct {
	BaseURL       string
	SearchPath    string
	QueryParam    string
	Timeout       time.Duration // zero means no client-side timeout
	RatePerSecond float64       // zero means unlimited
	HTTPClient    *http.Client
	Logger        *log.Logger
}

// Client issues GET requests to the search endpoint
type Client struct {
	endpoint   *url.URL
	queryParam string
	http       *http.Client
	limiter    *rate.Limiter
	logger     *log.Logger
}

// New validates opts and builds a Client
func New(opts Options) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(opts.BaseURL, "/") + opts.SearchPath)
	if err != nil {
		return nil, fmt.Errorf("invalid endpoint: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid endpoint %q: scheme and host required", opts.BaseURL)
	}
	if opts.QueryParam == "" {
		return nil, errors.New("query parameter name required")
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}

	limit := rate.Inf
	if opts.RatePerSecond > 0 {
		limit = rate.Limit(opts.RatePerSecond)
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	return &Client{
		endpoint:   u,
		queryParam: opts.QueryParam,
		http:       httpClient,
		limiter:    rate.NewLimiter(limit, 1),
		logger:     logger.WithPrefix("searchapi"),
	}, nil
}

// Endpoint returns the search URL without a query string
func (c *Client) Endpoint() string {
	return c.endpoint.String()
}

// URL returns the request URL for query, which must already be trimmed
func (c *Client) URL(query string) string {
	u := *c.endpoint
	values := u.Query()
	values.Set(c.queryParam, query)
	u.RawQuery = values.Encode()
	return u.String()
}

// Search sends exactly one request for query. The limiter may delay the
// request but never drops or repeats it.
func (c *Client) Search(ctx context.Context, query string) (domain.SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return domain.SearchResult{}, ErrEmptyQuery
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return domain.SearchResult{}, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}

	target := c.URL(query)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return domain.SearchResult{}, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return domain.SearchResult{}, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	c.logger.Debug("response", "url", target, "status", resp.StatusCode, "elapsed", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return domain.SearchResult{}, &StatusError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return domain.SearchResult{}, fmt.Errorf("%w: reading body: %v", ErrRequestFailed, err)
	}

	// json.Unmarshal treats null as a no-op, which would look like an empty
	// result set
	if bytes.Equal(bytes.TrimSpace(body), []byte("null")) {
		return domain.SearchResult{}, fmt.Errorf("%w: malformed body: null", ErrRequestFailed)
	}

	var result domain.SearchResult
	if err := json.Unmarshal(body, &result); err != nil {
		return domain.SearchResult{}, fmt.Errorf("%w: malformed body: %v", ErrRequestFailed, err)
	}
	if result.Employees == nil {
		result.Employees = []domain.Employee{}
	}

	return result, nil
}
