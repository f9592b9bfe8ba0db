// Package trading212 fetches order and dividend history from the Trading212
// equity API. Results come back newest-first in the broker's raw ticker
// format ("AAPL_US_EQ"); chronological ordering, deduplication and ticker
// normalization are the caller's concern.
package trading212

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	// DefaultBaseURL is the live (non-demo) API host.
	DefaultBaseURL = "https://live.trading212.com"

	ordersPath    = "/api/v0/equity/history/orders"
	dividendsPath = "/api/v0/history/dividends"

	// The two history endpoints enforce different page caps.
	ordersPageSize    = 50
	dividendsPageSize = 40

	// cursorComplete is the sentinel cursor value marking exhausted history.
	cursorComplete = "complete"

	// The API rate-limits aggressively; one full 60s window before retrying
	// a 429, a bounded number of times.
	defaultRetryWait     = 60 * time.Second
	defaultRetryAttempts = 4
)

// Client talks to the Trading212 history API.
type Client struct {
	http *resty.Client
	log  zerolog.Logger
}

// Option adjusts the client, mainly so tests can point it at a local server
// and shrink the rate-limit backoff.
type Option func(*Client)

// WithBaseURL overrides the API host.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.http.SetBaseURL(u) }
}

// WithRetryWait overrides the wait between rate-limited attempts.
func WithRetryWait(d time.Duration) Option {
	return func(c *Client) { c.http.SetRetryWaitTime(d).SetRetryMaxWaitTime(d) }
}

// WithLogger routes the client's progress logging.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) { c.log = l }
}

// New creates a client authenticated with the given API key.
func New(apiKey string, opts ...Option) *Client {
	c := &Client{log: log.Logger}
	c.http = resty.New().
		SetBaseURL(DefaultBaseURL).
		SetHeader("Authorization", apiKey).
		SetRetryCount(defaultRetryAttempts).
		SetRetryWaitTime(defaultRetryWait).
		SetRetryMaxWaitTime(defaultRetryWait).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			return err == nil && r.StatusCode() == http.StatusTooManyRequests
		}).
		AddRetryHook(func(r *resty.Response, err error) {
			c.log.Warn().Str("path", r.Request.URL).Msg("rate limited, backing off")
		})
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// getPage fetches one page of a cursor-paginated history endpoint into out.
func (c *Client) getPage(ctx context.Context, path, cursor string, limit int, out any) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"cursor": cursor,
			"ticker": "",
			"limit":  strconv.Itoa(limit),
		}).
		Get(path)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}
	if resp.IsError() {
		return fmt.Errorf("GET %s: unexpected status %s", path, resp.Status())
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("GET %s: decoding response: %w", path, err)
	}
	return nil
}

// nextCursor derives the next page's cursor from the last item's RFC 3339
// timestamp: the API pages by millisecond epoch. An empty page means the
// history is exhausted.
func nextCursor(lastTimestamp string) string {
	if lastTimestamp == "" {
		return cursorComplete
	}
	t, err := time.Parse(time.RFC3339, lastTimestamp)
	if err != nil {
		return cursorComplete
	}
	return strconv.FormatInt(t.UnixMilli(), 10)
}
