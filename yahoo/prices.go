// Package yahoo fetches daily closing prices and FX rates from the Yahoo
// Finance chart API, and maps broker ticker formats onto Yahoo symbols.
package yahoo

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/MaiqTheHonest/Trading212-PnL/date"
	"github.com/PaesslerAG/jsonpath"
)

// DefaultBaseURL is the public chart API host.
const DefaultBaseURL = "https://query1.finance.yahoo.com"

// Client fetches price histories. The zero value is not usable, construct
// with New.
type Client struct {
	baseURL string
	http    *http.Client
}

// Option adjusts the client, mainly for tests.
type Option func(*Client)

// WithBaseURL points the client at another host.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithHTTPClient swaps the underlying HTTP client, bypassing the daily disk
// cache.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// New creates a client backed by the daily disk cache.
func New(opts ...Option) *Client {
	c := &Client{baseURL: DefaultBaseURL, http: daily()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Prices fetches the daily closing price of a Yahoo symbol over [from, to],
// keyed by calendar day. Days the market was closed are absent; a symbol the
// service has no data for at all is an error, never an empty series.
func (c *Client) Prices(symbol string, from, to date.Date) (*date.History[float64], error) {
	// Pull the window open a day early so a same-day start still lands on a
	// close, and keep the two bounds from collapsing onto one instant.
	period1 := from.Add(-1).Unix()
	period2 := to.Unix()
	if period1 == period2 {
		period2 -= 86400
	}

	addr := fmt.Sprintf("%s/v8/finance/chart/%s?period1=%d&period2=%d&interval=1d",
		c.baseURL, url.PathEscape(symbol), period1, period2)

	var jobj any
	if err := jwget(c.http, addr, &jobj); err != nil {
		return nil, fmt.Errorf("fetching prices for %q: %w", symbol, err)
	}

	timestamps, err := jsonArray(jobj, "$.chart.result[0].timestamp")
	if err != nil {
		return nil, fmt.Errorf("no price data for %q: %w", symbol, err)
	}
	closes, err := jsonArray(jobj, `$.chart.result[0].indicators.quote[0].close`)
	if err != nil {
		return nil, fmt.Errorf("no closing prices for %q: %w", symbol, err)
	}

	h := new(date.History[float64])
	for i, ts := range timestamps {
		sec, ok := ts.(float64)
		if !ok || i >= len(closes) {
			continue
		}
		// unlisted days come through as JSON null
		price, ok := closes[i].(float64)
		if !ok {
			continue
		}
		h.Append(date.FromUnix(int64(sec)), price)
	}
	if h.Len() == 0 {
		return nil, fmt.Errorf("no price data for %q in %s..%s", symbol, from, to)
	}
	return h, nil
}

// jsonArray resolves a jsonpath expression that must yield a JSON array.
func jsonArray(jobj any, path string) ([]any, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, err
	}
	jlist, ok := jval.([]any)
	if !ok {
		return nil, fmt.Errorf("%q is not an array", path)
	}
	return jlist, nil
}
