package cmd

import (
	"context"
	"fmt"
	"slices"

	portfolio "github.com/MaiqTheHonest/Trading212-PnL"
	"github.com/MaiqTheHonest/Trading212-PnL/date"
	"github.com/MaiqTheHonest/Trading212-PnL/trading212"
	"github.com/MaiqTheHonest/Trading212-PnL/yahoo"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// buildReport runs the whole import-and-compute pipeline: broker history in,
// priced report out. Every report subcommand funnels through here; the daily
// HTTP disk cache keeps repeated invocations cheap.
func buildReport(ctx context.Context) (*portfolio.Report, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	setupLogger(cfg)
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("T212_API_KEY is not set")
	}

	broker := trading212.New(cfg.APIKey)
	raw, err := broker.Orders(ctx)
	if err != nil {
		return nil, err
	}
	dividends, err := broker.Dividends(ctx)
	if err != nil {
		return nil, err
	}
	slices.Reverse(dividends) // broker hands history back newest-first

	overrides, err := yahoo.LoadOverrides(cfg.TickerOverrides)
	if err != nil {
		return nil, err
	}
	if err := normalizeTickers(raw, dividends, overrides); err != nil {
		return nil, err
	}

	orders := portfolio.NormalizeOrders(raw)
	rng, err := portfolio.OrderRange(orders)
	if err != nil {
		return nil, err
	}

	quotes := yahoo.New()
	rates, err := quotes.FXRates(cfg.ReportingCurrency, currenciesOf(orders), rng)
	if err != nil {
		return nil, err
	}

	// Fill prices arrive in each exchange's native currency.
	for i, o := range orders {
		price, err := yahoo.AdjustPrice(o.Ticker, o.Date, o.Price.InexactFloat64(), rates, cfg.ReportingCurrency)
		if err != nil {
			return nil, fmt.Errorf("converting order %d: %w", o.ID, err)
		}
		orders[i].Price = decimal.NewFromFloat(price)
	}

	ledger, snapshots, err := portfolio.Replay(orders, rng)
	if err != nil {
		return nil, err
	}

	prices, err := fetchPrices(quotes, ledger.Lifetimes(), rates, cfg.ReportingCurrency)
	if err != nil {
		return nil, err
	}

	return portfolio.NewReport(ledger, snapshots, rng, dividends, prices, cfg.ReportingCurrency)
}

// normalizeTickers rewrites broker instrument codes into Yahoo symbols, in
// place, for orders and dividends alike.
func normalizeTickers(orders []portfolio.Order, dividends []portfolio.Dividend, overrides yahoo.Overrides) error {
	for i, o := range orders {
		symbol, err := yahoo.NormalizeTicker(o.Ticker, overrides)
		if err != nil {
			return fmt.Errorf("order %d: %w (add an override to fix)", o.ID, err)
		}
		orders[i].Ticker = symbol
	}
	for i, d := range dividends {
		symbol, err := yahoo.NormalizeTicker(d.Ticker, overrides)
		if err != nil {
			return fmt.Errorf("dividend on %s: %w (add an override to fix)", d.PaidOn, err)
		}
		dividends[i].Ticker = symbol
	}
	return nil
}

// currenciesOf collects the quote currencies the order book spans.
func currenciesOf(orders []portfolio.Order) []string {
	seen := map[string]bool{}
	var out []string
	for _, o := range orders {
		currency := yahoo.CurrencyOf(o.Ticker)
		if currency == "GBp" {
			currency = "GBP" // pence collapse to pounds before any rate lookup
		}
		if !seen[currency] {
			seen[currency] = true
			out = append(out, currency)
		}
	}
	return out
}

// fetchPrices pulls each held ticker's closing prices over its holding
// lifetime, converts them to the reporting currency and fills market gaps
// with the last close.
func fetchPrices(quotes *yahoo.Client, lifetimes map[string]portfolio.Lifetime, rates map[string]*date.History[float64], reporting string) (map[string]*date.History[float64], error) {
	out := make(map[string]*date.History[float64], len(lifetimes))
	for ticker, lt := range lifetimes {
		h, err := quotes.Prices(ticker, lt.First, lt.Last)
		if err != nil {
			return nil, err
		}
		adjusted := new(date.History[float64])
		for on, price := range h.Values() {
			v, err := yahoo.AdjustPrice(ticker, on, price, rates, reporting)
			if err != nil {
				return nil, fmt.Errorf("converting %s: %w", ticker, err)
			}
			adjusted.Append(on, v)
		}
		out[ticker] = adjusted.FillForwardUntil(lt.Last)
		log.Debug().Str("ticker", ticker).Int("days", out[ticker].Len()).Msg("price history ready")
	}
	return out, nil
}
