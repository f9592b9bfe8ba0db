package yahoo

import (
	"fmt"
	"strings"

	"github.com/MaiqTheHonest/Trading212-PnL/date"
)

// CurrencyOf infers the quote currency of a Yahoo symbol from its exchange
// suffix. "GBp" marks London lines quoted in pence.
func CurrencyOf(symbol string) string {
	i := strings.LastIndex(symbol, ".")
	if i < 0 {
		return "USD"
	}
	switch symbol[i+1:] {
	case "L":
		return "GBp"
	case "AS", "DE", "MC", "PA", "MI", "BR", "LS", "VI":
		return "EUR"
	case "SW":
		return "CHF"
	case "TO":
		return "CAD"
	default:
		return "USD"
	}
}

// FXRates fetches the daily exchange-rate series from the base (reporting)
// currency into each quote currency, forward-filled over weekends using
// Friday's rate. Rates are quoted as units of quote currency per unit of
// base, the convention of the "GBPUSD=X" symbols.
func (c *Client) FXRates(base string, quotes []string, rng date.Range) (map[string]*date.History[float64], error) {
	out := make(map[string]*date.History[float64], len(quotes))
	for _, quote := range quotes {
		if quote == base {
			continue
		}
		pair := base + quote + "=X"
		h, err := c.Prices(pair, rng.From.Add(-2), rng.To)
		if err != nil {
			return nil, fmt.Errorf("fetching fx rate %s: %w", pair, err)
		}
		out[quote] = h.FillForwardUntil(rng.To)
	}
	return out, nil
}

// AdjustPrice converts a price quoted in the symbol's native currency into
// the base currency: pence collapse to pounds, then the day's rate divides
// the price (rates are quote-per-base). A missing rate series or day is an
// error, never a silent unconverted price.
func AdjustPrice(symbol string, on date.Date, price float64, rates map[string]*date.History[float64], base string) (float64, error) {
	currency := CurrencyOf(symbol)
	if currency == "GBp" {
		price /= 100
		currency = "GBP"
	}
	if currency == base {
		return price, nil
	}

	h, ok := rates[currency]
	if !ok {
		return 0, fmt.Errorf("no %s/%s rate series for %s", base, currency, symbol)
	}
	rate, ok := h.ValueAsOf(on)
	if !ok || rate == 0 {
		return 0, fmt.Errorf("no %s/%s rate on %s", base, currency, on)
	}
	return price / rate, nil
}
