package trading212

import (
	"fmt"
	"strings"

	portfolio "github.com/MaiqTheHonest/Trading212-PnL"
	"github.com/MaiqTheHonest/Trading212-PnL/date"
	"github.com/shopspring/decimal"
)

// amount is a decimal that tolerates JSON null, which the API emits for
// fields it has no figure for (e.g. filledQuantity on a value order).
type amount struct{ decimal.Decimal }

func (a *amount) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		a.Decimal = decimal.Zero
		return nil
	}
	return a.Decimal.UnmarshalJSON(b)
}

// page is the envelope every history endpoint wraps its items in.
type page[T any] struct {
	Items        []T     `json:"items"`
	NextPagePath *string `json:"nextPagePath"`
}

type orderItem struct {
	ID             uint64 `json:"id"`
	Ticker         string `json:"ticker"`
	DateCreated    string `json:"dateCreated"`
	FilledQuantity amount `json:"filledQuantity"`
	FillPrice      amount `json:"fillPrice"`
	FilledValue    amount `json:"filledValue"`
	Status         string `json:"status"`
}

type dividendItem struct {
	Ticker string `json:"ticker"`
	Amount amount `json:"amount"`
	PaidOn string `json:"paidOn"`
}

// dayOf truncates an RFC 3339 timestamp to its calendar day.
func dayOf(timestamp string) (date.Date, error) {
	if len(timestamp) < 10 {
		return date.Date{}, fmt.Errorf("malformed timestamp %q", timestamp)
	}
	return date.Parse(timestamp[:10])
}

func (it orderItem) toOrder() (portfolio.Order, error) {
	on, err := dayOf(it.DateCreated)
	if err != nil {
		return portfolio.Order{}, fmt.Errorf("order %d: %w", it.ID, err)
	}
	return portfolio.Order{
		ID:       it.ID,
		Ticker:   it.Ticker,
		Date:     on,
		Quantity: it.FilledQuantity.Decimal,
		Price:    it.FillPrice.Decimal,
		Value:    it.FilledValue.Decimal,
		Status:   portfolio.OrderStatus(it.Status),
		// "l_EQ" marks an LSE instrument, quoted in pence.
		PenceQuoted: strings.Contains(it.Ticker, "l_EQ"),
	}, nil
}

func (it dividendItem) toDividend() (portfolio.Dividend, error) {
	on, err := dayOf(it.PaidOn)
	if err != nil {
		return portfolio.Dividend{}, fmt.Errorf("dividend on %s: %w", it.Ticker, err)
	}
	return portfolio.Dividend{
		Ticker: it.Ticker,
		Amount: it.Amount.Decimal,
		PaidOn: on,
	}, nil
}
