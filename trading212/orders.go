package trading212

import (
	"context"
	"fmt"

	portfolio "github.com/MaiqTheHonest/Trading212-PnL"
)

// Orders pages through the full order history, newest first. The result is
// raw: reversed ordering, duplicate partial fills and value-denominated
// quantities are resolved by portfolio.NormalizeOrders.
func (c *Client) Orders(ctx context.Context) ([]portfolio.Order, error) {
	var out []portfolio.Order

	cursor := ""
	for cursor != cursorComplete {
		var p page[orderItem]
		if err := c.getPage(ctx, ordersPath, cursor, ordersPageSize, &p); err != nil {
			return nil, err
		}
		for _, it := range p.Items {
			o, err := it.toOrder()
			if err != nil {
				return nil, err
			}
			out = append(out, o)
		}

		cursor = pageCursor(p.Items, func(it orderItem) string { return it.DateCreated })
		c.log.Debug().Str("cursor", cursor).Int("fetched", len(out)).Msg("order page processed")
	}

	if len(out) == 0 {
		return nil, fmt.Errorf("no orders: invalid API key or an account with no history")
	}
	c.log.Info().Int("orders", len(out)).Msg("order import from Trading212 complete")
	return out, nil
}

// pageCursor decides where the next page starts: the last item's timestamp,
// or the complete sentinel when the page is empty.
func pageCursor[T any](items []T, timestamp func(T) string) string {
	if len(items) == 0 {
		return cursorComplete
	}
	return nextCursor(timestamp(items[len(items)-1]))
}
