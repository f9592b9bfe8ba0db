package trading212

import (
	"context"

	portfolio "github.com/MaiqTheHonest/Trading212-PnL"
)

// Dividends pages through the full dividend payment history, newest first.
// Unlike the orders endpoint, this one also signals exhaustion through a null
// nextPagePath, so both conditions end the walk.
func (c *Client) Dividends(ctx context.Context) ([]portfolio.Dividend, error) {
	var out []portfolio.Dividend

	cursor := ""
	for cursor != cursorComplete {
		var p page[dividendItem]
		if err := c.getPage(ctx, dividendsPath, cursor, dividendsPageSize, &p); err != nil {
			return nil, err
		}
		for _, it := range p.Items {
			d, err := it.toDividend()
			if err != nil {
				return nil, err
			}
			out = append(out, d)
		}

		cursor = pageCursor(p.Items, func(it dividendItem) string { return it.PaidOn })
		if p.NextPagePath == nil {
			cursor = cursorComplete
		}
		c.log.Debug().Str("cursor", cursor).Int("fetched", len(out)).Msg("dividend page processed")
	}

	c.log.Info().Int("dividends", len(out)).Msg("dividend import from Trading212 complete")
	return out, nil
}
