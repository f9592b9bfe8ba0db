package portfolio

import (
	"fmt"

	"github.com/MaiqTheHonest/Trading212-PnL/date"
)

// Snapshot is the whole position map as it stood at the close of one calendar
// day. A nil Positions map means "no order executed that day": the portfolio
// is whatever the most recent prior snapshot says, which the return
// calculator resolves by carrying its running copy forward. Keeping the two
// cases distinct here is what lets "unchanged" and "missing data" stay
// separate concerns.
type Snapshot struct {
	Date      date.Date
	Positions map[string]Position
}

// Replay folds normalized orders, oldest first, through a fresh ledger and
// projects its state onto the dense calendar: after each applied order the
// entire position map is cloned into the calendar slot of the order's
// execution date, overwriting any earlier write for that day.
//
// The returned snapshots are calendar-aligned: one entry per day from the
// first order to rng.To, populated only on order dates.
func Replay(orders []Order, rng date.Range) (*Ledger, []Snapshot, error) {
	if len(orders) == 0 {
		return nil, nil, fmt.Errorf("cannot replay an empty order list")
	}

	days := rng.Days()
	snapshots := make([]Snapshot, len(days))
	for i, on := range days {
		snapshots[i] = Snapshot{Date: on}
	}

	ledger := NewLedger()
	for _, o := range orders {
		if !o.Filled() {
			continue
		}
		i := rng.Index(o.Date)
		if i < 0 {
			return nil, nil, fmt.Errorf("order %d on %s falls outside the calendar %s", o.ID, o.Date, rng)
		}
		ledger.Apply(o, rng.To)
		snapshots[i].Positions = ledger.Positions()
	}
	return ledger, snapshots, nil
}

// OrderRange returns the calendar spanned by the given orders: first
// execution date through today. The orders must already be in chronological
// order. An empty list is an error, not an empty range: downstream stages
// divide by the calendar's span.
func OrderRange(orders []Order) (date.Range, error) {
	if len(orders) == 0 {
		return date.Range{}, fmt.Errorf("no orders: cannot establish a time range")
	}
	return date.NewRange(orders[0].Date, date.Today())
}
