package portfolio

import (
	"testing"

	"github.com/MaiqTheHonest/Trading212-PnL/date"
)

func TestReplay_CalendarAlignment(t *testing.T) {
	rng, _ := date.NewRange(date.New(2024, 1, 1), date.New(2024, 1, 5))
	orders := []Order{
		{ID: 1, Ticker: "AAPL", Date: date.New(2024, 1, 1), Quantity: dec("10"), Price: dec("100"), Status: Filled},
		{ID: 2, Ticker: "AAPL", Date: date.New(2024, 1, 3), Quantity: dec("10"), Price: dec("120"), Status: Filled},
	}

	_, snaps, err := Replay(orders, rng)
	if err != nil {
		t.Fatal(err)
	}
	if len(snaps) != 5 {
		t.Fatalf("got %d snapshots, want one per calendar day", len(snaps))
	}

	if snaps[1].Positions != nil || snaps[4].Positions != nil {
		t.Error("days without orders must stay nil")
	}
	if pos := snaps[0].Positions["AAPL"]; !pos.Quantity.Equal(dec("10")) {
		t.Errorf("day 0: got quantity %s, want 10", pos.Quantity)
	}
	if pos := snaps[2].Positions["AAPL"]; !pos.Quantity.Equal(dec("20")) || !pos.AvgCost.Equal(dec("110")) {
		t.Errorf("day 2: got (%s, %s), want (20, 110)", pos.Quantity, pos.AvgCost)
	}

	// Snapshots are clones: a later mutation of the ledger must not reach back.
	if snaps[0].Positions["AAPL"].AvgCost.Equal(dec("110")) {
		t.Error("earlier snapshot shares state with the live ledger")
	}
}

func TestReplay_SameDayOrdersCollapse(t *testing.T) {
	rng, _ := date.NewRange(date.New(2024, 1, 1), date.New(2024, 1, 2))
	day := date.New(2024, 1, 1)
	orders := []Order{
		{ID: 1, Ticker: "AAPL", Date: day, Quantity: dec("10"), Price: dec("100"), Status: Filled},
		{ID: 2, Ticker: "AAPL", Date: day, Quantity: dec("-10"), Price: dec("105"), Status: Filled},
	}
	_, snaps, err := Replay(orders, rng)
	if err != nil {
		t.Fatal(err)
	}
	// The day's snapshot reflects the close of day, after both orders.
	if _, held := snaps[0].Positions["AAPL"]; held {
		t.Error("snapshot shows an intraday state instead of the day's close")
	}
}

func TestReplay_Errors(t *testing.T) {
	rng, _ := date.NewRange(date.New(2024, 1, 1), date.New(2024, 1, 5))

	if _, _, err := Replay(nil, rng); err == nil {
		t.Error("empty order list: want error")
	}

	outside := []Order{{ID: 1, Ticker: "AAPL", Date: date.New(2023, 12, 31),
		Quantity: dec("1"), Price: dec("1"), Status: Filled}}
	if _, _, err := Replay(outside, rng); err == nil {
		t.Error("order before calendar start: want error")
	}
}

func TestOrderRange(t *testing.T) {
	first := date.New(2024, 1, 2)
	rng, err := OrderRange([]Order{{ID: 1, Date: first}, {ID: 2, Date: date.New(2024, 3, 1)}})
	if err != nil {
		t.Fatal(err)
	}
	if rng.From != first || rng.To != date.Today() {
		t.Errorf("got %s, want [%s, today]", rng, first)
	}

	if _, err := OrderRange(nil); err == nil {
		t.Error("empty order list: want error")
	}
}
