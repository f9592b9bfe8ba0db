package portfolio

import (
	"math"
	"testing"

	"github.com/MaiqTheHonest/Trading212-PnL/date"
)

func TestMWRR_SingleFlowPair(t *testing.T) {
	flows := []CashFlow{
		{Date: date.New(2023, 1, 1), Amount: -100},
		{Date: date.New(2024, 1, 1), Amount: 110},
	}
	rate, ok := MWRR(flows, mwrrDefaultGuess)
	if !ok {
		t.Fatal("solver did not converge")
	}
	if math.Abs(rate-0.10) > 0.005 {
		t.Errorf("got %v, want ~0.10", rate)
	}
}

func TestMWRR_InterimFlows(t *testing.T) {
	// Two deposits, one withdrawal, terminal value. The rate must sit
	// between the naive per-leg returns.
	flows := []CashFlow{
		{Date: date.New(2023, 1, 1), Amount: -1000},
		{Date: date.New(2023, 7, 1), Amount: -500},
		{Date: date.New(2023, 10, 1), Amount: 200},
		{Date: date.New(2024, 1, 1), Amount: 1400},
	}
	rate, ok := MWRR(flows, mwrrDefaultGuess)
	if !ok {
		t.Fatal("solver did not converge")
	}
	if rate < 0.05 || rate > 0.12 {
		t.Errorf("got %v, want a moderate positive rate", rate)
	}
}

func TestMWRR_NoRate(t *testing.T) {
	tests := []struct {
		name  string
		flows []CashFlow
	}{
		{"empty schedule", nil},
		{"single flow", []CashFlow{{Date: date.New(2024, 1, 1), Amount: -100}}},
		{"single day", []CashFlow{
			{Date: date.New(2024, 1, 1), Amount: -100},
			{Date: date.New(2024, 1, 1), Amount: 100},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := MWRR(tt.flows, mwrrDefaultGuess); ok {
				t.Error("want no rate")
			}
		})
	}
}

func TestMWRRSeries(t *testing.T) {
	start := date.New(2023, 1, 1)
	mid := start.Add(100)

	flows := new(date.History[float64]).Append(start, -1000).Append(mid, -1000)
	mv := new(date.History[float64]).Append(start, 1000).Append(mid, 2100)

	series := MWRRSeries(flows, mv)

	// Day one folds the market value into its own (only) flow: a
	// single-entry schedule has no rate, the zero seed is carried.
	if got, ok := series.Get(start); !ok || got != 0 {
		t.Errorf("inception day: got %v %v, want 0", got, ok)
	}
	// By mid the schedule is -1000 then -1000+2100: ten percent over the span.
	got, ok := series.Get(mid)
	if !ok {
		t.Fatal("no rate for the last day")
	}
	if math.Abs(got-10) > 0.5 {
		t.Errorf("got %v%%, want ~10%%", got)
	}
}
