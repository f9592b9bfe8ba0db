package date

import "testing"

func TestRange_Days(t *testing.T) {
	r, err := NewRange(New(2025, 2, 27), New(2025, 3, 2))
	if err != nil {
		t.Fatalf("NewRange() returned unexpected error: %v", err)
	}

	days := r.Days()
	want := []Date{New(2025, 2, 27), New(2025, 2, 28), New(2025, 3, 1), New(2025, 3, 2)}
	if len(days) != len(want) {
		t.Fatalf("Days() returned %d days, want %d", len(days), len(want))
	}
	for i, on := range want {
		if days[i] != on {
			t.Errorf("Days()[%d] = %v, want %v", i, days[i], on)
		}
	}
	if r.Len() != 4 {
		t.Errorf("Len() = %d, want 4", r.Len())
	}
}

func TestRange_Index(t *testing.T) {
	r := Range{From: New(2025, 1, 1), To: New(2025, 1, 31)}

	if got := r.Index(New(2025, 1, 1)); got != 0 {
		t.Errorf("Index(From) = %d, want 0", got)
	}
	if got := r.Index(New(2025, 1, 15)); got != 14 {
		t.Errorf("Index(mid) = %d, want 14", got)
	}
	if got := r.Index(New(2024, 12, 31)); got != -1 {
		t.Errorf("Index(before From) = %d, want -1", got)
	}
	if got := r.Index(New(2025, 2, 1)); got != -1 {
		t.Errorf("Index(after To) = %d, want -1", got)
	}
}

func TestNewRange_Invalid(t *testing.T) {
	if _, err := NewRange(New(2025, 3, 2), New(2025, 3, 1)); err == nil {
		t.Error("NewRange(from after to) expected an error, got nil")
	}
}
