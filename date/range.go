package date

import "fmt"

// Range represents an inclusive range of dates.
type Range struct{ From, To Date }

// NewRange returns the range spanning from and to, in that order.
func NewRange(from, to Date) (Range, error) {
	if from.After(to) {
		return Range{}, fmt.Errorf("invalid range: %s is after %s", from, to)
	}
	return Range{From: from, To: to}, nil
}

// Contains return true date is included in the range (boundaries included)
func (r Range) Contains(date Date) bool { return !date.Before(r.From) && !date.After(r.To) }

// Len returns the number of calendar days in the range, boundaries included.
func (r Range) Len() int {
	if r.From.After(r.To) {
		return 0
	}
	return r.To.Sub(r.From) + 1
}

// Days returns the dense, ordered sequence of every calendar day in the range.
// Everything downstream of the accounting engine is indexed against this sequence.
func (r Range) Days() []Date {
	if r.From.After(r.To) {
		return nil
	}
	days := make([]Date, 0, r.Len())
	for on := r.From; !on.After(r.To); on = on.Add(1) {
		days = append(days, on)
	}
	return days
}

// Index returns the position of date in the dense day sequence, or -1 if the
// date falls outside the range.
func (r Range) Index(date Date) int {
	if !r.Contains(date) {
		return -1
	}
	return date.Sub(r.From)
}

func (r Range) String() string { return fmt.Sprintf("%s..%s", r.From, r.To) }
