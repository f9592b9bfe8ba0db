package date

// FillForward makes the history contiguous: wherever two adjacent entries are
// more than one calendar day apart, the earlier value is cloned into every
// missing day in between. Market-data series use this to carry Friday's close
// over the weekend; it works for any date-keyed series.
//
// A single gap-aware pass reaches the fixed point, so the operation is
// idempotent: filling an already dense history changes nothing.
func (h *History[T]) FillForward() *History[T] {
	if len(h.days) < 2 {
		return h
	}
	days := make([]Date, 0, len(h.days))
	values := make([]T, 0, len(h.values))
	for i, on := range h.days {
		days = append(days, on)
		values = append(values, h.values[i])
		if i == len(h.days)-1 {
			break
		}
		for fill := on.Add(1); fill.Before(h.days[i+1]); fill = fill.Add(1) {
			days = append(days, fill)
			values = append(values, h.values[i])
		}
	}
	h.days, h.values = days, values
	return h
}

// FillForwardUntil extends the history to 'last' with its latest value before
// filling. Series that must span the whole calendar (cumulative dividends,
// realized returns) use it to stretch up to today.
func (h *History[T]) FillForwardUntil(last Date) *History[T] {
	if day, value := h.Latest(); !day.IsZero() && day.Before(last) {
		h.Append(last, value)
	}
	return h.FillForward()
}
