package calendar

import "time"

// Day is one cell of the 7-column month grid. Empty marks the leading
// padding cells before the first of the month. All flags are derived from
// the clock and the selection at grid-build time, never stored.
type Day struct {
	Date               time.Time `json:"date"`
	Empty              bool      `json:"empty,omitempty"`
	IsPast             bool      `json:"is_past"`
	IsToday            bool      `json:"is_today"`
	IsSelected         bool      `json:"is_selected"`
	IsInDisplayedMonth bool      `json:"is_in_displayed_month"`
}

// Navigator tracks the user's day cursor and the displayed month
// independently, so browsing months never loses the active day. The
// clock is injected to keep the derived flags deterministic under test.
type Navigator struct {
	selected  time.Time
	displayed time.Time
	now       func() time.Time
}

func NewNavigator(now func() time.Time) *Navigator {
	today := dateOnly(now())

	return &Navigator{
		selected:  today,
		displayed: startOfMonth(today),
		now:       now,
	}
}

func (n *Navigator) Selected() time.Time {
	return n.selected
}

func (n *Navigator) DisplayedMonth() time.Time {
	return n.displayed
}

// StepDay moves the selected day by delta days. A move to a day before
// today is rejected and the selection stays put.
func (n *Navigator) StepDay(delta int) bool {
	return n.Select(n.selected.AddDate(0, 0, delta))
}

// Select moves the selection to the given day unless it is in the past.
// Reports whether the selection changed.
func (n *Navigator) Select(day time.Time) bool {
	day = dateOnly(day)
	if day.Before(dateOnly(n.now())) {
		return false
	}

	n.selected = day

	return true
}

// StepMonth moves the displayed month by delta months, unbounded in both
// directions. Past months are viewable, just not selectable.
func (n *Navigator) StepMonth(delta int) {
	n.displayed = n.displayed.AddDate(0, delta, 0)
}

// Days returns the displayed month as a 7-column grid: one Empty cell per
// weekday offset of the 1st (Sunday = 0), then every day of the month in
// order.
func (n *Navigator) Days() []Day {
	return MonthGrid(n.displayed, n.selected, n.now())
}

// MonthGrid builds the grid for any month without navigator state; the
// HTTP boundary uses it directly.
func MonthGrid(month, selected, now time.Time) []Day {
	first := startOfMonth(month)
	today := dateOnly(now)
	selected = dateOnly(selected)

	offset := int(first.Weekday())

	days := make([]Day, 0, offset+31)
	for i := 0; i < offset; i++ {
		days = append(days, Day{Empty: true})
	}

	for d := first; d.Month() == first.Month(); d = d.AddDate(0, 0, 1) {
		days = append(days, Day{
			Date:               d,
			IsPast:             d.Before(today),
			IsToday:            d.Equal(today),
			IsSelected:         d.Equal(selected),
			IsInDisplayedMonth: true,
		})
	}

	return days
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
