package budgetcalc

import (
	"fmt"
	"time"
)

// Period is a budget recurrence kind.
type Period string

const (
	PeriodDaily     Period = "daily"
	PeriodWeekly    Period = "weekly"
	PeriodMonthly   Period = "monthly"
	PeriodQuarterly Period = "quarterly"
	PeriodYearly    Period = "yearly"
)

// ValidPeriod reports whether p is one of the recognized period kinds.
func ValidPeriod(p Period) bool {
	switch p {
	case PeriodDaily, PeriodWeekly, PeriodMonthly, PeriodQuarterly, PeriodYearly:
		return true
	}
	return false
}

// Window is a half-open time interval [Start, End).
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the window.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// Clip narrows w to [start, end). A nil end leaves the upper bound alone.
// The result may be empty (Start not before End) when the ranges do not
// overlap.
func (w Window) Clip(start time.Time, end *time.Time) Window {
	out := w
	if start.After(out.Start) {
		out.Start = start
	}
	if end != nil && end.Before(out.End) {
		out.End = *end
	}
	return out
}

// ResolvePeriodWindow maps a period kind and a reference instant to the
// calendar window containing it, in the reference's location. Weeks start
// on Monday. The window is half-open: Start <= ref < End.
func ResolvePeriodWindow(p Period, ref time.Time) (Window, error) {
	loc := ref.Location()
	y, m, d := ref.Date()
	switch p {
	case PeriodDaily:
		start := time.Date(y, m, d, 0, 0, 0, 0, loc)
		return Window{Start: start, End: start.AddDate(0, 0, 1)}, nil
	case PeriodWeekly:
		// time.Weekday counts Sunday as 0; shift so Monday is the origin
		offset := (int(ref.Weekday()) + 6) % 7
		start := time.Date(y, m, d, 0, 0, 0, 0, loc).AddDate(0, 0, -offset)
		return Window{Start: start, End: start.AddDate(0, 0, 7)}, nil
	case PeriodMonthly:
		start := time.Date(y, m, 1, 0, 0, 0, 0, loc)
		return Window{Start: start, End: start.AddDate(0, 1, 0)}, nil
	case PeriodQuarterly:
		qm := time.Month(((int(m)-1)/3)*3 + 1)
		start := time.Date(y, qm, 1, 0, 0, 0, 0, loc)
		return Window{Start: start, End: start.AddDate(0, 3, 0)}, nil
	case PeriodYearly:
		start := time.Date(y, time.January, 1, 0, 0, 0, 0, loc)
		return Window{Start: start, End: start.AddDate(1, 0, 0)}, nil
	default:
		return Window{}, fmt.Errorf("%w: %q", ErrInvalidPeriod, p)
	}
}
