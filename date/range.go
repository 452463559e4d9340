package date

import "fmt"

// Range is an inclusive range of dates, typically a reporting period.
type Range struct{ From, To Date }

// NewRange returns the period containing d.
func NewRange(d Date, period Period) Range {
	return Range{From: d.StartOf(period), To: d.EndOf(period)}
}

// Contains reports whether d is within the range, boundaries included.
func (r Range) Contains(d Date) bool { return !d.Before(r.From) && !d.After(r.To) }

// Days returns the number of days in the range, boundaries included.
func (r Range) Days() int { return r.To.DaysSince(r.From) + 1 }

// Previous returns the range that immediately precedes r.
//
// A standard period steps back one period (the month before a month), any
// other range steps back by its own length.
func (r Range) Previous() Range {
	if p, ok := r.Period(); ok {
		return NewRange(r.From.Add(-1), p)
	}
	n := r.Days()
	return Range{From: r.From.Add(-n), To: r.From.Add(-1)}
}

var periods = []Period{Daily, Weekly, Monthly, Quarterly, Yearly}

// Period returns the standard period r spans exactly, if any.
func (r Range) Period() (Period, bool) {
	for _, p := range periods {
		if NewRange(r.From, p) == r {
			return p, true
		}
	}
	return Daily, false
}

// Name is the period name, or "special".
func (r Range) Name() string {
	if p, ok := r.Period(); ok {
		return p.String()
	}
	return "special"
}

// Identifier is a short unique label: 2025-09-08, 2025-W37, 2025-09,
// 2025-Q3, 2025, or from_to for other ranges.
func (r Range) Identifier() string {
	p, ok := r.Period()
	if !ok {
		return fmt.Sprintf("%s_%s", r.From, r.To)
	}
	y := r.From.Year()
	switch p {
	case Weekly:
		_, week := r.From.ISOWeek()
		return fmt.Sprintf("%d-W%02d", y, week)
	case Monthly:
		return fmt.Sprintf("%d-%02d", y, int(r.From.Month()))
	case Quarterly:
		return fmt.Sprintf("%d-Q%d", y, (int(r.From.Month())-1)/3+1)
	case Yearly:
		return fmt.Sprint(y)
	}
	return r.From.String()
}
