// Package date provides a calendar date with day-level granularity, the
// lenient-but-unambiguous parser used for lease end dates and "as of"
// dates, and reporting periods.
package date

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

const readDateFormat = "2006-1-2" // Permissive read date format (allows single-digit month/day).

// DateFormat is the format used to represent dates as strings in ISO-8601 format.
const DateFormat = "2006-01-02" // write date format

const Day = 24 * time.Hour

// ErrAmbiguous is returned by Parse when a string cannot be read as a single
// calendar date.
var ErrAmbiguous = errors.New("ambiguous date")

// Date represents a date with day-level granularity.
type Date struct {
	y int
	m time.Month
	d int
}

// New returns a normalized Date for the given year, month, and day.
func New(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Of returns the calendar date of t, in t's own location.
func Of(t time.Time) Date { return New(t.Date()) }

// Today returns the current date.
func Today() Date { return New(time.Now().Date()) }

// Year returns current year.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.m }

// Day returns current day of the month.
func (d Date) Day() int { return d.d }

// Weekday returns the day of the week for the date.
func (d Date) Weekday() time.Weekday { return d.time().Weekday() }

// ISOWeek returns the ISO 8601 year and week number in which d occurs.
func (d Date) ISOWeek() (year, week int) { return d.time().ISOWeek() }

// IsZero returns true if the date is the zero value.
func (d Date) IsZero() bool { return d.y == 0 && d.m == 0 && d.d == 0 }

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// Time returns midnight UTC of that day.
func (d Date) Time() time.Time { return d.time() }

// String format the date in its standard format.
func (d Date) String() string { return d.time().Format(DateFormat) }

// Format returns a textual representation of the date value formatted according to the layout defined by the argument.
//
//	See the documentation for the [time.Format].
func (d Date) Format(format string) string { return d.time().Format(format) }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// Add returns a new Date with the given number of days added.
func (d Date) Add(i int) Date { return New(d.y, d.m, d.d+i) }

// AddMonth returns a new Date with the given number of months added.
func (d Date) AddMonth(i int) Date { return New(d.y, d.m+time.Month(i), d.d) }

// DaysSince returns the number of whole days from x to d, negative if d is before x.
func (d Date) DaysSince(x Date) int {
	// both are midnight UTC, so there is no DST drift in the division.
	return int(d.time().Sub(x.time()) / Day)
}

var (
	// only year-first layouts are unambiguous.
	slashedRE  = regexp.MustCompile(`^\d{4}/\d{1,2}/\d{1,2}$`)
	compactRE  = regexp.MustCompile(`^\d{8}$`)
	yearLastRE = regexp.MustCompile(`^\d{1,2}[/.-]\d{1,2}[/.-]\d{2,4}$`)
)

// Parse parses a Date from a string.
//
// It accepts "2025-07-01" and the lenient "2025-7-1", "2025/07/01", "20250701"
// and timestamps like RFC 3339 or "2025-07-01 00:00:00", whose date part is
// kept. Day-first and month-first
// layouts like "01/02/2025" cannot be told apart and fail with ErrAmbiguous,
// as does anything else that is not a date.
func Parse(str string) (Date, error) {
	str = strings.TrimSpace(str)
	switch {
	case yearLastRE.MatchString(str):
		return Date{}, fmt.Errorf("%w %q: day and month order is unknown, want format %q", ErrAmbiguous, str, DateFormat)
	case slashedRE.MatchString(str):
		str = strings.ReplaceAll(str, "/", "-")
	case compactRE.MatchString(str):
		on, err := time.Parse("20060102", str)
		if err != nil {
			return Date{}, fmt.Errorf("%w %q: %w", ErrAmbiguous, str, err)
		}
		return Of(on), nil
	}

	on, err := time.Parse(readDateFormat, str)
	if err != nil {
		for _, layout := range timestampLayouts {
			if ts, terr := time.Parse(layout, str); terr == nil {
				return Of(ts), nil
			}
		}
		return Date{}, fmt.Errorf("%w %q want format %q: %w", ErrAmbiguous, str, DateFormat, err)
	}
	return Of(on), nil
}

// timestampLayouts are the year-first timestamps whose date part is kept.
// Fractional seconds are accepted after the seconds.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-1-2 15:04:05",
	"2006-1-2T15:04:05",
	"2006-1-2 15:04",
	"2006-1-2T15:04",
}

// MustParse is like Parse but panics on error.
func MustParse(str string) Date {
	d, err := Parse(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// UnmarshalJSON implements the json specific way to unmarshall a date from a json string.
func (j *Date) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	d, err := Parse(str)
	if err != nil {
		return err
	}
	*j = d
	return nil
}

func (j Date) MarshalJSON() ([]byte, error) {
	str := j.String()
	return json.Marshal(&str)
}

// check that a Date pointer is a valid json marshall/unmarshaller type.
var _ json.Marshaler = (*Date)(nil)
var _ json.Unmarshaler = (*Date)(nil)
