package schedule

import (
	"errors"
	"fmt"
	"time"
)

// ErrMalformedDate is returned when a date string is not a valid YYYY-MM-DD
// calendar date. Callers must treat this as a hard failure; the scheduler
// never substitutes "now" for bad input.
var ErrMalformedDate = errors.New("malformed date, expected YYYY-MM-DD")

const dateLayout = "2006-01-02"

// Date is a timezone-naive calendar date. All program arithmetic works on
// these triples rather than on instants, so day differences come out the same
// no matter which wall-clock zone the server or user sits in.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// ParseDate parses a YYYY-MM-DD string into a Date.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrMalformedDate, s)
	}
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}, nil
}

// MustParseDate is ParseDate for compile-time-known literals; it panics on
// malformed input.
func MustParseDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// DateOf extracts the calendar date of an instant as seen in loc.
func DateOf(t time.Time, loc *time.Location) Date {
	y, m, d := t.In(loc).Date()
	return Date{Year: y, Month: m, Day: d}
}

// Today returns the current calendar date in the given reference timezone.
func Today(loc *time.Location) Date {
	return DateOf(time.Now(), loc)
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// utc pins the date to midnight UTC. UTC has no daylight-saving transitions,
// so differences between these instants are always whole multiples of 24h.
func (d Date) utc() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// AddDays returns the date n calendar days after d (n may be negative).
func (d Date) AddDays(n int) Date {
	y, m, day := d.utc().AddDate(0, 0, n).Date()
	return Date{Year: y, Month: m, Day: day}
}

// Before reports whether d falls earlier in the calendar than other.
func (d Date) Before(other Date) bool {
	return d.utc().Before(other.utc())
}

// DaysBetween returns the signed number of whole days from a to b.
func DaysBetween(a, b Date) int {
	return int(b.utc().Sub(a.utc()) / (24 * time.Hour))
}

// DateSet is an unordered set of calendar dates, typically the days on which
// a user logged a completed workout. The scheduler only ever reads it.
type DateSet map[Date]struct{}

// NewDateSet builds a set from the given dates.
func NewDateSet(dates ...Date) DateSet {
	set := make(DateSet, len(dates))
	for _, d := range dates {
		set[d] = struct{}{}
	}
	return set
}

// ParseDateSet builds a set from YYYY-MM-DD strings, failing on the first
// malformed entry.
func ParseDateSet(dates []string) (DateSet, error) {
	set := make(DateSet, len(dates))
	for _, s := range dates {
		d, err := ParseDate(s)
		if err != nil {
			return nil, err
		}
		set[d] = struct{}{}
	}
	return set, nil
}

// Contains reports whether d is in the set. A nil set contains nothing.
func (s DateSet) Contains(d Date) bool {
	_, ok := s[d]
	return ok
}
