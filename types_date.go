package goodmoney

import (
	"fmt"
	"strings"
	"time"
)

// DateFormat is the format used to represent dates as strings in ISO-8601 format.
const DateFormat = "2006-01-02"

// DatetimeFormat is the format used to represent full instants.
const DatetimeFormat = time.RFC3339

// MonthFormat is the format of a calendar-month key.
const MonthFormat = "2006-01"

// Month represents a calendar month ("YYYY-MM"). Transactions belong to a
// month when their ISO-8601 date string starts with the month key, so a
// date-only value and a full timestamp land in the same window.
type Month struct {
	y int        // year
	m time.Month // month
}

// NewMonth returns a normalized Month for the given year and month.
func NewMonth(year int, month time.Month) Month {
	t := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return Month{y: t.Year(), m: t.Month()}
}

// MonthOf returns the calendar month containing the given instant.
func MonthOf(t time.Time) Month { return NewMonth(t.Year(), t.Month()) }

// ParseMonth parses a "YYYY-MM" month key.
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse(MonthFormat, s)
	if err != nil {
		return Month{}, fmt.Errorf("invalid month %q want format %q: %w", s, MonthFormat, err)
	}
	return MonthOf(t), nil
}

// MustParseMonth is like ParseMonth but panics on error.
func MustParseMonth(s string) Month {
	m, err := ParseMonth(s)
	if err != nil {
		panic(err.Error())
	}
	return m
}

// String formats the month in its standard "YYYY-MM" form.
func (m Month) String() string {
	return time.Date(m.y, m.m, 1, 0, 0, 0, 0, time.UTC).Format(MonthFormat)
}

// Year returns the month's year.
func (m Month) Year() int { return m.y }

// Month returns the month within the year.
func (m Month) Month() time.Month { return m.m }

// IsZero returns true if the month is the zero value.
func (m Month) IsZero() bool { return m.y == 0 && m.m == 0 }

// Contains reports whether the ISO-8601 date string falls within this month.
// The test is a string-prefix match on the month key, not a calendar-range
// comparison, so malformed dates simply never match.
func (m Month) Contains(isoDate string) bool {
	return strings.HasPrefix(isoDate, m.String())
}

// Add returns a new Month with the given number of months added.
func (m Month) Add(i int) Month { return NewMonth(m.y, m.m+time.Month(i)) }

// index is the month counted from year zero, used for month arithmetic.
func (m Month) index() int { return m.y*12 + int(m.m) - 1 }

// MonthsBetween returns the whole calendar months from a to b, the
// year-and-month difference ignoring the day of month. It is negative when b
// precedes a.
func MonthsBetween(a, b time.Time) int {
	return MonthOf(b).index() - MonthOf(a).index()
}

// ParseInstant parses an ISO-8601 value as stored on entities. It accepts a
// full RFC3339 timestamp or a plain date.
func ParseInstant(s string) (time.Time, error) {
	if t, err := time.Parse(DatetimeFormat, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid instant %q want %q or %q: %w", s, DatetimeFormat, DateFormat, err)
	}
	return t, nil
}
