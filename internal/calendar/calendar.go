// Package calendar provides date-only values and calendar-aware duration
// arithmetic. Durations come in two forms: a human-readable years/months/days
// breakdown and an exact whole-day count; the day count is what sorting and
// comparison are built on, the breakdown is for display.
package calendar

import (
	"fmt"
	"time"
)

// Date is a calendar date with no time-of-day component.
type Date struct {
	Year  int
	Month int // 1..12
	Day   int
}

// Parse reads an ISO "YYYY-MM-DD" string. Malformed or empty input yields
// ok=false; callers treat that as an absent date rather than an error.
func Parse(s string) (Date, bool) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, false
	}
	return Date{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}, true
}

// MustParse is Parse for test fixtures and constants known to be well formed.
func MustParse(s string) Date {
	d, ok := Parse(s)
	if !ok {
		panic(fmt.Sprintf("calendar: invalid date %q", s))
	}
	return d
}

// Today returns the current date in local time.
func Today() Date {
	now := time.Now()
	return Date{Year: now.Year(), Month: int(now.Month()), Day: now.Day()}
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// MarshalJSON renders the date as a quoted ISO string.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON accepts a quoted ISO string.
func (d *Date) UnmarshalJSON(b []byte) error {
	s := string(b)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("calendar: invalid date JSON %s", s)
	}
	parsed, ok := Parse(s[1 : len(s)-1])
	if !ok {
		return fmt.Errorf("calendar: invalid date %s", s)
	}
	*d = parsed
	return nil
}

// Time anchors the date at midnight UTC. Day arithmetic goes through UTC so
// daylight-saving transitions never produce off-by-one day counts.
func (d Date) Time() time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
}

func (d Date) IsZero() bool {
	return d == Date{}
}

func (d Date) Before(o Date) bool {
	if d.Year != o.Year {
		return d.Year < o.Year
	}
	if d.Month != o.Month {
		return d.Month < o.Month
	}
	return d.Day < o.Day
}

// Duration is a completed years/months/days span between two dates.
type Duration struct {
	Years  int `json:"years"`
	Months int `json:"months"`
	Days   int `json:"days"`
}

func (d Duration) String() string {
	return fmt.Sprintf("%dy %dm %dd", d.Years, d.Months, d.Days)
}

// Diff returns the completed calendar duration from from to to, the way ages
// are quoted: Jan 31 -> Mar 1 is 0y 1m 1d. When the day component would go
// negative, a month is borrowed and the remaining days are counted on the real
// calendar, so February and leap years are honored. Diff(d, d) is zero.
// Behavior for to before from is unspecified; callers order their endpoints.
func Diff(from, to Date) Duration {
	years := to.Year - from.Year
	months := to.Month - from.Month
	days := to.Day - from.Day
	if days < 0 {
		months--
		// Land from's day-of-month in the month before to, clamped to that
		// month's length, and count the days left to reach to.
		anchorYear, anchorMonth := to.Year, to.Month-1
		if anchorMonth < 1 {
			anchorMonth = 12
			anchorYear--
		}
		anchorDay := from.Day
		if last := daysInMonth(anchorYear, anchorMonth); anchorDay > last {
			anchorDay = last
		}
		days = DayCount(Date{anchorYear, anchorMonth, anchorDay}, to)
	}
	if months < 0 {
		months += 12
		years--
	}
	return Duration{Years: years, Months: months, Days: days}
}

// DayCount returns the exact number of whole days from from to to. It is
// strictly monotonic in to, which makes it the canonical sort key for spans
// whose years/months/days breakdowns are otherwise hard to compare.
func DayCount(from, to Date) int {
	return int(to.Time().Sub(from.Time()) / (24 * time.Hour))
}

// daysInMonth uses the day-zero normalization: day 0 of the following month
// is the last day of this one.
func daysInMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
