package domain

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

// dateLayouts are tried in order. Slash layouts read month first.
var dateLayouts = []string{
	DateLayout,
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"01/02/2006",
	"1/2/2006",
	"2006/01/02",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
	"2 January 2006",
}

// Date is a calendar date without time of day or zone. The zero value is the
// explicit "no date" marker.
type Date struct {
	year  int
	month time.Month
	day   int
	valid bool
}

// NewDate builds a valid Date. Out-of-range components are normalized the way
// time.Date does.
func NewDate(year int, month time.Month, day int) Date {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return Date{year: t.Year(), month: t.Month(), day: t.Day(), valid: true}
}

// DateOf returns the calendar date of t in t's own location.
func DateOf(t time.Time) Date {
	if t.IsZero() {
		return Date{}
	}
	return NewDate(t.Year(), t.Month(), t.Day())
}

// Today returns the current calendar date in loc.
func Today(loc *time.Location) Date {
	return DateOf(time.Now().In(loc))
}

// ParseDate normalizes s into a calendar date. Absent or unparseable input
// yields the zero Date; it never fails.
func ParseDate(s string) Date {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "N/A") || strings.EqualFold(s, "null") {
		return Date{}
	}
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return DateOf(t)
		}
	}
	return Date{}
}

func (d Date) Valid() bool       { return d.valid }
func (d Date) Year() int         { return d.year }
func (d Date) Month() time.Month { return d.month }
func (d Date) Day() int          { return d.day }

// String renders YYYY-MM-DD, or "" for the absent date.
func (d Date) String() string {
	if !d.valid {
		return ""
	}
	return fmt.Sprintf("%04d-%02d-%02d", d.year, d.month, d.day)
}

// Time returns midnight UTC of d.
func (d Date) Time() time.Time {
	if !d.valid {
		return time.Time{}
	}
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

// AddDays returns d shifted by n days. The absent date stays absent.
func (d Date) AddDays(n int) Date {
	if !d.valid {
		return d
	}
	return NewDate(d.year, d.month, d.day+n)
}

// Before reports whether d is strictly earlier than o. Absent dates are never
// before anything.
func (d Date) Before(o Date) bool {
	if !d.valid || !o.valid {
		return false
	}
	return d.Time().Before(o.Time())
}

// Compare returns -1, 0 or 1. Absent dates sort before present ones.
func (d Date) Compare(o Date) int {
	switch {
	case !d.valid && !o.valid:
		return 0
	case !d.valid:
		return -1
	case !o.valid:
		return 1
	}
	return d.Time().Compare(o.Time())
}

func (d Date) MarshalJSON() ([]byte, error) {
	if !d.valid {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		*d = Date{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		// Non-string input is treated like any other unparseable value.
		*d = Date{}
		return nil
	}
	*d = ParseDate(s)
	return nil
}

// Scan reads DATE columns from either driver: postgres yields time.Time, sqlite
// may yield text.
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*d = Date{}
	case time.Time:
		*d = DateOf(v)
	case string:
		*d = ParseDate(v)
	case []byte:
		*d = ParseDate(string(v))
	default:
		return fmt.Errorf("date: cannot scan %T", src)
	}
	return nil
}

func (d Date) Value() (driver.Value, error) {
	if !d.valid {
		return nil, nil
	}
	return d.String(), nil
}
