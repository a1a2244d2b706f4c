// Package datekey works with calendar-day keys in YYYY-MM-DD form.
package datekey

import (
	"errors"
	"time"
)

const Layout = "2006-01-02"

var ErrInvalid = errors.New("invalid date key, expected YYYY-MM-DD")

func Format(t time.Time) string {
	return t.Format(Layout)
}

// Parse reads a key as midnight in loc.
func Parse(key string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(Layout, key, loc)
	if err != nil {
		return time.Time{}, ErrInvalid
	}
	return t, nil
}

func Valid(key string) bool {
	_, err := time.Parse(Layout, key)
	return err == nil
}

// Today returns the key of now's calendar day in loc.
func Today(now time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return Format(now.In(loc))
}

// AddDays shifts a valid key by n calendar days.
func AddDays(key string, n int) string {
	t, err := time.Parse(Layout, key)
	if err != nil {
		return key
	}
	return Format(t.AddDate(0, 0, n))
}

// DaysBetween returns the number of calendar days from a to b.
func DaysBetween(a, b string) int {
	ta, errA := time.Parse(Layout, a)
	tb, errB := time.Parse(Layout, b)
	if errA != nil || errB != nil {
		return 0
	}
	return int(tb.Sub(ta).Hours() / 24)
}

// Range lists every key from start to end inclusive. Empty when end precedes start.
func Range(start, end string) ([]string, error) {
	ts, err := time.Parse(Layout, start)
	if err != nil {
		return nil, ErrInvalid
	}
	te, err := time.Parse(Layout, end)
	if err != nil {
		return nil, ErrInvalid
	}
	keys := make([]string, 0)
	for d := ts; !d.After(te); d = d.AddDate(0, 0, 1) {
		keys = append(keys, Format(d))
	}
	return keys, nil
}
