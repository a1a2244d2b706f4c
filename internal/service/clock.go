package service

import (
	"time"

	"github.com/limbo/fast800/pkg/datekey"
)

// Clock decides what "now" and "today" mean for every service. Days roll over in Loc.
type Clock struct {
	Now func() time.Time
	Loc *time.Location
}

func SystemClock(loc *time.Location) Clock {
	if loc == nil {
		loc = time.Local
	}
	return Clock{Now: time.Now, Loc: loc}
}

func (c Clock) now() time.Time {
	if c.Now == nil {
		return time.Now()
	}
	return c.Now()
}

func (c Clock) location() *time.Location {
	if c.Loc == nil {
		return time.Local
	}
	return c.Loc
}

func (c Clock) Today() string {
	return datekey.Today(c.now(), c.location())
}

func (c Clock) Yesterday() string {
	return datekey.AddDays(c.Today(), -1)
}

// DateOf returns the calendar day t falls on.
func (c Clock) DateOf(t time.Time) string {
	return datekey.Today(t, c.location())
}
