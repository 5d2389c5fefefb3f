package timezone

import (
	"time"
	_ "time/tzdata"
)

const DefaultTimezone = "Asia/Jakarta"

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

// Clock returns the current instant. Use cases receive one instead of
// calling time.Now so "today" can be pinned in tests.
type Clock func() time.Time

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// ClockIn is a wall clock pinned to the business timezone.
func ClockIn(tz string) Clock {
	loc := Location(tz)
	return func() time.Time {
		return time.Now().In(loc)
	}
}

// Fixed always reports t.
func Fixed(t time.Time) Clock {
	return func() time.Time {
		return t
	}
}

// CivilDate is the YYYY-MM-DD of t in its own location.
func CivilDate(t time.Time) string {
	return t.Format(DateLayout)
}
