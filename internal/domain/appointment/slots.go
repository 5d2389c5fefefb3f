package appointment

import (
	"fmt"
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

// SlotSet is the configured, ordered grid of civil times a barber can be
// booked at. It only answers membership; it never generates times.
type SlotSet struct {
	values []string
	index  map[string]struct{}
}

func NewSlotSet(values []string) (*SlotSet, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("slot set is empty")
	}

	s := &SlotSet{
		values: make([]string, 0, len(values)),
		index:  make(map[string]struct{}, len(values)),
	}

	for _, v := range values {
		norm, err := NormalizeClock(v)
		if err != nil {
			return nil, fmt.Errorf("invalid slot %q: %w", v, err)
		}
		if _, dup := s.index[norm]; dup {
			return nil, fmt.Errorf("duplicate slot %q", norm)
		}
		s.index[norm] = struct{}{}
		s.values = append(s.values, norm)
	}

	return s, nil
}

func (s *SlotSet) Contains(clock string) bool {
	_, ok := s.index[clock]
	return ok
}

// Values returns a copy of the grid in configured order.
func (s *SlotSet) Values() []string {
	out := make([]string, len(s.values))
	copy(out, s.values)
	return out
}

// NormalizeClock parses HH:MM (single-digit hours allowed) and returns
// the zero-padded form.
func NormalizeClock(v string) (string, error) {
	t, err := time.Parse(timezone.ClockLayout, v)
	if err != nil {
		return "", err
	}
	return t.Format(timezone.ClockLayout), nil
}

// ParseDate validates a civil YYYY-MM-DD date.
func ParseDate(v string) (string, error) {
	t, err := time.Parse(timezone.DateLayout, v)
	if err != nil {
		return "", httperr.ErrBusiness(httperr.CodeInvalidDate)
	}
	return t.Format(timezone.DateLayout), nil
}

// ParseSlot normalizes v and checks it against the grid.
func (s *SlotSet) ParseSlot(v string) (string, error) {
	norm, err := NormalizeClock(v)
	if err != nil || !s.Contains(norm) {
		return "", httperr.ErrBusiness(httperr.CodeInvalidSlot)
	}
	return norm, nil
}

// secondsOfDay turns HH:MM into seconds after midnight. Only call it with
// normalized values.
func secondsOfDay(clock string) int {
	t, _ := time.Parse(timezone.ClockLayout, clock)
	return t.Hour()*3600 + t.Minute()*60
}

func nowSecondsOfDay(now time.Time) int {
	return now.Hour()*3600 + now.Minute()*60 + now.Second()
}

// IsPast reports whether (date, clock) is no longer bookable at now.
// On the current civil day a slot at or before the current time is past.
func IsPast(date, clock string, now time.Time) bool {
	today := timezone.CivilDate(now)
	if date != today {
		return date < today
	}
	return secondsOfDay(clock) <= nowSecondsOfDay(now)
}
