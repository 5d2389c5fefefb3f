package appointment

import (
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

type SlotState string

const (
	SlotAvailable SlotState = "available"
	SlotTaken     SlotState = "taken"
	SlotInPast    SlotState = "in_past"
)

type AvailabilityInput struct {
	BarberID uint
	Date     string
	// Candidates defaults to the configured slot grid when empty.
	Candidates []string
}

type SlotAvailability struct {
	Time  string    `json:"time"`
	State SlotState `json:"state"`
}

// Classify labels every candidate slot for one barber and day. Same-day
// slots at or before now are InPast even when booked; other dates never
// produce InPast. booked must only contain appointments holding their slot.
func Classify(
	date string,
	candidates []string,
	booked []models.Appointment,
	now time.Time,
) []SlotAvailability {

	taken := make(map[string]struct{}, len(booked))
	for _, ap := range booked {
		if ap.Date == date && Status(ap.Status).HoldsSlot() {
			taken[ap.Time] = struct{}{}
		}
	}

	today := date == timezone.CivilDate(now)
	nowSec := nowSecondsOfDay(now)

	out := make([]SlotAvailability, 0, len(candidates))
	for _, slot := range candidates {
		state := SlotAvailable

		if _, ok := taken[slot]; ok {
			state = SlotTaken
		}

		if today && secondsOfDay(slot) <= nowSec {
			state = SlotInPast
		}

		out = append(out, SlotAvailability{Time: slot, State: state})
	}

	return out
}

// AsMap indexes a classification by slot.
func AsMap(slots []SlotAvailability) map[string]SlotState {
	out := make(map[string]SlotState, len(slots))
	for _, s := range slots {
		out[s.Time] = s.State
	}
	return out
}
