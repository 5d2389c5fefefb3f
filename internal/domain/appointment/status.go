package appointment

import (
	"strings"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
)

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusBooked    Status = "booked"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// InitialStatus is the status every admitted appointment starts in.
func InitialStatus() Status {
	return StatusBooked
}

// ParseStatus accepts any letter case ("Booked", "booked").
func ParseStatus(v string) (Status, error) {
	switch s := Status(strings.ToLower(strings.TrimSpace(v))); s {
	case StatusBooked, StatusCompleted, StatusCancelled:
		return s, nil
	}
	return "", httperr.ErrBusiness(httperr.CodeInvalidStatus)
}

// HoldsSlot reports whether an appointment in status s occupies its slot.
func (s Status) HoldsSlot() bool {
	return s == StatusBooked
}
