package appointment

import (
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// StatusChange is the set of columns a status override writes. Stores
// apply it without touching date or time.
type StatusChange struct {
	Status      Status
	CompletedAt *time.Time
	CancelledAt *time.Time
}

// NewStatusChange keeps the completed/cancelled timestamps consistent
// with next. Any status may replace any other.
func NewStatusChange(next Status, now time.Time) StatusChange {
	c := StatusChange{Status: next}

	switch next {
	case StatusCompleted:
		c.CompletedAt = &now
	case StatusCancelled:
		c.CancelledAt = &now
	}
	return c
}

func (c StatusChange) Apply(ap *models.Appointment) {
	ap.Status = string(c.Status)
	ap.CompletedAt = c.CompletedAt
	ap.CancelledAt = c.CancelledAt
}
