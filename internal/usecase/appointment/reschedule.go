package appointment

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// Reschedule moves an appointment to another date/time. The operator is
// trusted to avoid collisions; no conflict check runs here.
type Reschedule struct {
	repo  domain.Repository
	slots *domain.SlotSet
	audit *audit.Dispatcher
}

func NewReschedule(
	repo domain.Repository,
	slots *domain.SlotSet,
	audit *audit.Dispatcher,
) *Reschedule {
	return &Reschedule{
		repo:  repo,
		slots: slots,
		audit: audit,
	}
}

func (uc *Reschedule) Execute(
	ctx context.Context,
	actor domain.Actor,
	appointmentID string,
	newDate string,
	newTime string,
) (*models.Appointment, error) {

	newDate = strings.TrimSpace(newDate)
	newTime = strings.TrimSpace(newTime)

	if newDate == "" {
		return nil, httperr.ErrMissing("date")
	}
	if newTime == "" {
		return nil, httperr.ErrMissing("time")
	}

	date, err := domain.ParseDate(newDate)
	if err != nil {
		return nil, err
	}

	clock, err := uc.slots.ParseSlot(newTime)
	if err != nil {
		return nil, err
	}

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	from := ap.Date + " " + ap.Time

	ap, err = uc.repo.UpdateSchedule(ctx, appointmentID, date, clock)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		OperatorID: &actor.OperatorID,
		Action:     audit.ActionRescheduled,
		Entity:     audit.EntityAppointment,
		EntityID:   ap.ID,
		Metadata: map[string]string{
			"from": from,
			"to":   ap.Date + " " + ap.Time,
		},
	})

	return ap, nil
}
