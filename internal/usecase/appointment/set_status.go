package appointment

import (
	"context"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

// SetStatus is the operator override: any recognized status may replace
// any other, terminal states included.
type SetStatus struct {
	repo  domain.Repository
	clock timezone.Clock
	audit *audit.Dispatcher
}

func NewSetStatus(
	repo domain.Repository,
	clock timezone.Clock,
	audit *audit.Dispatcher,
) *SetStatus {
	return &SetStatus{
		repo:  repo,
		clock: clock,
		audit: audit,
	}
}

func (uc *SetStatus) Execute(
	ctx context.Context,
	actor domain.Actor,
	appointmentID string,
	status string,
) (*models.Appointment, error) {

	next, err := domain.ParseStatus(status)
	if err != nil {
		return nil, err
	}

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	previous := ap.Status

	// Only the status columns are written; a reschedule landing between
	// the read above and this write is kept.
	ap, err = uc.repo.UpdateStatus(ctx, appointmentID, domain.NewStatusChange(next, uc.clock()))
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		OperatorID: &actor.OperatorID,
		Action:     audit.ActionStatusChanged,
		Entity:     audit.EntityAppointment,
		EntityID:   ap.ID,
		Metadata: map[string]string{
			"from": previous,
			"to":   ap.Status,
		},
	})

	return ap, nil
}
