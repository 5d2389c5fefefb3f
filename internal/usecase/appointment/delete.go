package appointment

import (
	"context"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
)

// DeleteAppointment removes the record for good.
type DeleteAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteAppointment {
	return &DeleteAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DeleteAppointment) Execute(
	ctx context.Context,
	actor domain.Actor,
	appointmentID string,
) error {

	if err := uc.repo.DeleteAppointment(ctx, appointmentID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		OperatorID: &actor.OperatorID,
		Action:     audit.ActionDeleted,
		Entity:     audit.EntityAppointment,
		EntityID:   appointmentID,
	})

	return nil
}
