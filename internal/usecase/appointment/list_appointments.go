package appointment

import (
	"context"
	"errors"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/dto"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

type ListAppointments struct {
	repo    domain.Repository
	catalog domain.Catalog
	clock   timezone.Clock
}

func NewListAppointments(
	repo domain.Repository,
	catalog domain.Catalog,
	clock timezone.Clock,
) *ListAppointments {
	return &ListAppointments{
		repo:    repo,
		catalog: catalog,
		clock:   clock,
	}
}

// Execute lists appointments in a status category ordered by date, time.
// order is asc or desc and defaults to asc.
func (uc *ListAppointments) Execute(
	ctx context.Context,
	filter string,
	order string,
) ([]dto.AppointmentDTO, error) {

	f, err := domain.ParseFilter(filter)
	if err != nil {
		return nil, err
	}

	appointments, names, err := listWithBarbers(ctx, uc.repo, uc.catalog, uc.clock, f, order)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AppointmentDTO, 0, len(appointments))
	for _, ap := range appointments {
		item := dto.FromAppointment(ap)
		item.BarberName = names[ap.BarberID]
		out = append(out, item)
	}

	return out, nil
}

// ListUpcoming is the public bookings board: booked appointments whose
// slot has not started yet.
type ListUpcoming struct {
	repo    domain.Repository
	catalog domain.Catalog
	clock   timezone.Clock
}

func NewListUpcoming(
	repo domain.Repository,
	catalog domain.Catalog,
	clock timezone.Clock,
) *ListUpcoming {
	return &ListUpcoming{
		repo:    repo,
		catalog: catalog,
		clock:   clock,
	}
}

func (uc *ListUpcoming) Execute(
	ctx context.Context,
	order string,
) ([]dto.PublicAppointmentDTO, error) {

	appointments, names, err := listWithBarbers(ctx, uc.repo, uc.catalog, uc.clock, domain.FilterActive, order)
	if err != nil {
		return nil, err
	}

	out := make([]dto.PublicAppointmentDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, dto.PublicFromAppointment(ap, names[ap.BarberID]))
	}

	return out, nil
}

func listWithBarbers(
	ctx context.Context,
	repo domain.Repository,
	catalog domain.Catalog,
	clock timezone.Clock,
	filter domain.Filter,
	order string,
) ([]models.Appointment, map[uint]string, error) {

	o, err := domain.ParseOrder(order)
	if err != nil {
		return nil, nil, err
	}

	now := clock()
	appointments, err := repo.ListAppointments(ctx, domain.ListQuery{
		Filter: filter,
		Order:  o,
		Today:  timezone.CivilDate(now),
		Now:    now.Format(timezone.ClockLayout),
	})
	if err != nil {
		return nil, nil, err
	}

	names, err := barberNames(ctx, catalog, appointments)
	if err != nil {
		return nil, nil, err
	}

	return appointments, names, nil
}

// barberNames looks each barber up once. A barber removed from the
// catalog leaves an empty name.
func barberNames(
	ctx context.Context,
	catalog domain.Catalog,
	appointments []models.Appointment,
) (map[uint]string, error) {

	names := make(map[uint]string)
	for _, ap := range appointments {
		if _, seen := names[ap.BarberID]; seen {
			continue
		}

		barber, err := catalog.GetBarber(ctx, ap.BarberID)
		switch {
		case errors.Is(err, domain.ErrCatalogNotFound):
			names[ap.BarberID] = ""
		case err != nil:
			return nil, err
		default:
			names[ap.BarberID] = barber.Name
		}
	}
	return names, nil
}

type GetAppointment struct {
	repo    domain.Repository
	catalog domain.Catalog
}

func NewGetAppointment(repo domain.Repository, catalog domain.Catalog) *GetAppointment {
	return &GetAppointment{repo: repo, catalog: catalog}
}

func (uc *GetAppointment) Execute(
	ctx context.Context,
	appointmentID string,
) (*dto.AppointmentDTO, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	names, err := barberNames(ctx, uc.catalog, []models.Appointment{*ap})
	if err != nil {
		return nil, err
	}

	out := dto.FromAppointment(*ap)
	out.BarberName = names[ap.BarberID]
	return &out, nil
}
