package appointment

import (
	"context"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// Catalog is the read-only view of branches, barbers and services.
// Implementations return already filtered data (active barbers only).
type Catalog interface {
	ListBranches(ctx context.Context) ([]models.Branch, error)

	ListActiveBarbers(
		ctx context.Context,
		branchID uint,
	) ([]models.Barber, error)

	ListServices(ctx context.Context) ([]models.Service, error)

	GetBranch(ctx context.Context, id uint) (*models.Branch, error)
	GetBarber(ctx context.Context, id uint) (*models.Barber, error)
	GetService(ctx context.Context, id uint) (*models.Service, error)
}

// Repository is the appointment store, the only shared mutable state.
type Repository interface {
	// -------- Availability --------
	ListBookedForDay(
		ctx context.Context,
		barberID uint,
		date string,
	) ([]models.Appointment, error)

	// -------- Admission --------

	// InsertIfSlotFree checks that no booked appointment holds
	// (BarberID, Date, Time) and inserts ap, as one atomic step with
	// respect to other admissions of the same triple. It returns a
	// slot_already_taken business error when the slot is held.
	InsertIfSlotFree(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Lifecycle --------
	GetAppointment(
		ctx context.Context,
		id string,
	) (*models.Appointment, error)

	// UpdateStatus writes only status and its timestamps, so a
	// concurrent reschedule of the same appointment is never undone.
	UpdateStatus(
		ctx context.Context,
		id string,
		change StatusChange,
	) (*models.Appointment, error)

	// UpdateSchedule writes only date and time. It does not check for
	// conflicts.
	UpdateSchedule(
		ctx context.Context,
		id string,
		date string,
		clock string,
	) (*models.Appointment, error)

	DeleteAppointment(
		ctx context.Context,
		id string,
	) error

	ListAppointments(
		ctx context.Context,
		q ListQuery,
	) ([]models.Appointment, error)
}
