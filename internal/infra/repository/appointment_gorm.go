package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *AppointmentGormRepository) ListBookedForDay(
	ctx context.Context,
	barberID uint,
	date string,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where(
			"barber_id = ? AND slot_date = ? AND status = ?",
			barberID, date, string(domain.StatusBooked),
		).
		Order("slot_time ASC").
		Find(&apps).Error; err != nil {
		return nil, storeError(err)
	}

	return apps, nil
}

// --------------------------------------------------
// Admission
// --------------------------------------------------

// InsertIfSlotFree serializes admissions of the same (barber, date, time)
// with a transaction-scoped advisory lock, re-checks the slot and inserts.
// The lock is released on commit or rollback, including when ctx is
// cancelled mid-flight.
func (r *AppointmentGormRepository) InsertIfSlotFree(
	ctx context.Context,
	ap *models.Appointment,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		if err := tx.Exec(
			"SELECT pg_advisory_xact_lock(hashtext(?))",
			slotLockKey(ap),
		).Error; err != nil {
			return err
		}

		var count int64
		if err := tx.
			Model(&models.Appointment{}).
			Where(
				"barber_id = ? AND slot_date = ? AND slot_time = ? AND status = ?",
				ap.BarberID, ap.Date, ap.Time, string(domain.StatusBooked),
			).
			Count(&count).Error; err != nil {
			return err
		}

		if count > 0 {
			return httperr.ErrBusiness(httperr.CodeSlotAlreadyTaken)
		}

		return tx.Create(ap).Error
	})

	return storeError(err)
}

func slotLockKey(ap *models.Appointment) string {
	return fmt.Sprintf("appointment:%d:%s:%s", ap.BarberID, ap.Date, ap.Time)
}

// --------------------------------------------------
// Lifecycle
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	id string,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&ap).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeAppointmentNotFound)
		}
		return nil, storeError(err)
	}

	return &ap, nil
}

// UpdateStatus and UpdateSchedule each write their own columns only, so
// a status override and a reschedule racing on one row both land.

func (r *AppointmentGormRepository) UpdateStatus(
	ctx context.Context,
	id string,
	change domain.StatusChange,
) (*models.Appointment, error) {

	return r.updateColumns(ctx, id, map[string]any{
		"status":       string(change.Status),
		"completed_at": change.CompletedAt,
		"cancelled_at": change.CancelledAt,
	})
}

func (r *AppointmentGormRepository) UpdateSchedule(
	ctx context.Context,
	id string,
	date string,
	clock string,
) (*models.Appointment, error) {

	return r.updateColumns(ctx, id, map[string]any{
		"slot_date": date,
		"slot_time": clock,
	})
}

func (r *AppointmentGormRepository) updateColumns(
	ctx context.Context,
	id string,
	columns map[string]any,
) (*models.Appointment, error) {

	res := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ?", id).
		Updates(columns)

	if res.Error != nil {
		return nil, storeError(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, httperr.ErrBusiness(httperr.CodeAppointmentNotFound)
	}

	return r.GetAppointment(ctx, id)
}

func (r *AppointmentGormRepository) DeleteAppointment(
	ctx context.Context,
	id string,
) error {

	res := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.Appointment{})

	if res.Error != nil {
		return storeError(res.Error)
	}
	if res.RowsAffected == 0 {
		return httperr.ErrBusiness(httperr.CodeAppointmentNotFound)
	}
	return nil
}

func (r *AppointmentGormRepository) ListAppointments(
	ctx context.Context,
	q domain.ListQuery,
) ([]models.Appointment, error) {

	query := r.db.WithContext(ctx).Model(&models.Appointment{})

	switch q.Filter {
	case domain.FilterActive:
		query = query.
			Where("status = ?", string(domain.StatusBooked)).
			Where(
				"(slot_date > ? OR (slot_date = ? AND slot_time >= ?))",
				q.Today, q.Today, q.Now,
			)
	case domain.FilterCompleted:
		query = query.Where("status = ?", string(domain.StatusCompleted))
	case domain.FilterCancelled:
		query = query.Where("status = ?", string(domain.StatusCancelled))
	case domain.FilterAll:
	default:
		return nil, httperr.ErrBusiness(httperr.CodeInvalidFilter)
	}

	dir := "ASC"
	if q.Order == domain.OrderDesc {
		dir = "DESC"
	}

	var apps []models.Appointment
	if err := query.
		Order("slot_date " + dir).
		Order("slot_time " + dir).
		Find(&apps).Error; err != nil {
		return nil, storeError(err)
	}

	return apps, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
