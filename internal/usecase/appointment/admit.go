package appointment

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type AdmitInput struct {
	// BranchID may be zero, in which case the barber's branch is used.
	BranchID uint
	BarberID uint

	Date string
	Time string

	// ServiceID is resolved against the catalog and its name and price
	// are copied onto the appointment, so later catalog edits do not
	// rewrite history.
	ServiceID uint

	CustomerName    string
	CustomerContact string
	Notes           string
}

// ======================================================
// USE CASE
// ======================================================

type AdmitAppointment struct {
	repo    domain.Repository
	catalog domain.Catalog
	slots   *domain.SlotSet
	clock   timezone.Clock
	audit   *audit.Dispatcher
}

func NewAdmitAppointment(
	repo domain.Repository,
	catalog domain.Catalog,
	slots *domain.SlotSet,
	clock timezone.Clock,
	audit *audit.Dispatcher,
) *AdmitAppointment {
	return &AdmitAppointment{
		repo:    repo,
		catalog: catalog,
		slots:   slots,
		clock:   clock,
		audit:   audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute validates the request and commits a booked appointment. Checks
// run cheapest first and the first failure wins. The slot conflict is
// always re-checked here, inside the store's atomic insert, whatever the
// caller saw on the availability screen.
func (uc *AdmitAppointment) Execute(
	ctx context.Context,
	in AdmitInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1. Required fields
	// --------------------------------------------------
	if err := requireFields(in); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2. Slot grid and date format
	// --------------------------------------------------
	clock, err := uc.slots.ParseSlot(strings.TrimSpace(in.Time))
	if err != nil {
		return nil, err
	}

	date, err := domain.ParseDate(strings.TrimSpace(in.Date))
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3. Past slots
	// --------------------------------------------------
	now := uc.clock()
	if domain.IsPast(date, clock, now) {
		return nil, httperr.ErrBusiness(httperr.CodeSlotInPast)
	}

	// --------------------------------------------------
	// 4. Barber must be active and belong to the branch
	// --------------------------------------------------
	barber, err := uc.catalog.GetBarber(ctx, in.BarberID)
	if err != nil {
		if errors.Is(err, domain.ErrCatalogNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeBarberUnavailable)
		}
		return nil, err
	}

	branchID := in.BranchID
	if branchID == 0 {
		branchID = barber.BranchID
	}
	if !barber.Active || barber.BranchID != branchID {
		return nil, httperr.ErrBusiness(httperr.CodeBarberUnavailable)
	}

	// --------------------------------------------------
	// 5. Service snapshot
	// --------------------------------------------------
	service, err := uc.catalog.GetService(ctx, in.ServiceID)
	if err != nil {
		if errors.Is(err, domain.ErrCatalogNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeServiceNotFound)
		}
		return nil, err
	}

	// --------------------------------------------------
	// 6. Atomic conflict check + insert
	// --------------------------------------------------
	ap := &models.Appointment{
		ID:              uuid.NewString(),
		BranchID:        branchID,
		BarberID:        barber.ID,
		ServiceName:     service.Name,
		Price:           service.Price,
		Date:            date,
		Time:            clock,
		CustomerName:    strings.TrimSpace(in.CustomerName),
		CustomerContact: strings.TrimSpace(in.CustomerContact),
		Notes:           strings.TrimSpace(in.Notes),
		Status:          string(domain.InitialStatus()),
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := uc.repo.InsertIfSlotFree(ctx, ap); err != nil {
		if httperr.IsBusiness(err, httperr.CodeSlotAlreadyTaken) {
			uc.audit.Dispatch(audit.Event{
				Action: audit.ActionConflict,
				Entity: audit.EntityAppointment,
				Metadata: map[string]any{
					"barber_id": ap.BarberID,
					"date":      ap.Date,
					"time":      ap.Time,
				},
			})
		}
		return nil, err
	}

	// --------------------------------------------------
	// 7. Audit
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		Action:   audit.ActionCreated,
		Entity:   audit.EntityAppointment,
		EntityID: ap.ID,
	})

	return ap, nil
}

func requireFields(in AdmitInput) error {
	required := []struct {
		name  string
		value string
	}{
		{"customer_name", in.CustomerName},
		{"customer_contact", in.CustomerContact},
		{"date", in.Date},
		{"time", in.Time},
	}

	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return httperr.ErrMissing(f.name)
		}
	}

	if in.BarberID == 0 {
		return httperr.ErrMissing("barber_id")
	}
	if in.ServiceID == 0 {
		return httperr.ErrMissing("service_id")
	}

	return nil
}
