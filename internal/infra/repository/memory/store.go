package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/operator"
)

// Store keeps catalog, appointments and audit rows in process memory.
// Admissions are serialized by mu, which makes the slot check and the
// insert one step.
type Store struct {
	mu sync.RWMutex

	branches []models.Branch
	barbers  []models.Barber
	services []models.Service

	appointments map[string]models.Appointment
	auditLogs    []models.AuditLog
	operators    []models.Operator
}

func NewStore() *Store {
	return &Store{
		appointments: make(map[string]models.Appointment),
	}
}

// --------------------------------------------------
// Seeding
// --------------------------------------------------

func (s *Store) AddBranch(b models.Branch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.branches = append(s.branches, b)
}

func (s *Store) AddBarber(b models.Barber) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.barbers = append(s.barbers, b)
}

func (s *Store) AddService(sv models.Service) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.services = append(s.services, sv)
}

// --------------------------------------------------
// Catalog
// --------------------------------------------------

func (s *Store) ListBranches(ctx context.Context) ([]models.Branch, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Branch, len(s.branches))
	copy(out, s.branches)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) ListActiveBarbers(
	ctx context.Context,
	branchID uint,
) ([]models.Barber, error) {

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Barber{}
	for _, b := range s.barbers {
		if b.BranchID == branchID && b.Active {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *Store) ListServices(ctx context.Context) ([]models.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Service, len(s.services))
	copy(out, s.services)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) GetBranch(ctx context.Context, id uint) (*models.Branch, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, b := range s.branches {
		if b.ID == id {
			out := b
			return &out, nil
		}
	}
	return nil, domain.ErrCatalogNotFound
}

func (s *Store) GetBarber(ctx context.Context, id uint) (*models.Barber, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, b := range s.barbers {
		if b.ID == id {
			out := b
			return &out, nil
		}
	}
	return nil, domain.ErrCatalogNotFound
}

func (s *Store) GetService(ctx context.Context, id uint) (*models.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, sv := range s.services {
		if sv.ID == id {
			out := sv
			return &out, nil
		}
	}
	return nil, domain.ErrCatalogNotFound
}

// --------------------------------------------------
// Appointments
// --------------------------------------------------

func (s *Store) ListBookedForDay(
	ctx context.Context,
	barberID uint,
	date string,
) ([]models.Appointment, error) {

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Appointment{}
	for _, ap := range s.appointments {
		if ap.BarberID == barberID && ap.Date == date && domain.Status(ap.Status).HoldsSlot() {
			out = append(out, ap)
		}
	}
	sortBySlot(out, false)
	return out, nil
}

func (s *Store) InsertIfSlotFree(
	ctx context.Context,
	ap *models.Appointment,
) error {

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	for _, existing := range s.appointments {
		if existing.BarberID == ap.BarberID &&
			existing.Date == ap.Date &&
			existing.Time == ap.Time &&
			domain.Status(existing.Status).HoldsSlot() {
			return httperr.ErrBusiness(httperr.CodeSlotAlreadyTaken)
		}
	}

	s.appointments[ap.ID] = *ap
	return nil
}

func (s *Store) GetAppointment(
	ctx context.Context,
	id string,
) (*models.Appointment, error) {

	s.mu.RLock()
	defer s.mu.RUnlock()

	ap, ok := s.appointments[id]
	if !ok {
		return nil, httperr.ErrBusiness(httperr.CodeAppointmentNotFound)
	}
	return &ap, nil
}

func (s *Store) UpdateStatus(
	ctx context.Context,
	id string,
	change domain.StatusChange,
) (*models.Appointment, error) {

	return s.update(id, change.Apply)
}

func (s *Store) UpdateSchedule(
	ctx context.Context,
	id string,
	date string,
	clock string,
) (*models.Appointment, error) {

	return s.update(id, func(ap *models.Appointment) {
		ap.Date = date
		ap.Time = clock
	})
}

// update mutates the stored record in place under the write lock so
// column-scoped writes never overwrite each other.
func (s *Store) update(id string, mutate func(*models.Appointment)) (*models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ap, ok := s.appointments[id]
	if !ok {
		return nil, httperr.ErrBusiness(httperr.CodeAppointmentNotFound)
	}
	mutate(&ap)
	ap.UpdatedAt = time.Now()
	s.appointments[id] = ap

	out := ap
	return &out, nil
}

func (s *Store) DeleteAppointment(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.appointments[id]; !ok {
		return httperr.ErrBusiness(httperr.CodeAppointmentNotFound)
	}
	delete(s.appointments, id)
	return nil
}

func (s *Store) ListAppointments(
	ctx context.Context,
	q domain.ListQuery,
) ([]models.Appointment, error) {

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Appointment{}
	for _, ap := range s.appointments {
		if q.Matches(ap) {
			out = append(out, ap)
		}
	}
	sortBySlot(out, q.Order == domain.OrderDesc)
	return out, nil
}

// --------------------------------------------------
// Audit
// --------------------------------------------------

func (s *Store) SaveAuditLog(ctx context.Context, entry *models.AuditLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry.ID = uint(len(s.auditLogs) + 1)
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	s.auditLogs = append(s.auditLogs, *entry)
	return nil
}

// AuditLogs returns a snapshot of the recorded audit trail.
func (s *Store) AuditLogs() []models.AuditLog {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.AuditLog, len(s.auditLogs))
	copy(out, s.auditLogs)
	return out
}

func (s *Store) ListAuditLogs(ctx context.Context, q audit.Query) ([]models.AuditLog, int64, error) {
	q = q.Normalize()

	s.mu.RLock()
	defer s.mu.RUnlock()

	// newest first
	matched := []models.AuditLog{}
	for i := len(s.auditLogs) - 1; i >= 0; i-- {
		if q.Matches(s.auditLogs[i]) {
			matched = append(matched, s.auditLogs[i])
		}
	}

	total := int64(len(matched))
	start := q.Offset()
	if start >= len(matched) {
		return []models.AuditLog{}, total, nil
	}
	end := start + q.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

// --------------------------------------------------
// Operators
// --------------------------------------------------

func (s *Store) FindOperatorByEmail(ctx context.Context, email string) (*models.Operator, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, op := range s.operators {
		if op.Email == email {
			out := op
			return &out, nil
		}
	}
	return nil, operator.ErrNotFound
}

func (s *Store) GetOperator(ctx context.Context, id uint) (*models.Operator, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, op := range s.operators {
		if op.ID == id {
			out := op
			return &out, nil
		}
	}
	return nil, operator.ErrNotFound
}

func (s *Store) CreateOperator(ctx context.Context, op *models.Operator) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.operators {
		if existing.Email == op.Email {
			return fmt.Errorf("operator %s already exists", op.Email)
		}
	}

	op.ID = uint(len(s.operators) + 1)
	op.CreatedAt = time.Now()
	op.UpdatedAt = op.CreatedAt
	s.operators = append(s.operators, *op)
	return nil
}

// sortBySlot orders by (date, time) with the ID as a stable tiebreak.
func sortBySlot(aps []models.Appointment, desc bool) {
	sort.Slice(aps, func(i, j int) bool {
		a, b := aps[i], aps[j]
		if desc {
			a, b = b, a
		}
		if a.Date != b.Date {
			return a.Date < b.Date
		}
		if a.Time != b.Time {
			return a.Time < b.Time
		}
		return a.ID < b.ID
	})
}

// Compile-time check
var (
	_ domain.Repository = (*Store)(nil)
	_ domain.Catalog    = (*Store)(nil)
	_ audit.Store       = (*Store)(nil)
	_ audit.Reader      = (*Store)(nil)
	_ operator.Store    = (*Store)(nil)
)
