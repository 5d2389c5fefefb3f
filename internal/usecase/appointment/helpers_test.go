package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/config"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/infra/repository/memory"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

// 2025-03-10 16:30 UTC is "now" unless a test pins another clock.
var testNow = time.Date(2025, 3, 10, 16, 30, 0, 0, time.UTC)

type fixture struct {
	store *memory.Store
	audit *audit.Dispatcher
	slots *domain.SlotSet
	clock timezone.Clock
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	store := memory.NewStore()
	store.AddBranch(models.Branch{ID: 1, Name: "Downtown"})
	store.AddBranch(models.Branch{ID: 2, Name: "Uptown"})
	store.AddBarber(models.Barber{ID: 1, BranchID: 1, Name: "Budi", Active: true})
	store.AddBarber(models.Barber{ID: 2, BranchID: 1, Name: "Agus", Active: false})
	store.AddBarber(models.Barber{ID: 3, BranchID: 2, Name: "Citra", Active: true})
	store.AddService(models.Service{ID: 1, Name: "Haircut", Price: 50000})

	slots, err := domain.NewSlotSet(config.DefaultSlots)
	require.NoError(t, err)

	d := audit.NewDispatcher(store, zap.NewNop())
	t.Cleanup(d.Close)

	return &fixture{
		store: store,
		audit: d,
		slots: slots,
		clock: timezone.Fixed(testNow),
	}
}

func (f *fixture) admit() *AdmitAppointment {
	return NewAdmitAppointment(f.store, f.store, f.slots, f.clock, f.audit)
}

func validInput() AdmitInput {
	return AdmitInput{
		BranchID:        1,
		BarberID:        1,
		Date:            "2025-03-11",
		Time:            "14:00",
		ServiceID:       1,
		CustomerName:    "Rina",
		CustomerContact: "0812-000",
	}
}

// auditActions closes the dispatcher so every queued event is persisted.
func (f *fixture) auditActions() []string {
	f.audit.Close()

	var out []string
	for _, row := range f.store.AuditLogs() {
		out = append(out, row.Action)
	}
	return out
}
