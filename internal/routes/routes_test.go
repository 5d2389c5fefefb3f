package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/config"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/dto"
	"github.com/BruksfildServices01/barber-booking/internal/infra/repository/memory"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/notify"
	"github.com/BruksfildServices01/barber-booking/internal/operator"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

const (
	adminEmail    = "admin@shop.test"
	adminPassword = "s3cret-pass"
)

type server struct {
	router *gin.Engine
	store  *memory.Store
}

func newServer(t *testing.T) *server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := memory.NewStore()
	store.AddBranch(models.Branch{ID: 1, Name: "Downtown"})
	store.AddBarber(models.Barber{ID: 1, BranchID: 1, Name: "Budi", Active: true})
	store.AddBarber(models.Barber{ID: 2, BranchID: 1, Name: "Agus", Active: false})
	store.AddService(models.Service{ID: 1, Name: "Haircut", Price: 50000, DurationMin: 30})

	_, err := operator.EnsureAdmin(context.Background(), store, adminEmail, adminPassword)
	require.NoError(t, err)

	slots, err := domain.NewSlotSet(config.DefaultSlots)
	require.NoError(t, err)

	log := zap.NewNop()
	auditDispatcher := audit.NewDispatcher(store, log)
	handoff := notify.NewHandoff(store, notify.NewLogPublisher(log), log)
	t.Cleanup(func() {
		_ = handoff.Close()
		auditDispatcher.Close()
	})

	r := gin.New()
	RegisterRoutes(r, Deps{
		Config:       &config.Config{JWTSecret: "test-secret"},
		Log:          log,
		Catalog:      store,
		Appointments: store,
		Operators:    store,
		AuditReader:  store,
		Audit:        auditDispatcher,
		Handoff:      handoff,
		Slots:        slots,
		Clock:        timezone.Fixed(time.Date(2025, 3, 10, 16, 30, 0, 0, time.UTC)),
	})

	return &server{router: r, store: store}
}

func (s *server) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *server) login(t *testing.T) string {
	t.Helper()

	w := s.do(t, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    adminEmail,
		"password": adminPassword,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var out struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.NotEmpty(t, out.Token)
	return out.Token
}

func bookingBody(date, clock string) gin.H {
	return gin.H{
		"branch_id":        1,
		"barber_id":        1,
		"service_id":       1,
		"date":             date,
		"time":             clock,
		"customer_name":    "Rina",
		"customer_contact": "0812-000",
	}
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var out struct {
		Code string `json:"error_code"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out.Code
}

func TestHealth(t *testing.T) {
	s := newServer(t)
	w := s.do(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPublicCatalog(t *testing.T) {
	s := newServer(t)

	w := s.do(t, http.MethodGet, "/api/public/branches", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Downtown")

	w = s.do(t, http.MethodGet, "/api/public/branches/1/barbers", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Budi")
	assert.NotContains(t, w.Body.String(), "Agus")

	w = s.do(t, http.MethodGet, "/api/public/services", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Haircut")

	w = s.do(t, http.MethodGet, "/api/public/slots", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total":13`)

	w = s.do(t, http.MethodGet, "/api/public/branches/abc/barbers", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBookingFlow(t *testing.T) {
	s := newServer(t)

	// 14:00 on the same day has passed at 16:30
	w := s.do(t, http.MethodPost, "/api/public/appointments", "", bookingBody("2025-03-10", "14:00"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "slot_in_past", errorCode(t, w))

	w = s.do(t, http.MethodPost, "/api/public/appointments", "", bookingBody("2025-03-10", "17:00"))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created dto.AppointmentDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "booked", created.Status)
	assert.Equal(t, "Haircut", created.ServiceName)
	assert.Equal(t, 50000.0, created.Price)

	w = s.do(t, http.MethodPost, "/api/public/appointments", "", bookingBody("2025-03-10", "17:00"))
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "slot_already_taken", errorCode(t, w))

	w = s.do(t, http.MethodGet, "/api/public/barbers/1/availability?date=2025-03-10&times=16:00,17:00,18:00", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var avail struct {
		Slots  []domain.SlotAvailability   `json:"slots"`
		ByTime map[string]domain.SlotState `json:"by_time"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &avail))
	assert.Equal(t, []domain.SlotAvailability{
		{Time: "16:00", State: domain.SlotInPast},
		{Time: "17:00", State: domain.SlotTaken},
		{Time: "18:00", State: domain.SlotAvailable},
	}, avail.Slots)
	assert.Equal(t, domain.SlotTaken, avail.ByTime["17:00"])
	assert.Len(t, avail.ByTime, 3)
}

func TestUpcomingBoard(t *testing.T) {
	s := newServer(t)

	body := bookingBody("2025-03-11", "14:00")
	body["notes"] = "beard too"
	w := s.do(t, http.MethodPost, "/api/public/appointments", "", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"notes":"beard too"`)

	w = s.do(t, http.MethodPost, "/api/public/appointments", "", bookingBody("2025-03-12", "11:00"))
	require.Equal(t, http.StatusCreated, w.Code)

	var board struct {
		Data []dto.PublicAppointmentDTO `json:"data"`
	}

	w = s.do(t, http.MethodGet, "/api/public/appointments/upcoming", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &board))
	require.Len(t, board.Data, 2)
	assert.Equal(t, "2025-03-11", board.Data[0].Date)
	assert.Equal(t, "Budi", board.Data[0].BarberName)
	assert.Equal(t, "beard too", board.Data[0].Notes)
	assert.NotContains(t, w.Body.String(), "0812-000")

	w = s.do(t, http.MethodGet, "/api/public/appointments/upcoming?order=desc", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &board))
	assert.Equal(t, "2025-03-12", board.Data[0].Date)

	w = s.do(t, http.MethodGet, "/api/public/appointments/upcoming?order=random", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_order", errorCode(t, w))
}

func TestCreateAppointment_Rejections(t *testing.T) {
	s := newServer(t)

	body := bookingBody("2025-03-11", "14:00")
	body["customer_name"] = ""
	w := s.do(t, http.MethodPost, "/api/public/appointments", "", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "missing_field", errorCode(t, w))

	body = bookingBody("2025-03-11", "14:00")
	body["service_id"] = 99
	w = s.do(t, http.MethodPost, "/api/public/appointments", "", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "service_not_found", errorCode(t, w))

	// field checks run before any catalog lookup
	body = bookingBody("2025-03-11", "14:00")
	body["service_id"] = 99
	body["customer_name"] = ""
	w = s.do(t, http.MethodPost, "/api/public/appointments", "", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "missing_field", errorCode(t, w))

	body = bookingBody("2025-03-11", "14:00")
	body["barber_id"] = 2
	w = s.do(t, http.MethodPost, "/api/public/appointments", "", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "barber_unavailable", errorCode(t, w))

	w = s.do(t, http.MethodPost, "/api/public/appointments", "", bookingBody("2025-03-11", "14:15"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_slot", errorCode(t, w))

	w = s.do(t, http.MethodGet, "/api/public/barbers/1/availability?date=tomorrow", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_date", errorCode(t, w))
}

func TestLogin(t *testing.T) {
	s := newServer(t)

	w := s.do(t, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    adminEmail,
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.do(t, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "nobody@shop.test",
		"password": adminPassword,
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	token := s.login(t)
	w = s.do(t, http.MethodGet, "/api/admin/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), adminEmail)
}

func TestAdmin_RequiresToken(t *testing.T) {
	s := newServer(t)

	w := s.do(t, http.MethodGet, "/api/admin/appointments", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdmin_Lifecycle(t *testing.T) {
	s := newServer(t)
	token := s.login(t)

	w := s.do(t, http.MethodPost, "/api/public/appointments", "", bookingBody("2025-03-11", "14:00"))
	require.Equal(t, http.StatusCreated, w.Code)

	var created dto.AppointmentDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	path := "/api/admin/appointments/" + created.ID

	w = s.do(t, http.MethodGet, "/api/admin/appointments?order=desc", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), created.ID)
	assert.Contains(t, w.Body.String(), `"barber_name":"Budi"`)

	w = s.do(t, http.MethodGet, path, token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = s.do(t, http.MethodPatch, path+"/schedule", token, gin.H{"date": "2025-03-12", "time": "15:00"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"date":"2025-03-12"`)

	w = s.do(t, http.MethodPatch, path+"/status", token, gin.H{"status": "bogus"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_status", errorCode(t, w))

	w = s.do(t, http.MethodPatch, path+"/status", token, gin.H{"status": "Cancelled"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"cancelled"`)

	w = s.do(t, http.MethodGet, "/api/admin/appointments?status=cancelled", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), created.ID)

	w = s.do(t, http.MethodGet, "/api/admin/appointments?status=soon", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_filter", errorCode(t, w))

	w = s.do(t, http.MethodDelete, path, token, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = s.do(t, http.MethodGet, path, token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "appointment_not_found", errorCode(t, w))

	// created, rescheduled, status changed, deleted
	require.Eventually(t, func() bool {
		_, total, err := s.store.ListAuditLogs(context.Background(), audit.Query{})
		return err == nil && total == 4
	}, time.Second, 10*time.Millisecond)

	w = s.do(t, http.MethodGet, "/api/admin/audit-logs?action=appointment_deleted", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total":1`)
	assert.Contains(t, w.Body.String(), created.ID)
}
