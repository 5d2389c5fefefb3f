package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/dto"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/notify"
	"github.com/BruksfildServices01/barber-booking/internal/usecase/appointment"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type PublicHandler struct {
	catalog      domain.Catalog
	slots        *domain.SlotSet
	availability *appointment.GetAvailability
	admit        *appointment.AdmitAppointment
	upcoming     *appointment.ListUpcoming
	handoff      *notify.Handoff
}

func NewPublicHandler(
	catalog domain.Catalog,
	slots *domain.SlotSet,
	availability *appointment.GetAvailability,
	admit *appointment.AdmitAppointment,
	upcoming *appointment.ListUpcoming,
	handoff *notify.Handoff,
) *PublicHandler {
	return &PublicHandler{
		catalog:      catalog,
		slots:        slots,
		availability: availability,
		admit:        admit,
		upcoming:     upcoming,
		handoff:      handoff,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type PublicCreateAppointmentRequest struct {
	BranchID        uint   `json:"branch_id"`
	BarberID        uint   `json:"barber_id"`
	ServiceID       uint   `json:"service_id"`
	Date            string `json:"date"` // YYYY-MM-DD
	Time            string `json:"time"` // HH:MM
	CustomerName    string `json:"customer_name"`
	CustomerContact string `json:"customer_contact"`
	Notes           string `json:"notes"`
}

////////////////////////////////////////////////////////
// CATALOG
////////////////////////////////////////////////////////

func (h *PublicHandler) ListBranches(c *gin.Context) {
	branches, err := h.catalog.ListBranches(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err, "failed_to_list_branches")
		return
	}
	httpresp.List(c, branches)
}

func (h *PublicHandler) ListBarbers(c *gin.Context) {
	branchID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_branch_id", "Branch id must be a number.")
		return
	}

	barbers, err := h.catalog.ListActiveBarbers(c.Request.Context(), uint(branchID))
	if err != nil {
		httperr.Respond(c, err, "failed_to_list_barbers")
		return
	}
	httpresp.List(c, barbers)
}

func (h *PublicHandler) ListServices(c *gin.Context) {
	services, err := h.catalog.ListServices(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err, "failed_to_list_services")
		return
	}
	httpresp.List(c, services)
}

func (h *PublicHandler) ListSlots(c *gin.Context) {
	httpresp.List(c, h.slots.Values())
}

////////////////////////////////////////////////////////
// AVAILABILITY
////////////////////////////////////////////////////////

// Availability answers GET /barbers/:id/availability?date=YYYY-MM-DD
// with an optional comma separated times= subset of the grid.
func (h *PublicHandler) Availability(c *gin.Context) {
	barberID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_barber_id", "Barber id must be a number.")
		return
	}

	date := strings.TrimSpace(c.Query("date"))

	var candidates []string
	for _, t := range strings.Split(c.Query("times"), ",") {
		if t = strings.TrimSpace(t); t != "" {
			candidates = append(candidates, t)
		}
	}

	slots, err := h.availability.Execute(
		c.Request.Context(),
		domain.AvailabilityInput{
			BarberID:   uint(barberID),
			Date:       date,
			Candidates: candidates,
		},
	)
	if err != nil {
		httperr.Respond(c, err, "availability_failed")
		return
	}

	httpresp.OK(c, gin.H{
		"barber_id": barberID,
		"date":      date,
		"slots":     slots,
		"by_time":   domain.AsMap(slots),
	})
}

////////////////////////////////////////////////////////
// UPCOMING
////////////////////////////////////////////////////////

// Upcoming answers GET /appointments/upcoming?order=asc|desc.
func (h *PublicHandler) Upcoming(c *gin.Context) {
	out, err := h.upcoming.Execute(c.Request.Context(), c.Query("order"))
	if err != nil {
		httperr.Respond(c, err, "failed_to_list_upcoming")
		return
	}
	httpresp.List(c, out)
}

////////////////////////////////////////////////////////
// CREATE APPOINTMENT
////////////////////////////////////////////////////////

func (h *PublicHandler) CreateAppointment(c *gin.Context) {
	var req PublicCreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Request body is not valid JSON.")
		return
	}

	ap, err := h.admit.Execute(
		c.Request.Context(),
		appointment.AdmitInput{
			BranchID:        req.BranchID,
			BarberID:        req.BarberID,
			Date:            req.Date,
			Time:            req.Time,
			ServiceID:       req.ServiceID,
			CustomerName:    req.CustomerName,
			CustomerContact: req.CustomerContact,
			Notes:           req.Notes,
		},
	)
	if err != nil {
		httperr.Respond(c, err, "failed_to_create_appointment")
		return
	}

	h.handoff.Dispatch(ap)

	httpresp.Created(c, dto.FromAppointment(*ap))
}
