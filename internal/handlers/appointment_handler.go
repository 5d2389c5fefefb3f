package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/dto"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	"github.com/BruksfildServices01/barber-booking/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	list       *appointment.ListAppointments
	get        *appointment.GetAppointment
	setStatus  *appointment.SetStatus
	reschedule *appointment.Reschedule
	remove     *appointment.DeleteAppointment
}

func NewAppointmentHandler(
	list *appointment.ListAppointments,
	get *appointment.GetAppointment,
	setStatus *appointment.SetStatus,
	reschedule *appointment.Reschedule,
	remove *appointment.DeleteAppointment,
) *AppointmentHandler {
	return &AppointmentHandler{
		list:       list,
		get:        get,
		setStatus:  setStatus,
		reschedule: reschedule,
		remove:     remove,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

type RescheduleRequest struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

// ======================================================
// LIST / GET
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	out, err := h.list.Execute(c.Request.Context(), c.Query("status"), c.Query("order"))
	if err != nil {
		httperr.Respond(c, err, "failed_to_list_appointments")
		return
	}
	httpresp.List(c, out)
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	out, err := h.get.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.Respond(c, err, "failed_to_get_appointment")
		return
	}
	httpresp.OK(c, out)
}

// ======================================================
// MUTATIONS
// ======================================================

func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Request body is not valid JSON.")
		return
	}

	ap, err := h.setStatus.Execute(
		c.Request.Context(),
		middleware.ActorFrom(c),
		c.Param("id"),
		req.Status,
	)
	if err != nil {
		httperr.Respond(c, err, "failed_to_update_status")
		return
	}

	httpresp.OK(c, dto.FromAppointment(*ap))
}

func (h *AppointmentHandler) Reschedule(c *gin.Context) {
	var req RescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Request body is not valid JSON.")
		return
	}

	ap, err := h.reschedule.Execute(
		c.Request.Context(),
		middleware.ActorFrom(c),
		c.Param("id"),
		req.Date,
		req.Time,
	)
	if err != nil {
		httperr.Respond(c, err, "failed_to_reschedule")
		return
	}

	httpresp.OK(c, dto.FromAppointment(*ap))
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	err := h.remove.Execute(
		c.Request.Context(),
		middleware.ActorFrom(c),
		c.Param("id"),
	)
	if err != nil {
		httperr.Respond(c, err, "failed_to_delete_appointment")
		return
	}

	c.Status(http.StatusNoContent)
}
