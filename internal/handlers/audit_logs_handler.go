package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
)

type AuditLogsHandler struct {
	reader audit.Reader
}

func NewAuditLogsHandler(reader audit.Reader) *AuditLogsHandler {
	return &AuditLogsHandler{reader: reader}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(audit.DefaultLimit)))

	q := audit.Query{
		Action:   c.Query("action"),
		Entity:   c.Query("entity"),
		EntityID: c.Query("entity_id"),
		Page:     page,
		Limit:    limit,
	}.Normalize()

	logs, total, err := h.reader.ListAuditLogs(c.Request.Context(), q)
	if err != nil {
		httperr.Respond(c, err, "audit_list_failed")
		return
	}

	httpresp.Page(c, logs, q.Page, q.Limit, total)
}
