package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/config"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/handlers"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	"github.com/BruksfildServices01/barber-booking/internal/notify"
	"github.com/BruksfildServices01/barber-booking/internal/operator"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/barber-booking/internal/usecase/appointment"
)

// Deps are the long-lived collaborators built once by main.
type Deps struct {
	Config *config.Config
	Log    *zap.Logger

	Catalog      domain.Catalog
	Appointments domain.Repository
	Operators    operator.Store
	AuditReader  audit.Reader

	Audit   *audit.Dispatcher
	Handoff *notify.Handoff

	Slots *domain.SlotSet
	Clock timezone.Clock
}

func RegisterRoutes(r *gin.Engine, d Deps) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.RequestLogger(d.Log))
	r.Use(middleware.CORSMiddleware(d.Config.CORSOrigins))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ======================================================
	// USE CASES
	// ======================================================
	availabilityUC := ucAppointment.NewGetAvailability(
		d.Appointments,
		d.Slots,
		d.Clock,
	)

	admitUC := ucAppointment.NewAdmitAppointment(
		d.Appointments,
		d.Catalog,
		d.Slots,
		d.Clock,
		d.Audit,
	)

	upcomingUC := ucAppointment.NewListUpcoming(d.Appointments, d.Catalog, d.Clock)
	listUC := ucAppointment.NewListAppointments(d.Appointments, d.Catalog, d.Clock)
	getUC := ucAppointment.NewGetAppointment(d.Appointments, d.Catalog)
	setStatusUC := ucAppointment.NewSetStatus(d.Appointments, d.Clock, d.Audit)
	rescheduleUC := ucAppointment.NewReschedule(d.Appointments, d.Slots, d.Audit)
	deleteUC := ucAppointment.NewDeleteAppointment(d.Appointments, d.Audit)

	// ======================================================
	// HANDLERS
	// ======================================================
	publicHandler := handlers.NewPublicHandler(
		d.Catalog,
		d.Slots,
		availabilityUC,
		admitUC,
		upcomingUC,
		d.Handoff,
	)

	appointmentHandler := handlers.NewAppointmentHandler(
		listUC,
		getUC,
		setStatusUC,
		rescheduleUC,
		deleteUC,
	)

	authHandler := handlers.NewAuthHandler(d.Operators, d.Config.JWTSecret, d.Clock, d.Log)
	auditLogsHandler := handlers.NewAuditLogsHandler(d.AuditReader)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		public := api.Group("/public")
		{
			public.GET("/branches", publicHandler.ListBranches)
			public.GET("/branches/:id/barbers", publicHandler.ListBarbers)
			public.GET("/services", publicHandler.ListServices)
			public.GET("/slots", publicHandler.ListSlots)
			public.GET("/barbers/:id/availability", publicHandler.Availability)
			public.GET("/appointments/upcoming", publicHandler.Upcoming)
			public.POST("/appointments", publicHandler.CreateAppointment)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// ADMIN
		// ------------------------------
		admin := api.Group("/admin")
		admin.Use(middleware.AuthMiddleware(d.Config.JWTSecret, d.Clock))
		{
			admin.GET("/me", authHandler.Me)

			admin.GET("/appointments", appointmentHandler.List)
			admin.GET("/appointments/:id", appointmentHandler.Get)
			admin.PATCH("/appointments/:id/status", appointmentHandler.UpdateStatus)
			admin.PATCH("/appointments/:id/schedule", appointmentHandler.Reschedule)
			admin.DELETE("/appointments/:id", appointmentHandler.Delete)

			admin.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
