package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/MenteSaServices/clinic-scheduler/internal/domain/appointment"
	"github.com/MenteSaServices/clinic-scheduler/internal/httperr"
	"github.com/MenteSaServices/clinic-scheduler/internal/httpresp"
	"github.com/MenteSaServices/clinic-scheduler/internal/middleware"
	ucAppointment "github.com/MenteSaServices/clinic-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	create     *ucAppointment.CreateAppointment
	cancel     *ucAppointment.CancelAppointment
	confirm    *ucAppointment.ConfirmAppointment
	reschedule *ucAppointment.RescheduleAppointment
	lifecycle  *ucAppointment.SessionLifecycle
	next       *ucAppointment.ScheduleNextAppointment
	list       *ucAppointment.ListAppointments
}

func NewAppointmentHandler(
	create *ucAppointment.CreateAppointment,
	cancel *ucAppointment.CancelAppointment,
	confirm *ucAppointment.ConfirmAppointment,
	reschedule *ucAppointment.RescheduleAppointment,
	lifecycle *ucAppointment.SessionLifecycle,
	next *ucAppointment.ScheduleNextAppointment,
	list *ucAppointment.ListAppointments,
) *AppointmentHandler {
	return &AppointmentHandler{
		create:     create,
		cancel:     cancel,
		confirm:    confirm,
		reschedule: reschedule,
		lifecycle:  lifecycle,
		next:       next,
		list:       list,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ClientID       string    `json:"client_id" binding:"required"`
	ProfessionalID string    `json:"professional_id" binding:"required"`
	StartDateTime  time.Time `json:"start_date_time" binding:"required"`
	Modality       string    `json:"modality" binding:"required"`
	GoogleMeetLink string    `json:"google_meet_link"`
}

type CancelAppointmentRequest struct {
	ClientID string `json:"client_id"`
}

type RescheduleAppointmentRequest struct {
	NewStart time.Time `json:"new_start" binding:"required"`
	NewEnd   time.Time `json:"new_end" binding:"required"`
	ClientID string    `json:"client_id"`
}

type NextAppointmentRequest struct {
	ClientID       string    `json:"client_id" binding:"required"`
	ProfessionalID string    `json:"professional_id" binding:"required"`
	StartDateTime  time.Time `json:"start_date_time" binding:"required"`
	Modality       string    `json:"modality" binding:"required"`
}

// ======================================================
// PUBLIC (client-facing)
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if !domain.ValidModality(req.Modality) {
		httperr.BadRequest(c, "invalid_modality", "Modalidade inválida.")
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		ClientID:       req.ClientID,
		ProfessionalID: req.ProfessionalID,
		StartDateTime:  req.StartDateTime.UTC(),
		Modality:       domain.Modality(req.Modality),
		GoogleMeetLink: req.GoogleMeetLink,
	})
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	c.JSON(http.StatusCreated, ap.Snapshot())
}

func (h *AppointmentHandler) ScheduleNext(c *gin.Context) {
	var req NextAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if !domain.ValidModality(req.Modality) {
		httperr.BadRequest(c, "invalid_modality", "Modalidade inválida.")
		return
	}

	ap, err := h.next.Execute(c.Request.Context(), ucAppointment.ScheduleNextAppointmentInput{
		ClientID:       req.ClientID,
		ProfessionalID: req.ProfessionalID,
		StartDateTime:  req.StartDateTime.UTC(),
		Modality:       domain.Modality(req.Modality),
	})
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	c.JSON(http.StatusCreated, ap.Snapshot())
}

// PublicCancel lets the client who owns the appointment cancel it.
func (h *AppointmentHandler) PublicCancel(c *gin.Context) {
	appointmentID := c.Param("id")

	var req CancelAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ClientID == "" {
		httperr.BadRequest(c, "invalid_request", "Cliente obrigatório.")
		return
	}

	ap, err := h.cancel.Execute(c.Request.Context(), ucAppointment.CancelAppointmentInput{
		AppointmentID: appointmentID,
		ClientID:      req.ClientID,
	})
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	httpresp.OK(c, ap.Snapshot())
}

// ======================================================
// PROFESSIONAL (secured)
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	professionalID := c.MustGet(middleware.ContextProfessionalID).(string)
	appointmentID := c.Param("id")

	ap, err := h.cancel.Execute(c.Request.Context(), ucAppointment.CancelAppointmentInput{
		AppointmentID:  appointmentID,
		ProfessionalID: professionalID,
	})
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	httpresp.OK(c, ap.Snapshot())
}

func (h *AppointmentHandler) Confirm(c *gin.Context) {
	professionalID := c.MustGet(middleware.ContextProfessionalID).(string)
	appointmentID := c.Param("id")

	ap, err := h.confirm.Execute(c.Request.Context(), ucAppointment.ConfirmAppointmentInput{
		AppointmentID:  appointmentID,
		ProfessionalID: professionalID,
	})
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	httpresp.OK(c, ap.Snapshot())
}

func (h *AppointmentHandler) Reschedule(c *gin.Context) {
	professionalID := c.MustGet(middleware.ContextProfessionalID).(string)
	appointmentID := c.Param("id")

	var req RescheduleAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.reschedule.Execute(c.Request.Context(), ucAppointment.RescheduleAppointmentInput{
		AppointmentID:  appointmentID,
		NewStart:       req.NewStart.UTC(),
		NewEnd:         req.NewEnd.UTC(),
		ClientID:       req.ClientID,
		ProfessionalID: professionalID,
	})
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	httpresp.OK(c, ap.Snapshot())
}

func (h *AppointmentHandler) Start(c *gin.Context)    { h.applyLifecycle(c, h.lifecycle.Start) }
func (h *AppointmentHandler) Pause(c *gin.Context)    { h.applyLifecycle(c, h.lifecycle.Pause) }
func (h *AppointmentHandler) Resume(c *gin.Context)   { h.applyLifecycle(c, h.lifecycle.Resume) }
func (h *AppointmentHandler) Complete(c *gin.Context) { h.applyLifecycle(c, h.lifecycle.Complete) }

func (h *AppointmentHandler) applyLifecycle(
	c *gin.Context,
	fn func(ctx context.Context, appointmentID, professionalID string) (*domain.Appointment, error),
) {
	professionalID := c.MustGet(middleware.ContextProfessionalID).(string)
	appointmentID := c.Param("id")

	ap, err := fn(c.Request.Context(), appointmentID, professionalID)
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	httpresp.OK(c, ap.Snapshot())
}

// ======================================================
// LISTING
// ======================================================

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	professionalID := c.MustGet(middleware.ContextProfessionalID).(string)

	date, err := time.ParseInLocation("2006-01-02", c.Query("date"), time.UTC)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	out, err := h.list.ByDate(c.Request.Context(), professionalID, date)
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	httpresp.List(c, out)
}

func (h *AppointmentHandler) ListByMonth(c *gin.Context) {
	professionalID := c.MustGet(middleware.ContextProfessionalID).(string)

	var q struct {
		Year  int `form:"year" binding:"required"`
		Month int `form:"month" binding:"required,min=1,max=12"`
	}
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.BadRequest(c, "invalid_request", "Ano e mês obrigatórios.")
		return
	}

	out, err := h.list.ByMonth(c.Request.Context(), professionalID, q.Year, q.Month)
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	httpresp.List(c, out)
}
