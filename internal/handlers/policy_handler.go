package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MenteSaServices/clinic-scheduler/internal/httperr"
	"github.com/MenteSaServices/clinic-scheduler/internal/httpresp"
	"github.com/MenteSaServices/clinic-scheduler/internal/middleware"
	ucPolicy "github.com/MenteSaServices/clinic-scheduler/internal/usecase/policy"
)

type PolicyHandler struct {
	create *ucPolicy.CreatePolicy
	edit   *ucPolicy.EditPolicy
}

func NewPolicyHandler(create *ucPolicy.CreatePolicy, edit *ucPolicy.EditPolicy) *PolicyHandler {
	return &PolicyHandler{create: create, edit: edit}
}

type CreatePolicyRequest struct {
	MinHoursBeforeCancellation   int     `json:"min_hours_before_cancellation" binding:"required"`
	MinDaysBeforeNextAppointment int     `json:"min_days_before_next_appointment"`
	CancellationFeePercentage    float64 `json:"cancellation_fee_percentage"`
	AllowReschedule              bool    `json:"allow_reschedule"`
	Description                  string  `json:"description"`
}

type EditPolicyRequest struct {
	MinHoursBeforeCancellation   *int     `json:"min_hours_before_cancellation"`
	MinDaysBeforeNextAppointment *int     `json:"min_days_before_next_appointment"`
	CancellationFeePercentage    *float64 `json:"cancellation_fee_percentage"`
	AllowReschedule              *bool    `json:"allow_reschedule"`
	Description                  *string  `json:"description"`
}

func (h *PolicyHandler) Create(c *gin.Context) {
	professionalID := c.MustGet(middleware.ContextProfessionalID).(string)

	var req CreatePolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	pol, err := h.create.Execute(c.Request.Context(), ucPolicy.CreatePolicyInput{
		ProfessionalID:               professionalID,
		MinHoursBeforeCancellation:   req.MinHoursBeforeCancellation,
		MinDaysBeforeNextAppointment: req.MinDaysBeforeNextAppointment,
		CancellationFeePercentage:    req.CancellationFeePercentage,
		AllowReschedule:              req.AllowReschedule,
		Description:                  req.Description,
	})
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	c.JSON(http.StatusCreated, pol)
}

func (h *PolicyHandler) Edit(c *gin.Context) {
	professionalID := c.MustGet(middleware.ContextProfessionalID).(string)

	var req EditPolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	pol, err := h.edit.Execute(c.Request.Context(), ucPolicy.EditPolicyInput{
		ProfessionalID:               professionalID,
		MinHoursBeforeCancellation:   req.MinHoursBeforeCancellation,
		MinDaysBeforeNextAppointment: req.MinDaysBeforeNextAppointment,
		CancellationFeePercentage:    req.CancellationFeePercentage,
		AllowReschedule:              req.AllowReschedule,
		Description:                  req.Description,
	})
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	httpresp.OK(c, pol)
}
