package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/MenteSaServices/clinic-scheduler/internal/httperr"
	"github.com/MenteSaServices/clinic-scheduler/internal/httpresp"
	"github.com/MenteSaServices/clinic-scheduler/internal/middleware"
	ucSchedule "github.com/MenteSaServices/clinic-scheduler/internal/usecase/schedule"
)

type ScheduleHandler struct {
	create *ucSchedule.CreateConfiguration
	edit   *ucSchedule.EditConfiguration
}

func NewScheduleHandler(
	create *ucSchedule.CreateConfiguration,
	edit *ucSchedule.EditConfiguration,
) *ScheduleHandler {
	return &ScheduleHandler{create: create, edit: edit}
}

type CreateScheduleRequest struct {
	WorkingDays            []int    `json:"working_days" binding:"required"`
	WorkStart              string   `json:"work_start" binding:"required"`
	WorkEnd                string   `json:"work_end" binding:"required"`
	SessionDurationMinutes int      `json:"session_duration_minutes" binding:"required"`
	BufferIntervalMinutes  int      `json:"buffer_interval_minutes"`
	Holidays               []string `json:"holidays"`
	EnableGoogleMeet       bool     `json:"enable_google_meet"`
	SyncWithGoogleCalendar bool     `json:"sync_with_google_calendar"`
}

type EditScheduleRequest struct {
	WorkingDays            *[]int    `json:"working_days"`
	WorkStart              *string   `json:"work_start"`
	WorkEnd                *string   `json:"work_end"`
	SessionDurationMinutes *int      `json:"session_duration_minutes"`
	BufferIntervalMinutes  *int      `json:"buffer_interval_minutes"`
	Holidays               *[]string `json:"holidays"`
	EnableGoogleMeet       *bool     `json:"enable_google_meet"`
	SyncWithGoogleCalendar *bool     `json:"sync_with_google_calendar"`
}

func (h *ScheduleHandler) Create(c *gin.Context) {
	professionalID := c.MustGet(middleware.ContextProfessionalID).(string)

	var req CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	holidays, err := parseHolidays(req.Holidays)
	if err != nil {
		httperr.BadRequest(c, "invalid_holiday", "Feriado em formato inválido.")
		return
	}

	cfg, err := h.create.Execute(c.Request.Context(), ucSchedule.CreateConfigurationInput{
		ProfessionalID:         professionalID,
		WorkingDays:            req.WorkingDays,
		WorkStart:              req.WorkStart,
		WorkEnd:                req.WorkEnd,
		SessionDurationMinutes: req.SessionDurationMinutes,
		BufferIntervalMinutes:  req.BufferIntervalMinutes,
		Holidays:               holidays,
		EnableGoogleMeet:       req.EnableGoogleMeet,
		SyncWithGoogleCalendar: req.SyncWithGoogleCalendar,
	})
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	c.JSON(http.StatusCreated, cfg)
}

func (h *ScheduleHandler) Edit(c *gin.Context) {
	professionalID := c.MustGet(middleware.ContextProfessionalID).(string)

	var req EditScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	in := ucSchedule.EditConfigurationInput{
		ProfessionalID:         professionalID,
		WorkingDays:            req.WorkingDays,
		WorkStart:              req.WorkStart,
		WorkEnd:                req.WorkEnd,
		SessionDurationMinutes: req.SessionDurationMinutes,
		BufferIntervalMinutes:  req.BufferIntervalMinutes,
		EnableGoogleMeet:       req.EnableGoogleMeet,
		SyncWithGoogleCalendar: req.SyncWithGoogleCalendar,
	}

	if req.Holidays != nil {
		holidays, err := parseHolidays(*req.Holidays)
		if err != nil {
			httperr.BadRequest(c, "invalid_holiday", "Feriado em formato inválido.")
			return
		}
		in.Holidays = &holidays
	}

	cfg, err := h.edit.Execute(c.Request.Context(), in)
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	httpresp.OK(c, cfg)
}

func parseHolidays(raw []string) ([]time.Time, error) {
	out := make([]time.Time, 0, len(raw))
	for _, s := range raw {
		h, err := time.ParseInLocation("2006-01-02", s, time.UTC)
		if err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, nil
}
