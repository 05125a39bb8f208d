package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/MenteSaServices/clinic-scheduler/internal/httperr"
	"github.com/MenteSaServices/clinic-scheduler/internal/httpresp"
	ucAppointment "github.com/MenteSaServices/clinic-scheduler/internal/usecase/appointment"
)

type AvailabilityHandler struct {
	availability *ucAppointment.GetAvailability
}

func NewAvailabilityHandler(availability *ucAppointment.GetAvailability) *AvailabilityHandler {
	return &AvailabilityHandler{availability: availability}
}

// Get returns the open slots for a professional between two dates. The
// range is interpreted in UTC; "to" defaults to the end of the "from" day.
func (h *AvailabilityHandler) Get(c *gin.Context) {
	professionalID := c.Param("id")

	from, err := time.ParseInLocation("2006-01-02", c.Query("from"), time.UTC)
	if err != nil {
		httperr.BadRequest(c, "invalid_from", "Data inicial inválida.")
		return
	}

	to := from.Add(24*time.Hour - time.Second)
	if raw := c.Query("to"); raw != "" {
		parsed, err := time.ParseInLocation("2006-01-02", raw, time.UTC)
		if err != nil {
			httperr.BadRequest(c, "invalid_to", "Data final inválida.")
			return
		}
		to = parsed.Add(24*time.Hour - time.Second)
	}

	slots, err := h.availability.Execute(c.Request.Context(), ucAppointment.AvailabilityInput{
		ProfessionalID: professionalID,
		RangeStart:     from,
		RangeEnd:       to,
	})
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	httpresp.List(c, slots)
}
