package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/MenteSaServices/clinic-scheduler/internal/middleware"
	"github.com/MenteSaServices/clinic-scheduler/internal/models"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	professionalID := c.MustGet(middleware.ContextProfessionalID).(string)

	var professional models.Professional
	if err := h.db.First(&professional, "id = ?", professionalID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "professional_not_found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":                        professional.ID,
		"name":                      professional.Name,
		"email":                     professional.Email,
		"phone":                     professional.Phone,
		"session_price":             professional.SessionPrice,
		"schedule_configuration_id": professional.ScheduleConfigurationID,
		"cancellation_policy_id":    professional.CancellationPolicyID,
		"notify_by_email":           professional.NotifyByEmail,
		"notify_by_whatsapp":        professional.NotifyByWhatsApp,
	})
}
