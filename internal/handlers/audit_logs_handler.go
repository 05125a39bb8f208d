package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/MenteSaServices/clinic-scheduler/internal/httperr"
	"github.com/MenteSaServices/clinic-scheduler/internal/httpresp"
	"github.com/MenteSaServices/clinic-scheduler/internal/middleware"
	"github.com/MenteSaServices/clinic-scheduler/internal/models"
)

type AuditLogsHandler struct {
	db *gorm.DB
}

func NewAuditLogsHandler(db *gorm.DB) *AuditLogsHandler {
	return &AuditLogsHandler{db: db}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	professionalID := c.MustGet(middleware.ContextProfessionalID).(string)

	var logs []models.AuditLog
	if err := h.db.
		Where("professional_id = ?", professionalID).
		Order("created_at DESC").
		Limit(200).
		Find(&logs).Error; err != nil {
		httperr.Internal(c, "failed_to_list_audit_logs", "Erro ao listar auditoria.")
		return
	}

	httpresp.List(c, logs)
}
