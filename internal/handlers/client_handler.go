package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/MenteSaServices/clinic-scheduler/internal/httperr"
	"github.com/MenteSaServices/clinic-scheduler/internal/httpresp"
	"github.com/MenteSaServices/clinic-scheduler/internal/models"
	ucAppointment "github.com/MenteSaServices/clinic-scheduler/internal/usecase/appointment"
)

type ClientHandler struct {
	db   *gorm.DB
	list *ucAppointment.ListAppointments
}

func NewClientHandler(db *gorm.DB, list *ucAppointment.ListAppointments) *ClientHandler {
	return &ClientHandler{db: db, list: list}
}

type CreateClientRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone" binding:"required"`
	Email string `json:"email"`
}

// Create registers a client, reusing an existing record when the phone is
// already known. Clients have no login; the WhatsApp front-end identifies
// them by phone.
func (h *ClientHandler) Create(c *gin.Context) {
	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	phone := strings.TrimSpace(req.Phone)

	var existing models.Client
	if err := h.db.Where("phone = ?", phone).First(&existing).Error; err == nil {
		httpresp.OK(c, existing)
		return
	}

	client := models.Client{
		ID:    uuid.NewString(),
		Name:  req.Name,
		Phone: phone,
		Email: strings.ToLower(strings.TrimSpace(req.Email)),
	}

	if err := h.db.Create(&client).Error; err != nil {
		httperr.Internal(c, "failed_to_create_client", "Erro ao criar cliente.")
		return
	}

	c.JSON(http.StatusCreated, client)
}

func (h *ClientHandler) ListAppointments(c *gin.Context) {
	clientID := c.Param("id")

	out, err := h.list.ByClient(c.Request.Context(), clientID)
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	httpresp.List(c, out)
}
