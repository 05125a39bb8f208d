package audit

import (
	"context"
	"encoding/json"

	"gorm.io/gorm"

	domain "github.com/MenteSaServices/clinic-scheduler/internal/domain/appointment"
	"github.com/MenteSaServices/clinic-scheduler/internal/events"
	"github.com/MenteSaServices/clinic-scheduler/internal/models"
)

// Logger persists one AuditLog row per appointment transition. It is
// registered on the domain event dispatcher as an ordinary subscriber.
type Logger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

func (l *Logger) Log(
	professionalID *string,
	clientID *string,
	action string,
	entity string,
	entityID *string,
	metadata any,
) error {

	var metaJSON string
	if metadata != nil {
		if b, err := json.Marshal(metadata); err == nil {
			metaJSON = string(b)
		}
	}

	entry := models.AuditLog{
		ProfessionalID: professionalID,
		ClientID:       clientID,
		Action:         action,
		Entity:         entity,
		EntityID:       entityID,
		Metadata:       metaJSON,
	}

	return l.db.Create(&entry).Error
}

// RegisterOn subscribes the audit trail to every appointment event.
func (l *Logger) RegisterOn(d *events.Dispatcher) {
	for _, name := range []string{
		domain.EventScheduled,
		domain.EventConfirmed,
		domain.EventCanceled,
		domain.EventRescheduled,
		domain.EventCompleted,
	} {
		d.Register(name, l.handle)
	}
}

func (l *Logger) handle(ctx context.Context, ev domain.Event) error {
	ap := ev.Appointment

	professionalID := ap.ProfessionalID()
	clientID := ap.ClientID()
	entityID := ap.ID()

	return l.Log(
		&professionalID,
		&clientID,
		ev.Name,
		"appointment",
		&entityID,
		map[string]any{
			"status": string(ap.Status()),
			"start":  ap.EffectiveStart(),
			"end":    ap.EffectiveEnd(),
		},
	)
}
