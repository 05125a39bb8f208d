package notification

import (
	"context"
	"fmt"
	"time"

	domain "github.com/MenteSaServices/clinic-scheduler/internal/domain/appointment"
	"github.com/MenteSaServices/clinic-scheduler/internal/events"
	"github.com/MenteSaServices/clinic-scheduler/internal/timezone"
)

// formatLocal renders a session time in the clinic's wall-clock zone.
// Appointments are stored in UTC.
func formatLocal(t time.Time) string {
	return t.In(timezone.Location(timezone.DefaultTimezone)).Format("02/01/2006 15:04")
}

// Subscriber turns appointment transitions into client notifications. It is
// registered on the dispatcher at startup.
type Subscriber struct {
	send *SendNotification
}

func NewSubscriber(send *SendNotification) *Subscriber {
	return &Subscriber{send: send}
}

func (s *Subscriber) RegisterOn(d *events.Dispatcher) {
	d.Register(domain.EventScheduled, s.handleScheduled)
	d.Register(domain.EventConfirmed, s.handleConfirmed)
	d.Register(domain.EventCanceled, s.handleCanceled)
}

func (s *Subscriber) handleScheduled(ctx context.Context, ev domain.Event) error {
	ap := ev.Appointment
	return s.send.Execute(ctx, Notification{
		RecipientID:  ap.ClientID(),
		Title:        "Sessão agendada",
		Content:      fmt.Sprintf("Sua sessão foi agendada para %s.", formatLocal(ap.EffectiveStart())),
		ReminderType: TypeScheduled,
	})
}

func (s *Subscriber) handleConfirmed(ctx context.Context, ev domain.Event) error {
	ap := ev.Appointment
	return s.send.Execute(ctx, Notification{
		RecipientID:  ap.ClientID(),
		Title:        "Sessão confirmada",
		Content:      fmt.Sprintf("Sua sessão de %s foi confirmada.", formatLocal(ap.EffectiveStart())),
		ReminderType: TypeConfirmed,
	})
}

func (s *Subscriber) handleCanceled(ctx context.Context, ev domain.Event) error {
	ap := ev.Appointment
	return s.send.Execute(ctx, Notification{
		RecipientID:  ap.ClientID(),
		Title:        "Sessão cancelada",
		Content:      fmt.Sprintf("Sua sessão de %s foi cancelada.", formatLocal(ap.EffectiveStart())),
		ReminderType: TypeCanceled,
	})
}
