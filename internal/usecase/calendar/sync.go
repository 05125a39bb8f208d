package calendar

import (
	"context"

	domain "github.com/MenteSaServices/clinic-scheduler/internal/domain/appointment"
	"github.com/MenteSaServices/clinic-scheduler/internal/events"
	"github.com/MenteSaServices/clinic-scheduler/internal/httperr"
)

// ProviderEvent is what the external calendar provider returns for a synced
// appointment.
type ProviderEvent struct {
	EventID   string
	EventLink string
}

// Client is the calendar-provider contract. The real Google client lives
// outside this core.
type Client interface {
	CreateEvent(ctx context.Context, appointmentID string) (ProviderEvent, error)
}

type SyncAppointment struct {
	appointments domain.Repository
	client       Client
}

func NewSyncAppointment(appointments domain.Repository, client Client) *SyncAppointment {
	return &SyncAppointment{
		appointments: appointments,
		client:       client,
	}
}

// Execute pushes the appointment to the provider and records the returned
// event ids. Appointments without the sync flag are skipped silently.
func (uc *SyncAppointment) Execute(ctx context.Context, appointmentID string) error {
	ap, err := uc.appointments.FindByID(ctx, appointmentID)
	if err != nil || ap == nil {
		return httperr.ErrNotFound("appointment_not_found", "Agendamento não encontrado.")
	}

	if !ap.SyncWithGoogleCalendar() {
		return nil
	}

	ev, err := uc.client.CreateEvent(ctx, ap.ID())
	if err != nil {
		return err
	}

	ap.AttachCalendarEvent(ev.EventID, ev.EventLink)

	return uc.appointments.Save(ctx, ap)
}

// RegisterOn subscribes the sync to Scheduled events.
func (uc *SyncAppointment) RegisterOn(d *events.Dispatcher) {
	d.Register(domain.EventScheduled, func(ctx context.Context, ev domain.Event) error {
		return uc.Execute(ctx, ev.Appointment.ID())
	})
}
