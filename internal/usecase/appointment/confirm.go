package appointment

import (
	"context"

	domain "github.com/MenteSaServices/clinic-scheduler/internal/domain/appointment"
	"github.com/MenteSaServices/clinic-scheduler/internal/events"
	"github.com/MenteSaServices/clinic-scheduler/internal/httperr"
)

type ConfirmAppointmentInput struct {
	AppointmentID  string
	ProfessionalID string
}

type ConfirmAppointment struct {
	appointments  domain.Repository
	clients       domain.ClientRepository
	professionals domain.ProfessionalRepository
	dispatcher    *events.Dispatcher
}

func NewConfirmAppointment(
	appointments domain.Repository,
	clients domain.ClientRepository,
	professionals domain.ProfessionalRepository,
	dispatcher *events.Dispatcher,
) *ConfirmAppointment {
	return &ConfirmAppointment{
		appointments:  appointments,
		clients:       clients,
		professionals: professionals,
		dispatcher:    dispatcher,
	}
}

func (uc *ConfirmAppointment) Execute(
	ctx context.Context,
	in ConfirmAppointmentInput,
) (*domain.Appointment, error) {

	ap, err := uc.appointments.FindByID(ctx, in.AppointmentID)
	if err != nil || ap == nil {
		return nil, httperr.ErrNotFound("appointment_not_found", "Agendamento não encontrado.")
	}

	professional, err := uc.professionals.FindByID(ctx, ap.ProfessionalID())
	if err != nil || professional == nil {
		return nil, httperr.ErrNotFound("professional_not_found", "Profissional não encontrado.")
	}

	client, err := uc.clients.FindByID(ctx, ap.ClientID())
	if err != nil || client == nil {
		return nil, httperr.ErrNotFound("client_not_found", "Cliente não encontrado.")
	}

	if professional.ID != in.ProfessionalID {
		return nil, httperr.ErrNotAllowed("not_appointment_owner", "Agendamento pertence a outro profissional.")
	}

	// Unlike Cancel, Confirm is not idempotent at the use-case boundary:
	// only a SCHEDULED appointment may be confirmed.
	if ap.Status() != domain.StatusScheduled {
		return nil, httperr.ErrBadRequest("invalid_state", "Apenas agendamentos com status agendado podem ser confirmados.")
	}

	if err := ap.Confirm(); err != nil {
		return nil, err
	}

	// Confirmation marks the appointment paid as a stand-in for real
	// payment processing.
	ap.MarkPaid()

	if err := uc.appointments.Save(ctx, ap); err != nil {
		return nil, err
	}

	uc.dispatcher.Dispatch(ctx, ap.PullEvents())

	return ap, nil
}
