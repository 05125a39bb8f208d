package appointment

import (
	"context"
	"time"

	domain "github.com/MenteSaServices/clinic-scheduler/internal/domain/appointment"
	"github.com/MenteSaServices/clinic-scheduler/internal/domain/policy"
	"github.com/MenteSaServices/clinic-scheduler/internal/events"
	"github.com/MenteSaServices/clinic-scheduler/internal/httperr"
	"github.com/MenteSaServices/clinic-scheduler/internal/lock"
)

type RescheduleAppointmentInput struct {
	AppointmentID string

	NewStart time.Time
	NewEnd   time.Time

	ClientID       string
	ProfessionalID string
}

type RescheduleAppointment struct {
	appointments  domain.Repository
	clients       domain.ClientRepository
	professionals domain.ProfessionalRepository
	policies      policy.Repository
	locks         *lock.Keyed
	dispatcher    *events.Dispatcher
}

func NewRescheduleAppointment(
	appointments domain.Repository,
	clients domain.ClientRepository,
	professionals domain.ProfessionalRepository,
	policies policy.Repository,
	locks *lock.Keyed,
	dispatcher *events.Dispatcher,
) *RescheduleAppointment {
	return &RescheduleAppointment{
		appointments:  appointments,
		clients:       clients,
		professionals: professionals,
		policies:      policies,
		locks:         locks,
		dispatcher:    dispatcher,
	}
}

func (uc *RescheduleAppointment) Execute(
	ctx context.Context,
	in RescheduleAppointmentInput,
) (*domain.Appointment, error) {

	ap, err := uc.appointments.FindByID(ctx, in.AppointmentID)
	if err != nil || ap == nil {
		return nil, httperr.ErrNotFound("appointment_not_found", "Agendamento não encontrado.")
	}

	if ap.Status() != domain.StatusScheduled {
		return nil, httperr.ErrNoAvailability("not_reschedulable", "Agendamento não pode ser remarcado neste estado.")
	}

	if in.NewStart.Before(ap.EffectiveStart()) || in.NewEnd.Before(ap.EffectiveStart()) {
		return nil, httperr.ErrNoAvailability("invalid_reschedule_window", "Nova data não pode anteceder o horário original.")
	}

	client, err := uc.clients.FindByID(ctx, ap.ClientID())
	if err != nil || client == nil {
		return nil, httperr.ErrNotFound("client_not_found", "Cliente não encontrado.")
	}

	professional, err := uc.professionals.FindByID(ctx, ap.ProfessionalID())
	if err != nil || professional == nil {
		return nil, httperr.ErrNotFound("professional_not_found", "Profissional não encontrado.")
	}

	if in.ClientID != client.ID && in.ProfessionalID != professional.ID {
		return nil, httperr.ErrNotAllowed("not_appointment_owner", "Agendamento pertence a outro cliente ou profissional.")
	}

	pol, err := uc.policies.FindByProfessionalID(ctx, professional.ID)
	if err != nil || pol == nil || !pol.AllowReschedule {
		return nil, httperr.ErrNoAvailability("reschedule_not_allowed", "Política de cancelamento não permite remarcação.")
	}

	unlock := uc.locks.Lock(professional.ID)
	defer unlock()

	conflicting, err := uc.appointments.FindOverlapping(ctx, professional.ID, in.NewStart, in.NewEnd)
	if err != nil {
		return nil, err
	}
	for _, other := range conflicting {
		if other.ID() != ap.ID() {
			return nil, httperr.ErrNoAvailability("time_conflict", "Horário indisponível.")
		}
	}

	if err := ap.Reschedule(in.NewStart, in.NewEnd); err != nil {
		return nil, err
	}

	if err := uc.appointments.Save(ctx, ap); err != nil {
		return nil, err
	}

	uc.dispatcher.Dispatch(ctx, ap.PullEvents())

	return ap, nil
}
