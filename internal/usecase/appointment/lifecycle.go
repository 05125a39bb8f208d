package appointment

import (
	"context"
	"time"

	domain "github.com/MenteSaServices/clinic-scheduler/internal/domain/appointment"
	"github.com/MenteSaServices/clinic-scheduler/internal/events"
	"github.com/MenteSaServices/clinic-scheduler/internal/httperr"
)

// SessionLifecycle drives the in-session transitions: start, pause, resume,
// complete. All four share loading and ownership rules, so they live on one
// use-case.
type SessionLifecycle struct {
	appointments  domain.Repository
	professionals domain.ProfessionalRepository
	dispatcher    *events.Dispatcher

	now func() time.Time
}

func NewSessionLifecycle(
	appointments domain.Repository,
	professionals domain.ProfessionalRepository,
	dispatcher *events.Dispatcher,
) *SessionLifecycle {
	return &SessionLifecycle{
		appointments:  appointments,
		professionals: professionals,
		dispatcher:    dispatcher,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

func (uc *SessionLifecycle) Start(ctx context.Context, appointmentID, professionalID string) (*domain.Appointment, error) {
	return uc.apply(ctx, appointmentID, professionalID, func(ap *domain.Appointment) error {
		return ap.Start(uc.now())
	})
}

func (uc *SessionLifecycle) Pause(ctx context.Context, appointmentID, professionalID string) (*domain.Appointment, error) {
	return uc.apply(ctx, appointmentID, professionalID, func(ap *domain.Appointment) error {
		return ap.Pause(uc.now())
	})
}

func (uc *SessionLifecycle) Resume(ctx context.Context, appointmentID, professionalID string) (*domain.Appointment, error) {
	return uc.apply(ctx, appointmentID, professionalID, func(ap *domain.Appointment) error {
		return ap.Resume(uc.now())
	})
}

func (uc *SessionLifecycle) Complete(ctx context.Context, appointmentID, professionalID string) (*domain.Appointment, error) {
	return uc.apply(ctx, appointmentID, professionalID, func(ap *domain.Appointment) error {
		return ap.Complete(uc.now())
	})
}

func (uc *SessionLifecycle) apply(
	ctx context.Context,
	appointmentID string,
	professionalID string,
	transition func(*domain.Appointment) error,
) (*domain.Appointment, error) {

	ap, err := uc.appointments.FindByID(ctx, appointmentID)
	if err != nil || ap == nil {
		return nil, httperr.ErrNotFound("appointment_not_found", "Agendamento não encontrado.")
	}

	professional, err := uc.professionals.FindByID(ctx, ap.ProfessionalID())
	if err != nil || professional == nil {
		return nil, httperr.ErrNotFound("professional_not_found", "Profissional não encontrado.")
	}

	if professional.ID != professionalID {
		return nil, httperr.ErrNotAllowed("not_appointment_owner", "Agendamento pertence a outro profissional.")
	}

	if err := transition(ap); err != nil {
		return nil, err
	}

	if err := uc.appointments.Save(ctx, ap); err != nil {
		return nil, err
	}

	uc.dispatcher.Dispatch(ctx, ap.PullEvents())

	return ap, nil
}
