package appointment

import (
	"context"
	"time"

	domain "github.com/MenteSaServices/clinic-scheduler/internal/domain/appointment"
	"github.com/MenteSaServices/clinic-scheduler/internal/domain/schedule"
	"github.com/MenteSaServices/clinic-scheduler/internal/events"
	"github.com/MenteSaServices/clinic-scheduler/internal/httperr"
	"github.com/MenteSaServices/clinic-scheduler/internal/lock"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	ClientID       string
	ProfessionalID string
	StartDateTime  time.Time
	Modality       domain.Modality
	GoogleMeetLink string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	appointments  domain.Repository
	clients       domain.ClientRepository
	professionals domain.ProfessionalRepository
	schedules     schedule.Repository
	locks         *lock.Keyed
	dispatcher    *events.Dispatcher

	minLead time.Duration
	now     func() time.Time
}

func NewCreateAppointment(
	appointments domain.Repository,
	clients domain.ClientRepository,
	professionals domain.ProfessionalRepository,
	schedules schedule.Repository,
	locks *lock.Keyed,
	dispatcher *events.Dispatcher,
	minLead time.Duration,
) *CreateAppointment {
	return &CreateAppointment{
		appointments:  appointments,
		clients:       clients,
		professionals: professionals,
		schedules:     schedules,
		locks:         locks,
		dispatcher:    dispatcher,
		minLead:       minLead,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*domain.Appointment, error) {

	client, err := uc.clients.FindByID(ctx, in.ClientID)
	if err != nil || client == nil {
		return nil, httperr.ErrNotFound("client_not_found", "Cliente não encontrado.")
	}

	professional, err := uc.professionals.FindByID(ctx, in.ProfessionalID)
	if err != nil || professional == nil {
		return nil, httperr.ErrNotFound("professional_not_found", "Profissional não encontrado.")
	}

	cfg, err := uc.schedules.FindByProfessionalID(ctx, in.ProfessionalID)
	if err != nil || cfg == nil {
		return nil, httperr.ErrNotFound("schedule_configuration_not_found", "Profissional não possui configuração de agenda.")
	}

	start := in.StartDateTime
	end := start.Add(cfg.SessionDuration())

	// Overlap check and insert run under the professional's lock so two
	// concurrent bookings cannot both pass the check.
	unlock := uc.locks.Lock(in.ProfessionalID)
	defer unlock()

	conflicting, err := uc.appointments.FindOverlapping(ctx, in.ProfessionalID, start, end)
	if err != nil {
		return nil, err
	}
	if len(conflicting) > 0 {
		return nil, httperr.ErrNoAvailability("time_conflict", "Horário indisponível.")
	}

	if start.Before(uc.now().Add(uc.minLead)) {
		return nil, httperr.ErrNoAvailability("too_soon", "Agendamento requer antecedência mínima.")
	}

	// Unreachable while the session duration is positive; kept as an
	// explicit invariant check.
	if end.Before(start) {
		return nil, httperr.ErrBadRequest("invalid_time_range", "Término antes do início.")
	}

	meetLink := ""
	if cfg.EnableGoogleMeet {
		meetLink = in.GoogleMeetLink
	}

	ap := domain.New(domain.NewArgs{
		ClientID:               in.ClientID,
		ProfessionalID:         in.ProfessionalID,
		StartDateTime:          start,
		EndDateTime:            end,
		Modality:               in.Modality,
		AgreedPrice:            professional.SessionPrice,
		GoogleMeetLink:         meetLink,
		SyncWithGoogleCalendar: cfg.SyncWithGoogleCalendar,
	})

	if err := uc.appointments.Create(ctx, ap); err != nil {
		return nil, err
	}

	uc.dispatcher.Dispatch(ctx, ap.PullEvents())

	return ap, nil
}
