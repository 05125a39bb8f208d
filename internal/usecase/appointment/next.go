package appointment

import (
	"context"
	"time"

	domain "github.com/MenteSaServices/clinic-scheduler/internal/domain/appointment"
	"github.com/MenteSaServices/clinic-scheduler/internal/domain/policy"
	"github.com/MenteSaServices/clinic-scheduler/internal/domain/schedule"
	"github.com/MenteSaServices/clinic-scheduler/internal/events"
	"github.com/MenteSaServices/clinic-scheduler/internal/httperr"
	"github.com/MenteSaServices/clinic-scheduler/internal/lock"
)

// ScheduleNextAppointment books a client's follow-up session. It requires a
// finished prior appointment with the professional and honors the policy's
// minimum day gap: the earliest allowed start is the last completed
// session's end plus minDaysBeforeNextAppointment days, inclusive.
type ScheduleNextAppointmentInput struct {
	ClientID       string
	ProfessionalID string
	StartDateTime  time.Time
	Modality       domain.Modality
}

type ScheduleNextAppointment struct {
	appointments  domain.Repository
	clients       domain.ClientRepository
	professionals domain.ProfessionalRepository
	schedules     schedule.Repository
	policies      policy.Repository
	locks         *lock.Keyed
	dispatcher    *events.Dispatcher
}

func NewScheduleNextAppointment(
	appointments domain.Repository,
	clients domain.ClientRepository,
	professionals domain.ProfessionalRepository,
	schedules schedule.Repository,
	policies policy.Repository,
	locks *lock.Keyed,
	dispatcher *events.Dispatcher,
) *ScheduleNextAppointment {
	return &ScheduleNextAppointment{
		appointments:  appointments,
		clients:       clients,
		professionals: professionals,
		schedules:     schedules,
		policies:      policies,
		locks:         locks,
		dispatcher:    dispatcher,
	}
}

func (uc *ScheduleNextAppointment) Execute(
	ctx context.Context,
	in ScheduleNextAppointmentInput,
) (*domain.Appointment, error) {

	client, err := uc.clients.FindByID(ctx, in.ClientID)
	if err != nil || client == nil {
		return nil, httperr.ErrNotFound("client_not_found", "Cliente não encontrado.")
	}

	professional, err := uc.professionals.FindByID(ctx, in.ProfessionalID)
	if err != nil || professional == nil {
		return nil, httperr.ErrNotFound("professional_not_found", "Profissional não encontrado.")
	}

	completed, err := uc.appointments.FindMany(ctx, domain.Filter{
		ClientID:       in.ClientID,
		ProfessionalID: in.ProfessionalID,
		Status:         domain.StatusCompleted,
	})
	if err != nil {
		return nil, err
	}
	if len(completed) == 0 {
		return nil, httperr.ErrNotFound("no_finished_appointments", "Cliente ainda não possui sessões concluídas.")
	}

	last := completed[0]
	for _, ap := range completed[1:] {
		if ap.EffectiveEnd().After(last.EffectiveEnd()) {
			last = ap
		}
	}

	pol, err := uc.policies.FindByProfessionalID(ctx, in.ProfessionalID)
	if err != nil || pol == nil {
		return nil, httperr.ErrNotFound("cancellation_policy_not_found", "Política de cancelamento não encontrada.")
	}

	earliest := last.EffectiveEnd().AddDate(0, 0, pol.MinDaysBeforeNextAppointment)
	if in.StartDateTime.Before(earliest) {
		return nil, httperr.ErrNotAllowed("next_appointment_too_soon", "Próxima sessão antes do intervalo mínimo da política.")
	}

	cfg, err := uc.schedules.FindByProfessionalID(ctx, in.ProfessionalID)
	if err != nil || cfg == nil {
		return nil, httperr.ErrNotFound("schedule_configuration_not_found", "Profissional não possui configuração de agenda.")
	}

	start := in.StartDateTime
	end := start.Add(cfg.SessionDuration())

	unlock := uc.locks.Lock(in.ProfessionalID)
	defer unlock()

	conflicting, err := uc.appointments.FindOverlapping(ctx, in.ProfessionalID, start, end)
	if err != nil {
		return nil, err
	}
	if len(conflicting) > 0 {
		return nil, httperr.ErrNoAvailability("time_conflict", "Horário indisponível.")
	}

	ap := domain.New(domain.NewArgs{
		ClientID:               in.ClientID,
		ProfessionalID:         in.ProfessionalID,
		StartDateTime:          start,
		EndDateTime:            end,
		Modality:               in.Modality,
		AgreedPrice:            professional.SessionPrice,
		SyncWithGoogleCalendar: cfg.SyncWithGoogleCalendar,
	})

	if err := uc.appointments.Create(ctx, ap); err != nil {
		return nil, err
	}

	uc.dispatcher.Dispatch(ctx, ap.PullEvents())

	return ap, nil
}
