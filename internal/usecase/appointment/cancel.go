package appointment

import (
	"context"
	"time"

	domain "github.com/MenteSaServices/clinic-scheduler/internal/domain/appointment"
	"github.com/MenteSaServices/clinic-scheduler/internal/domain/policy"
	"github.com/MenteSaServices/clinic-scheduler/internal/events"
	"github.com/MenteSaServices/clinic-scheduler/internal/httperr"
	"github.com/MenteSaServices/clinic-scheduler/internal/logging"
)

type CancelAppointmentInput struct {
	AppointmentID string

	// Acting identity; must match the appointment's references.
	ClientID       string
	ProfessionalID string
}

type CancelAppointment struct {
	appointments  domain.Repository
	clients       domain.ClientRepository
	professionals domain.ProfessionalRepository
	policies      policy.Repository
	fees          policy.FeeCalculator
	dispatcher    *events.Dispatcher
	logger        *logging.Logger

	now func() time.Time
}

func NewCancelAppointment(
	appointments domain.Repository,
	clients domain.ClientRepository,
	professionals domain.ProfessionalRepository,
	policies policy.Repository,
	fees policy.FeeCalculator,
	dispatcher *events.Dispatcher,
	logger *logging.Logger,
) *CancelAppointment {
	if fees == nil {
		fees = policy.NoFee{}
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &CancelAppointment{
		appointments:  appointments,
		clients:       clients,
		professionals: professionals,
		policies:      policies,
		fees:          fees,
		dispatcher:    dispatcher,
		logger:        logger,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	in CancelAppointmentInput,
) (*domain.Appointment, error) {

	ap, err := uc.appointments.FindByID(ctx, in.AppointmentID)
	if err != nil || ap == nil {
		return nil, httperr.ErrNotFound("appointment_not_found", "Agendamento não encontrado.")
	}

	client, err := uc.clients.FindByID(ctx, ap.ClientID())
	if err != nil || client == nil {
		return nil, httperr.ErrNotFound("client_not_found", "Cliente não encontrado.")
	}

	professional, err := uc.professionals.FindByID(ctx, ap.ProfessionalID())
	if err != nil || professional == nil {
		return nil, httperr.ErrNotFound("professional_not_found", "Profissional não encontrado.")
	}

	if professional.CancellationPolicyID == nil {
		return nil, httperr.ErrNotFound("cancellation_policy_not_found", "Profissional não possui política de cancelamento.")
	}

	pol, err := uc.policies.FindByProfessionalID(ctx, professional.ID)
	if err != nil || pol == nil {
		return nil, httperr.ErrNotFound("cancellation_policy_not_found", "Política de cancelamento não encontrada.")
	}

	if in.ClientID != client.ID && in.ProfessionalID != professional.ID {
		return nil, httperr.ErrNotAllowed("not_appointment_owner", "Agendamento pertence a outro cliente ou profissional.")
	}

	now := uc.now()

	if ap.EffectiveStart().Before(now) {
		return nil, httperr.ErrCannotCancel("appointment_in_past", "Agendamentos passados não podem ser cancelados.")
	}

	switch ap.Status() {
	case domain.StatusCancelled, domain.StatusCompleted:
		return nil, httperr.ErrAlreadyCanceled("appointment_already_closed", "Agendamento já cancelado ou concluído.")
	}

	// Fee charging waits on the payments bounded context; the strategy runs
	// so the hook point stays exercised, and the amount is only logged.
	if fee := uc.fees.Fee(pol, ap.EffectiveStart(), ap.AgreedPrice(), now); fee > 0 {
		uc.logger.Info("late cancellation fee computed",
			"appointment_id", ap.ID(),
			"fee", fee,
		)
	}

	if err := ap.Cancel(); err != nil {
		return nil, err
	}

	if err := uc.appointments.Save(ctx, ap); err != nil {
		return nil, err
	}

	uc.dispatcher.Dispatch(ctx, ap.PullEvents())

	return ap, nil
}
