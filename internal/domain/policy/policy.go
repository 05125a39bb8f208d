package policy

import (
	"github.com/google/uuid"

	"github.com/MenteSaServices/clinic-scheduler/internal/httperr"
)

// MinHoursFloor is the lowest cancellation notice a policy may be created
// with. Editing may lower it later; creation may not.
const MinHoursFloor = 3

// CancellationPolicy holds a professional's rules for cancelling and
// rebooking. One per professional.
type CancellationPolicy struct {
	ID             string
	ProfessionalID string

	MinHoursBeforeCancellation   int
	MinDaysBeforeNextAppointment int
	CancellationFeePercentage    float64
	AllowReschedule              bool
	Description                  string
}

func NewCancellationPolicy(
	professionalID string,
	minHoursBeforeCancellation int,
	minDaysBeforeNextAppointment int,
	cancellationFeePercentage float64,
	allowReschedule bool,
	description string,
) (*CancellationPolicy, error) {

	if minHoursBeforeCancellation < MinHoursFloor {
		return nil, httperr.ErrBadRequest("min_hours_too_low", "Antecedência mínima de cancelamento abaixo do permitido.")
	}

	p := &CancellationPolicy{
		ID:                           uuid.NewString(),
		ProfessionalID:               professionalID,
		MinHoursBeforeCancellation:   minHoursBeforeCancellation,
		MinDaysBeforeNextAppointment: minDaysBeforeNextAppointment,
		CancellationFeePercentage:    cancellationFeePercentage,
		AllowReschedule:              allowReschedule,
		Description:                  description,
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *CancellationPolicy) Validate() error {
	if p.MinHoursBeforeCancellation < 0 {
		return httperr.ErrBadRequest("invalid_min_hours", "Antecedência mínima de cancelamento inválida.")
	}
	if p.MinDaysBeforeNextAppointment < 0 {
		return httperr.ErrBadRequest("invalid_min_days", "Intervalo mínimo até o próximo agendamento inválido.")
	}
	if p.CancellationFeePercentage < 0 {
		return httperr.ErrBadRequest("invalid_fee_percentage", "Percentual de multa inválido.")
	}
	return nil
}
