package policy

import (
	"context"

	domain "github.com/MenteSaServices/clinic-scheduler/internal/domain/appointment"
	"github.com/MenteSaServices/clinic-scheduler/internal/domain/policy"
	"github.com/MenteSaServices/clinic-scheduler/internal/httperr"
)

type CreatePolicyInput struct {
	ProfessionalID               string
	MinHoursBeforeCancellation   int
	MinDaysBeforeNextAppointment int
	CancellationFeePercentage    float64
	AllowReschedule              bool
	Description                  string
}

type CreatePolicy struct {
	policies      policy.Repository
	professionals domain.ProfessionalRepository
}

func NewCreatePolicy(
	policies policy.Repository,
	professionals domain.ProfessionalRepository,
) *CreatePolicy {
	return &CreatePolicy{
		policies:      policies,
		professionals: professionals,
	}
}

func (uc *CreatePolicy) Execute(
	ctx context.Context,
	in CreatePolicyInput,
) (*policy.CancellationPolicy, error) {

	professional, err := uc.professionals.FindByID(ctx, in.ProfessionalID)
	if err != nil || professional == nil {
		return nil, httperr.ErrNotFound("professional_not_found", "Profissional não encontrado.")
	}

	if existing, err := uc.policies.FindByProfessionalID(ctx, in.ProfessionalID); err == nil && existing != nil {
		return nil, httperr.ErrBadRequest("cancellation_policy_exists", "Profissional já possui política de cancelamento.")
	}

	pol, err := policy.NewCancellationPolicy(
		in.ProfessionalID,
		in.MinHoursBeforeCancellation,
		in.MinDaysBeforeNextAppointment,
		in.CancellationFeePercentage,
		in.AllowReschedule,
		in.Description,
	)
	if err != nil {
		return nil, err
	}

	if err := uc.policies.Create(ctx, pol); err != nil {
		return nil, err
	}

	if err := uc.professionals.AssignCancellationPolicy(ctx, in.ProfessionalID, pol.ID); err != nil {
		return nil, err
	}

	return pol, nil
}
