package policy

import (
	"context"

	"github.com/MenteSaServices/clinic-scheduler/internal/domain/policy"
	"github.com/MenteSaServices/clinic-scheduler/internal/httperr"
)

type EditPolicyInput struct {
	ProfessionalID string

	MinHoursBeforeCancellation   *int
	MinDaysBeforeNextAppointment *int
	CancellationFeePercentage    *float64
	AllowReschedule              *bool
	Description                  *string
}

type EditPolicy struct {
	policies policy.Repository
}

func NewEditPolicy(policies policy.Repository) *EditPolicy {
	return &EditPolicy{policies: policies}
}

func (uc *EditPolicy) Execute(
	ctx context.Context,
	in EditPolicyInput,
) (*policy.CancellationPolicy, error) {

	pol, err := uc.policies.FindByProfessionalID(ctx, in.ProfessionalID)
	if err != nil || pol == nil {
		return nil, httperr.ErrNotFound("cancellation_policy_not_found", "Política de cancelamento não encontrada.")
	}

	if in.MinHoursBeforeCancellation != nil {
		pol.MinHoursBeforeCancellation = *in.MinHoursBeforeCancellation
	}
	if in.MinDaysBeforeNextAppointment != nil {
		pol.MinDaysBeforeNextAppointment = *in.MinDaysBeforeNextAppointment
	}
	if in.CancellationFeePercentage != nil {
		pol.CancellationFeePercentage = *in.CancellationFeePercentage
	}
	if in.AllowReschedule != nil {
		pol.AllowReschedule = *in.AllowReschedule
	}
	if in.Description != nil {
		pol.Description = *in.Description
	}

	if err := pol.Validate(); err != nil {
		return nil, err
	}

	if err := uc.policies.Save(ctx, pol); err != nil {
		return nil, err
	}

	return pol, nil
}
