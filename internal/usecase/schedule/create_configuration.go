package schedule

import (
	"context"
	"time"

	domain "github.com/MenteSaServices/clinic-scheduler/internal/domain/appointment"
	"github.com/MenteSaServices/clinic-scheduler/internal/domain/schedule"
	"github.com/MenteSaServices/clinic-scheduler/internal/httperr"
)

type CreateConfigurationInput struct {
	ProfessionalID         string
	WorkingDays            []int
	WorkStart              string
	WorkEnd                string
	SessionDurationMinutes int
	BufferIntervalMinutes  int
	Holidays               []time.Time
	EnableGoogleMeet       bool
	SyncWithGoogleCalendar bool
}

type CreateConfiguration struct {
	configurations schedule.Repository
	professionals  domain.ProfessionalRepository
}

func NewCreateConfiguration(
	configurations schedule.Repository,
	professionals domain.ProfessionalRepository,
) *CreateConfiguration {
	return &CreateConfiguration{
		configurations: configurations,
		professionals:  professionals,
	}
}

func (uc *CreateConfiguration) Execute(
	ctx context.Context,
	in CreateConfigurationInput,
) (*schedule.Configuration, error) {

	professional, err := uc.professionals.FindByID(ctx, in.ProfessionalID)
	if err != nil || professional == nil {
		return nil, httperr.ErrNotFound("professional_not_found", "Profissional não encontrado.")
	}

	if existing, err := uc.configurations.FindByProfessionalID(ctx, in.ProfessionalID); err == nil && existing != nil {
		return nil, httperr.ErrBadRequest("schedule_configuration_exists", "Profissional já possui configuração de agenda.")
	}

	cfg, err := schedule.NewConfiguration(
		in.ProfessionalID,
		in.WorkingDays,
		in.WorkStart,
		in.WorkEnd,
		in.SessionDurationMinutes,
		in.BufferIntervalMinutes,
		in.Holidays,
		in.EnableGoogleMeet,
		in.SyncWithGoogleCalendar,
	)
	if err != nil {
		return nil, err
	}

	if err := uc.configurations.Create(ctx, cfg); err != nil {
		return nil, err
	}

	if err := uc.professionals.AssignScheduleConfiguration(ctx, in.ProfessionalID, cfg.ID); err != nil {
		return nil, err
	}

	return cfg, nil
}
