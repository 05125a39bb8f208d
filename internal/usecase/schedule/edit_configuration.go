package schedule

import (
	"context"
	"time"

	"github.com/MenteSaServices/clinic-scheduler/internal/domain/schedule"
	"github.com/MenteSaServices/clinic-scheduler/internal/httperr"
)

// EditConfigurationInput updates only the fields whose pointers are set.
type EditConfigurationInput struct {
	ProfessionalID string

	WorkingDays            *[]int
	WorkStart              *string
	WorkEnd                *string
	SessionDurationMinutes *int
	BufferIntervalMinutes  *int
	Holidays               *[]time.Time
	EnableGoogleMeet       *bool
	SyncWithGoogleCalendar *bool
}

type EditConfiguration struct {
	configurations schedule.Repository
}

func NewEditConfiguration(configurations schedule.Repository) *EditConfiguration {
	return &EditConfiguration{configurations: configurations}
}

func (uc *EditConfiguration) Execute(
	ctx context.Context,
	in EditConfigurationInput,
) (*schedule.Configuration, error) {

	cfg, err := uc.configurations.FindByProfessionalID(ctx, in.ProfessionalID)
	if err != nil || cfg == nil {
		return nil, httperr.ErrNotFound("schedule_configuration_not_found", "Configuração de agenda não encontrada.")
	}

	if in.WorkingDays != nil {
		cfg.WorkingDays = schedule.NormalizeWorkingDays(*in.WorkingDays)
	}
	if in.WorkStart != nil {
		cfg.WorkStart = *in.WorkStart
	}
	if in.WorkEnd != nil {
		cfg.WorkEnd = *in.WorkEnd
	}
	if in.SessionDurationMinutes != nil {
		cfg.SessionDurationMinutes = *in.SessionDurationMinutes
	}
	if in.BufferIntervalMinutes != nil {
		cfg.BufferIntervalMinutes = *in.BufferIntervalMinutes
	}
	if in.Holidays != nil {
		cfg.Holidays = *in.Holidays
	}
	if in.EnableGoogleMeet != nil {
		cfg.EnableGoogleMeet = *in.EnableGoogleMeet
	}
	if in.SyncWithGoogleCalendar != nil {
		cfg.SyncWithGoogleCalendar = *in.SyncWithGoogleCalendar
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := uc.configurations.Save(ctx, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
