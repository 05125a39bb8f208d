package repository

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/MenteSaServices/clinic-scheduler/internal/domain/schedule"
	"github.com/MenteSaServices/clinic-scheduler/internal/models"
)

type ScheduleGormRepository struct {
	db *gorm.DB
}

func NewScheduleGormRepository(db *gorm.DB) *ScheduleGormRepository {
	return &ScheduleGormRepository{db: db}
}

func (r *ScheduleGormRepository) FindByProfessionalID(ctx context.Context, professionalID string) (*schedule.Configuration, error) {
	var row models.ScheduleConfiguration
	if err := r.db.WithContext(ctx).
		Where("professional_id = ?", professionalID).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return configurationFromRow(row), nil
}

func (r *ScheduleGormRepository) Create(ctx context.Context, cfg *schedule.Configuration) error {
	row := configurationToRow(cfg)
	return r.db.WithContext(ctx).Create(&row).Error
}

func (r *ScheduleGormRepository) Save(ctx context.Context, cfg *schedule.Configuration) error {
	row := configurationToRow(cfg)
	return r.db.WithContext(ctx).
		Model(&models.ScheduleConfiguration{}).
		Where("id = ?", row.ID).
		Updates(map[string]any{
			"working_days":             row.WorkingDays,
			"work_start":               row.WorkStart,
			"work_end":                 row.WorkEnd,
			"session_duration_minutes": row.SessionDurationMinutes,
			"buffer_interval_minutes":  row.BufferIntervalMinutes,
			"holidays":                 row.Holidays,
			"enable_google_meet":       row.EnableGoogleMeet,
			"sync_with_google_calendar": row.SyncWithGoogleCalendar,
		}).Error
}

// --------------------------------------------------
// Row mapping
// --------------------------------------------------

func configurationToRow(cfg *schedule.Configuration) models.ScheduleConfiguration {
	days := make([]string, 0, len(cfg.WorkingDays))
	for _, d := range cfg.WorkingDays {
		days = append(days, strconv.Itoa(d))
	}

	holidays := make([]string, 0, len(cfg.Holidays))
	for _, h := range cfg.Holidays {
		holidays = append(holidays, h.UTC().Format("2006-01-02"))
	}

	return models.ScheduleConfiguration{
		ID:                     cfg.ID,
		ProfessionalID:         cfg.ProfessionalID,
		WorkingDays:            strings.Join(days, ","),
		WorkStart:              cfg.WorkStart,
		WorkEnd:                cfg.WorkEnd,
		SessionDurationMinutes: cfg.SessionDurationMinutes,
		BufferIntervalMinutes:  cfg.BufferIntervalMinutes,
		Holidays:               strings.Join(holidays, ","),
		EnableGoogleMeet:       cfg.EnableGoogleMeet,
		SyncWithGoogleCalendar: cfg.SyncWithGoogleCalendar,
	}
}

func configurationFromRow(row models.ScheduleConfiguration) *schedule.Configuration {
	var days []int
	for _, part := range strings.Split(row.WorkingDays, ",") {
		if part == "" {
			continue
		}
		if d, err := strconv.Atoi(part); err == nil {
			days = append(days, d)
		}
	}

	var holidays []time.Time
	for _, part := range strings.Split(row.Holidays, ",") {
		if part == "" {
			continue
		}
		if h, err := time.ParseInLocation("2006-01-02", part, time.UTC); err == nil {
			holidays = append(holidays, h)
		}
	}

	return &schedule.Configuration{
		ID:                     row.ID,
		ProfessionalID:         row.ProfessionalID,
		WorkingDays:            schedule.NormalizeWorkingDays(days),
		WorkStart:              row.WorkStart,
		WorkEnd:                row.WorkEnd,
		SessionDurationMinutes: row.SessionDurationMinutes,
		BufferIntervalMinutes:  row.BufferIntervalMinutes,
		Holidays:               holidays,
		EnableGoogleMeet:       row.EnableGoogleMeet,
		SyncWithGoogleCalendar: row.SyncWithGoogleCalendar,
	}
}

// Compile-time check
var _ schedule.Repository = (*ScheduleGormRepository)(nil)
