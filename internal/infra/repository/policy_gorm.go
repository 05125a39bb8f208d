package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/MenteSaServices/clinic-scheduler/internal/domain/policy"
	"github.com/MenteSaServices/clinic-scheduler/internal/models"
)

type PolicyGormRepository struct {
	db *gorm.DB
}

func NewPolicyGormRepository(db *gorm.DB) *PolicyGormRepository {
	return &PolicyGormRepository{db: db}
}

func (r *PolicyGormRepository) FindByProfessionalID(ctx context.Context, professionalID string) (*policy.CancellationPolicy, error) {
	var row models.CancellationPolicy
	if err := r.db.WithContext(ctx).
		Where("professional_id = ?", professionalID).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return policyFromRow(row), nil
}

func (r *PolicyGormRepository) Create(ctx context.Context, p *policy.CancellationPolicy) error {
	row := policyToRow(p)
	return r.db.WithContext(ctx).Create(&row).Error
}

func (r *PolicyGormRepository) Save(ctx context.Context, p *policy.CancellationPolicy) error {
	row := policyToRow(p)
	return r.db.WithContext(ctx).
		Model(&models.CancellationPolicy{}).
		Where("id = ?", row.ID).
		Updates(map[string]any{
			"min_hours_before_cancellation":    row.MinHoursBeforeCancellation,
			"min_days_before_next_appointment": row.MinDaysBeforeNextAppointment,
			"cancellation_fee_percentage":      row.CancellationFeePercentage,
			"allow_reschedule":                 row.AllowReschedule,
			"description":                      row.Description,
		}).Error
}

func policyToRow(p *policy.CancellationPolicy) models.CancellationPolicy {
	return models.CancellationPolicy{
		ID:                           p.ID,
		ProfessionalID:               p.ProfessionalID,
		MinHoursBeforeCancellation:   p.MinHoursBeforeCancellation,
		MinDaysBeforeNextAppointment: p.MinDaysBeforeNextAppointment,
		CancellationFeePercentage:    p.CancellationFeePercentage,
		AllowReschedule:              p.AllowReschedule,
		Description:                  p.Description,
	}
}

func policyFromRow(row models.CancellationPolicy) *policy.CancellationPolicy {
	return &policy.CancellationPolicy{
		ID:                           row.ID,
		ProfessionalID:               row.ProfessionalID,
		MinHoursBeforeCancellation:   row.MinHoursBeforeCancellation,
		MinDaysBeforeNextAppointment: row.MinDaysBeforeNextAppointment,
		CancellationFeePercentage:    row.CancellationFeePercentage,
		AllowReschedule:              row.AllowReschedule,
		Description:                  row.Description,
	}
}

// Compile-time check
var _ policy.Repository = (*PolicyGormRepository)(nil)
