package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/MenteSaServices/clinic-scheduler/internal/domain/appointment"
	"github.com/MenteSaServices/clinic-scheduler/internal/models"
)

// --------------------------------------------------
// Client
// --------------------------------------------------

type ClientGormRepository struct {
	db *gorm.DB
}

func NewClientGormRepository(db *gorm.DB) *ClientGormRepository {
	return &ClientGormRepository{db: db}
}

func (r *ClientGormRepository) FindByID(ctx context.Context, id string) (*models.Client, error) {
	var client models.Client
	if err := r.db.WithContext(ctx).First(&client, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &client, nil
}

func (r *ClientGormRepository) Save(ctx context.Context, client *models.Client) error {
	return r.db.WithContext(ctx).Save(client).Error
}

// --------------------------------------------------
// Professional
// --------------------------------------------------

type ProfessionalGormRepository struct {
	db *gorm.DB
}

func NewProfessionalGormRepository(db *gorm.DB) *ProfessionalGormRepository {
	return &ProfessionalGormRepository{db: db}
}

func (r *ProfessionalGormRepository) FindByID(ctx context.Context, id string) (*models.Professional, error) {
	var professional models.Professional
	if err := r.db.WithContext(ctx).First(&professional, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &professional, nil
}

func (r *ProfessionalGormRepository) Save(ctx context.Context, professional *models.Professional) error {
	return r.db.WithContext(ctx).Save(professional).Error
}

func (r *ProfessionalGormRepository) AssignCancellationPolicy(ctx context.Context, professionalID, policyID string) error {
	return r.db.WithContext(ctx).
		Model(&models.Professional{}).
		Where("id = ?", professionalID).
		Update("cancellation_policy_id", policyID).Error
}

func (r *ProfessionalGormRepository) AssignScheduleConfiguration(ctx context.Context, professionalID, configurationID string) error {
	return r.db.WithContext(ctx).
		Model(&models.Professional{}).
		Where("id = ?", professionalID).
		Update("schedule_configuration_id", configurationID).Error
}

// Compile-time checks
var (
	_ domain.ClientRepository       = (*ClientGormRepository)(nil)
	_ domain.ProfessionalRepository = (*ProfessionalGormRepository)(nil)
)
