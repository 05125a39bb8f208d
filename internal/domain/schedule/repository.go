package schedule

import "context"

type Repository interface {
	FindByProfessionalID(ctx context.Context, professionalID string) (*Configuration, error)
	Create(ctx context.Context, cfg *Configuration) error
	Save(ctx context.Context, cfg *Configuration) error
}
