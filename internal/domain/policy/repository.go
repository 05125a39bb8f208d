package policy

import "context"

type Repository interface {
	FindByProfessionalID(ctx context.Context, professionalID string) (*CancellationPolicy, error)
	Create(ctx context.Context, p *CancellationPolicy) error
	Save(ctx context.Context, p *CancellationPolicy) error
}
