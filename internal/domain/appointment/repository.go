package appointment

import (
	"context"
	"time"

	"github.com/MenteSaServices/clinic-scheduler/internal/models"
)

// Filter narrows FindMany. Zero values are ignored.
type Filter struct {
	ClientID       string
	ProfessionalID string
	Status         Status
	From           *time.Time
	To             *time.Time
}

type Repository interface {
	Create(ctx context.Context, ap *Appointment) error
	Save(ctx context.Context, ap *Appointment) error

	FindByID(ctx context.Context, id string) (*Appointment, error)

	// FindOverlapping returns the professional's appointments whose
	// effective windows conflict with [start, end) under the open-interval
	// rule. Cancelled appointments never conflict.
	FindOverlapping(ctx context.Context, professionalID string, start, end time.Time) ([]*Appointment, error)

	FindMany(ctx context.Context, f Filter) ([]*Appointment, error)

	// FindConfirmedStartingBetween feeds the reminder sweep.
	FindConfirmedStartingBetween(ctx context.Context, from, to time.Time) ([]*Appointment, error)

	// FindUnpaidScheduledCreatedBefore feeds the payment-timeout sweep.
	FindUnpaidScheduledCreatedBefore(ctx context.Context, cutoff time.Time) ([]*Appointment, error)
}

type ClientRepository interface {
	FindByID(ctx context.Context, id string) (*models.Client, error)
	Save(ctx context.Context, client *models.Client) error
}

type ProfessionalRepository interface {
	FindByID(ctx context.Context, id string) (*models.Professional, error)
	Save(ctx context.Context, professional *models.Professional) error
	AssignCancellationPolicy(ctx context.Context, professionalID, policyID string) error
	AssignScheduleConfiguration(ctx context.Context, professionalID, configurationID string) error
}
