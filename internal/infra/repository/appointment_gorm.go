package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	domain "github.com/MenteSaServices/clinic-scheduler/internal/domain/appointment"
	"github.com/MenteSaServices/clinic-scheduler/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// effectiveStart/effectiveEnd resolve the reschedule window in SQL so the
// overlap query matches what the aggregate reports in memory.
const (
	effectiveStart = "CASE WHEN status = 'rescheduled' AND reschedule_start IS NOT NULL THEN reschedule_start ELSE start_date_time END"
	effectiveEnd   = "CASE WHEN status = 'rescheduled' AND reschedule_end IS NOT NULL THEN reschedule_end ELSE end_date_time END"
)

func (r *AppointmentGormRepository) Create(ctx context.Context, ap *domain.Appointment) error {
	row := toRow(ap.Snapshot())
	return r.db.WithContext(ctx).Create(&row).Error
}

func (r *AppointmentGormRepository) Save(ctx context.Context, ap *domain.Appointment) error {
	row := toRow(ap.Snapshot())
	return r.db.WithContext(ctx).Save(&row).Error
}

func (r *AppointmentGormRepository) FindByID(ctx context.Context, id string) (*domain.Appointment, error) {
	var row models.Appointment
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return fromRow(row), nil
}

func (r *AppointmentGormRepository) FindOverlapping(
	ctx context.Context,
	professionalID string,
	start time.Time,
	end time.Time,
) ([]*domain.Appointment, error) {

	var rows []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("professional_id = ? AND status NOT IN ('cancelled', 'no_show')", professionalID).
		Where(effectiveStart+" < ? AND "+effectiveEnd+" > ?", end, start).
		Order("start_date_time ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	return fromRows(rows), nil
}

func (r *AppointmentGormRepository) FindMany(ctx context.Context, f domain.Filter) ([]*domain.Appointment, error) {
	q := r.db.WithContext(ctx).Model(&models.Appointment{})

	if f.ClientID != "" {
		q = q.Where("client_id = ?", f.ClientID)
	}
	if f.ProfessionalID != "" {
		q = q.Where("professional_id = ?", f.ProfessionalID)
	}
	if f.Status != "" {
		q = q.Where("status = ?", string(f.Status))
	}
	if f.From != nil {
		q = q.Where(effectiveStart+" >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where(effectiveStart+" < ?", *f.To)
	}

	var rows []models.Appointment
	if err := q.Order("start_date_time ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	return fromRows(rows), nil
}

func (r *AppointmentGormRepository) FindConfirmedStartingBetween(
	ctx context.Context,
	from time.Time,
	to time.Time,
) ([]*domain.Appointment, error) {

	var rows []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("status = 'confirmed'").
		Where(effectiveStart+" BETWEEN ? AND ?", from, to).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	return fromRows(rows), nil
}

func (r *AppointmentGormRepository) FindUnpaidScheduledCreatedBefore(
	ctx context.Context,
	cutoff time.Time,
) ([]*domain.Appointment, error) {

	var rows []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("status = 'scheduled' AND is_paid = false AND created_at < ?", cutoff).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	return fromRows(rows), nil
}

// --------------------------------------------------
// Row mapping
// --------------------------------------------------

func toRow(s domain.Snapshot) models.Appointment {
	return models.Appointment{
		ID:                     s.ID,
		ClientID:               s.ClientID,
		ProfessionalID:         s.ProfessionalID,
		StartDateTime:          s.StartDateTime,
		EndDateTime:            s.EndDateTime,
		RescheduleStart:        s.RescheduleStart,
		RescheduleEnd:          s.RescheduleEnd,
		Modality:               string(s.Modality),
		Status:                 string(s.Status),
		AgreedPrice:            s.AgreedPrice,
		PaymentStatus:          s.PaymentStatus,
		IsPaid:                 s.IsPaid,
		StartedAt:              s.StartedAt,
		TotalElapsedMs:         s.TotalElapsedMs,
		GoogleMeetLink:         s.GoogleMeetLink,
		GoogleCalendarEventID:  s.GoogleCalendarEventID,
		SyncWithGoogleCalendar: s.SyncWithGoogleCalendar,
		CreatedAt:              s.CreatedAt,
		UpdatedAt:              s.UpdatedAt,
	}
}

func fromRow(row models.Appointment) *domain.Appointment {
	return domain.Restore(domain.Snapshot{
		ID:                     row.ID,
		ClientID:               row.ClientID,
		ProfessionalID:         row.ProfessionalID,
		StartDateTime:          row.StartDateTime,
		EndDateTime:            row.EndDateTime,
		RescheduleStart:        row.RescheduleStart,
		RescheduleEnd:          row.RescheduleEnd,
		Modality:               domain.Modality(row.Modality),
		Status:                 domain.Status(row.Status),
		AgreedPrice:            row.AgreedPrice,
		PaymentStatus:          row.PaymentStatus,
		IsPaid:                 row.IsPaid,
		StartedAt:              row.StartedAt,
		TotalElapsedMs:         row.TotalElapsedMs,
		GoogleMeetLink:         row.GoogleMeetLink,
		GoogleCalendarEventID:  row.GoogleCalendarEventID,
		SyncWithGoogleCalendar: row.SyncWithGoogleCalendar,
		CreatedAt:              row.CreatedAt,
		UpdatedAt:              row.UpdatedAt,
	})
}

func fromRows(rows []models.Appointment) []*domain.Appointment {
	out := make([]*domain.Appointment, 0, len(rows))
	for _, row := range rows {
		out = append(out, fromRow(row))
	}
	return out
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
