package appointment

import (
	"context"
	"time"

	domain "github.com/MenteSaServices/clinic-scheduler/internal/domain/appointment"
	"github.com/MenteSaServices/clinic-scheduler/internal/dto"
)

type ListAppointments struct {
	appointments domain.Repository
}

func NewListAppointments(appointments domain.Repository) *ListAppointments {
	return &ListAppointments{appointments: appointments}
}

// ByDate lists a professional's agenda for one UTC calendar day.
func (uc *ListAppointments) ByDate(
	ctx context.Context,
	professionalID string,
	date time.Time,
) ([]dto.AppointmentListDTO, error) {

	u := date.UTC()
	start := time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)

	return uc.list(ctx, professionalID, start, end)
}

func (uc *ListAppointments) ByMonth(
	ctx context.Context,
	professionalID string,
	year int,
	month int,
) ([]dto.AppointmentListDTO, error) {

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	return uc.list(ctx, professionalID, start, end)
}

func (uc *ListAppointments) ByClient(
	ctx context.Context,
	clientID string,
) ([]dto.AppointmentListDTO, error) {

	appointments, err := uc.appointments.FindMany(ctx, domain.Filter{ClientID: clientID})
	if err != nil {
		return nil, err
	}
	return toDTOs(appointments), nil
}

func (uc *ListAppointments) list(
	ctx context.Context,
	professionalID string,
	start time.Time,
	end time.Time,
) ([]dto.AppointmentListDTO, error) {

	appointments, err := uc.appointments.FindMany(ctx, domain.Filter{
		ProfessionalID: professionalID,
		From:           &start,
		To:             &end,
	})
	if err != nil {
		return nil, err
	}
	return toDTOs(appointments), nil
}

func toDTOs(appointments []*domain.Appointment) []dto.AppointmentListDTO {
	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, dto.AppointmentListDTO{
			ID:             ap.ID(),
			ClientID:       ap.ClientID(),
			ProfessionalID: ap.ProfessionalID(),
			Start:          ap.EffectiveStart(),
			End:            ap.EffectiveEnd(),
			Status:         string(ap.Status()),
			Modality:       string(ap.Modality()),
			AgreedPrice:    ap.AgreedPrice(),
			IsPaid:         ap.IsPaid(),
		})
	}
	return out
}
