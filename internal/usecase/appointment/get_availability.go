package appointment

import (
	"context"
	"time"

	domain "github.com/MenteSaServices/clinic-scheduler/internal/domain/appointment"
	"github.com/MenteSaServices/clinic-scheduler/internal/domain/schedule"
	"github.com/MenteSaServices/clinic-scheduler/internal/httperr"
)

type AvailabilityInput struct {
	ProfessionalID string
	RangeStart     time.Time
	RangeEnd       time.Time
}

type GetAvailability struct {
	appointments domain.Repository
	schedules    schedule.Repository
}

func NewGetAvailability(
	appointments domain.Repository,
	schedules schedule.Repository,
) *GetAvailability {
	return &GetAvailability{
		appointments: appointments,
		schedules:    schedules,
	}
}

// Execute recomputes the open slots for the range on every call; there is
// no iterator state between calls. Days are walked in UTC, appointments are
// fetched once per day, and only effective windows count as busy.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in AvailabilityInput,
) ([]domain.Slot, error) {

	if in.RangeEnd.Before(in.RangeStart) {
		return nil, httperr.ErrBadRequest("invalid_range", "Intervalo de datas inválido.")
	}

	cfg, err := uc.schedules.FindByProfessionalID(ctx, in.ProfessionalID)
	if err != nil || cfg == nil {
		return nil, httperr.ErrNotFound("schedule_configuration_not_found", "Profissional não possui configuração de agenda.")
	}

	slots := []domain.Slot{}

	for _, day := range domain.DaysBetween(in.RangeStart, in.RangeEnd) {
		workStart, workEnd, ok := domain.WorkingWindow(cfg, day, in.RangeEnd)
		if !ok {
			continue
		}

		existing, err := uc.appointments.FindOverlapping(ctx, in.ProfessionalID, workStart, workEnd)
		if err != nil {
			return nil, err
		}

		busy := make([]domain.Window, 0, len(existing))
		for _, ap := range existing {
			busy = append(busy, domain.Window{
				Start: ap.EffectiveStart(),
				End:   ap.EffectiveEnd(),
			})
		}

		slots = append(slots, domain.DaySlots(cfg, workStart, workEnd, busy)...)
	}

	return slots, nil
}
