package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MenteSaServices/clinic-scheduler/internal/httperr"
)

func TestGetAvailability(t *testing.T) {
	cfg := testSchedule()
	cfg.WorkStart = "10:00"
	cfg.WorkEnd = "13:00"
	cfg.SessionDurationMinutes = 60
	cfg.BufferIntervalMinutes = 10

	uc := NewGetAvailability(newFakeAppointments(), newFakeSchedules(cfg))

	// Tuesday, single day.
	slots, err := uc.Execute(context.Background(), AvailabilityInput{
		ProfessionalID: "professional-1",
		RangeStart:     time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		RangeEnd:       time.Date(2026, 3, 10, 23, 59, 59, 0, time.UTC),
	})
	require.NoError(t, err)

	require.Len(t, slots, 2)
	assert.Equal(t, time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC), slots[0].Start)
	assert.Equal(t, time.Date(2026, 3, 10, 11, 10, 0, 0, time.UTC), slots[1].Start)
}

func TestGetAvailability_BookedSlotRemoved(t *testing.T) {
	cfg := testSchedule()
	cfg.WorkStart = "10:00"
	cfg.WorkEnd = "13:00"
	cfg.SessionDurationMinutes = 60
	cfg.BufferIntervalMinutes = 10

	booked := scheduledAppointment(time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC))
	uc := NewGetAvailability(newFakeAppointments(booked), newFakeSchedules(cfg))

	slots, err := uc.Execute(context.Background(), AvailabilityInput{
		ProfessionalID: "professional-1",
		RangeStart:     time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		RangeEnd:       time.Date(2026, 3, 10, 23, 59, 59, 0, time.UTC),
	})
	require.NoError(t, err)

	for _, s := range slots {
		assert.False(t, s.Start.Before(booked.EffectiveEnd()),
			"slot %v overlaps the booked appointment", s.Start)
	}
}

func TestGetAvailability_SkipsOffDaysAndHolidays(t *testing.T) {
	cfg := testSchedule()
	cfg.WorkingDays = []int{2} // Tuesdays only
	cfg.Holidays = []time.Time{time.Date(2026, 3, 17, 0, 0, 0, 0, time.UTC)}

	uc := NewGetAvailability(newFakeAppointments(), newFakeSchedules(cfg))

	// Two weeks covering two Tuesdays, one of them a holiday.
	slots, err := uc.Execute(context.Background(), AvailabilityInput{
		ProfessionalID: "professional-1",
		RangeStart:     time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC),
		RangeEnd:       time.Date(2026, 3, 22, 23, 59, 59, 0, time.UTC),
	})
	require.NoError(t, err)
	require.NotEmpty(t, slots)

	for _, s := range slots {
		assert.Equal(t, time.Tuesday, s.Start.Weekday())
		assert.Equal(t, 10, s.Start.Day(), "holiday Tuesday must yield no slots")
	}
}

func TestGetAvailability_InvalidRange(t *testing.T) {
	uc := NewGetAvailability(newFakeAppointments(), newFakeSchedules(testSchedule()))

	_, err := uc.Execute(context.Background(), AvailabilityInput{
		ProfessionalID: "professional-1",
		RangeStart:     time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC),
		RangeEnd:       time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
	})
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "invalid_range"))
}

func TestGetAvailability_NoConfiguration(t *testing.T) {
	uc := NewGetAvailability(newFakeAppointments(), newFakeSchedules())

	_, err := uc.Execute(context.Background(), AvailabilityInput{
		ProfessionalID: "professional-1",
		RangeStart:     time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		RangeEnd:       time.Date(2026, 3, 10, 23, 0, 0, 0, time.UTC),
	})
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "schedule_configuration_not_found"))
}

func TestGetAvailability_RescheduledWindowCountsAsBusy(t *testing.T) {
	cfg := testSchedule()
	cfg.WorkStart = "10:00"
	cfg.WorkEnd = "13:00"
	cfg.SessionDurationMinutes = 60
	cfg.BufferIntervalMinutes = 0

	// Originally 10:00; moved to 11:00 the same day. Only the effective
	// window blocks slots.
	ap := scheduledAppointment(time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC))
	require.NoError(t, ap.Reschedule(
		time.Date(2026, 3, 10, 11, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC),
	))
	ap.PullEvents()

	uc := NewGetAvailability(newFakeAppointments(ap), newFakeSchedules(cfg))

	slots, err := uc.Execute(context.Background(), AvailabilityInput{
		ProfessionalID: "professional-1",
		RangeStart:     time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		RangeEnd:       time.Date(2026, 3, 10, 23, 59, 59, 0, time.UTC),
	})
	require.NoError(t, err)

	starts := make([]time.Time, 0, len(slots))
	for _, s := range slots {
		starts = append(starts, s.Start)
	}
	assert.Contains(t, starts, time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC))
	assert.NotContains(t, starts, time.Date(2026, 3, 10, 11, 0, 0, 0, time.UTC))
	assert.Contains(t, starts, time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC))
}
