package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MenteSaServices/clinic-scheduler/internal/domain/schedule"
)

func testConfiguration() *schedule.Configuration {
	return &schedule.Configuration{
		ID:                     "cfg-1",
		ProfessionalID:         "professional-1",
		WorkingDays:            []int{1, 2, 3, 4, 5},
		WorkStart:              "10:00",
		WorkEnd:                "13:00",
		SessionDurationMinutes: 60,
		BufferIntervalMinutes:  10,
	}
}

func TestOverlaps(t *testing.T) {
	at := func(h, m int) time.Time {
		return time.Date(2026, 3, 10, h, m, 0, 0, time.UTC)
	}

	tests := []struct {
		name                           string
		aStart, aEnd, bStart, bEnd     time.Time
		want                           bool
	}{
		{"identical", at(10, 0), at(11, 0), at(10, 0), at(11, 0), true},
		{"partial", at(10, 0), at(11, 0), at(10, 30), at(11, 30), true},
		{"contained", at(10, 0), at(12, 0), at(10, 30), at(11, 0), true},
		{"touching end to start", at(10, 0), at(11, 0), at(11, 0), at(12, 0), false},
		{"touching start to end", at(11, 0), at(12, 0), at(10, 0), at(11, 0), false},
		{"disjoint", at(10, 0), at(11, 0), at(12, 0), at(13, 0), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
		})
	}
}

func TestDaySlots_BufferConsumesTailSlot(t *testing.T) {
	cfg := testConfiguration()

	// 2026-03-10 is a Tuesday.
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	workStart := schedule.AtTimeUTC(day, cfg.WorkStart)
	workEnd := schedule.AtTimeUTC(day, cfg.WorkEnd)

	slots := DaySlots(cfg, workStart, workEnd, nil)

	// 10:00-11:00 then, after the buffer, 11:10-12:10. The next candidate
	// 12:20-13:20 overflows 13:00, so the day ends with two slots.
	require.Len(t, slots, 2)
	assert.Equal(t, time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC), slots[0].Start)
	assert.Equal(t, time.Date(2026, 3, 10, 11, 0, 0, 0, time.UTC), slots[0].End)
	assert.Equal(t, time.Date(2026, 3, 10, 11, 10, 0, 0, time.UTC), slots[1].Start)
	assert.Equal(t, time.Date(2026, 3, 10, 12, 10, 0, 0, time.UTC), slots[1].End)
}

func TestDaySlots_ConflictAdvancesBySessionOnly(t *testing.T) {
	cfg := testConfiguration()
	cfg.WorkEnd = "14:00"

	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	workStart := schedule.AtTimeUTC(day, cfg.WorkStart)
	workEnd := schedule.AtTimeUTC(day, cfg.WorkEnd)

	busy := []Window{{
		Start: time.Date(2026, 3, 10, 10, 30, 0, 0, time.UTC),
		End:   time.Date(2026, 3, 10, 11, 30, 0, 0, time.UTC),
	}}

	slots := DaySlots(cfg, workStart, workEnd, busy)

	// 10:00 conflicts, cursor moves to 11:00 which also conflicts, then
	// 12:00-13:00 is free. The buffer only follows accepted slots.
	require.Len(t, slots, 1)
	assert.Equal(t, time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC), slots[0].Start)
	assert.Equal(t, time.Date(2026, 3, 10, 13, 0, 0, 0, time.UTC), slots[0].End)
}

func TestDaySlots_BackToBackWithoutBuffer(t *testing.T) {
	cfg := testConfiguration()
	cfg.BufferIntervalMinutes = 0

	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	slots := DaySlots(cfg,
		schedule.AtTimeUTC(day, cfg.WorkStart),
		schedule.AtTimeUTC(day, cfg.WorkEnd),
		nil,
	)

	require.Len(t, slots, 3)
	for i := 1; i < len(slots); i++ {
		assert.Equal(t, slots[i-1].End, slots[i].Start)
	}
}

func TestWorkingWindow(t *testing.T) {
	cfg := testConfiguration()
	rangeEnd := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	t.Run("working day", func(t *testing.T) {
		day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC) // Tuesday
		start, end, ok := WorkingWindow(cfg, day, rangeEnd)
		require.True(t, ok)
		assert.Equal(t, time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC), start)
		assert.Equal(t, time.Date(2026, 3, 10, 13, 0, 0, 0, time.UTC), end)
	})

	t.Run("off day", func(t *testing.T) {
		day := time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC) // Sunday
		_, _, ok := WorkingWindow(cfg, day, rangeEnd)
		assert.False(t, ok)
	})

	t.Run("holiday", func(t *testing.T) {
		holidayCfg := testConfiguration()
		holidayCfg.Holidays = []time.Time{
			time.Date(2026, 3, 10, 18, 30, 0, 0, time.UTC), // any time of day matches
		}
		day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
		_, _, ok := WorkingWindow(holidayCfg, day, rangeEnd)
		assert.False(t, ok)
	})

	t.Run("final day clamped to range end", func(t *testing.T) {
		day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
		clamp := time.Date(2026, 3, 10, 11, 30, 0, 0, time.UTC)
		start, end, ok := WorkingWindow(cfg, day, clamp)
		require.True(t, ok)
		assert.Equal(t, time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC), start)
		assert.Equal(t, clamp, end)
	})

	t.Run("range end before work start yields nothing", func(t *testing.T) {
		day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
		clamp := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
		_, _, ok := WorkingWindow(cfg, day, clamp)
		assert.False(t, ok)
	})
}

func TestDaysBetween(t *testing.T) {
	from := time.Date(2026, 3, 10, 15, 45, 0, 0, time.UTC)
	to := time.Date(2026, 3, 12, 8, 0, 0, 0, time.UTC)

	days := DaysBetween(from, to)

	require.Len(t, days, 3)
	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), days[0])
	assert.Equal(t, time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC), days[2])
}

func TestDaysBetween_SingleDay(t *testing.T) {
	day := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	assert.Len(t, DaysBetween(day, day), 1)
}
