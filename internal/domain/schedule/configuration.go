package schedule

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/MenteSaServices/clinic-scheduler/internal/httperr"
	"github.com/MenteSaServices/clinic-scheduler/internal/timezone"
)

const (
	MaxSessionDurationMinutes = 480
	MaxBufferIntervalMinutes  = 120
)

// Configuration holds a professional's scheduling policy: which weekdays and
// hours they work, how long a session lasts, and the gap kept between
// sessions. One per professional.
type Configuration struct {
	ID             string
	ProfessionalID string

	WorkingDays []int // weekday integers 0-6, normalized (deduplicated, sorted)

	WorkStart string // "HH:MM"
	WorkEnd   string // "HH:MM"

	SessionDurationMinutes int
	BufferIntervalMinutes  int

	Holidays []time.Time // calendar dates, matched by UTC day

	EnableGoogleMeet       bool
	SyncWithGoogleCalendar bool
}

func NewConfiguration(
	professionalID string,
	workingDays []int,
	workStart string,
	workEnd string,
	sessionDurationMinutes int,
	bufferIntervalMinutes int,
	holidays []time.Time,
	enableGoogleMeet bool,
	syncWithGoogleCalendar bool,
) (*Configuration, error) {

	cfg := &Configuration{
		ID:                     uuid.NewString(),
		ProfessionalID:         professionalID,
		WorkingDays:            NormalizeWorkingDays(workingDays),
		WorkStart:              workStart,
		WorkEnd:                workEnd,
		SessionDurationMinutes: sessionDurationMinutes,
		BufferIntervalMinutes:  bufferIntervalMinutes,
		Holidays:               holidays,
		EnableGoogleMeet:       enableGoogleMeet,
		SyncWithGoogleCalendar: syncWithGoogleCalendar,
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Configuration) Validate() error {
	if len(c.WorkingDays) == 0 {
		return httperr.ErrBadRequest("no_working_days", "Pelo menos um dia de trabalho é obrigatório.")
	}
	for _, d := range c.WorkingDays {
		if d < 0 || d > 6 {
			return httperr.ErrBadRequest("invalid_working_day", "Dia da semana inválido.")
		}
	}

	start, err := ParseHM(c.WorkStart)
	if err != nil {
		return httperr.ErrBadRequest("invalid_work_start", "Horário de início inválido.")
	}
	end, err := ParseHM(c.WorkEnd)
	if err != nil {
		return httperr.ErrBadRequest("invalid_work_end", "Horário de término inválido.")
	}
	if !start.Before(end) {
		return httperr.ErrBadRequest("invalid_working_hours", "Início do expediente deve ser antes do fim.")
	}

	if c.SessionDurationMinutes <= 0 || c.SessionDurationMinutes > MaxSessionDurationMinutes {
		return httperr.ErrBadRequest("invalid_session_duration", "Duração da sessão fora do intervalo permitido.")
	}
	if c.BufferIntervalMinutes < 0 || c.BufferIntervalMinutes > MaxBufferIntervalMinutes {
		return httperr.ErrBadRequest("invalid_buffer_interval", "Intervalo entre sessões fora do intervalo permitido.")
	}

	return nil
}

func (c *Configuration) SessionDuration() time.Duration {
	return time.Duration(c.SessionDurationMinutes) * time.Minute
}

func (c *Configuration) BufferInterval() time.Duration {
	return time.Duration(c.BufferIntervalMinutes) * time.Minute
}

// WorksOn reports whether the given weekday (0-6, Sunday first) is a
// working day.
func (c *Configuration) WorksOn(weekday time.Weekday) bool {
	for _, d := range c.WorkingDays {
		if d == int(weekday) {
			return true
		}
	}
	return false
}

// IsHoliday matches by UTC calendar day, never by exact timestamp.
func (c *Configuration) IsHoliday(day time.Time) bool {
	for _, h := range c.Holidays {
		if timezone.SameDayUTC(h, day) {
			return true
		}
	}
	return false
}

// NormalizeWorkingDays collapses duplicates and sorts; order is irrelevant
// to callers.
func NormalizeWorkingDays(days []int) []int {
	seen := make(map[int]bool, len(days))
	out := make([]int, 0, len(days))
	for _, d := range days {
		if !seen[d] {
			seen[d] = true
			out = append(out, d)
		}
	}
	sort.Ints(out)
	return out
}

// ParseHM parses an "HH:MM" wall-clock string.
func ParseHM(hm string) (time.Time, error) {
	return time.Parse("15:04", hm)
}

// AtTimeUTC anchors an "HH:MM" string on the given UTC day.
func AtTimeUTC(day time.Time, hm string) time.Time {
	t, _ := time.Parse("15:04", hm)
	u := day.UTC()
	return time.Date(
		u.Year(), u.Month(), u.Day(),
		t.Hour(), t.Minute(), 0, 0,
		time.UTC,
	)
}
