package appointment

import (
	"time"

	"github.com/MenteSaServices/clinic-scheduler/internal/domain/schedule"
	"github.com/MenteSaServices/clinic-scheduler/internal/timezone"
)

// Slot is a candidate bookable interval, not yet an appointment.
type Slot struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Window is an occupied interval. Callers build windows from the effective
// start/end of existing appointments.
type Window struct {
	Start time.Time
	End   time.Time
}

// Overlaps is the open-interval conflict test: touching endpoints do not
// conflict.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

// WorkingWindow resolves the professional's working window on the given UTC
// day, clamped so nothing is offered past rangeEnd. ok is false when the day
// is not workable (off-day or holiday).
func WorkingWindow(cfg *schedule.Configuration, day, rangeEnd time.Time) (start, end time.Time, ok bool) {
	if !cfg.WorksOn(day.UTC().Weekday()) {
		return time.Time{}, time.Time{}, false
	}
	if cfg.IsHoliday(day) {
		return time.Time{}, time.Time{}, false
	}

	start = schedule.AtTimeUTC(day, cfg.WorkStart)
	end = schedule.AtTimeUTC(day, cfg.WorkEnd)

	if end.After(rangeEnd) {
		end = rangeEnd
	}
	if !start.Before(end) {
		return time.Time{}, time.Time{}, false
	}

	return start, end, true
}

// DaySlots walks one working day. The cursor steps by the session duration;
// an accepted slot advances it past the buffer interval, and the first slot
// that would overflow the window ends the day. busy must hold effective
// windows.
func DaySlots(cfg *schedule.Configuration, workStart, workEnd time.Time, busy []Window) []Slot {
	session := cfg.SessionDuration()
	buffer := cfg.BufferInterval()

	var slots []Slot

	for cur := workStart; ; {
		slotEnd := cur.Add(session)
		if slotEnd.After(workEnd) {
			break
		}

		if conflicts(cur, slotEnd, busy) {
			cur = cur.Add(session)
			continue
		}

		slots = append(slots, Slot{Start: cur, End: slotEnd})
		cur = slotEnd.Add(buffer)
	}

	return slots
}

func conflicts(start, end time.Time, busy []Window) bool {
	for _, w := range busy {
		if Overlaps(start, end, w.Start, w.End) {
			return true
		}
	}
	return false
}

// DaysBetween yields the UTC calendar days of [from, to] inclusive.
func DaysBetween(from, to time.Time) []time.Time {
	var days []time.Time
	last := timezone.StartOfDayUTC(to)
	for d := timezone.StartOfDayUTC(from); !d.After(last); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}
