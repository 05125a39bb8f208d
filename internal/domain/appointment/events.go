package appointment

import "time"

// ===============================
// Domain Events
// ===============================

const (
	EventScheduled   = "appointment.scheduled"
	EventConfirmed   = "appointment.confirmed"
	EventCanceled    = "appointment.canceled"
	EventRescheduled = "appointment.rescheduled"
	EventCompleted   = "appointment.completed"
)

// Event references the aggregate that raised it. Events are queued on the
// aggregate during a transition and drained by the use-case after a
// successful persist.
type Event struct {
	Name        string
	Appointment *Appointment
	OccurredAt  time.Time
}

func (a *Appointment) raise(name string) {
	a.pending = append(a.pending, Event{
		Name:        name,
		Appointment: a,
		OccurredAt:  time.Now().UTC(),
	})
}

// PullEvents drains the pending event queue.
func (a *Appointment) PullEvents() []Event {
	out := a.pending
	a.pending = nil
	return out
}
