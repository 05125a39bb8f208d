package appointment

import (
	"time"

	"github.com/google/uuid"

	"github.com/MenteSaServices/clinic-scheduler/internal/httperr"
)

// Appointment is the aggregate root of the scheduling engine. All state
// lives behind transition methods; nothing outside this package assigns
// status, timing, or elapsed-time fields directly.
type Appointment struct {
	id string

	clientID       string
	professionalID string

	startDateTime time.Time
	endDateTime   time.Time

	rescheduleStart *time.Time
	rescheduleEnd   *time.Time

	modality Modality
	status   Status

	agreedPrice   float64
	paymentStatus string
	isPaid        bool

	startedAt    *time.Time
	totalElapsed time.Duration

	googleMeetLink         string
	googleCalendarEventID  string
	syncWithGoogleCalendar bool

	createdAt time.Time
	updatedAt time.Time

	pending []Event
}

// NewArgs carries the construction data for a fresh appointment.
type NewArgs struct {
	ClientID               string
	ProfessionalID         string
	StartDateTime          time.Time
	EndDateTime            time.Time
	Modality               Modality
	AgreedPrice            float64
	GoogleMeetLink         string
	SyncWithGoogleCalendar bool
}

// New creates a SCHEDULED appointment and raises the Scheduled event.
// Restoring from persisted data goes through Restore, which raises nothing.
func New(args NewArgs) *Appointment {
	now := time.Now().UTC()

	a := &Appointment{
		id:                     uuid.NewString(),
		clientID:               args.ClientID,
		professionalID:         args.ProfessionalID,
		startDateTime:          args.StartDateTime,
		endDateTime:            args.EndDateTime,
		modality:               args.Modality,
		status:                 StatusScheduled,
		agreedPrice:            args.AgreedPrice,
		paymentStatus:          "pending",
		googleMeetLink:         args.GoogleMeetLink,
		syncWithGoogleCalendar: args.SyncWithGoogleCalendar,
		createdAt:              now,
		updatedAt:              now,
	}

	a.raise(EventScheduled)
	return a
}

// Snapshot is the persistence shape of the aggregate. Repositories map it
// to storage rows; it carries no behavior.
type Snapshot struct {
	ID                     string
	ClientID               string
	ProfessionalID         string
	StartDateTime          time.Time
	EndDateTime            time.Time
	RescheduleStart        *time.Time
	RescheduleEnd          *time.Time
	Modality               Modality
	Status                 Status
	AgreedPrice            float64
	PaymentStatus          string
	IsPaid                 bool
	StartedAt              *time.Time
	TotalElapsedMs         int64
	GoogleMeetLink         string
	GoogleCalendarEventID  string
	SyncWithGoogleCalendar bool
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// Restore rebuilds the aggregate from persisted data without raising events.
func Restore(s Snapshot) *Appointment {
	return &Appointment{
		id:                     s.ID,
		clientID:               s.ClientID,
		professionalID:         s.ProfessionalID,
		startDateTime:          s.StartDateTime,
		endDateTime:            s.EndDateTime,
		rescheduleStart:        s.RescheduleStart,
		rescheduleEnd:          s.RescheduleEnd,
		modality:               s.Modality,
		status:                 s.Status,
		agreedPrice:            s.AgreedPrice,
		paymentStatus:          s.PaymentStatus,
		isPaid:                 s.IsPaid,
		startedAt:              s.StartedAt,
		totalElapsed:           time.Duration(s.TotalElapsedMs) * time.Millisecond,
		googleMeetLink:         s.GoogleMeetLink,
		googleCalendarEventID:  s.GoogleCalendarEventID,
		syncWithGoogleCalendar: s.SyncWithGoogleCalendar,
		createdAt:              s.CreatedAt,
		updatedAt:              s.UpdatedAt,
	}
}

func (a *Appointment) Snapshot() Snapshot {
	return Snapshot{
		ID:                     a.id,
		ClientID:               a.clientID,
		ProfessionalID:         a.professionalID,
		StartDateTime:          a.startDateTime,
		EndDateTime:            a.endDateTime,
		RescheduleStart:        a.rescheduleStart,
		RescheduleEnd:          a.rescheduleEnd,
		Modality:               a.modality,
		Status:                 a.status,
		AgreedPrice:            a.agreedPrice,
		PaymentStatus:          a.paymentStatus,
		IsPaid:                 a.isPaid,
		StartedAt:              a.startedAt,
		TotalElapsedMs:         a.totalElapsed.Milliseconds(),
		GoogleMeetLink:         a.googleMeetLink,
		GoogleCalendarEventID:  a.googleCalendarEventID,
		SyncWithGoogleCalendar: a.syncWithGoogleCalendar,
		CreatedAt:              a.createdAt,
		UpdatedAt:              a.updatedAt,
	}
}

// ===============================
// Accessors
// ===============================

func (a *Appointment) ID() string             { return a.id }
func (a *Appointment) ClientID() string       { return a.clientID }
func (a *Appointment) ProfessionalID() string { return a.professionalID }
func (a *Appointment) Status() Status         { return a.status }
func (a *Appointment) Modality() Modality     { return a.modality }
func (a *Appointment) AgreedPrice() float64   { return a.agreedPrice }
func (a *Appointment) IsPaid() bool           { return a.isPaid }
func (a *Appointment) PaymentStatus() string  { return a.paymentStatus }
func (a *Appointment) GoogleMeetLink() string { return a.googleMeetLink }
func (a *Appointment) CreatedAt() time.Time   { return a.createdAt }

func (a *Appointment) StartedAt() *time.Time { return a.startedAt }

func (a *Appointment) TotalElapsed() time.Duration { return a.totalElapsed }

func (a *Appointment) GoogleCalendarEventID() string { return a.googleCalendarEventID }

func (a *Appointment) SyncWithGoogleCalendar() bool { return a.syncWithGoogleCalendar }

// EffectiveStart is the actual start, accounting for any reschedule.
// Downstream consumers (slot engine, notifications) must always read the
// effective window, never the raw fields.
func (a *Appointment) EffectiveStart() time.Time {
	if a.status == StatusRescheduled && a.rescheduleStart != nil {
		return *a.rescheduleStart
	}
	return a.startDateTime
}

func (a *Appointment) EffectiveEnd() time.Time {
	if a.status == StatusRescheduled && a.rescheduleEnd != nil {
		return *a.rescheduleEnd
	}
	return a.endDateTime
}

// ===============================
// Transitions
// ===============================

func (a *Appointment) Confirm() error {
	if a.status.locked() {
		return errLocked()
	}
	if a.status == StatusConfirmed {
		return nil
	}

	a.status = StatusConfirmed
	a.touch()
	a.raise(EventConfirmed)
	return nil
}

func (a *Appointment) Cancel() error {
	if a.status.locked() {
		return errLocked()
	}
	if a.status == StatusCancelled {
		return nil
	}

	a.status = StatusCancelled
	a.touch()
	a.raise(EventCanceled)
	return nil
}

// CancelDueToPaymentTimeout is driven by the payment-timeout sweep for
// unpaid appointments past the deadline.
func (a *Appointment) CancelDueToPaymentTimeout() error {
	if a.isPaid {
		return httperr.ErrBadRequest("appointment_already_paid", "Agendamento já pago.")
	}
	if err := a.Cancel(); err != nil {
		return err
	}
	a.paymentStatus = "expired"
	return nil
}

func (a *Appointment) Start(now time.Time) error {
	if a.status != StatusScheduled {
		return httperr.ErrBadRequest("invalid_state", "Apenas agendamentos com status agendado podem ser iniciados.")
	}

	a.status = StatusInProgress
	a.startedAt = &now
	a.touch()
	return nil
}

// Pause folds the running interval into the elapsed total. A paused
// appointment is IN_PROGRESS with a nil startedAt.
func (a *Appointment) Pause(now time.Time) error {
	if a.status != StatusInProgress || a.startedAt == nil {
		return httperr.ErrBadRequest("invalid_state", "Sessão não está em andamento.")
	}

	a.totalElapsed += now.Sub(*a.startedAt)
	a.startedAt = nil
	a.touch()
	return nil
}

func (a *Appointment) Resume(now time.Time) error {
	if a.status != StatusInProgress || a.startedAt != nil {
		return httperr.ErrBadRequest("invalid_state", "Sessão não está pausada.")
	}

	a.startedAt = &now
	a.touch()
	return nil
}

func (a *Appointment) Complete(now time.Time) error {
	if a.status != StatusInProgress {
		return httperr.ErrBadRequest("invalid_state", "Sessão não está em andamento.")
	}

	if a.startedAt != nil {
		a.totalElapsed += now.Sub(*a.startedAt)
		a.startedAt = nil
	}

	a.status = StatusCompleted
	a.touch()
	a.raise(EventCompleted)
	return nil
}

// Reschedule performs the mechanical state change only; policy and overlap
// checks belong to the use-case.
func (a *Appointment) Reschedule(start, end time.Time) error {
	if a.status.locked() {
		return errLocked()
	}

	a.rescheduleStart = &start
	a.rescheduleEnd = &end
	a.status = StatusRescheduled
	a.touch()
	a.raise(EventRescheduled)
	return nil
}

func (a *Appointment) MarkPaid() {
	a.isPaid = true
	a.paymentStatus = "paid"
	a.touch()
}

// AttachCalendarEvent records the provider ids returned by calendar sync.
func (a *Appointment) AttachCalendarEvent(eventID, eventLink string) {
	a.googleCalendarEventID = eventID
	if eventLink != "" {
		a.googleMeetLink = eventLink
	}
	a.touch()
}

func (a *Appointment) touch() {
	a.updatedAt = time.Now().UTC()
}

func errLocked() error {
	return httperr.ErrBadRequest(
		"invalid_state",
		"Agendamento concluído ou em andamento não pode ser alterado.",
	)
}
