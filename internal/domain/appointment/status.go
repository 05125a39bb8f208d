package appointment

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusScheduled   Status = "scheduled"
	StatusConfirmed   Status = "confirmed"
	StatusInProgress  Status = "in_progress"
	StatusCompleted   Status = "completed"
	StatusCancelled   Status = "cancelled"
	StatusRescheduled Status = "rescheduled"

	// StatusNoShow is assigned by an external no-show detection job; no
	// transition method on the aggregate produces it.
	StatusNoShow Status = "no_show"
)

type Modality string

const (
	ModalityInPerson Modality = "in_person"
	ModalityOnline   Modality = "online"
)

// locked reports whether the appointment can no longer be confirmed,
// cancelled, or rescheduled.
func (s Status) locked() bool {
	return s == StatusCompleted || s == StatusInProgress
}

func ValidStatus(s string) bool {
	switch Status(s) {
	case StatusScheduled, StatusConfirmed, StatusInProgress,
		StatusCompleted, StatusCancelled, StatusRescheduled, StatusNoShow:
		return true
	}
	return false
}

func ValidModality(m string) bool {
	switch Modality(m) {
	case ModalityInPerson, ModalityOnline:
		return true
	}
	return false
}
