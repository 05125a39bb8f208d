package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MenteSaServices/clinic-scheduler/internal/httperr"
)

func newTestAppointment() *Appointment {
	start := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)
	return New(NewArgs{
		ClientID:       "client-1",
		ProfessionalID: "professional-1",
		StartDateTime:  start,
		EndDateTime:    start.Add(time.Hour),
		Modality:       ModalityOnline,
		AgreedPrice:    200,
	})
}

func TestNew_StartsScheduledAndRaisesEvent(t *testing.T) {
	ap := newTestAppointment()

	assert.NotEmpty(t, ap.ID())
	assert.Equal(t, StatusScheduled, ap.Status())
	assert.Equal(t, "pending", ap.PaymentStatus())
	assert.False(t, ap.IsPaid())

	evs := ap.PullEvents()
	require.Len(t, evs, 1)
	assert.Equal(t, EventScheduled, evs[0].Name)

	// Draining is destructive.
	assert.Empty(t, ap.PullEvents())
}

func TestRestore_RaisesNothing(t *testing.T) {
	ap := Restore(newTestAppointment().Snapshot())
	assert.Empty(t, ap.PullEvents())
}

func TestSnapshotRoundTrip_KeepsElapsed(t *testing.T) {
	ap := newTestAppointment()
	ap.PullEvents()

	now := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)
	require.NoError(t, ap.Start(now))
	require.NoError(t, ap.Pause(now.Add(20*time.Minute)))

	restored := Restore(ap.Snapshot())
	assert.Equal(t, 20*time.Minute, restored.TotalElapsed())
	assert.Equal(t, StatusInProgress, restored.Status())
	assert.Nil(t, restored.StartedAt())
}

func TestConfirm(t *testing.T) {
	ap := newTestAppointment()
	ap.PullEvents()

	require.NoError(t, ap.Confirm())
	assert.Equal(t, StatusConfirmed, ap.Status())

	evs := ap.PullEvents()
	require.Len(t, evs, 1)
	assert.Equal(t, EventConfirmed, evs[0].Name)

	// Confirming again is a no-op and raises nothing.
	require.NoError(t, ap.Confirm())
	assert.Empty(t, ap.PullEvents())
}

func TestConfirm_RejectedWhenLocked(t *testing.T) {
	ap := newTestAppointment()
	require.NoError(t, ap.Start(time.Now().UTC()))

	err := ap.Confirm()
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestCancel(t *testing.T) {
	ap := newTestAppointment()
	ap.PullEvents()

	require.NoError(t, ap.Cancel())
	assert.Equal(t, StatusCancelled, ap.Status())

	evs := ap.PullEvents()
	require.Len(t, evs, 1)
	assert.Equal(t, EventCanceled, evs[0].Name)

	require.NoError(t, ap.Cancel())
	assert.Empty(t, ap.PullEvents())
}

func TestCancelDueToPaymentTimeout(t *testing.T) {
	ap := newTestAppointment()

	require.NoError(t, ap.CancelDueToPaymentTimeout())
	assert.Equal(t, StatusCancelled, ap.Status())
	assert.Equal(t, "expired", ap.PaymentStatus())
}

func TestCancelDueToPaymentTimeout_RejectsPaid(t *testing.T) {
	ap := newTestAppointment()
	ap.MarkPaid()

	err := ap.CancelDueToPaymentTimeout()
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "appointment_already_paid"))
	assert.Equal(t, StatusScheduled, ap.Status())
}

func TestStart_RequiresScheduled(t *testing.T) {
	ap := newTestAppointment()
	require.NoError(t, ap.Confirm())

	err := ap.Start(time.Now().UTC())
	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindBadRequest))
}

func TestSessionTiming_FoldsElapsedAcrossPauses(t *testing.T) {
	ap := newTestAppointment()
	base := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)

	require.NoError(t, ap.Start(base))
	assert.Equal(t, StatusInProgress, ap.Status())
	require.NotNil(t, ap.StartedAt())

	require.NoError(t, ap.Pause(base.Add(15*time.Minute)))
	assert.Nil(t, ap.StartedAt())
	assert.Equal(t, 15*time.Minute, ap.TotalElapsed())

	// Still IN_PROGRESS while paused.
	assert.Equal(t, StatusInProgress, ap.Status())

	require.NoError(t, ap.Resume(base.Add(25*time.Minute)))
	require.NoError(t, ap.Complete(base.Add(40*time.Minute)))

	assert.Equal(t, StatusCompleted, ap.Status())
	assert.Equal(t, 30*time.Minute, ap.TotalElapsed())
}

func TestPause_RejectedWhenNotRunning(t *testing.T) {
	ap := newTestAppointment()
	base := time.Now().UTC()

	// Not started yet.
	require.Error(t, ap.Pause(base))

	require.NoError(t, ap.Start(base))
	require.NoError(t, ap.Pause(base.Add(time.Minute)))

	// Already paused.
	require.Error(t, ap.Pause(base.Add(2*time.Minute)))
}

func TestResume_RejectedWhenRunning(t *testing.T) {
	ap := newTestAppointment()
	base := time.Now().UTC()

	require.NoError(t, ap.Start(base))
	require.Error(t, ap.Resume(base.Add(time.Minute)))
}

func TestComplete_WhilePausedKeepsElapsed(t *testing.T) {
	ap := newTestAppointment()
	base := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)

	require.NoError(t, ap.Start(base))
	require.NoError(t, ap.Pause(base.Add(10*time.Minute)))
	require.NoError(t, ap.Complete(base.Add(time.Hour)))

	// The paused gap does not count.
	assert.Equal(t, 10*time.Minute, ap.TotalElapsed())
}

func TestComplete_RaisesCompletedEvent(t *testing.T) {
	ap := newTestAppointment()
	ap.PullEvents()
	base := time.Now().UTC()

	require.NoError(t, ap.Start(base))
	require.NoError(t, ap.Complete(base.Add(time.Hour)))

	evs := ap.PullEvents()
	require.Len(t, evs, 1)
	assert.Equal(t, EventCompleted, evs[0].Name)
}

func TestReschedule_SwitchesEffectiveWindow(t *testing.T) {
	ap := newTestAppointment()
	originalStart := ap.EffectiveStart()
	originalEnd := ap.EffectiveEnd()

	newStart := originalStart.Add(48 * time.Hour)
	newEnd := newStart.Add(time.Hour)
	require.NoError(t, ap.Reschedule(newStart, newEnd))

	assert.Equal(t, StatusRescheduled, ap.Status())
	assert.Equal(t, newStart, ap.EffectiveStart())
	assert.Equal(t, newEnd, ap.EffectiveEnd())

	// Raw fields are untouched; a later cancel falls back to them only in
	// status terms, the reschedule columns stay populated.
	snap := ap.Snapshot()
	assert.Equal(t, originalStart, snap.StartDateTime)
	assert.Equal(t, originalEnd, snap.EndDateTime)
}

func TestEffectiveWindow_IgnoresRescheduleColumnsOutsideRescheduledStatus(t *testing.T) {
	ap := newTestAppointment()
	originalStart := ap.EffectiveStart()

	newStart := originalStart.Add(48 * time.Hour)
	require.NoError(t, ap.Reschedule(newStart, newStart.Add(time.Hour)))
	require.NoError(t, ap.Cancel())

	// Status left RESCHEDULED, so the effective window reverts to the
	// original columns even though reschedule_start is still set.
	assert.Equal(t, originalStart, ap.EffectiveStart())
}

func TestReschedule_RejectedWhenLocked(t *testing.T) {
	ap := newTestAppointment()
	require.NoError(t, ap.Start(time.Now().UTC()))

	err := ap.Reschedule(time.Now().UTC(), time.Now().UTC().Add(time.Hour))
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestMarkPaid(t *testing.T) {
	ap := newTestAppointment()
	ap.MarkPaid()

	assert.True(t, ap.IsPaid())
	assert.Equal(t, "paid", ap.PaymentStatus())
}

func TestAttachCalendarEvent(t *testing.T) {
	ap := newTestAppointment()

	ap.AttachCalendarEvent("gc-event-1", "https://meet.google.com/abc")
	assert.Equal(t, "gc-event-1", ap.GoogleCalendarEventID())
	assert.Equal(t, "https://meet.google.com/abc", ap.GoogleMeetLink())

	// Empty link keeps the previous one.
	ap.AttachCalendarEvent("gc-event-2", "")
	assert.Equal(t, "gc-event-2", ap.GoogleCalendarEventID())
	assert.Equal(t, "https://meet.google.com/abc", ap.GoogleMeetLink())
}
