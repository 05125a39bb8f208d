package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/MenteSaServices/clinic-scheduler/internal/domain/appointment"
	"github.com/MenteSaServices/clinic-scheduler/internal/events"
	"github.com/MenteSaServices/clinic-scheduler/internal/httperr"
)

func newConfirmUC(repo *fakeAppointments) *ConfirmAppointment {
	return NewConfirmAppointment(
		repo,
		newFakeClients(testClient()),
		newFakeProfessionals(testProfessional()),
		events.NewDispatcher(nil),
	)
}

func TestConfirmAppointment(t *testing.T) {
	ap := scheduledAppointment(time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC))
	uc := newConfirmUC(newFakeAppointments(ap))

	got, err := uc.Execute(context.Background(), ConfirmAppointmentInput{
		AppointmentID:  ap.ID(),
		ProfessionalID: "professional-1",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusConfirmed, got.Status())

	// Confirmation stands in for payment until the payments context lands.
	assert.True(t, got.IsPaid())
	assert.Equal(t, "paid", got.PaymentStatus())
}

func TestConfirmAppointment_WrongProfessional(t *testing.T) {
	ap := scheduledAppointment(time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC))
	uc := newConfirmUC(newFakeAppointments(ap))

	_, err := uc.Execute(context.Background(), ConfirmAppointmentInput{
		AppointmentID:  ap.ID(),
		ProfessionalID: "another-professional",
	})
	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindNotAllowed))
}

func TestConfirmAppointment_OnlyFromScheduled(t *testing.T) {
	ap := scheduledAppointment(time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC))
	require.NoError(t, ap.Confirm())
	ap.PullEvents()

	uc := newConfirmUC(newFakeAppointments(ap))

	// Already confirmed: the use-case rejects rather than no-ops.
	_, err := uc.Execute(context.Background(), ConfirmAppointmentInput{
		AppointmentID:  ap.ID(),
		ProfessionalID: "professional-1",
	})
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestConfirmAppointment_NotFound(t *testing.T) {
	uc := newConfirmUC(newFakeAppointments())

	_, err := uc.Execute(context.Background(), ConfirmAppointmentInput{
		AppointmentID:  "missing",
		ProfessionalID: "professional-1",
	})
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))
}
