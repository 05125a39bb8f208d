package appointment

import (
	"context"
	"sync"
	"time"

	domain "github.com/MenteSaServices/clinic-scheduler/internal/domain/appointment"
	"github.com/MenteSaServices/clinic-scheduler/internal/domain/policy"
	"github.com/MenteSaServices/clinic-scheduler/internal/domain/schedule"
	"github.com/MenteSaServices/clinic-scheduler/internal/models"
)

// ======================================================
// IN-MEMORY FAKES
// ======================================================

type fakeAppointments struct {
	mu    sync.Mutex
	items map[string]*domain.Appointment
}

func newFakeAppointments(aps ...*domain.Appointment) *fakeAppointments {
	f := &fakeAppointments{items: make(map[string]*domain.Appointment)}
	for _, ap := range aps {
		f.items[ap.ID()] = ap
	}
	return f
}

func (f *fakeAppointments) Create(ctx context.Context, ap *domain.Appointment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items[ap.ID()] = ap
	return nil
}

func (f *fakeAppointments) Save(ctx context.Context, ap *domain.Appointment) error {
	return f.Create(ctx, ap)
}

func (f *fakeAppointments) FindByID(ctx context.Context, id string) (*domain.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.items[id], nil
}

func (f *fakeAppointments) FindOverlapping(ctx context.Context, professionalID string, start, end time.Time) ([]*domain.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []*domain.Appointment
	for _, ap := range f.items {
		if ap.ProfessionalID() != professionalID {
			continue
		}
		switch ap.Status() {
		case domain.StatusCancelled, domain.StatusNoShow:
			continue
		}
		if domain.Overlaps(ap.EffectiveStart(), ap.EffectiveEnd(), start, end) {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (f *fakeAppointments) FindMany(ctx context.Context, filter domain.Filter) ([]*domain.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []*domain.Appointment
	for _, ap := range f.items {
		if filter.ClientID != "" && ap.ClientID() != filter.ClientID {
			continue
		}
		if filter.ProfessionalID != "" && ap.ProfessionalID() != filter.ProfessionalID {
			continue
		}
		if filter.Status != "" && ap.Status() != filter.Status {
			continue
		}
		if filter.From != nil && ap.EffectiveStart().Before(*filter.From) {
			continue
		}
		if filter.To != nil && !ap.EffectiveStart().Before(*filter.To) {
			continue
		}
		out = append(out, ap)
	}
	return out, nil
}

func (f *fakeAppointments) FindConfirmedStartingBetween(ctx context.Context, from, to time.Time) ([]*domain.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []*domain.Appointment
	for _, ap := range f.items {
		if ap.Status() != domain.StatusConfirmed {
			continue
		}
		start := ap.EffectiveStart()
		if !start.Before(from) && !start.After(to) {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (f *fakeAppointments) FindUnpaidScheduledCreatedBefore(ctx context.Context, cutoff time.Time) ([]*domain.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []*domain.Appointment
	for _, ap := range f.items {
		if ap.Status() == domain.StatusScheduled && !ap.IsPaid() && ap.CreatedAt().Before(cutoff) {
			out = append(out, ap)
		}
	}
	return out, nil
}

type fakeClients struct {
	items map[string]*models.Client
}

func newFakeClients(clients ...*models.Client) *fakeClients {
	f := &fakeClients{items: make(map[string]*models.Client)}
	for _, c := range clients {
		f.items[c.ID] = c
	}
	return f
}

func (f *fakeClients) FindByID(ctx context.Context, id string) (*models.Client, error) {
	return f.items[id], nil
}

func (f *fakeClients) Save(ctx context.Context, c *models.Client) error {
	f.items[c.ID] = c
	return nil
}

type fakeProfessionals struct {
	items map[string]*models.Professional
}

func newFakeProfessionals(pros ...*models.Professional) *fakeProfessionals {
	f := &fakeProfessionals{items: make(map[string]*models.Professional)}
	for _, p := range pros {
		f.items[p.ID] = p
	}
	return f
}

func (f *fakeProfessionals) FindByID(ctx context.Context, id string) (*models.Professional, error) {
	return f.items[id], nil
}

func (f *fakeProfessionals) Save(ctx context.Context, p *models.Professional) error {
	f.items[p.ID] = p
	return nil
}

func (f *fakeProfessionals) AssignCancellationPolicy(ctx context.Context, professionalID, policyID string) error {
	if p, ok := f.items[professionalID]; ok {
		p.CancellationPolicyID = &policyID
	}
	return nil
}

func (f *fakeProfessionals) AssignScheduleConfiguration(ctx context.Context, professionalID, configurationID string) error {
	if p, ok := f.items[professionalID]; ok {
		p.ScheduleConfigurationID = &configurationID
	}
	return nil
}

type fakeSchedules struct {
	items map[string]*schedule.Configuration
}

func newFakeSchedules(cfgs ...*schedule.Configuration) *fakeSchedules {
	f := &fakeSchedules{items: make(map[string]*schedule.Configuration)}
	for _, cfg := range cfgs {
		f.items[cfg.ProfessionalID] = cfg
	}
	return f
}

func (f *fakeSchedules) FindByProfessionalID(ctx context.Context, professionalID string) (*schedule.Configuration, error) {
	return f.items[professionalID], nil
}

func (f *fakeSchedules) Create(ctx context.Context, cfg *schedule.Configuration) error {
	f.items[cfg.ProfessionalID] = cfg
	return nil
}

func (f *fakeSchedules) Save(ctx context.Context, cfg *schedule.Configuration) error {
	f.items[cfg.ProfessionalID] = cfg
	return nil
}

type fakePolicies struct {
	items map[string]*policy.CancellationPolicy
}

func newFakePolicies(pols ...*policy.CancellationPolicy) *fakePolicies {
	f := &fakePolicies{items: make(map[string]*policy.CancellationPolicy)}
	for _, p := range pols {
		f.items[p.ProfessionalID] = p
	}
	return f
}

func (f *fakePolicies) FindByProfessionalID(ctx context.Context, professionalID string) (*policy.CancellationPolicy, error) {
	return f.items[professionalID], nil
}

func (f *fakePolicies) Create(ctx context.Context, p *policy.CancellationPolicy) error {
	f.items[p.ProfessionalID] = p
	return nil
}

func (f *fakePolicies) Save(ctx context.Context, p *policy.CancellationPolicy) error {
	f.items[p.ProfessionalID] = p
	return nil
}

// ======================================================
// FIXTURES
// ======================================================

func testClient() *models.Client {
	return &models.Client{ID: "client-1", Name: "Ana", Phone: "+5511999990000"}
}

func testProfessional() *models.Professional {
	policyID := "policy-1"
	return &models.Professional{
		ID:                   "professional-1",
		Name:                 "Dra. Souza",
		Email:                "souza@clinic.test",
		SessionPrice:         250,
		CancellationPolicyID: &policyID,
	}
}

func testSchedule() *schedule.Configuration {
	return &schedule.Configuration{
		ID:                     "cfg-1",
		ProfessionalID:         "professional-1",
		WorkingDays:            []int{1, 2, 3, 4, 5},
		WorkStart:              "09:00",
		WorkEnd:                "18:00",
		SessionDurationMinutes: 50,
		BufferIntervalMinutes:  10,
	}
}

func testPolicy() *policy.CancellationPolicy {
	return &policy.CancellationPolicy{
		ID:                           "policy-1",
		ProfessionalID:               "professional-1",
		MinHoursBeforeCancellation:   24,
		MinDaysBeforeNextAppointment: 7,
		AllowReschedule:              true,
	}
}

func scheduledAppointment(start time.Time) *domain.Appointment {
	ap := domain.New(domain.NewArgs{
		ClientID:       "client-1",
		ProfessionalID: "professional-1",
		StartDateTime:  start,
		EndDateTime:    start.Add(50 * time.Minute),
		Modality:       domain.ModalityOnline,
		AgreedPrice:    250,
	})
	ap.PullEvents()
	return ap
}
