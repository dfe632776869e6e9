package recommendation

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"clinicore/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -- Mock repositories --

type mockClinicRepo struct {
	clinics map[string]models.Clinic
}

func (m *mockClinicRepo) GetByID(_ context.Context, id string) (*models.Clinic, error) {
	if c, ok := m.clinics[id]; ok {
		return &c, nil
	}
	return nil, nil
}

func (m *mockClinicRepo) GetAll(_ context.Context) ([]models.Clinic, error) {
	var out []models.Clinic
	for _, c := range m.clinics {
		out = append(out, c)
	}
	return out, nil
}

type mockPhysicianRepo struct {
	physicians map[string]models.Physician
}

func (m *mockPhysicianRepo) GetByID(_ context.Context, id string) (*models.Physician, error) {
	if p, ok := m.physicians[id]; ok {
		return &p, nil
	}
	return nil, nil
}

func (m *mockPhysicianRepo) GetAll(_ context.Context) ([]models.Physician, error) {
	var out []models.Physician
	for _, p := range m.physicians {
		out = append(out, p)
	}
	return out, nil
}

type mockPatientRepo struct {
	patients map[string]models.Patient
}

func (m *mockPatientRepo) GetByID(_ context.Context, id string) (*models.Patient, error) {
	if p, ok := m.patients[id]; ok {
		return &p, nil
	}
	return nil, nil
}

func (m *mockPatientRepo) GetAll(_ context.Context) ([]models.Patient, error) {
	var out []models.Patient
	for _, p := range m.patients {
		out = append(out, p)
	}
	return out, nil
}

// mockAvailabilityRepo mirrors the Mongo query: recurring blocks matching the
// weekday plus date-specific blocks inside the UTC day.
type mockAvailabilityRepo struct {
	blocks []models.AvailabilityBlock
}

func (m *mockAvailabilityRepo) FindForDay(_ context.Context, physicianID, clinicID string, dayStartUTC, dayEndUTC time.Time, dayOfWeek int) ([]models.AvailabilityBlock, error) {
	var out []models.AvailabilityBlock
	for _, b := range m.blocks {
		if b.PhysicianID != physicianID || b.ClinicID != clinicID || !b.IsAvailable {
			continue
		}
		if b.IsRecurring {
			if b.DayOfWeek == dayOfWeek {
				out = append(out, b)
			}
		} else if b.SpecificDate != nil && !b.SpecificDate.Before(dayStartUTC) && b.SpecificDate.Before(dayEndUTC) {
			out = append(out, b)
		}
	}
	return out, nil
}

// mockAppointmentRepo mirrors the Mongo query: non-cancelled appointments
// starting inside the UTC day.
type mockAppointmentRepo struct {
	appointments []models.Appointment
}

func (m *mockAppointmentRepo) FindActiveInRange(_ context.Context, physicianID, clinicID string, dayStartUTC, dayEndUTC time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range m.appointments {
		if a.PhysicianID != physicianID || a.ClinicID != clinicID {
			continue
		}
		if a.Status == models.AppointmentStatusCancelled {
			continue
		}
		if a.StartTime.Before(dayStartUTC) || a.StartTime.After(dayEndUTC) {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

type mockBillingRepo struct {
	rules []models.BillingRule
}

func (m *mockBillingRepo) GetAll(_ context.Context) ([]models.BillingRule, error) {
	return m.rules, nil
}

type failingBillingRepo struct{}

func (failingBillingRepo) GetAll(_ context.Context) ([]models.BillingRule, error) {
	return nil, fmt.Errorf("mongo: connection reset")
}

// -- Fixtures --

const (
	testClinicID    = "0d4f6f0a-6a1f-4a8b-9c3e-111111111111"
	testPhysicianID = "1f9e2d3c-4b5a-4978-8a9b-222222222222"
	testPatientID   = "2a3b4c5d-6e7f-4890-9a1b-333333333333"
)

type fixture struct {
	blocks       []models.AvailabilityBlock
	appointments []models.Appointment
	rules        []models.BillingRule
}

func newTestService(fx fixture) *DefaultRecommendationService {
	return &DefaultRecommendationService{
		ClinicRepo: &mockClinicRepo{clinics: map[string]models.Clinic{
			testClinicID: {ID: testClinicID, Name: "Downtown Health Clinic", Timezone: "America/Toronto"},
		}},
		PhysicianRepo: &mockPhysicianRepo{physicians: map[string]models.Physician{
			testPhysicianID: {ID: testPhysicianID, FirstName: "John", LastName: "Doe", ClinicID: testClinicID},
		}},
		PatientRepo: &mockPatientRepo{patients: map[string]models.Patient{
			testPatientID: {ID: testPatientID, FirstName: "Alice", LastName: "Smith"},
		}},
		AvailabilityRepo: &mockAvailabilityRepo{blocks: fx.blocks},
		AppointmentRepo:  &mockAppointmentRepo{appointments: fx.appointments},
		BillingRepo:      &mockBillingRepo{rules: fx.rules},
	}
}

func recurringBlock(dayOfWeek, startHour, endHour int) models.AvailabilityBlock {
	return models.AvailabilityBlock{
		ID:          fmt.Sprintf("block-%d-%d", dayOfWeek, startHour),
		PhysicianID: testPhysicianID,
		ClinicID:    testClinicID,
		IsRecurring: true,
		DayOfWeek:   dayOfWeek,
		StartTime:   time.Date(2025, 7, 1, startHour, 0, 0, 0, time.UTC),
		EndTime:     time.Date(2025, 7, 1, endHour, 0, 0, 0, time.UTC),
		IsAvailable: true,
	}
}

func torontoAppointment(t *testing.T, startHour, startMin, endHour, endMin int, status string) models.Appointment {
	t.Helper()
	loc := mustLoadToronto(t)
	return models.Appointment{
		PhysicianID: testPhysicianID,
		ClinicID:    testClinicID,
		StartTime:   time.Date(2025, 7, 1, startHour, startMin, 0, 0, loc),
		EndTime:     time.Date(2025, 7, 1, endHour, endMin, 0, 0, loc),
		Status:      status,
	}
}

func baseRequest() models.RecommendSlotsRequest {
	return models.RecommendSlotsRequest{
		ClinicID:        testClinicID,
		PhysicianID:     testPhysicianID,
		PatientID:       testPatientID,
		PreferredDate:   "2025-07-01", // a Tuesday
		DurationMinutes: 15,
	}
}

// -- Tests --

func TestRecommendSlotsSuccessTorontoMorning(t *testing.T) {
	svc := newTestService(fixture{
		blocks: []models.AvailabilityBlock{recurringBlock(2, 9, 12)},
		rules:  []models.BillingRule{{Code: "A001", MinDurationMinutes: 15, MinGapAfter: 10}},
	})

	resp, err := svc.RecommendSlots(context.Background(), baseRequest())
	require.NoError(t, err)
	assert.Equal(t, models.RecommendationSuccess, resp.Status)
	require.NotEmpty(t, resp.RecommendedSlots)
	// 09:00 America/Toronto is 13:00 UTC in July (UTC-4).
	assert.Equal(t, "2025-07-01T13:00:00Z", resp.RecommendedSlots[0])
	assert.LessOrEqual(t, len(resp.RecommendedSlots), 10)

	seen := make(map[string]bool)
	for _, s := range resp.RecommendedSlots {
		_, err := time.Parse(time.RFC3339, s)
		require.NoError(t, err, "slot %q must be a valid UTC instant", s)
		assert.False(t, seen[s], "slot %q returned twice", s)
		seen[s] = true
	}
}

func TestRecommendSlotsUnknownReferenceFails(t *testing.T) {
	svc := newTestService(fixture{
		blocks: []models.AvailabilityBlock{recurringBlock(2, 9, 12)},
		rules:  []models.BillingRule{{MinDurationMinutes: 15, MinGapAfter: 10}},
	})

	req := baseRequest()
	req.PatientID = "9e8d7c6b-5a49-4837-a625-444444444444"

	resp, err := svc.RecommendSlots(context.Background(), req)
	require.Error(t, err)
	assert.Nil(t, resp)

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "Invalid clinic, physician, or patient ID.", notFound.Message)
}

func TestRecommendSlotsNoAvailability(t *testing.T) {
	svc := newTestService(fixture{
		rules: []models.BillingRule{{MinDurationMinutes: 15, MinGapAfter: 10}},
	})

	resp, err := svc.RecommendSlots(context.Background(), baseRequest())
	require.NoError(t, err)
	assert.Equal(t, models.RecommendationNoAvailability, resp.Status)
	assert.Empty(t, resp.RecommendedSlots)
	assert.NotEmpty(t, resp.Message)
}

func TestRecommendSlotsWrongWeekdayIsNoAvailability(t *testing.T) {
	svc := newTestService(fixture{
		blocks: []models.AvailabilityBlock{recurringBlock(2, 9, 12)}, // Tuesdays only
		rules:  []models.BillingRule{{MinDurationMinutes: 15, MinGapAfter: 10}},
	})

	req := baseRequest()
	req.PreferredDate = "2025-07-02" // Wednesday

	resp, err := svc.RecommendSlots(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, models.RecommendationNoAvailability, resp.Status)
}

func TestRecommendSlotsNoBillingRules(t *testing.T) {
	svc := newTestService(fixture{
		blocks: []models.AvailabilityBlock{recurringBlock(2, 9, 12)},
	})

	resp, err := svc.RecommendSlots(context.Background(), baseRequest())
	require.NoError(t, err)
	assert.Equal(t, models.RecommendationNoSlotsAvailable, resp.Status)
	assert.Empty(t, resp.RecommendedSlots)
}

func TestRecommendSlotsConflictAndGapPenalty(t *testing.T) {
	loc := mustLoadToronto(t)
	svc := newTestService(fixture{
		blocks:       []models.AvailabilityBlock{recurringBlock(2, 9, 10)},
		appointments: []models.Appointment{torontoAppointment(t, 9, 0, 9, 15, models.AppointmentStatusConfirmed)},
		rules:        []models.BillingRule{{MinDurationMinutes: 15, MinGapAfter: 10}},
	})

	resp, err := svc.RecommendSlots(context.Background(), baseRequest())
	require.NoError(t, err)
	require.Equal(t, models.RecommendationSuccess, resp.Status)
	require.NotEmpty(t, resp.RecommendedSlots)

	// The 09:00 slot conflicts outright; the 09:15 slot survives filtering
	// but its zero gap to the appointment drags it far down the ranking. The
	// top recommendation starts at least minGap minutes after 09:15.
	nineFifteen := time.Date(2025, 7, 1, 9, 15, 0, 0, loc)
	first, err := time.Parse(time.RFC3339, resp.RecommendedSlots[0])
	require.NoError(t, err)
	assert.True(t, !first.Before(nineFifteen.Add(10*time.Minute)),
		"top slot %s starts before the billing gap allows", resp.RecommendedSlots[0])

	apptStart := time.Date(2025, 7, 1, 9, 0, 0, 0, loc)
	apptEnd := nineFifteen
	for _, s := range resp.RecommendedSlots {
		start, err := time.Parse(time.RFC3339, s)
		require.NoError(t, err)
		end := start.Add(15 * time.Minute)
		noOverlap := !start.Before(apptEnd) || !end.After(apptStart)
		assert.True(t, noOverlap, "returned slot %s overlaps the existing appointment", s)
	}
}

func TestRecommendSlotsIgnoresCancelledAppointments(t *testing.T) {
	svc := newTestService(fixture{
		blocks:       []models.AvailabilityBlock{recurringBlock(2, 9, 10)},
		appointments: []models.Appointment{torontoAppointment(t, 9, 0, 9, 15, models.AppointmentStatusCancelled)},
		rules:        []models.BillingRule{{MinDurationMinutes: 15, MinGapAfter: 10}},
	})

	resp, err := svc.RecommendSlots(context.Background(), baseRequest())
	require.NoError(t, err)
	require.Equal(t, models.RecommendationSuccess, resp.Status)
	// With the appointment cancelled the 09:00 slot is unblocked and wins.
	assert.Equal(t, "2025-07-01T13:00:00Z", resp.RecommendedSlots[0])
}

func TestRecommendSlotsDateSpecificEveningBlock(t *testing.T) {
	loc := mustLoadToronto(t)
	specificDate := time.Date(2025, 7, 1, 0, 0, 0, 0, loc)
	svc := newTestService(fixture{
		blocks: []models.AvailabilityBlock{
			{
				ID:           "evening",
				PhysicianID:  testPhysicianID,
				ClinicID:     testClinicID,
				IsRecurring:  false,
				SpecificDate: &specificDate,
				StartTime:    time.Date(2025, 7, 1, 18, 0, 0, 0, loc),
				EndTime:      time.Date(2025, 7, 1, 19, 0, 0, 0, loc),
				IsAvailable:  true,
			},
		},
		rules: []models.BillingRule{{MinDurationMinutes: 15, MinGapAfter: 10}},
	})

	resp, err := svc.RecommendSlots(context.Background(), baseRequest())
	require.NoError(t, err)
	require.Equal(t, models.RecommendationSuccess, resp.Status)
	// 18:00 America/Toronto = 22:00 UTC.
	assert.Equal(t, "2025-07-01T22:00:00Z", resp.RecommendedSlots[0])
}

func TestRecommendSlotsIsIdempotent(t *testing.T) {
	svc := newTestService(fixture{
		blocks:       []models.AvailabilityBlock{recurringBlock(2, 9, 12), recurringBlock(2, 13, 17)},
		appointments: []models.Appointment{torontoAppointment(t, 9, 30, 9, 45, models.AppointmentStatusConfirmed)},
		rules: []models.BillingRule{
			{MinDurationMinutes: 10, MinGapAfter: 5},
			{MinDurationMinutes: 15, MinGapAfter: 10},
		},
	})

	first, err := svc.RecommendSlots(context.Background(), baseRequest())
	require.NoError(t, err)
	second, err := svc.RecommendSlots(context.Background(), baseRequest())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRecommendSlotsCapsResultsAtTen(t *testing.T) {
	svc := newTestService(fixture{
		blocks:       []models.AvailabilityBlock{recurringBlock(2, 8, 17)},
		appointments: []models.Appointment{torontoAppointment(t, 10, 0, 10, 30, models.AppointmentStatusConfirmed)},
		rules:        []models.BillingRule{{MinDurationMinutes: 15, MinGapAfter: 10}},
	})

	resp, err := svc.RecommendSlots(context.Background(), baseRequest())
	require.NoError(t, err)
	require.Equal(t, models.RecommendationSuccess, resp.Status)
	assert.LessOrEqual(t, len(resp.RecommendedSlots), 10)
}

func TestRecommendSlotsRepositoryFaultPropagates(t *testing.T) {
	svc := newTestService(fixture{
		blocks: []models.AvailabilityBlock{recurringBlock(2, 9, 12)},
	})
	svc.BillingRepo = failingBillingRepo{}

	resp, err := svc.RecommendSlots(context.Background(), baseRequest())
	require.Error(t, err)
	assert.Nil(t, resp)

	var notFound *NotFoundError
	assert.False(t, errors.As(err, &notFound), "a data-access fault is not a reference error")
}
