package get_available_slots

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucasmrqs/EAS-BookingService/internal/domain"
	"github.com/lucasmrqs/EAS-BookingService/pkg/types"
)

func testProfessional(schedule domain.WeeklySchedule) *domain.Professional {
	return &domain.Professional{
		ID:             uuid.New(),
		Name:           "Ana Souza",
		Role:           "aesthetician",
		WeeklySchedule: schedule,
	}
}

func testService(durationMinutes int) *domain.Service {
	return &domain.Service{
		ID:              uuid.New(),
		Name:            "Auricular acupuncture",
		Category:        domain.CategoryAuricularAesthetics,
		DurationMinutes: durationMinutes,
	}
}

// scheduleOpenOn builds a schedule closed every day except the given weekday.
func scheduleOpenOn(day time.Weekday, start, end types.TimeString) domain.WeeklySchedule {
	var s domain.WeeklySchedule
	for i := range s {
		s[i] = domain.Closed()
	}
	s[day] = domain.Window(start, end)
	return s
}

func appt(professionalID uuid.UUID, start, end time.Time) *domain.Appointment {
	return &domain.Appointment{
		ID:             uuid.New(),
		ClientID:       uuid.New(),
		ProfessionalID: professionalID,
		ServiceID:      uuid.New(),
		StartTime:      start,
		EndTime:        end,
	}
}

// Tuesday 10:00-19:00, 60-minute service, one appointment 10:00-11:00.
// 11:00 through 18:00 must be offered; nothing earlier, nothing later.
func TestComputeSlots_BusyMorning(t *testing.T) {
	date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC) // a Tuesday
	professional := testProfessional(scheduleOpenOn(time.Tuesday, "10:00", "19:00"))
	service := testService(60)

	appointments := []*domain.Appointment{
		appt(professional.ID,
			time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
			time.Date(2026, 9, 1, 11, 0, 0, 0, time.UTC)),
	}

	slots := computeSlots(professional, service, date, appointments)

	require.NotEmpty(t, slots)
	assert.Equal(t, time.Date(2026, 9, 1, 11, 0, 0, 0, time.UTC), slots[0])
	assert.Equal(t, time.Date(2026, 9, 1, 18, 0, 0, 0, time.UTC), slots[len(slots)-1])

	for _, s := range slots {
		assert.False(t, s.Before(time.Date(2026, 9, 1, 11, 0, 0, 0, time.UTC)),
			"slot %s collides with the 10:00-11:00 appointment", s)
		assert.False(t, s.After(time.Date(2026, 9, 1, 18, 0, 0, 0, time.UTC)),
			"slot %s would run past closing", s)
	}
}

func TestComputeSlots_FreeDayStepsEveryQuarterHour(t *testing.T) {
	date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	professional := testProfessional(scheduleOpenOn(time.Tuesday, "09:00", "12:00"))
	service := testService(30)

	slots := computeSlots(professional, service, date, nil)

	// 09:00 .. 11:30 in 15-minute steps.
	require.Len(t, slots, 11)
	assert.Equal(t, time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC), slots[0])
	assert.Equal(t, time.Date(2026, 9, 1, 9, 15, 0, 0, time.UTC), slots[1])
	assert.Equal(t, time.Date(2026, 9, 1, 11, 30, 0, 0, time.UTC), slots[10])
}

func TestComputeSlots_TouchingIntervalsDoNotConflict(t *testing.T) {
	date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	professional := testProfessional(scheduleOpenOn(time.Tuesday, "09:00", "11:00"))
	service := testService(60)

	// Busy 09:00-10:00. A 10:00-11:00 slot touches it and must be offered.
	appointments := []*domain.Appointment{
		appt(professional.ID,
			time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC),
			time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)),
	}

	slots := computeSlots(professional, service, date, appointments)

	require.Len(t, slots, 1)
	assert.Equal(t, time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC), slots[0])
}

func TestComputeSlots_ClosedDayIsEmpty(t *testing.T) {
	date := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC) // a Wednesday
	professional := testProfessional(scheduleOpenOn(time.Tuesday, "10:00", "19:00"))
	service := testService(60)

	slots := computeSlots(professional, service, date, nil)

	assert.NotNil(t, slots)
	assert.Empty(t, slots)
}

func TestComputeSlots_ServiceLongerThanWindow(t *testing.T) {
	date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	professional := testProfessional(scheduleOpenOn(time.Tuesday, "10:00", "11:00"))
	service := testService(90)

	slots := computeSlots(professional, service, date, nil)

	assert.Empty(t, slots)
}

func TestComputeSlots_LastSlotEndsExactlyAtClosing(t *testing.T) {
	date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	professional := testProfessional(scheduleOpenOn(time.Tuesday, "10:00", "12:00"))
	service := testService(120)

	slots := computeSlots(professional, service, date, nil)

	// 10:00-12:00 ends exactly at closing: allowed, and it is the only slot.
	require.Len(t, slots, 1)
	assert.Equal(t, time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC), slots[0])
}

func TestComputeSlots_IgnoresOtherDaysAndOtherProfessionals(t *testing.T) {
	date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	professional := testProfessional(scheduleOpenOn(time.Tuesday, "10:00", "12:00"))
	service := testService(120)

	other := uuid.New()
	appointments := []*domain.Appointment{
		// Same interval, different professional.
		appt(other,
			time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
			time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)),
		// Same professional, previous week.
		appt(professional.ID,
			time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC),
			time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)),
	}

	slots := computeSlots(professional, service, date, appointments)

	require.Len(t, slots, 1)
	assert.Equal(t, time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC), slots[0])
}

func TestComputeSlots_SlotsAreAscendingAndAligned(t *testing.T) {
	date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	professional := testProfessional(scheduleOpenOn(time.Tuesday, "10:00", "19:00"))
	service := testService(45)

	appointments := []*domain.Appointment{
		appt(professional.ID,
			time.Date(2026, 9, 1, 13, 0, 0, 0, time.UTC),
			time.Date(2026, 9, 1, 14, 30, 0, 0, time.UTC)),
	}

	slots := computeSlots(professional, service, date, appointments)
	require.NotEmpty(t, slots)

	for i := 1; i < len(slots); i++ {
		assert.True(t, slots[i-1].Before(slots[i]), "slots must be strictly ascending")
	}
	for _, s := range slots {
		assert.Zero(t, s.Minute()%domain.SlotStepMinutes, "slot %s is off the 15-minute grid", s)
	}
}
