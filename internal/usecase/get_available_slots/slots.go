package get_available_slots

import (
	"time"

	"github.com/google/uuid"

	"github.com/lucasmrqs/EAS-BookingService/internal/domain"
)

// computeSlots derives the bookable start instants for one professional, one
// service and one calendar day. It is a pure function of its inputs: the same
// schedule, duration and appointment set always yield the same sequence.
//
// Candidates are walked from the opening of the day's window in fixed
// 15-minute increments. A candidate is accepted when the full service
// interval fits before closing and does not overlap any existing appointment
// of the professional. The walk stops at the first candidate that would run
// past closing, since every later one would too.
func computeSlots(
	professional *domain.Professional,
	service *domain.Service,
	date time.Time,
	appointments []*domain.Appointment,
) []time.Time {
	window := professional.WeeklySchedule.WindowFor(date.Weekday())
	if !window.Open {
		// Closed day: empty result, not an error.
		return []time.Time{}
	}

	dayStart := window.Start.At(date)
	dayEnd := window.End.At(date)
	duration := service.Duration()
	step := domain.SlotStepMinutes * time.Minute

	slots := make([]time.Time, 0)

	for t := dayStart; t.Before(dayEnd); t = t.Add(step) {
		tEnd := t.Add(duration)
		if tEnd.After(dayEnd) {
			break
		}
		if overlapsAny(t, tEnd, professional.ID, appointments, date) {
			continue
		}
		slots = append(slots, t)
	}

	return slots
}

// overlapsAny checks the candidate interval [start, end) against the
// professional's appointments on the requested day. Half-open semantics: an
// appointment ending exactly at start is not a conflict.
func overlapsAny(start, end time.Time, professionalID uuid.UUID, appointments []*domain.Appointment, date time.Time) bool {
	for _, appt := range appointments {
		if appt.ProfessionalID != professionalID {
			continue
		}
		if !appt.OnDay(date) {
			continue
		}
		if appt.Overlaps(start, end) {
			return true
		}
	}
	return false
}
