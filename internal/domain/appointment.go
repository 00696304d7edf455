package domain

import (
	"time"

	"github.com/google/uuid"
)

// Appointment is a booked [StartTime, EndTime) interval for a professional.
// EndTime is derived from the service duration at creation time. For a fixed
// professional no two appointments may have overlapping intervals.
type Appointment struct {
	ID             uuid.UUID
	ClientID       uuid.UUID
	ProfessionalID uuid.UUID
	ServiceID      uuid.UUID
	StartTime      time.Time
	EndTime        time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Overlaps reports whether [a.StartTime, a.EndTime) intersects [start, end).
// Half-open semantics: an appointment ending exactly when another starts does
// not overlap it.
func (a *Appointment) Overlaps(start, end time.Time) bool {
	return a.StartTime.Before(end) && start.Before(a.EndTime)
}

// OnDay reports whether the appointment starts on the same calendar day as
// date (year/month/day equality, not a rolling 24h window).
func (a *Appointment) OnDay(date time.Time) bool {
	y1, m1, d1 := a.StartTime.Date()
	y2, m2, d2 := date.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// AppointmentsFilter selects appointments for admin listings.
type AppointmentsFilter struct {
	ProfessionalID *uuid.UUID // nil = all professionals
	ServiceID      *uuid.UUID // nil = all services
	ClientID       *uuid.UUID // nil = all clients
	Date           *time.Time // nil = all days; otherwise same calendar day
}
