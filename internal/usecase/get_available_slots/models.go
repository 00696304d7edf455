package get_available_slots

import (
	"time"

	"github.com/google/uuid"
)

// Request asks for the bookable start times of one professional, for one
// service, on one calendar day.
type Request struct {
	ProfessionalID uuid.UUID
	ServiceID      uuid.UUID
	Date           time.Time // only the calendar day is used
}

// Response carries the ordered start instants. An empty list means nothing is
// bookable that day; it is a value, not a failure.
type Response struct {
	ProfessionalID uuid.UUID
	ServiceID      uuid.UUID
	Date           time.Time
	Slots          []time.Time
}
