package create_appointment

import (
	"time"

	"github.com/google/uuid"
)

// Request books one service with one professional at a fixed start instant.
// The end is derived from the service duration, never supplied by the caller.
type Request struct {
	ClientID       uuid.UUID
	ProfessionalID uuid.UUID
	ServiceID      uuid.UUID
	StartTime      time.Time
}

// Response is the stored appointment.
type Response struct {
	ID             uuid.UUID
	ClientID       uuid.UUID
	ProfessionalID uuid.UUID
	ServiceID      uuid.UUID
	StartTime      time.Time
	EndTime        time.Time
}
