package create_appointment

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lucasmrqs/EAS-BookingService/internal/domain"
)

// validateRequest checks the request fields.
func validateRequest(req *Request) error {
	if req.ClientID == uuid.Nil {
		return fmt.Errorf("%w: client id is required", ErrInvalidInput)
	}
	if req.ProfessionalID == uuid.Nil {
		return fmt.Errorf("%w: professional id is required", ErrInvalidInput)
	}
	if req.ServiceID == uuid.Nil {
		return fmt.Errorf("%w: service id is required", ErrInvalidInput)
	}
	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: start time is required", ErrInvalidInput)
	}
	return nil
}

// validateWithinWindow checks that [start, end) fits the professional's
// working window on start's weekday.
func validateWithinWindow(professional *domain.Professional, start, end time.Time) error {
	window := professional.WeeklySchedule.WindowFor(start.Weekday())
	if !window.Open {
		return ErrOutsideWorkingHours
	}
	if start.Before(window.Start.At(start)) || end.After(window.End.At(start)) {
		return ErrOutsideWorkingHours
	}
	return nil
}
