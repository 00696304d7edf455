package get_available_slots

import (
	"fmt"

	"github.com/google/uuid"
)

// validateRequest checks the request fields.
func validateRequest(req *Request) error {
	if req.ProfessionalID == uuid.Nil {
		return fmt.Errorf("%w: professional id is required", ErrInvalidInput)
	}
	if req.ServiceID == uuid.Nil {
		return fmt.Errorf("%w: service id is required", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	return nil
}
