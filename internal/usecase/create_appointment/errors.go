package create_appointment

import "errors"

var (
	// ErrClientNotFound is returned when the client does not exist.
	ErrClientNotFound = errors.New("create_appointment: client not found")

	// ErrProfessionalNotFound is returned when the professional does not exist.
	ErrProfessionalNotFound = errors.New("create_appointment: professional not found")

	// ErrServiceNotFound is returned when the service does not exist.
	ErrServiceNotFound = errors.New("create_appointment: service not found")

	// ErrSlotConflict is returned when the requested interval overlaps an
	// existing appointment. Recoverable: the caller should refresh the
	// available slots and retry.
	ErrSlotConflict = errors.New("create_appointment: slot already taken")

	// ErrOutsideWorkingHours is returned when the interval does not fit the
	// professional's schedule window for that day.
	ErrOutsideWorkingHours = errors.New("create_appointment: outside working hours")

	// ErrInvalidInput is returned on malformed request data.
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal is returned on internal usecase failures.
	ErrInternal = errors.New("create_appointment: internal error")
)
