package get_available_slots

import "errors"

var (
	// ErrProfessionalNotFound is returned when the professional does not exist.
	ErrProfessionalNotFound = errors.New("get_available_slots: professional not found")

	// ErrServiceNotFound is returned when the service does not exist.
	ErrServiceNotFound = errors.New("get_available_slots: service not found")

	// ErrInvalidInput is returned on malformed request data.
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal is returned on internal usecase failures.
	ErrInternal = errors.New("get_available_slots: internal error")
)
