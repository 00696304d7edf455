package remove_professional

import "errors"

var (
	// ErrProfessionalNotFound is returned when the professional does not exist.
	ErrProfessionalNotFound = errors.New("remove_professional: professional not found")

	// ErrInvalidInput is returned on malformed request data.
	ErrInvalidInput = errors.New("remove_professional: invalid input data")

	// ErrInternal is returned on internal usecase failures.
	ErrInternal = errors.New("remove_professional: internal error")
)
