package catalog

import "errors"

var (
	// ErrServiceNotFound is returned when a service does not exist.
	ErrServiceNotFound = errors.New("service not found")

	// ErrProfessionalNotFound is returned when a professional does not exist.
	ErrProfessionalNotFound = errors.New("professional not found")

	// ErrInvalidInput is returned on malformed request data.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal service failures.
	ErrInternal = errors.New("service: internal error")
)
