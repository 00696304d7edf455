package remove_service

import "errors"

var (
	// ErrServiceNotFound is returned when the service does not exist.
	ErrServiceNotFound = errors.New("remove_service: service not found")

	// ErrInvalidInput is returned on malformed request data.
	ErrInvalidInput = errors.New("remove_service: invalid input data")

	// ErrInternal is returned on internal usecase failures.
	ErrInternal = errors.New("remove_service: internal error")
)
