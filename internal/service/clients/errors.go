package clients

import "errors"

var (
	// ErrClientNotFound is returned when a client does not exist.
	ErrClientNotFound = errors.New("client not found")

	// ErrInvalidInput is returned on malformed request data.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal service failures.
	ErrInternal = errors.New("service: internal error")
)
