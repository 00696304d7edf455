package catalog

import "errors"

var (
	// ErrServiceNotFound is returned when a service id does not resolve.
	ErrServiceNotFound = errors.New("catalog.repository: service not found")

	// ErrProfessionalNotFound is returned when a professional id does not resolve.
	ErrProfessionalNotFound = errors.New("catalog.repository: professional not found")

	// ErrBuildQuery is returned when building a SQL statement fails.
	ErrBuildQuery = errors.New("catalog.repository: failed to build query")

	// ErrExecQuery is returned when executing a SQL statement fails.
	ErrExecQuery = errors.New("catalog.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails.
	ErrScanRow = errors.New("catalog.repository: failed to scan row")
)
