package remove_service

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ServiceRepository removes the catalog row.
type ServiceRepository interface {
	Delete(ctx context.Context, id uuid.UUID) error
}

// AppointmentRepository removes the service's future appointments.
type AppointmentRepository interface {
	DeleteFutureByService(ctx context.Context, serviceID uuid.UUID, now time.Time) (int64, error)
}

// TransactionManager runs the cascade serializably.
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider supplies the "now" snapshot that splits past from future.
type TimeProvider interface {
	Now() time.Time
}

// Logger is the leveled logging interface.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production clock.
type RealTimeProvider struct{}

// Now returns the current time.
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
