package appointments

import (
	"context"

	"github.com/google/uuid"

	"github.com/lucasmrqs/EAS-BookingService/internal/domain"
)

// AppointmentRepository is the storage access the service needs.
type AppointmentRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Appointment, error)
	ListWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Logger is the leveled logging interface.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
