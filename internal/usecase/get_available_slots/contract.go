package get_available_slots

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/lucasmrqs/EAS-BookingService/internal/domain"
)

// ProfessionalRepository is the catalog read access the calculator needs.
type ProfessionalRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Professional, error)
}

// ServiceRepository is the catalog read access the calculator needs.
type ServiceRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Service, error)
}

// AppointmentRepository provides the existing bookings for conflict checks.
type AppointmentRepository interface {
	ListByProfessionalOnDay(ctx context.Context, professionalID uuid.UUID, date time.Time) ([]*domain.Appointment, error)
}

// Logger is the leveled logging interface.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
