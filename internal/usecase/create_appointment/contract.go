package create_appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/lucasmrqs/EAS-BookingService/internal/domain"
)

// AppointmentRepository persists appointments and reads the day's bookings for
// the conflict re-check inside the transaction.
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error)
	ListByProfessionalOnDay(ctx context.Context, professionalID uuid.UUID, date time.Time) ([]*domain.Appointment, error)
}

// ClientRepository resolves the booking client.
type ClientRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Client, error)
}

// ProfessionalRepository resolves the booked professional.
type ProfessionalRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Professional, error)
}

// ServiceRepository resolves the booked service.
type ServiceRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Service, error)
}

// TransactionManager runs the critical section serializably.
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger is the leveled logging interface.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
