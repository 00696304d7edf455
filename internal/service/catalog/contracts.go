package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/lucasmrqs/EAS-BookingService/internal/domain"
)

// ServiceRepository is the storage access for the service catalog.
type ServiceRepository interface {
	Create(ctx context.Context, service *domain.Service) (*domain.Service, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Service, error)
	List(ctx context.Context) ([]*domain.Service, error)
	Update(ctx context.Context, service *domain.Service) (*domain.Service, error)
}

// ProfessionalRepository is the storage access for the team roster.
type ProfessionalRepository interface {
	Create(ctx context.Context, professional *domain.Professional) (*domain.Professional, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Professional, error)
	List(ctx context.Context) ([]*domain.Professional, error)
	Update(ctx context.Context, professional *domain.Professional) (*domain.Professional, error)
}

// Logger is the leveled logging interface.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
