package get_professional

import (
	"context"

	"github.com/google/uuid"

	"github.com/lucasmrqs/EAS-BookingService/internal/service/catalog/models"
)

type CatalogService interface {
	GetProfessional(ctx context.Context, id uuid.UUID) (*models.ProfessionalResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
