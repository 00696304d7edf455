package create_professional

import (
	"context"

	"github.com/lucasmrqs/EAS-BookingService/internal/service/catalog/models"
)

type CatalogService interface {
	CreateProfessional(ctx context.Context, req *models.ProfessionalRequest) (*models.ProfessionalResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
