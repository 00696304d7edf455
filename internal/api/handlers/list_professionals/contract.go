package list_professionals

import (
	"context"

	"github.com/lucasmrqs/EAS-BookingService/internal/service/catalog/models"
)

type CatalogService interface {
	ListProfessionals(ctx context.Context) (*models.ProfessionalListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
