package resolve_client

import (
	"context"

	"github.com/lucasmrqs/EAS-BookingService/internal/service/clients/models"
)

type ClientsService interface {
	FindOrCreate(ctx context.Context, req *models.ResolveClientRequest) (*models.ClientResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
