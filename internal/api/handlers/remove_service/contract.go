package remove_service

import (
	"context"

	"github.com/google/uuid"
)

type RemoveServiceUseCase interface {
	Execute(ctx context.Context, serviceID uuid.UUID) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
