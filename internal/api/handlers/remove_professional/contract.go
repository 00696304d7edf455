package remove_professional

import (
	"context"

	"github.com/google/uuid"
)

type RemoveProfessionalUseCase interface {
	Execute(ctx context.Context, professionalID uuid.UUID) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
