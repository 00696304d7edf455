package remove_professional

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	catalogRepo "github.com/lucasmrqs/EAS-BookingService/internal/infra/storage/catalog"
)

// UseCase removes a professional together with their future appointments.
// Both deletes happen in one serializable transaction, so no reader can
// observe the professional gone while a future appointment still exists.
// Past appointments are kept for history.
type UseCase struct {
	professionalRepo ProfessionalRepository
	appointmentRepo  AppointmentRepository
	txManager        TransactionManager
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase creates a new use case instance.
func NewUseCase(
	professionalRepo ProfessionalRepository,
	appointmentRepo AppointmentRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		professionalRepo: professionalRepo,
		appointmentRepo:  appointmentRepo,
		txManager:        txManager,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute runs the cascade removal.
func (uc *UseCase) Execute(ctx context.Context, professionalID uuid.UUID) error {
	uc.logger.Info("RemoveProfessional: professional=%s", professionalID)

	if professionalID == uuid.Nil {
		return fmt.Errorf("%w: professional id is required", ErrInvalidInput)
	}

	// One snapshot of "now" for the whole cascade.
	now := uc.timeProvider.Now()

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		removed, err := uc.appointmentRepo.DeleteFutureByProfessional(txCtx, professionalID, now)
		if err != nil {
			uc.logger.Error("RemoveProfessional: failed to delete future appointments: %v", err)
			return fmt.Errorf("%w: failed to delete future appointments: %v", ErrInternal, err)
		}

		if err := uc.professionalRepo.Delete(txCtx, professionalID); err != nil {
			if errors.Is(err, catalogRepo.ErrProfessionalNotFound) {
				return ErrProfessionalNotFound
			}
			uc.logger.Error("RemoveProfessional: failed to delete professional: %v", err)
			return fmt.Errorf("%w: failed to delete professional: %v", ErrInternal, err)
		}

		uc.logger.Info("RemoveProfessional: professional=%s removed with %d future appointments",
			professionalID, removed)
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrProfessionalNotFound) {
			uc.logger.Warn("RemoveProfessional: professional id=%s not found", professionalID)
		}
		return err
	}

	return nil
}
