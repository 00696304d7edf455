package remove_service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	catalogRepo "github.com/lucasmrqs/EAS-BookingService/internal/infra/storage/catalog"
)

// UseCase removes a service together with its future appointments, in one
// serializable transaction. Past appointments keep the dangling ServiceID.
type UseCase struct {
	serviceRepo     ServiceRepository
	appointmentRepo AppointmentRepository
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase creates a new use case instance.
func NewUseCase(
	serviceRepo ServiceRepository,
	appointmentRepo AppointmentRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		serviceRepo:     serviceRepo,
		appointmentRepo: appointmentRepo,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute runs the cascade removal.
func (uc *UseCase) Execute(ctx context.Context, serviceID uuid.UUID) error {
	uc.logger.Info("RemoveService: service=%s", serviceID)

	if serviceID == uuid.Nil {
		return fmt.Errorf("%w: service id is required", ErrInvalidInput)
	}

	// One snapshot of "now" for the whole cascade.
	now := uc.timeProvider.Now()

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		removed, err := uc.appointmentRepo.DeleteFutureByService(txCtx, serviceID, now)
		if err != nil {
			uc.logger.Error("RemoveService: failed to delete future appointments: %v", err)
			return fmt.Errorf("%w: failed to delete future appointments: %v", ErrInternal, err)
		}

		if err := uc.serviceRepo.Delete(txCtx, serviceID); err != nil {
			if errors.Is(err, catalogRepo.ErrServiceNotFound) {
				return ErrServiceNotFound
			}
			uc.logger.Error("RemoveService: failed to delete service: %v", err)
			return fmt.Errorf("%w: failed to delete service: %v", ErrInternal, err)
		}

		uc.logger.Info("RemoveService: service=%s removed with %d future appointments",
			serviceID, removed)
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrServiceNotFound) {
			uc.logger.Warn("RemoveService: service id=%s not found", serviceID)
		}
		return err
	}

	return nil
}
