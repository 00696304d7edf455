package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/lucasmrqs/EAS-BookingService/internal/domain"
	catalogRepo "github.com/lucasmrqs/EAS-BookingService/internal/infra/storage/catalog"
	clientRepo "github.com/lucasmrqs/EAS-BookingService/internal/infra/storage/client"
)

// UseCase books an appointment. The overlap check runs twice: once in the
// availability read the caller saw, and again here inside a serializable
// transaction, so two clients racing for the same slot cannot both win.
type UseCase struct {
	appointmentRepo  AppointmentRepository
	clientRepo       ClientRepository
	professionalRepo ProfessionalRepository
	serviceRepo      ServiceRepository
	txManager        TransactionManager
	logger           Logger
}

// NewUseCase creates a new use case instance.
func NewUseCase(
	appointmentRepo AppointmentRepository,
	clientRepo ClientRepository,
	professionalRepo ProfessionalRepository,
	serviceRepo ServiceRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo:  appointmentRepo,
		clientRepo:       clientRepo,
		professionalRepo: professionalRepo,
		serviceRepo:      serviceRepo,
		txManager:        txManager,
		logger:           logger,
	}
}

// Execute creates the appointment.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: client=%s, professional=%s, service=%s, start=%s",
		req.ClientID, req.ProfessionalID, req.ServiceID, req.StartTime.Format(domain.DateFormat+" "+domain.TimeFormat))

	// 1. Validate input.
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Resolve the client.
	if _, err := uc.clientRepo.GetByID(ctx, req.ClientID); err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			uc.logger.Warn("CreateAppointment: client id=%s not found", req.ClientID)
			return nil, ErrClientNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get client id=%s: %v", req.ClientID, err)
		return nil, fmt.Errorf("%w: failed to get client: %v", ErrInternal, err)
	}

	// 3. Resolve the professional.
	professional, err := uc.professionalRepo.GetByID(ctx, req.ProfessionalID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrProfessionalNotFound) {
			uc.logger.Warn("CreateAppointment: professional id=%s not found", req.ProfessionalID)
			return nil, ErrProfessionalNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get professional id=%s: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: failed to get professional: %v", ErrInternal, err)
	}

	// 4. Resolve the service; it fixes the appointment length.
	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateAppointment: service id=%s not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get service id=%s: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	startTime := req.StartTime
	endTime := startTime.Add(service.Duration())

	// 5. Check the interval against the day's working window.
	if err := validateWithinWindow(professional, startTime, endTime); err != nil {
		uc.logger.Warn("CreateAppointment: interval %s-%s outside working hours of professional id=%s",
			startTime.Format(domain.TimeFormat), endTime.Format(domain.TimeFormat), req.ProfessionalID)
		return nil, err
	}

	var result *domain.Appointment

	// 6. Re-check and insert atomically. The same-day read takes FOR UPDATE
	// inside the transaction, and serializable isolation catches the rest.
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		sameDay, err := uc.appointmentRepo.ListByProfessionalOnDay(txCtx, req.ProfessionalID, startTime)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to list same-day appointments: %v", err)
			return fmt.Errorf("%w: failed to list appointments: %v", ErrInternal, err)
		}

		for _, existing := range sameDay {
			if existing.Overlaps(startTime, endTime) {
				uc.logger.Warn("CreateAppointment: slot %s-%s conflicts with appointment id=%s",
					startTime.Format(domain.TimeFormat), endTime.Format(domain.TimeFormat), existing.ID)
				return ErrSlotConflict
			}
		}

		created, err := uc.appointmentRepo.Create(txCtx, &domain.Appointment{
			ID:             uuid.New(),
			ClientID:       req.ClientID,
			ProfessionalID: req.ProfessionalID,
			ServiceID:      req.ServiceID,
			StartTime:      startTime,
			EndTime:        endTime,
		})
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%s", result.ID)

	return &Response{
		ID:             result.ID,
		ClientID:       result.ClientID,
		ProfessionalID: result.ProfessionalID,
		ServiceID:      result.ServiceID,
		StartTime:      result.StartTime,
		EndTime:        result.EndTime,
	}, nil
}
