package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/lucasmrqs/EAS-BookingService/internal/domain"
	catalogRepo "github.com/lucasmrqs/EAS-BookingService/internal/infra/storage/catalog"
)

// UseCase computes the available slots of a professional for one day.
type UseCase struct {
	professionalRepo ProfessionalRepository
	serviceRepo      ServiceRepository
	appointmentRepo  AppointmentRepository
	logger           Logger
}

// NewUseCase creates a new use case instance.
func NewUseCase(
	professionalRepo ProfessionalRepository,
	serviceRepo ServiceRepository,
	appointmentRepo AppointmentRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		professionalRepo: professionalRepo,
		serviceRepo:      serviceRepo,
		appointmentRepo:  appointmentRepo,
		logger:           logger,
	}
}

// Execute runs the availability calculation.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: professional=%s, service=%s, date=%s",
		req.ProfessionalID, req.ServiceID, req.Date.Format(domain.DateFormat))

	// 1. Validate input.
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Load the professional.
	professional, err := uc.professionalRepo.GetByID(ctx, req.ProfessionalID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrProfessionalNotFound) {
			uc.logger.Warn("GetAvailableSlots: professional id=%s not found", req.ProfessionalID)
			return nil, ErrProfessionalNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get professional id=%s: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: failed to get professional: %v", ErrInternal, err)
	}

	// 3. Load the service.
	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%s not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%s: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// The catalog does not force the pairing; slots are computed anyway and
	// the mismatch is only logged.
	if !professional.Offers(req.ServiceID) {
		uc.logger.Warn("GetAvailableSlots: professional id=%s does not offer service id=%s",
			req.ProfessionalID, req.ServiceID)
	}

	// 4. Load the professional's appointments for the day.
	appointments, err := uc.appointmentRepo.ListByProfessionalOnDay(ctx, req.ProfessionalID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to list appointments: %v", ErrInternal, err)
	}

	// 5. Walk the schedule window and collect free slots.
	slots := computeSlots(professional, service, req.Date, appointments)

	uc.logger.Info("GetAvailableSlots: professional=%s, date=%s: %d slots",
		req.ProfessionalID, req.Date.Format(domain.DateFormat), len(slots))

	return &Response{
		ProfessionalID: req.ProfessionalID,
		ServiceID:      req.ServiceID,
		Date:           req.Date,
		Slots:          slots,
	}, nil
}
