package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	catalogRepo "github.com/lucasmrqs/EAS-BookingService/internal/infra/storage/catalog"
	"github.com/lucasmrqs/EAS-BookingService/internal/service/catalog/models"
)

// Service manages the treatment catalog and the team roster. Removal is not
// here: it cascades over appointments and lives in its own use cases.
type Service struct {
	serviceRepo      ServiceRepository
	professionalRepo ProfessionalRepository
	logger           Logger
}

// NewService creates a new catalog service.
func NewService(serviceRepo ServiceRepository, professionalRepo ProfessionalRepository, logger Logger) *Service {
	return &Service{
		serviceRepo:      serviceRepo,
		professionalRepo: professionalRepo,
		logger:           logger,
	}
}

// CreateService adds a treatment to the catalog.
func (s *Service) CreateService(ctx context.Context, req *models.ServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("CreateService: name=%q, category=%s", req.Name, req.Category)

	service, err := req.ToDomainService(uuid.New())
	if err != nil {
		s.logger.Warn("CreateService: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.serviceRepo.Create(ctx, service)
	if err != nil {
		s.logger.Error("CreateService: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateService - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateService: created service id=%s", created.ID)
	return models.FromDomainService(created), nil
}

// GetService fetches one catalog entry.
func (s *Service) GetService(ctx context.Context, id uuid.UUID) (*models.ServiceResponse, error) {
	s.logger.Info("GetService: fetching service id=%s", id)

	if id == uuid.Nil {
		return nil, fmt.Errorf("%w: service id is required", ErrInvalidInput)
	}

	service, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			s.logger.Warn("GetService: service id=%s not found", id)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("GetService: repository error for service id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetService - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainService(service), nil
}

// ListServices returns the whole catalog.
func (s *Service) ListServices(ctx context.Context) (*models.ServiceListResponse, error) {
	s.logger.Info("ListServices: fetching catalog")

	list, err := s.serviceRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListServices: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListServices - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainServiceList(list), nil
}

// UpdateService rewrites a catalog entry. Duration changes do not touch
// existing appointments; their end times were fixed at booking.
func (s *Service) UpdateService(ctx context.Context, id uuid.UUID, req *models.ServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("UpdateService: service id=%s", id)

	if id == uuid.Nil {
		return nil, fmt.Errorf("%w: service id is required", ErrInvalidInput)
	}

	service, err := req.ToDomainService(id)
	if err != nil {
		s.logger.Warn("UpdateService: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	updated, err := s.serviceRepo.Update(ctx, service)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			s.logger.Warn("UpdateService: service id=%s not found", id)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("UpdateService: repository error for service id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateService - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateService: updated service id=%s", id)
	return models.FromDomainService(updated), nil
}
