package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	catalogRepo "github.com/lucasmrqs/EAS-BookingService/internal/infra/storage/catalog"
	"github.com/lucasmrqs/EAS-BookingService/internal/service/catalog/models"
)

// CreateProfessional adds a team member with their weekly working hours.
func (s *Service) CreateProfessional(ctx context.Context, req *models.ProfessionalRequest) (*models.ProfessionalResponse, error) {
	s.logger.Info("CreateProfessional: name=%q, role=%q", req.Name, req.Role)

	professional, err := req.ToDomainProfessional(uuid.New())
	if err != nil {
		s.logger.Warn("CreateProfessional: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.professionalRepo.Create(ctx, professional)
	if err != nil {
		s.logger.Error("CreateProfessional: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateProfessional - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateProfessional: created professional id=%s", created.ID)
	return models.FromDomainProfessional(created), nil
}

// GetProfessional fetches one roster member.
func (s *Service) GetProfessional(ctx context.Context, id uuid.UUID) (*models.ProfessionalResponse, error) {
	s.logger.Info("GetProfessional: fetching professional id=%s", id)

	if id == uuid.Nil {
		return nil, fmt.Errorf("%w: professional id is required", ErrInvalidInput)
	}

	professional, err := s.professionalRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrProfessionalNotFound) {
			s.logger.Warn("GetProfessional: professional id=%s not found", id)
			return nil, ErrProfessionalNotFound
		}
		s.logger.Error("GetProfessional: repository error for professional id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetProfessional - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainProfessional(professional), nil
}

// ListProfessionals returns the whole roster.
func (s *Service) ListProfessionals(ctx context.Context) (*models.ProfessionalListResponse, error) {
	s.logger.Info("ListProfessionals: fetching roster")

	list, err := s.professionalRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListProfessionals: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListProfessionals - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainProfessionalList(list), nil
}

// UpdateProfessional rewrites a roster member. A shrunk schedule does not
// cancel already-booked appointments outside the new window.
func (s *Service) UpdateProfessional(ctx context.Context, id uuid.UUID, req *models.ProfessionalRequest) (*models.ProfessionalResponse, error) {
	s.logger.Info("UpdateProfessional: professional id=%s", id)

	if id == uuid.Nil {
		return nil, fmt.Errorf("%w: professional id is required", ErrInvalidInput)
	}

	professional, err := req.ToDomainProfessional(id)
	if err != nil {
		s.logger.Warn("UpdateProfessional: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	updated, err := s.professionalRepo.Update(ctx, professional)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrProfessionalNotFound) {
			s.logger.Warn("UpdateProfessional: professional id=%s not found", id)
			return nil, ErrProfessionalNotFound
		}
		s.logger.Error("UpdateProfessional: repository error for professional id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateProfessional - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateProfessional: updated professional id=%s", id)
	return models.FromDomainProfessional(updated), nil
}
