package clients

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/lucasmrqs/EAS-BookingService/internal/domain"
	clientRepo "github.com/lucasmrqs/EAS-BookingService/internal/infra/storage/client"
	"github.com/lucasmrqs/EAS-BookingService/internal/service/clients/models"
)

// Service resolves client identity. The phone string is the identity key,
// matched exactly with no normalization.
type Service struct {
	clientRepo ClientRepository
	logger     Logger
}

// NewService creates a new clients service.
func NewService(clientRepo ClientRepository, logger Logger) *Service {
	return &Service{
		clientRepo: clientRepo,
		logger:     logger,
	}
}

// FindOrCreate returns the existing client with the exact same phone, or
// creates a new one. When a match is found the stored name and email win;
// the incoming ones are discarded, first writer keeps the record. An empty
// phone never matches and always creates.
func (s *Service) FindOrCreate(ctx context.Context, req *models.ResolveClientRequest) (*models.ClientResponse, error) {
	s.logger.Info("FindOrCreate: resolving client name=%q, phone=%q", req.Name, req.Phone)

	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	if req.Phone != "" {
		existing, err := s.clientRepo.GetByPhone(ctx, req.Phone)
		if err == nil {
			s.logger.Info("FindOrCreate: phone matched existing client id=%s", existing.ID)
			return models.FromDomainClient(existing), nil
		}
		if !errors.Is(err, clientRepo.ErrClientNotFound) {
			s.logger.Error("FindOrCreate: repository error for phone lookup: %v", err)
			return nil, fmt.Errorf("%w: FindOrCreate - repository error: %v", ErrInternal, err)
		}
	}

	created, err := s.clientRepo.Create(ctx, &domain.Client{
		ID:    uuid.New(),
		Name:  req.Name,
		Phone: req.Phone,
		Email: req.Email,
	})
	if err != nil {
		s.logger.Error("FindOrCreate: failed to create client: %v", err)
		return nil, fmt.Errorf("%w: FindOrCreate - failed to create client: %v", ErrInternal, err)
	}

	s.logger.Info("FindOrCreate: created client id=%s", created.ID)
	return models.FromDomainClient(created), nil
}

// GetByID fetches one client.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*models.ClientResponse, error) {
	s.logger.Info("GetByID: fetching client id=%s", id)

	if id == uuid.Nil {
		return nil, fmt.Errorf("%w: client id is required", ErrInvalidInput)
	}

	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			s.logger.Warn("GetByID: client id=%s not found", id)
			return nil, ErrClientNotFound
		}
		s.logger.Error("GetByID: repository error for client id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainClient(client), nil
}

// List returns every client.
func (s *Service) List(ctx context.Context) (*models.ClientListResponse, error) {
	s.logger.Info("List: fetching clients")

	list, err := s.clientRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainClientList(list), nil
}
