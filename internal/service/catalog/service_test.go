package catalog

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucasmrqs/EAS-BookingService/internal/domain"
	catalogRepo "github.com/lucasmrqs/EAS-BookingService/internal/infra/storage/catalog"
	"github.com/lucasmrqs/EAS-BookingService/internal/service/catalog/models"
)

type stubServiceRepo struct {
	services map[uuid.UUID]*domain.Service
}

func newStubServiceRepo() *stubServiceRepo {
	return &stubServiceRepo{services: make(map[uuid.UUID]*domain.Service)}
}

func (s *stubServiceRepo) Create(_ context.Context, svc *domain.Service) (*domain.Service, error) {
	s.services[svc.ID] = svc
	return svc, nil
}

func (s *stubServiceRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Service, error) {
	if svc, ok := s.services[id]; ok {
		return svc, nil
	}
	return nil, catalogRepo.ErrServiceNotFound
}

func (s *stubServiceRepo) List(_ context.Context) ([]*domain.Service, error) {
	out := make([]*domain.Service, 0, len(s.services))
	for _, svc := range s.services {
		out = append(out, svc)
	}
	return out, nil
}

func (s *stubServiceRepo) Update(_ context.Context, svc *domain.Service) (*domain.Service, error) {
	if _, ok := s.services[svc.ID]; !ok {
		return nil, catalogRepo.ErrServiceNotFound
	}
	s.services[svc.ID] = svc
	return svc, nil
}

type stubProfessionalRepo struct {
	professionals map[uuid.UUID]*domain.Professional
}

func newStubProfessionalRepo() *stubProfessionalRepo {
	return &stubProfessionalRepo{professionals: make(map[uuid.UUID]*domain.Professional)}
}

func (s *stubProfessionalRepo) Create(_ context.Context, p *domain.Professional) (*domain.Professional, error) {
	s.professionals[p.ID] = p
	return p, nil
}

func (s *stubProfessionalRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Professional, error) {
	if p, ok := s.professionals[id]; ok {
		return p, nil
	}
	return nil, catalogRepo.ErrProfessionalNotFound
}

func (s *stubProfessionalRepo) List(_ context.Context) ([]*domain.Professional, error) {
	out := make([]*domain.Professional, 0, len(s.professionals))
	for _, p := range s.professionals {
		out = append(out, p)
	}
	return out, nil
}

func (s *stubProfessionalRepo) Update(_ context.Context, p *domain.Professional) (*domain.Professional, error) {
	if _, ok := s.professionals[p.ID]; !ok {
		return nil, catalogRepo.ErrProfessionalNotFound
	}
	s.professionals[p.ID] = p
	return p, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService() *Service {
	return NewService(newStubServiceRepo(), newStubProfessionalRepo(), nopLogger{})
}

func TestService_CreateService(t *testing.T) {
	svc := newTestService()

	resp, err := svc.CreateService(context.Background(), &models.ServiceRequest{
		Name:            "Plasma fibroblast session",
		Category:        "plasma-treatment",
		DurationMinutes: 90,
		Price:           450,
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, resp.ID)
	assert.Equal(t, "plasma-treatment", resp.Category)
}

func TestService_CreateService_Validation(t *testing.T) {
	svc := newTestService()

	cases := []struct {
		name string
		req  models.ServiceRequest
	}{
		{"unknown category", models.ServiceRequest{Name: "X", Category: "massage", DurationMinutes: 30}},
		{"zero duration", models.ServiceRequest{Name: "X", Category: "piercing", DurationMinutes: 0}},
		{"negative price", models.ServiceRequest{Name: "X", Category: "piercing", DurationMinutes: 30, Price: -1}},
		{"blank name", models.ServiceRequest{Name: " ", Category: "piercing", DurationMinutes: 30}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateService(context.Background(), &tc.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestService_UpdateService_NotFound(t *testing.T) {
	svc := newTestService()

	_, err := svc.UpdateService(context.Background(), uuid.New(), &models.ServiceRequest{
		Name: "X", Category: "piercing", DurationMinutes: 30,
	})

	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestService_CreateProfessional_ScheduleRoundTrip(t *testing.T) {
	svc := newTestService()

	resp, err := svc.CreateProfessional(context.Background(), &models.ProfessionalRequest{
		Name: "Ana Souza",
		Role: "piercer",
		WeeklySchedule: map[string]models.DayWindowModel{
			"tuesday":  {Open: true, Start: "10:00", End: "19:00"},
			"saturday": {Open: true, Start: "09:00", End: "13:00"},
		},
	})

	require.NoError(t, err)
	require.Contains(t, resp.WeeklySchedule, "tuesday")
	assert.Equal(t, "10:00", resp.WeeklySchedule["tuesday"].Start)
	assert.NotContains(t, resp.WeeklySchedule, "monday", "closed days are omitted")

	fetched, err := svc.GetProfessional(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.Equal(t, resp.WeeklySchedule, fetched.WeeklySchedule)
}

func TestService_CreateProfessional_InvalidSchedule(t *testing.T) {
	svc := newTestService()

	cases := []struct {
		name     string
		schedule map[string]models.DayWindowModel
	}{
		{"start after end", map[string]models.DayWindowModel{
			"monday": {Open: true, Start: "18:00", End: "09:00"},
		}},
		{"start equals end", map[string]models.DayWindowModel{
			"monday": {Open: true, Start: "09:00", End: "09:00"},
		}},
		{"garbage time", map[string]models.DayWindowModel{
			"monday": {Open: true, Start: "nine", End: "17:00"},
		}},
		{"unknown weekday", map[string]models.DayWindowModel{
			"funday": {Open: true, Start: "09:00", End: "17:00"},
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateProfessional(context.Background(), &models.ProfessionalRequest{
				Name:           "Ana Souza",
				WeeklySchedule: tc.schedule,
			})
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestService_UpdateProfessional(t *testing.T) {
	svc := newTestService()

	created, err := svc.CreateProfessional(context.Background(), &models.ProfessionalRequest{
		Name: "Ana Souza",
		WeeklySchedule: map[string]models.DayWindowModel{
			"tuesday": {Open: true, Start: "10:00", End: "19:00"},
		},
	})
	require.NoError(t, err)

	serviceID := uuid.New()
	updated, err := svc.UpdateProfessional(context.Background(), created.ID, &models.ProfessionalRequest{
		Name:              "Ana Souza",
		Role:              "senior piercer",
		OfferedServiceIDs: []uuid.UUID{serviceID},
		WeeklySchedule: map[string]models.DayWindowModel{
			"tuesday": {Open: true, Start: "12:00", End: "19:00"},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "senior piercer", updated.Role)
	assert.Equal(t, "12:00", updated.WeeklySchedule["tuesday"].Start)
	assert.Equal(t, []uuid.UUID{serviceID}, updated.OfferedServiceIDs)
}

func TestService_GetProfessional_NotFound(t *testing.T) {
	svc := newTestService()

	_, err := svc.GetProfessional(context.Background(), uuid.New())

	assert.ErrorIs(t, err, ErrProfessionalNotFound)
}
