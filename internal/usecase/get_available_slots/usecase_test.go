package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucasmrqs/EAS-BookingService/internal/domain"
	catalogRepo "github.com/lucasmrqs/EAS-BookingService/internal/infra/storage/catalog"
)

type stubProfessionalRepo struct {
	professional *domain.Professional
	err          error
}

func (s *stubProfessionalRepo) GetByID(_ context.Context, _ uuid.UUID) (*domain.Professional, error) {
	return s.professional, s.err
}

type stubServiceRepo struct {
	service *domain.Service
	err     error
}

func (s *stubServiceRepo) GetByID(_ context.Context, _ uuid.UUID) (*domain.Service, error) {
	return s.service, s.err
}

type stubAppointmentRepo struct {
	appointments []*domain.Appointment
	err          error
}

func (s *stubAppointmentRepo) ListByProfessionalOnDay(_ context.Context, _ uuid.UUID, _ time.Time) ([]*domain.Appointment, error) {
	return s.appointments, s.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestUseCase_Execute(t *testing.T) {
	date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC) // a Tuesday
	professional := testProfessional(scheduleOpenOn(time.Tuesday, "10:00", "19:00"))
	service := testService(60)
	professional.OfferedServiceIDs = []uuid.UUID{service.ID}

	uc := NewUseCase(
		&stubProfessionalRepo{professional: professional},
		&stubServiceRepo{service: service},
		&stubAppointmentRepo{appointments: []*domain.Appointment{
			appt(professional.ID,
				time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
				time.Date(2026, 9, 1, 11, 0, 0, 0, time.UTC)),
		}},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{
		ProfessionalID: professional.ID,
		ServiceID:      service.ID,
		Date:           date,
	})

	require.NoError(t, err)
	// 11:00 through 18:00 on the 15-minute grid.
	require.Len(t, resp.Slots, 29)
	assert.Equal(t, time.Date(2026, 9, 1, 11, 0, 0, 0, time.UTC), resp.Slots[0])
	assert.Equal(t, time.Date(2026, 9, 1, 18, 0, 0, 0, time.UTC), resp.Slots[28])
}

func TestUseCase_Execute_ProfessionalNotFound(t *testing.T) {
	uc := NewUseCase(
		&stubProfessionalRepo{err: catalogRepo.ErrProfessionalNotFound},
		&stubServiceRepo{service: testService(60)},
		&stubAppointmentRepo{},
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{
		ProfessionalID: uuid.New(),
		ServiceID:      uuid.New(),
		Date:           time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
	})

	assert.ErrorIs(t, err, ErrProfessionalNotFound)
}

func TestUseCase_Execute_ServiceNotFound(t *testing.T) {
	professional := testProfessional(scheduleOpenOn(time.Tuesday, "10:00", "19:00"))

	uc := NewUseCase(
		&stubProfessionalRepo{professional: professional},
		&stubServiceRepo{err: catalogRepo.ErrServiceNotFound},
		&stubAppointmentRepo{},
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{
		ProfessionalID: professional.ID,
		ServiceID:      uuid.New(),
		Date:           time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
	})

	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestUseCase_Execute_InvalidInput(t *testing.T) {
	uc := NewUseCase(&stubProfessionalRepo{}, &stubServiceRepo{}, &stubAppointmentRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		ProfessionalID: uuid.Nil,
		ServiceID:      uuid.New(),
		Date:           time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{
		ProfessionalID: uuid.New(),
		ServiceID:      uuid.New(),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

// An unoffered service is computed anyway; the mismatch is only logged.
func TestUseCase_Execute_UnofferedServiceStillComputes(t *testing.T) {
	professional := testProfessional(scheduleOpenOn(time.Tuesday, "10:00", "12:00"))
	service := testService(60) // not in OfferedServiceIDs

	uc := NewUseCase(
		&stubProfessionalRepo{professional: professional},
		&stubServiceRepo{service: service},
		&stubAppointmentRepo{},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{
		ProfessionalID: professional.ID,
		ServiceID:      service.ID,
		Date:           time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.Len(t, resp.Slots, 5)
}
