package create_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucasmrqs/EAS-BookingService/internal/domain"
	catalogRepo "github.com/lucasmrqs/EAS-BookingService/internal/infra/storage/catalog"
	clientRepo "github.com/lucasmrqs/EAS-BookingService/internal/infra/storage/client"
	"github.com/lucasmrqs/EAS-BookingService/pkg/types"
)

type stubAppointmentRepo struct {
	sameDay []*domain.Appointment
	created *domain.Appointment
}

func (s *stubAppointmentRepo) Create(_ context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	s.created = a
	return a, nil
}

func (s *stubAppointmentRepo) ListByProfessionalOnDay(_ context.Context, _ uuid.UUID, _ time.Time) ([]*domain.Appointment, error) {
	return s.sameDay, nil
}

type stubClientRepo struct {
	client *domain.Client
	err    error
}

func (s *stubClientRepo) GetByID(_ context.Context, _ uuid.UUID) (*domain.Client, error) {
	return s.client, s.err
}

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

// inlineTxManager runs the critical section without a real transaction.
type inlineTxManager struct{}

func (inlineTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixture struct {
	client       *domain.Client
	professional *domain.Professional
	service      *domain.Service
	appointments *stubAppointmentRepo
	uc           *UseCase
}

func newFixture(sameDay []*domain.Appointment) *fixture {
	var schedule domain.WeeklySchedule
	for i := range schedule {
		schedule[i] = domain.Closed()
	}
	schedule[time.Tuesday] = domain.Window(types.TimeString("10:00"), types.TimeString("19:00"))

	client := &domain.Client{ID: uuid.New(), Name: "Marina Lopes", Phone: "11 98888-7777"}
	service := &domain.Service{
		ID:              uuid.New(),
		Name:            "Ear lobe piercing",
		Category:        domain.CategoryPiercing,
		DurationMinutes: 60,
	}
	professional := &domain.Professional{
		ID:                uuid.New(),
		Name:              "Ana Souza",
		Role:              "piercer",
		OfferedServiceIDs: []uuid.UUID{service.ID},
		WeeklySchedule:    schedule,
	}

	appointments := &stubAppointmentRepo{sameDay: sameDay}

	uc := NewUseCase(
		appointments,
		&stubClientRepo{client: client},
		&stubProfessionalRepo{professional: professional},
		&stubServiceRepo{service: service},
		inlineTxManager{},
		nopLogger{},
	)

	return &fixture{
		client:       client,
		professional: professional,
		service:      service,
		appointments: appointments,
		uc:           uc,
	}
}

func TestUseCase_Execute(t *testing.T) {
	f := newFixture(nil)
	start := time.Date(2026, 9, 1, 11, 0, 0, 0, time.UTC) // a Tuesday

	resp, err := f.uc.Execute(context.Background(), &Request{
		ClientID:       f.client.ID,
		ProfessionalID: f.professional.ID,
		ServiceID:      f.service.ID,
		StartTime:      start,
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, resp.ID)
	assert.Equal(t, start, resp.StartTime)
	assert.Equal(t, start.Add(time.Hour), resp.EndTime, "end time must be start plus service duration")
	require.NotNil(t, f.appointments.created)
	assert.Equal(t, resp.ID, f.appointments.created.ID)
}

func TestUseCase_Execute_SlotConflict(t *testing.T) {
	start := time.Date(2026, 9, 1, 11, 0, 0, 0, time.UTC)
	f := newFixture([]*domain.Appointment{{
		ID:             uuid.New(),
		ProfessionalID: uuid.New(),
		StartTime:      start.Add(30 * time.Minute),
		EndTime:        start.Add(90 * time.Minute),
	}})

	_, err := f.uc.Execute(context.Background(), &Request{
		ClientID:       f.client.ID,
		ProfessionalID: f.professional.ID,
		ServiceID:      f.service.ID,
		StartTime:      start,
	})

	assert.ErrorIs(t, err, ErrSlotConflict)
	assert.Nil(t, f.appointments.created, "conflicting request must not insert")
}

func TestUseCase_Execute_TouchingAppointmentIsNotConflict(t *testing.T) {
	start := time.Date(2026, 9, 1, 11, 0, 0, 0, time.UTC)
	f := newFixture([]*domain.Appointment{{
		ID:        uuid.New(),
		StartTime: start.Add(-time.Hour),
		EndTime:   start, // ends exactly when the new one starts
	}})

	_, err := f.uc.Execute(context.Background(), &Request{
		ClientID:       f.client.ID,
		ProfessionalID: f.professional.ID,
		ServiceID:      f.service.ID,
		StartTime:      start,
	})

	assert.NoError(t, err)
}

func TestUseCase_Execute_OutsideWorkingHours(t *testing.T) {
	f := newFixture(nil)

	cases := []struct {
		name  string
		start time.Time
	}{
		{"closed day", time.Date(2026, 9, 2, 11, 0, 0, 0, time.UTC)}, // Wednesday
		{"before opening", time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)},
		{"runs past closing", time.Date(2026, 9, 1, 18, 30, 0, 0, time.UTC)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.uc.Execute(context.Background(), &Request{
				ClientID:       f.client.ID,
				ProfessionalID: f.professional.ID,
				ServiceID:      f.service.ID,
				StartTime:      tc.start,
			})
			assert.ErrorIs(t, err, ErrOutsideWorkingHours)
		})
	}
}

func TestUseCase_Execute_NotFound(t *testing.T) {
	start := time.Date(2026, 9, 1, 11, 0, 0, 0, time.UTC)
	f := newFixture(nil)

	t.Run("client", func(t *testing.T) {
		uc := NewUseCase(
			f.appointments,
			&stubClientRepo{err: clientRepo.ErrClientNotFound},
			&stubProfessionalRepo{professional: f.professional},
			&stubServiceRepo{service: f.service},
			inlineTxManager{},
			nopLogger{},
		)
		_, err := uc.Execute(context.Background(), &Request{
			ClientID:       uuid.New(),
			ProfessionalID: f.professional.ID,
			ServiceID:      f.service.ID,
			StartTime:      start,
		})
		assert.ErrorIs(t, err, ErrClientNotFound)
	})

	t.Run("professional", func(t *testing.T) {
		uc := NewUseCase(
			f.appointments,
			&stubClientRepo{client: f.client},
			&stubProfessionalRepo{err: catalogRepo.ErrProfessionalNotFound},
			&stubServiceRepo{service: f.service},
			inlineTxManager{},
			nopLogger{},
		)
		_, err := uc.Execute(context.Background(), &Request{
			ClientID:       f.client.ID,
			ProfessionalID: uuid.New(),
			ServiceID:      f.service.ID,
			StartTime:      start,
		})
		assert.ErrorIs(t, err, ErrProfessionalNotFound)
	})

	t.Run("service", func(t *testing.T) {
		uc := NewUseCase(
			f.appointments,
			&stubClientRepo{client: f.client},
			&stubProfessionalRepo{professional: f.professional},
			&stubServiceRepo{err: catalogRepo.ErrServiceNotFound},
			inlineTxManager{},
			nopLogger{},
		)
		_, err := uc.Execute(context.Background(), &Request{
			ClientID:       f.client.ID,
			ProfessionalID: f.professional.ID,
			ServiceID:      uuid.New(),
			StartTime:      start,
		})
		assert.ErrorIs(t, err, ErrServiceNotFound)
	})
}

func TestUseCase_Execute_InvalidInput(t *testing.T) {
	f := newFixture(nil)

	_, err := f.uc.Execute(context.Background(), &Request{
		ClientID:       uuid.Nil,
		ProfessionalID: f.professional.ID,
		ServiceID:      f.service.ID,
		StartTime:      time.Date(2026, 9, 1, 11, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = f.uc.Execute(context.Background(), &Request{
		ClientID:       f.client.ID,
		ProfessionalID: f.professional.ID,
		ServiceID:      f.service.ID,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
