package remove_professional

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogRepo "github.com/lucasmrqs/EAS-BookingService/internal/infra/storage/catalog"
)

type stubProfessionalRepo struct {
	err     error
	deleted []uuid.UUID
}

func (s *stubProfessionalRepo) Delete(_ context.Context, id uuid.UUID) error {
	if s.err != nil {
		return s.err
	}
	s.deleted = append(s.deleted, id)
	return nil
}

type stubAppointmentRepo struct {
	removed int64
	nowSeen time.Time
	err     error
}

func (s *stubAppointmentRepo) DeleteFutureByProfessional(_ context.Context, _ uuid.UUID, now time.Time) (int64, error) {
	s.nowSeen = now
	return s.removed, s.err
}

// recordingTxManager runs inline and remembers whether it was entered.
type recordingTxManager struct {
	entered bool
}

func (m *recordingTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.entered = true
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTimeProvider struct {
	now time.Time
}

func (p fixedTimeProvider) Now() time.Time { return p.now }

func TestUseCase_Execute(t *testing.T) {
	professionals := &stubProfessionalRepo{}
	appointments := &stubAppointmentRepo{removed: 3}
	tx := &recordingTxManager{}
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

	uc := NewUseCase(professionals, appointments, tx, nopLogger{})
	uc.timeProvider = fixedTimeProvider{now: now}

	id := uuid.New()
	err := uc.Execute(context.Background(), id)

	require.NoError(t, err)
	assert.True(t, tx.entered, "cascade must run inside the transaction")
	assert.Equal(t, []uuid.UUID{id}, professionals.deleted)
	assert.Equal(t, now, appointments.nowSeen, "the now snapshot must come from the time provider")
}

func TestUseCase_Execute_NotFound(t *testing.T) {
	professionals := &stubProfessionalRepo{err: catalogRepo.ErrProfessionalNotFound}
	uc := NewUseCase(professionals, &stubAppointmentRepo{}, &recordingTxManager{}, nopLogger{})

	err := uc.Execute(context.Background(), uuid.New())

	assert.ErrorIs(t, err, ErrProfessionalNotFound)
}

func TestUseCase_Execute_NilID(t *testing.T) {
	tx := &recordingTxManager{}
	uc := NewUseCase(&stubProfessionalRepo{}, &stubAppointmentRepo{}, tx, nopLogger{})

	err := uc.Execute(context.Background(), uuid.Nil)

	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.False(t, tx.entered)
}

func TestUseCase_Execute_AppointmentDeleteFailureAborts(t *testing.T) {
	professionals := &stubProfessionalRepo{}
	appointments := &stubAppointmentRepo{err: assert.AnError}
	uc := NewUseCase(professionals, appointments, &recordingTxManager{}, nopLogger{})

	err := uc.Execute(context.Background(), uuid.New())

	assert.ErrorIs(t, err, ErrInternal)
	assert.Empty(t, professionals.deleted, "catalog delete must not run after a failed cascade step")
}
