package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucasmrqs/EAS-BookingService/internal/domain"
	"github.com/lucasmrqs/EAS-BookingService/pkg/dbmetrics"
)

func newMock(t *testing.T) (*Repository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	return NewRepository(db), mock, func() { db.Close() }
}

func appointmentRows(appts ...*domain.Appointment) *sqlmock.Rows {
	rows := sqlmock.NewRows(appointmentColumns)
	for _, a := range appts {
		rows.AddRow(a.ID.String(), a.ClientID.String(), a.ProfessionalID.String(),
			a.ServiceID.String(), a.StartTime, a.EndTime, a.CreatedAt, a.UpdatedAt)
	}
	return rows
}

func TestRepository_Create(t *testing.T) {
	repo, mock, closeDB := newMock(t)
	defer closeDB()

	now := time.Now()
	mock.ExpectQuery("INSERT INTO appointments").
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	appt := &domain.Appointment{
		ID:             uuid.New(),
		ClientID:       uuid.New(),
		ProfessionalID: uuid.New(),
		ServiceID:      uuid.New(),
		StartTime:      time.Date(2026, 9, 1, 11, 0, 0, 0, time.UTC),
		EndTime:        time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
	}

	created, err := repo.Create(context.Background(), appt)

	require.NoError(t, err)
	assert.Equal(t, now, created.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo, mock, closeDB := newMock(t)
	defer closeDB()

	mock.ExpectQuery("SELECT .+ FROM appointments").
		WillReturnRows(appointmentRows())

	_, err := repo.GetByID(context.Background(), uuid.New())

	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestRepository_ListByProfessionalOnDay(t *testing.T) {
	repo, mock, closeDB := newMock(t)
	defer closeDB()

	professionalID := uuid.New()
	appt := &domain.Appointment{
		ID:             uuid.New(),
		ClientID:       uuid.New(),
		ProfessionalID: professionalID,
		ServiceID:      uuid.New(),
		StartTime:      time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
		EndTime:        time.Date(2026, 9, 1, 11, 0, 0, 0, time.UTC),
	}

	mock.ExpectQuery("SELECT .+ FROM appointments WHERE professional_id = .+ ORDER BY start_time ASC").
		WillReturnRows(appointmentRows(appt))

	list, err := repo.ListByProfessionalOnDay(context.Background(),
		professionalID, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, appt.ID, list[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Inside a transaction the same-day read must lock the rows.
func TestRepository_ListByProfessionalOnDay_LocksInTransaction(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .+ FROM appointments .+ FOR UPDATE").
		WillReturnRows(appointmentRows())

	tx, err := db.Begin()
	require.NoError(t, err)

	ctx := dbmetrics.WithTx(context.Background(), &dbmetrics.SqlTxWrapper{Tx: tx})
	_, err = repo.ListByProfessionalOnDay(ctx, uuid.New(), time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Delete_AbsentIsNotFound(t *testing.T) {
	repo, mock, closeDB := newMock(t)
	defer closeDB()

	mock.ExpectExec("DELETE FROM appointments").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), uuid.New())

	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestRepository_DeleteFutureByProfessional(t *testing.T) {
	repo, mock, closeDB := newMock(t)
	defer closeDB()

	mock.ExpectExec("DELETE FROM appointments WHERE professional_id = .+ AND start_time > .+").
		WillReturnResult(sqlmock.NewResult(0, 3))

	removed, err := repo.DeleteFutureByProfessional(context.Background(),
		uuid.New(), time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	assert.Equal(t, int64(3), removed)
	assert.NoError(t, mock.ExpectationsWereMet())
}
