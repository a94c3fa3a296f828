package appointment

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/primobarber/PB-BookingService/internal/domain"
	"github.com/primobarber/PB-BookingService/pkg/ptr"
	"github.com/primobarber/PB-BookingService/pkg/types"
)

func newMock(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), mock
}

func appointmentRows(appt *domain.Appointment) *sqlmock.Rows {
	var telegramUsername, notes interface{}
	if appt.ClientTelegramUsername != nil {
		telegramUsername = *appt.ClientTelegramUsername
	}
	if appt.Notes != nil {
		notes = *appt.Notes
	}
	return sqlmock.NewRows([]string{
		"id", "client_name", "client_phone", "client_telegram_username",
		"service_id", "date", "time", "notes", "status", "source",
		"created_at", "updated_at",
	}).AddRow(
		appt.ID, appt.ClientName, appt.ClientPhone, telegramUsername,
		appt.ServiceID, appt.Date, string(appt.Time), notes,
		string(appt.Status), string(appt.Source), appt.CreatedAt, appt.UpdatedAt,
	)
}

func sampleAppointment() *domain.Appointment {
	return &domain.Appointment{
		ID:          "a1",
		ClientName:  "Иван Петров",
		ClientPhone: "+79991234567",
		ServiceID:   "svc-1",
		Date:        time.Date(2026, 1, 26, 0, 0, 0, 0, time.UTC),
		Time:        types.TimeString("10:00"),
		Status:      domain.StatusPending,
		Source:      domain.SourceWeb,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
}

func TestCreate_GeneratesIDAndReturnsTimestamps(t *testing.T) {
	repo, mock := newMock(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO appointments`)).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	appt := sampleAppointment()
	appt.ID = ""

	created, err := repo.Create(context.Background(), appt)
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, now, created.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_UniqueViolationMapsToSlotTaken(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO appointments`)).
		WillReturnError(&pq.Error{Code: "23505"})

	_, err := repo.Create(context.Background(), sampleAppointment())
	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT`)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestGetActiveByDate_ExcludesCancelled(t *testing.T) {
	repo, mock := newMock(t)
	appt := sampleAppointment()

	// Вне транзакции FOR UPDATE не добавляется
	mock.ExpectQuery(regexp.QuoteMeta(`WHERE date = $1 AND status <> $2 ORDER BY "time" ASC`)).
		WithArgs(appt.Date, string(domain.StatusCancelled)).
		WillReturnRows(appointmentRows(appt))

	got, err := repo.GetActiveByDate(context.Background(), appt.Date)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "10:00", got[0].Time.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate_UniqueViolationMapsToSlotTaken(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE appointments`)).
		WillReturnError(&pq.Error{Code: "23505"})

	newTime := types.TimeString("11:00")
	_, err := repo.Update(context.Background(), "a1", domain.AppointmentUpdate{Time: &newTime})
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestUpdate_NotFound(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE appointments`)).
		WillReturnError(sql.ErrNoRows)

	status := domain.StatusConfirmed
	_, err := repo.Update(context.Background(), "missing", domain.AppointmentUpdate{Status: &status})
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestDelete_NotFound(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM appointments`)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestDelete_Success(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM appointments`)).
		WithArgs("a1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Delete(context.Background(), "a1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCount_WithStatusFilter(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM appointments WHERE status = $1`)).
		WithArgs(string(domain.StatusPending)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	status := domain.StatusPending
	count, err := repo.Count(context.Background(), domain.AppointmentFilter{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, 7, count)
}

func TestListWithFilter_ClampsLimit(t *testing.T) {
	repo, mock := newMock(t)
	appt := sampleAppointment()

	mock.ExpectQuery(regexp.QuoteMeta(`LIMIT 500`)).
		WillReturnRows(appointmentRows(appt))

	got, err := repo.ListWithFilter(context.Background(), domain.AppointmentFilter{Limit: 10000})
	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListWithFilter_NotesRoundTrip(t *testing.T) {
	repo, mock := newMock(t)
	appt := sampleAppointment()
	appt.Notes = ptr.Ptr("покороче на висках")

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT`)).
		WillReturnRows(appointmentRows(appt))

	got, err := repo.ListWithFilter(context.Background(), domain.AppointmentFilter{})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.NotNil(t, got[0].Notes)
	assert.Equal(t, "покороче на висках", *got[0].Notes)
}
