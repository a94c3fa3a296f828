package create_appointment

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/primobarber/PB-BookingService/internal/domain"
	apptRepo "github.com/primobarber/PB-BookingService/internal/infra/storage/appointment"
	scheduleRepo "github.com/primobarber/PB-BookingService/internal/infra/storage/schedule"
	serviceRepo "github.com/primobarber/PB-BookingService/internal/infra/storage/service"
	"github.com/primobarber/PB-BookingService/pkg/ptr"
	"github.com/primobarber/PB-BookingService/pkg/types"
)

// Mock implementations

type mockAppointmentRepo struct {
	active    []*domain.Appointment // неотмененные записи дня
	activeErr error
	createErr error
	created   *domain.Appointment
}

func (m *mockAppointmentRepo) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	out := *appt
	out.ID = "9f0d4a46-7a2e-4a7e-b7d4-0a9a58b5a001"
	out.CreatedAt = time.Now()
	out.UpdatedAt = out.CreatedAt
	m.created = &out
	return &out, nil
}

func (m *mockAppointmentRepo) GetActiveByDate(_ context.Context, _ time.Time) ([]*domain.Appointment, error) {
	if m.activeErr != nil {
		return nil, m.activeErr
	}
	return m.active, nil
}

type mockScheduleRepo struct {
	blockedDate *domain.BlockedDate
	rule        *domain.WorkingHoursRule
}

func (m *mockScheduleRepo) GetBlockedDate(_ context.Context, _ string) (*domain.BlockedDate, error) {
	if m.blockedDate == nil {
		return nil, scheduleRepo.ErrBlockedDateNotFound
	}
	return m.blockedDate, nil
}

func (m *mockScheduleRepo) GetActiveWorkingHoursByDay(_ context.Context, _ int) (*domain.WorkingHoursRule, error) {
	if m.rule == nil {
		return nil, scheduleRepo.ErrWorkingHoursNotFound
	}
	return m.rule, nil
}

type mockServiceRepo struct {
	service *domain.Service
}

func (m *mockServiceRepo) GetByID(_ context.Context, _ string) (*domain.Service, error) {
	if m.service == nil {
		return nil, serviceRepo.ErrServiceNotFound
	}
	return m.service, nil
}

// mockTxManager выполняет fn без настоящей транзакции
type mockTxManager struct {
	calls int
}

func (m *mockTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func ts(t *testing.T, s string) types.TimeString {
	t.Helper()
	v, err := types.NewTimeStringFromString(s)
	require.NoError(t, err)
	return v
}

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(domain.DateFormat, s)
	require.NoError(t, err)
	return d
}

func validRequest(t *testing.T) *Request {
	t.Helper()
	return &Request{
		ClientName:  "Иван Петров",
		ClientPhone: "+79991234567",
		ServiceID:   "svc-1",
		Date:        date(t, "2026-01-26"),
		Time:        ts(t, "10:00"),
	}
}

func openRule(t *testing.T) *domain.WorkingHoursRule {
	t.Helper()
	return &domain.WorkingHoursRule{
		DayOfWeek:       0,
		StartTime:       ts(t, "09:00"),
		EndTime:         ts(t, "20:00"),
		IntervalMinutes: 60,
		Active:          true,
	}
}

func activeService() *domain.Service {
	return &domain.Service{ID: "svc-1", Name: "Стрижка", Price: 1500, Active: true}
}

func newUseCase(appts *mockAppointmentRepo, schedule *mockScheduleRepo, services *mockServiceRepo, tx *mockTxManager) *UseCase {
	return NewUseCase(appts, schedule, services, tx, nopLogger{})
}

func TestExecute_Success(t *testing.T) {
	appts := &mockAppointmentRepo{}
	tx := &mockTxManager{}
	uc := newUseCase(appts, &mockScheduleRepo{rule: openRule(t)}, &mockServiceRepo{service: activeService()}, tx)

	resp, err := uc.Execute(context.Background(), validRequest(t))
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, string(domain.SourceWeb), resp.Source)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, 1, tx.calls)
	require.NotNil(t, appts.created)
	assert.Equal(t, domain.StatusPending, appts.created.Status)
}

func TestExecute_SourceCarriedThrough(t *testing.T) {
	appts := &mockAppointmentRepo{}
	uc := newUseCase(appts, &mockScheduleRepo{rule: openRule(t)}, &mockServiceRepo{service: activeService()}, &mockTxManager{})

	req := validRequest(t)
	req.Source = domain.SourceTelegram

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, string(domain.SourceTelegram), resp.Source)
}

func TestExecute_BlockedDateWinsOverEverything(t *testing.T) {
	// Дата заблокирована, день закрыт, слот занят и услуги нет:
	// клиент видит именно ошибку блокировки
	schedule := &mockScheduleRepo{
		blockedDate: &domain.BlockedDate{Date: "2026-01-26", Reason: ptr.Ptr("праздник")},
	}
	appts := &mockAppointmentRepo{active: []*domain.Appointment{{Time: ts(t, "10:00"), Status: domain.StatusPending}}}
	uc := newUseCase(appts, schedule, &mockServiceRepo{}, &mockTxManager{})

	_, err := uc.Execute(context.Background(), validRequest(t))
	assert.ErrorIs(t, err, ErrDateBlocked)
}

func TestExecute_ClosedBeforeSlotCheck(t *testing.T) {
	appts := &mockAppointmentRepo{active: []*domain.Appointment{{Time: ts(t, "10:00"), Status: domain.StatusPending}}}
	uc := newUseCase(appts, &mockScheduleRepo{}, &mockServiceRepo{}, &mockTxManager{})

	_, err := uc.Execute(context.Background(), validRequest(t))
	assert.ErrorIs(t, err, ErrClosed)
}

func TestExecute_SlotTakenBeforeServiceCheck(t *testing.T) {
	appts := &mockAppointmentRepo{active: []*domain.Appointment{{Time: ts(t, "10:00"), Status: domain.StatusConfirmed}}}
	uc := newUseCase(appts, &mockScheduleRepo{rule: openRule(t)}, &mockServiceRepo{}, &mockTxManager{})

	_, err := uc.Execute(context.Background(), validRequest(t))
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestExecute_OtherTimeDoesNotConflict(t *testing.T) {
	// Занятые слоты дня на другое время не мешают созданию записи
	appts := &mockAppointmentRepo{active: []*domain.Appointment{
		{Time: ts(t, "09:00"), Status: domain.StatusPending},
		{Time: ts(t, "11:00"), Status: domain.StatusConfirmed},
	}}
	uc := newUseCase(appts, &mockScheduleRepo{rule: openRule(t)}, &mockServiceRepo{service: activeService()}, &mockTxManager{})

	resp, err := uc.Execute(context.Background(), validRequest(t))
	require.NoError(t, err)
	assert.Equal(t, "10:00", resp.Time.String())
}

func TestExecute_SlotCheckFailureIsInternal(t *testing.T) {
	appts := &mockAppointmentRepo{activeErr: errors.New("connection reset")}
	uc := newUseCase(appts, &mockScheduleRepo{rule: openRule(t)}, &mockServiceRepo{service: activeService()}, &mockTxManager{})

	_, err := uc.Execute(context.Background(), validRequest(t))
	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_ServiceNotFound(t *testing.T) {
	uc := newUseCase(&mockAppointmentRepo{}, &mockScheduleRepo{rule: openRule(t)}, &mockServiceRepo{}, &mockTxManager{})

	_, err := uc.Execute(context.Background(), validRequest(t))
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_InactiveServiceTreatedAsMissing(t *testing.T) {
	inactive := activeService()
	inactive.Active = false
	uc := newUseCase(&mockAppointmentRepo{}, &mockScheduleRepo{rule: openRule(t)}, &mockServiceRepo{service: inactive}, &mockTxManager{})

	_, err := uc.Execute(context.Background(), validRequest(t))
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_ConcurrentInsertMapsToSlotTaken(t *testing.T) {
	// Уникальный индекс сработал на вставке - конфликт, а не внутренняя ошибка
	appts := &mockAppointmentRepo{createErr: apptRepo.ErrSlotTaken}
	uc := newUseCase(appts, &mockScheduleRepo{rule: openRule(t)}, &mockServiceRepo{service: activeService()}, &mockTxManager{})

	_, err := uc.Execute(context.Background(), validRequest(t))
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestExecute_CreateFailureIsInternal(t *testing.T) {
	appts := &mockAppointmentRepo{createErr: errors.New("connection reset")}
	uc := newUseCase(appts, &mockScheduleRepo{rule: openRule(t)}, &mockServiceRepo{service: activeService()}, &mockTxManager{})

	_, err := uc.Execute(context.Background(), validRequest(t))
	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_OffGridTimeAllowed(t *testing.T) {
	// Время вне сетки слотов допускается, если слот не конфликтует
	uc := newUseCase(&mockAppointmentRepo{}, &mockScheduleRepo{rule: openRule(t)}, &mockServiceRepo{service: activeService()}, &mockTxManager{})

	req := validRequest(t)
	req.Time = ts(t, "10:17")

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "10:17", resp.Time.String())
}

func TestExecute_Validation(t *testing.T) {
	uc := newUseCase(&mockAppointmentRepo{}, &mockScheduleRepo{rule: openRule(t)}, &mockServiceRepo{service: activeService()}, &mockTxManager{})

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"missing client name", func(r *Request) { r.ClientName = "" }},
		{"missing phone", func(r *Request) { r.ClientPhone = "" }},
		{"missing service", func(r *Request) { r.ServiceID = "" }},
		{"zero date", func(r *Request) { r.Date = time.Time{} }},
		{"zero time", func(r *Request) { r.Time = types.TimeString("") }},
		{"unknown source", func(r *Request) { r.Source = "fax" }},
		{"notes too long", func(r *Request) { r.Notes = ptr.Ptr(strings.Repeat("x", domain.MaxNotesLength+1)) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest(t)
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
