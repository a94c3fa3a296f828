package get_availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/primobarber/PB-BookingService/internal/domain"
	scheduleRepo "github.com/primobarber/PB-BookingService/internal/infra/storage/schedule"
	"github.com/primobarber/PB-BookingService/pkg/ptr"
)

// Mock implementations

type mockScheduleRepo struct {
	blockedDate *domain.BlockedDate
	blockedErr  error

	rule    *domain.WorkingHoursRule
	ruleErr error

	requestedDay      int
	workingHoursCalls int
}

func (m *mockScheduleRepo) GetBlockedDate(_ context.Context, _ string) (*domain.BlockedDate, error) {
	if m.blockedErr != nil {
		return nil, m.blockedErr
	}
	if m.blockedDate == nil {
		return nil, scheduleRepo.ErrBlockedDateNotFound
	}
	return m.blockedDate, nil
}

func (m *mockScheduleRepo) GetActiveWorkingHoursByDay(_ context.Context, dayOfWeek int) (*domain.WorkingHoursRule, error) {
	m.workingHoursCalls++
	m.requestedDay = dayOfWeek
	if m.ruleErr != nil {
		return nil, m.ruleErr
	}
	if m.rule == nil {
		return nil, scheduleRepo.ErrWorkingHoursNotFound
	}
	return m.rule, nil
}

type mockAppointmentRepo struct {
	appointments []*domain.Appointment
	err          error
	calls        int
}

func (m *mockAppointmentRepo) GetActiveByDate(_ context.Context, _ time.Time) ([]*domain.Appointment, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.appointments, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(domain.DateFormat, s)
	require.NoError(t, err)
	return d
}

func TestExecute_BlockedDateShortCircuits(t *testing.T) {
	schedule := &mockScheduleRepo{
		blockedDate: &domain.BlockedDate{Date: "2026-01-27", Reason: ptr.Ptr("ремонт")},
		rule:        rule(t, "09:00", "20:00", 60),
	}
	appts := &mockAppointmentRepo{}
	uc := NewUseCase(schedule, appts, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: date(t, "2026-01-27")})
	require.NoError(t, err)

	assert.True(t, resp.Blocked)
	assert.Empty(t, resp.AvailableTimes)
	require.NotNil(t, resp.Reason)
	assert.Equal(t, "ремонт", *resp.Reason)

	// Блокировка обрывает вычисление: ни рабочие часы, ни записи не читаются
	assert.Zero(t, schedule.workingHoursCalls)
	assert.Zero(t, appts.calls)
}

func TestExecute_ClosedDayReturnsEmpty(t *testing.T) {
	schedule := &mockScheduleRepo{} // правила нет
	appts := &mockAppointmentRepo{}
	uc := NewUseCase(schedule, appts, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: date(t, "2026-01-25")})
	require.NoError(t, err)

	assert.False(t, resp.Blocked)
	assert.Empty(t, resp.AvailableTimes)
	assert.Nil(t, resp.Reason)
	assert.Zero(t, appts.calls)
}

func TestExecute_SubtractsBookedSlots(t *testing.T) {
	schedule := &mockScheduleRepo{rule: rule(t, "09:00", "12:00", 60)}
	appts := &mockAppointmentRepo{
		appointments: []*domain.Appointment{
			{Time: ts(t, "10:00"), Status: domain.StatusPending},
		},
	}
	uc := NewUseCase(schedule, appts, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: date(t, "2026-01-26")})
	require.NoError(t, err)

	assert.False(t, resp.Blocked)
	assert.Equal(t, []string{"09:00", "11:00"}, slotStrings(resp.AvailableTimes))
}

func TestExecute_MondayZeroWeekdayConvention(t *testing.T) {
	schedule := &mockScheduleRepo{rule: rule(t, "09:00", "11:00", 30)}
	uc := NewUseCase(schedule, &mockAppointmentRepo{}, nopLogger{})

	// 2026-01-27 - вторник
	resp, err := uc.Execute(context.Background(), &Request{Date: date(t, "2026-01-27")})
	require.NoError(t, err)

	assert.Equal(t, 1, schedule.requestedDay)
	assert.Equal(t, []string{"09:00", "09:30", "10:00", "10:30"}, slotStrings(resp.AvailableTimes))
}

func TestExecute_Idempotent(t *testing.T) {
	schedule := &mockScheduleRepo{rule: rule(t, "09:00", "12:00", 60)}
	appts := &mockAppointmentRepo{}
	uc := NewUseCase(schedule, appts, nopLogger{})

	req := &Request{Date: date(t, "2026-01-26")}
	first, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first.AvailableTimes, second.AvailableTimes)
}

func TestExecute_ZeroDateRejected(t *testing.T) {
	uc := NewUseCase(&mockScheduleRepo{}, &mockAppointmentRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_ScheduleRepoFailure(t *testing.T) {
	schedule := &mockScheduleRepo{blockedErr: errors.New("connection refused")}
	uc := NewUseCase(schedule, &mockAppointmentRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Date: date(t, "2026-01-26")})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_AppointmentRepoFailure(t *testing.T) {
	schedule := &mockScheduleRepo{rule: rule(t, "09:00", "12:00", 60)}
	appts := &mockAppointmentRepo{err: errors.New("connection refused")}
	uc := NewUseCase(schedule, appts, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Date: date(t, "2026-01-26")})
	assert.ErrorIs(t, err, ErrInternal)
}
