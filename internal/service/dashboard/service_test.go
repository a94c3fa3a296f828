package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/primobarber/PB-BookingService/internal/domain"
)

type mockAppointmentRepo struct {
	countsByStatus map[domain.AppointmentStatus]int
	total          int
	todayCount     int
	countErr       error

	completed []*domain.Appointment
	listErr   error

	todayFilter *domain.AppointmentFilter
	listFilter  *domain.AppointmentFilter
}

func (m *mockAppointmentRepo) Count(_ context.Context, filter domain.AppointmentFilter) (int, error) {
	if m.countErr != nil {
		return 0, m.countErr
	}
	if filter.Status != nil {
		return m.countsByStatus[*filter.Status], nil
	}
	if filter.DateFrom != nil || filter.DateTo != nil {
		f := filter
		m.todayFilter = &f
		return m.todayCount, nil
	}
	return m.total, nil
}

func (m *mockAppointmentRepo) ListWithFilter(_ context.Context, filter domain.AppointmentFilter) ([]*domain.Appointment, error) {
	f := filter
	m.listFilter = &f
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.completed, nil
}

type mockServiceRepo struct {
	active       int
	activeErr    error
	services     []*domain.Service
	getErr       error
	requestedIDs []string
}

func (m *mockServiceRepo) CountActive(_ context.Context) (int, error) {
	return m.active, m.activeErr
}

func (m *mockServiceRepo) GetByIDs(_ context.Context, ids []string) ([]*domain.Service, error) {
	m.requestedIDs = ids
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.services, nil
}

type fixedTimeProvider struct {
	now time.Time
}

func (p fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func completedAppt(serviceID string) *domain.Appointment {
	return &domain.Appointment{ServiceID: serviceID, Status: domain.StatusCompleted}
}

func TestStats_StatusBreakdown(t *testing.T) {
	appts := &mockAppointmentRepo{
		total: 10,
		countsByStatus: map[domain.AppointmentStatus]int{
			domain.StatusPending:   4,
			domain.StatusConfirmed: 3,
			domain.StatusCancelled: 2,
			domain.StatusCompleted: 1,
		},
	}
	svc := NewService(appts, &mockServiceRepo{active: 5}, fixedTimeProvider{now: time.Now()}, nopLogger{})

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 10, stats.TotalAppointments)
	assert.Equal(t, 4, stats.ByStatus.Pending)
	assert.Equal(t, 3, stats.ByStatus.Confirmed)
	assert.Equal(t, 2, stats.ByStatus.Cancelled)
	assert.Equal(t, 1, stats.ByStatus.Completed)
	assert.Equal(t, 5, stats.ActiveServices)
}

func TestStats_TodayCountUsesMidnightBounds(t *testing.T) {
	now := time.Date(2026, 1, 26, 15, 42, 7, 0, time.UTC)
	appts := &mockAppointmentRepo{todayCount: 3}
	svc := NewService(appts, &mockServiceRepo{}, fixedTimeProvider{now: now}, nopLogger{})

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, stats.TodayCount)
	require.NotNil(t, appts.todayFilter)
	midnight := time.Date(2026, 1, 26, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, midnight, *appts.todayFilter.DateFrom)
	assert.Equal(t, midnight, *appts.todayFilter.DateTo)
}

func TestStats_MonthRevenueSumsCompletedAppointments(t *testing.T) {
	now := time.Date(2026, 1, 26, 12, 0, 0, 0, time.UTC)
	appts := &mockAppointmentRepo{
		completed: []*domain.Appointment{
			completedAppt("svc-1"),
			completedAppt("svc-1"),
			completedAppt("svc-2"),
		},
	}
	services := &mockServiceRepo{
		services: []*domain.Service{
			{ID: "svc-1", Price: 1500},
			{ID: "svc-2", Price: 800},
		},
	}
	svc := NewService(appts, services, fixedTimeProvider{now: now}, nopLogger{})

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3800.0, stats.MonthRevenue)

	// Цены запрашиваются одним батчем по уникальным ID
	assert.Equal(t, []string{"svc-1", "svc-2"}, services.requestedIDs)

	require.NotNil(t, appts.listFilter)
	require.NotNil(t, appts.listFilter.Status)
	assert.Equal(t, domain.StatusCompleted, *appts.listFilter.Status)
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), *appts.listFilter.DateFrom)
	assert.Equal(t, time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC), *appts.listFilter.DateTo)
}

func TestStats_DeletedServiceCountsAsZeroRevenue(t *testing.T) {
	appts := &mockAppointmentRepo{
		completed: []*domain.Appointment{
			completedAppt("svc-1"),
			completedAppt("svc-gone"),
		},
	}
	services := &mockServiceRepo{
		services: []*domain.Service{{ID: "svc-1", Price: 1500}},
	}
	svc := NewService(appts, services, fixedTimeProvider{now: time.Now()}, nopLogger{})

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1500.0, stats.MonthRevenue)
}

func TestStats_NoCompletedAppointmentsSkipsServiceLookup(t *testing.T) {
	services := &mockServiceRepo{}
	svc := NewService(&mockAppointmentRepo{}, services, fixedTimeProvider{now: time.Now()}, nopLogger{})

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)

	assert.Zero(t, stats.MonthRevenue)
	assert.Nil(t, services.requestedIDs)
}

func TestStats_CountFailureIsInternal(t *testing.T) {
	appts := &mockAppointmentRepo{countErr: errors.New("db down")}
	svc := NewService(appts, &mockServiceRepo{}, fixedTimeProvider{now: time.Now()}, nopLogger{})

	_, err := svc.Stats(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}

func TestStats_ListFailureIsInternal(t *testing.T) {
	appts := &mockAppointmentRepo{listErr: errors.New("db down")}
	svc := NewService(appts, &mockServiceRepo{}, fixedTimeProvider{now: time.Now()}, nopLogger{})

	_, err := svc.Stats(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}
