package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/primobarber/PB-BookingService/pkg/ptr"
)

func validWorkingHoursRequest() UpsertWorkingHoursRequest {
	return UpsertWorkingHoursRequest{
		DayOfWeek:       0,
		StartTime:       "09:00",
		EndTime:         "20:00",
		IntervalMinutes: 60,
	}
}

func TestToDomainRule_Defaults(t *testing.T) {
	req := validWorkingHoursRequest()

	rule, err := req.ToDomainRule()
	require.NoError(t, err)

	assert.Equal(t, 0, rule.DayOfWeek)
	assert.Equal(t, "09:00", rule.StartTime.String())
	assert.Equal(t, "20:00", rule.EndTime.String())
	assert.Equal(t, 60, rule.IntervalMinutes)
	assert.True(t, rule.Active, "active по умолчанию true")
}

func TestToDomainRule_ExplicitInactive(t *testing.T) {
	req := validWorkingHoursRequest()
	req.Active = ptr.Ptr(false)

	rule, err := req.ToDomainRule()
	require.NoError(t, err)
	assert.False(t, rule.Active)
}

func TestToDomainRule_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*UpsertWorkingHoursRequest)
	}{
		{"day below range", func(r *UpsertWorkingHoursRequest) { r.DayOfWeek = -1 }},
		{"day above range", func(r *UpsertWorkingHoursRequest) { r.DayOfWeek = 7 }},
		{"bad start time", func(r *UpsertWorkingHoursRequest) { r.StartTime = "9:00" }},
		{"bad end time", func(r *UpsertWorkingHoursRequest) { r.EndTime = "25:00" }},
		{"start equals end", func(r *UpsertWorkingHoursRequest) { r.EndTime = "09:00" }},
		{"start after end", func(r *UpsertWorkingHoursRequest) { r.StartTime = "21:00" }},
		{"zero interval", func(r *UpsertWorkingHoursRequest) { r.IntervalMinutes = 0 }},
		{"negative interval", func(r *UpsertWorkingHoursRequest) { r.IntervalMinutes = -30 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := validWorkingHoursRequest()
			tc.mutate(&req)

			_, err := req.ToDomainRule()
			assert.Error(t, err)
		})
	}
}

func TestToDomainBlockedDate_TrimsReason(t *testing.T) {
	req := CreateBlockedDateRequest{
		Date:   "2026-02-14",
		Reason: ptr.Ptr("  ремонт  "),
	}

	bd, err := req.ToDomainBlockedDate()
	require.NoError(t, err)

	assert.Equal(t, "2026-02-14", bd.Date)
	require.NotNil(t, bd.Reason)
	assert.Equal(t, "ремонт", *bd.Reason)
}

func TestToDomainBlockedDate_BlankReasonBecomesNil(t *testing.T) {
	req := CreateBlockedDateRequest{
		Date:   "2026-02-14",
		Reason: ptr.Ptr("   "),
	}

	bd, err := req.ToDomainBlockedDate()
	require.NoError(t, err)
	assert.Nil(t, bd.Reason)
}

func TestToDomainBlockedDate_InvalidDate(t *testing.T) {
	req := CreateBlockedDateRequest{Date: "14.02.2026"}

	_, err := req.ToDomainBlockedDate()
	assert.Error(t, err)
}

func TestToDomainBlockedDate_ReasonTooLong(t *testing.T) {
	req := CreateBlockedDateRequest{
		Date:   "2026-02-14",
		Reason: ptr.Ptr(strings.Repeat("x", 600)),
	}

	_, err := req.ToDomainBlockedDate()
	assert.Error(t, err)
}
