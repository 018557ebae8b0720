package request_test

import (
	"errors"
	"testing"

	"github.com/EricWal/hr-app/core/request"
	"github.com/EricWal/hr-app/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int {
	return &v
}

func fullQuota() domain.Quota {
	return domain.Quota{RemainingMinutes: 480, RemainingCount: 4}
}

func validAbsence(from, to int) request.ShortAbsenceCheck {
	return request.ShortAbsenceCheck{
		Date:         "2026-10-14",
		FromMinutes:  intPtr(from),
		ToMinutes:    intPtr(to),
		Acknowledged: true,
		Signed:       true,
	}
}

func codesOf(t *testing.T, err error) []request.ViolationCode {
	t.Helper()
	var vErr *request.ValidationError
	require.True(t, errors.As(err, &vErr), "expected *ValidationError, got %v", err)
	return vErr.Codes()
}

func TestValidateShortAbsence(t *testing.T) {
	v := request.NewValidator(nil, domain.DefaultQuotaPolicy())

	testCases := []struct {
		name     string
		check    request.ShortAbsenceCheck
		quota    domain.Quota
		expected []request.ViolationCode
	}{
		{
			name:  "accepted",
			check: validAbsence(8*60, 9*60),
			quota: fullQuota(),
		},
		{
			name:  "midnight start is a valid time",
			check: validAbsence(0, 60),
			quota: fullQuota(),
		},
		{
			name:     "end before start",
			check:    validAbsence(510, 480),
			quota:    fullQuota(),
			expected: []request.ViolationCode{request.ViolationInvalidRange},
		},
		{
			name:     "zero length",
			check:    validAbsence(480, 480),
			quota:    fullQuota(),
			expected: []request.ViolationCode{request.ViolationInvalidRange},
		},
		{
			name:     "longer than three hours",
			check:    validAbsence(480, 680),
			quota:    fullQuota(),
			expected: []request.ViolationCode{request.ViolationDurationExceedsCap},
		},
		{
			name:  "exactly three hours",
			check: validAbsence(480, 660),
			quota: fullQuota(),
		},
		{
			name:     "more than remaining minutes",
			check:    validAbsence(480, 525),
			quota:    domain.Quota{RemainingMinutes: 30, RemainingCount: 1},
			expected: []request.ViolationCode{request.ViolationQuotaExceeded},
		},
		{
			name:  "exactly remaining minutes",
			check: validAbsence(480, 510),
			quota: domain.Quota{RemainingMinutes: 30, RemainingCount: 1},
		},
		{
			name:     "monthly count used up",
			check:    validAbsence(480, 490),
			quota:    domain.Quota{RemainingMinutes: 100, RemainingCount: 0},
			expected: []request.ViolationCode{request.ViolationMonthlyLimitReached},
		},
		{
			name:  "everything missing",
			check: request.ShortAbsenceCheck{},
			quota: fullQuota(),
			expected: []request.ViolationCode{
				request.ViolationMissingDate,
				request.ViolationMissingTimeRange,
				request.ViolationAcknowledgementRequired,
				request.ViolationSignatureRequired,
			},
		},
		{
			name: "only one time picked",
			check: request.ShortAbsenceCheck{
				Date: "2026-10-14", FromMinutes: intPtr(480), Acknowledged: true, Signed: true,
			},
			quota:    fullQuota(),
			expected: []request.ViolationCode{request.ViolationMissingTimeRange},
		},
		{
			name:     "time outside the day",
			check:    validAbsence(1430, 1500),
			quota:    fullQuota(),
			expected: []request.ViolationCode{request.ViolationInvalidTimeOfDay},
		},
		{
			name: "malformed time text",
			check: request.ShortAbsenceCheck{
				Date: "2026-10-14", ToMinutes: intPtr(600), MalformedTime: true, Acknowledged: true, Signed: true,
			},
			quota:    fullQuota(),
			expected: []request.ViolationCode{request.ViolationMissingTimeRange, request.ViolationInvalidTimeOfDay},
		},
		{
			name: "independent violations are all reported in order",
			check: request.ShortAbsenceCheck{
				FromMinutes: intPtr(480), ToMinutes: intPtr(700),
			},
			quota: domain.Quota{RemainingMinutes: 60, RemainingCount: 0},
			expected: []request.ViolationCode{
				request.ViolationMissingDate,
				request.ViolationDurationExceedsCap,
				request.ViolationQuotaExceeded,
				request.ViolationAcknowledgementRequired,
				request.ViolationMonthlyLimitReached,
				request.ViolationSignatureRequired,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := v.ValidateShortAbsence(tc.check, tc.quota)
			if tc.expected == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, request.ErrInvalidRequest)
			assert.Equal(t, tc.expected, codesOf(t, err))
		})
	}
}

func TestValidationErrorMessages(t *testing.T) {
	t.Run("default cap", func(t *testing.T) {
		v := request.NewValidator(nil, domain.DefaultQuotaPolicy())
		err := v.ValidateShortAbsence(validAbsence(480, 700), fullQuota())

		var vErr *request.ValidationError
		require.True(t, errors.As(err, &vErr))
		require.Len(t, vErr.Violations, 1)
		assert.Equal(t, "مدة الطلب لا يجب أن تتجاوز 3 ساعات", vErr.Violations[0].Message)
		assert.True(t, vErr.Has(request.ViolationDurationExceedsCap))
		assert.False(t, vErr.Has(request.ViolationQuotaExceeded))
	})

	t.Run("cap not in whole hours", func(t *testing.T) {
		policy := domain.DefaultQuotaPolicy()
		policy.MaxDurationMinutes = 90
		v := request.NewValidator(nil, policy)
		err := v.ValidateShortAbsence(validAbsence(480, 600), fullQuota())

		var vErr *request.ValidationError
		require.True(t, errors.As(err, &vErr))
		assert.Equal(t, "مدة الطلب لا يجب أن تتجاوز 1 ساعة 30 دقيقة", vErr.Violations[0].Message)
	})

	t.Run("error string lists codes", func(t *testing.T) {
		v := request.NewValidator(nil, domain.DefaultQuotaPolicy())
		err := v.ValidateShortAbsence(request.ShortAbsenceCheck{Date: "2026-10-14", Acknowledged: true, Signed: true}, fullQuota())
		assert.EqualError(t, err, "invalid request: missing_time_range")
	})
}

func TestValidateLeave(t *testing.T) {
	v := request.NewValidator(nil, domain.DefaultQuotaPolicy())
	valid := func() request.LeaveCheck {
		return request.LeaveCheck{
			Subtype:   string(domain.LeaveSubtypeAnnual),
			StartDate: "2026-10-20",
			EndDate:   "2026-10-22",
			Reason:    "سفر",
		}
	}

	testCases := []struct {
		name     string
		modify   func(*request.LeaveCheck)
		expected []request.ViolationCode
	}{
		{
			name:   "accepted",
			modify: func(*request.LeaveCheck) {},
		},
		{
			name:   "single day",
			modify: func(c *request.LeaveCheck) { c.EndDate = c.StartDate },
		},
		{
			name:   "everything missing",
			modify: func(c *request.LeaveCheck) { *c = request.LeaveCheck{} },
			expected: []request.ViolationCode{
				request.ViolationMissingLeaveType,
				request.ViolationMissingStartDate,
				request.ViolationMissingEndDate,
				request.ViolationMissingReason,
			},
		},
		{
			name:     "unknown subtype",
			modify:   func(c *request.LeaveCheck) { c.Subtype = "عارضة" },
			expected: []request.ViolationCode{request.ViolationMissingLeaveType},
		},
		{
			name:     "malformed date",
			modify:   func(c *request.LeaveCheck) { c.StartDate = "20/10/2026" },
			expected: []request.ViolationCode{request.ViolationMalformedDate},
		},
		{
			name:     "end before start",
			modify:   func(c *request.LeaveCheck) { c.EndDate = "2026-10-19" },
			expected: []request.ViolationCode{request.ViolationInvalidDateRange},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := valid()
			tc.modify(&c)
			err := v.ValidateLeave(c)
			if tc.expected == nil {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, tc.expected, codesOf(t, err))
		})
	}
}
