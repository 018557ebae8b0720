package domain_test

import (
	"testing"

	"github.com/EricWal/hr-app/domain"
	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	testCases := []struct {
		tag      string
		expected domain.RequestKind
	}{
		{"استئذان", domain.KindShortAbsence},
		{"استئذان - أكتوبر", domain.KindShortAbsence},
		{" استئذان ", domain.KindShortAbsence},
		{"إجازة سنوية", domain.KindLeave},
		{"إجازة مرضية", domain.KindLeave},
		{"استئذانات", domain.KindUnknown},
		{"", domain.KindUnknown},
		{"overtime", domain.KindUnknown},
	}

	for _, tc := range testCases {
		t.Run(tc.tag, func(t *testing.T) {
			assert.Equal(t, tc.expected, domain.KindOf(tc.tag))
		})
	}
}

func TestLeaveSubtype(t *testing.T) {
	assert.True(t, domain.LeaveSubtypeSick.IsValid())
	assert.False(t, domain.LeaveSubtype("سنويه").IsValid())
	assert.Equal(t, "إجازة استثنائية", domain.LeaveSubtypeExceptional.Label())
}

func TestRequestStatusTransitions(t *testing.T) {
	t.Run("approve pending request", func(t *testing.T) {
		r := domain.NewShortAbsenceRequest(1, domain.ShortAbsence{Date: "2026-10-14"})

		assert.NoError(t, r.Approve())
		assert.Equal(t, domain.RequestStatusApproved, r.Status)
		assert.Empty(t, r.RejectionReason)
	})

	t.Run("reject pending request stores reason", func(t *testing.T) {
		r := domain.NewShortAbsenceRequest(1, domain.ShortAbsence{Date: "2026-10-14"})

		assert.NoError(t, r.Reject("ضغط العمل"))
		assert.Equal(t, domain.RequestStatusRejected, r.Status)
		assert.Equal(t, "ضغط العمل", r.RejectionReason)
	})

	t.Run("finalized request cannot transition", func(t *testing.T) {
		r := domain.NewShortAbsenceRequest(1, domain.ShortAbsence{Date: "2026-10-14"})
		assert.NoError(t, r.Reject("x"))

		assert.ErrorIs(t, r.Approve(), domain.ErrRequestNotPending)
		assert.ErrorIs(t, r.Reject("y"), domain.ErrRequestNotPending)
		assert.Equal(t, domain.RequestStatusRejected, r.Status)
		assert.Equal(t, "x", r.RejectionReason)
	})
}

func TestRequestDisplayDate(t *testing.T) {
	sa := domain.NewShortAbsenceRequest(1, domain.ShortAbsence{Date: "2026-10-14 - يوم: الأربعاء"})
	assert.Equal(t, "2026-10-14", sa.DisplayDate())

	l := domain.NewLeaveRequest(2, domain.Leave{Subtype: domain.LeaveSubtypeAnnual, StartDate: "2026-10-20", EndDate: "2026-10-22"})
	assert.Equal(t, "2026-10-20 الى 2026-10-22", l.DisplayDate())

	assert.Equal(t, "", (&domain.Request{}).DisplayDate())
}

func TestRequestClone(t *testing.T) {
	original := domain.NewShortAbsenceRequest(1, domain.ShortAbsence{Date: "2026-10-14", DurationMinutes: 60})

	c := original.Clone()
	c.ShortAbsence.DurationMinutes = 120
	c.Status = domain.RequestStatusApproved

	assert.Equal(t, 60, original.ShortAbsence.DurationMinutes)
	assert.Equal(t, domain.RequestStatusPending, original.Status)
	assert.Nil(t, (*domain.Request)(nil).Clone())
}
